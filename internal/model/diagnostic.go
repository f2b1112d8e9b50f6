package model

import "time"

// DiagnosticTest is a lab or screening result recorded by a user.
type DiagnosticTest struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Result    *string   `json:"result" gorm:"type:text"`
	TestDate  time.Time `json:"test_date" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// DiagnosticTestPatch lists the columns an update may change.
// Nil fields are left untouched.
type DiagnosticTestPatch struct {
	Name     *string
	Result   *string
	TestDate *time.Time
}

// Columns maps the present fields to their column assignments.
func (p DiagnosticTestPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 3)
	assign(cols, "name", p.Name)
	assign(cols, "result", p.Result)
	assign(cols, "test_date", p.TestDate)
	return cols
}

// IsEmpty reports whether the patch changes nothing.
func (p DiagnosticTestPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}
