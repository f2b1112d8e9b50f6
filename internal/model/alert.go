package model

import "time"

// AlertStatusNew is the status given to alerts created without one.
const AlertStatusNew = "new"

// Alert is a user-facing health notice stored per user.
type Alert struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Status    string    `json:"status" gorm:"size:50;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp;autoCreateTime;index"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// AlertPatch lists the alert columns an update may change.
type AlertPatch struct {
	Status *string
}

// Columns maps the present fields to their column assignments.
func (p AlertPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 1)
	assign(cols, "status", p.Status)
	return cols
}

// IsEmpty reports whether the patch changes nothing.
func (p AlertPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}
