package model

import "time"

// Theme preferences accepted on profile updates.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// User represents an authenticated user in the system.
type User struct {
	ID                       uint      `json:"id" gorm:"primaryKey"`
	Email                    string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash             string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName                string    `json:"first_name" gorm:"size:100;not null"`
	LastName                 string    `json:"last_name" gorm:"size:100;not null"`
	NotificationEmailEnabled bool      `json:"notification_email_enabled" gorm:"not null"`
	ThemePreference          string    `json:"theme_preference" gorm:"size:20;not null"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// UserSummary is the minimal projection returned on login.
type UserSummary struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Summary projects the user onto its login view.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// ProfilePatch lists the user columns a profile update may change.
// Nil fields are left untouched.
type ProfilePatch struct {
	Email                    *string
	FirstName                *string
	LastName                 *string
	NotificationEmailEnabled *bool
	ThemePreference          *string
	PasswordHash             *string
}

// Columns maps the present fields to their column assignments.
func (p ProfilePatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 6)
	assign(cols, "email", p.Email)
	assign(cols, "first_name", p.FirstName)
	assign(cols, "last_name", p.LastName)
	assign(cols, "notification_email_enabled", p.NotificationEmailEnabled)
	assign(cols, "theme_preference", p.ThemePreference)
	assign(cols, "password_hash", p.PasswordHash)
	return cols
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Apply copies the present fields onto u.
func (p ProfilePatch) Apply(u *User) {
	set(&u.Email, p.Email)
	set(&u.FirstName, p.FirstName)
	set(&u.LastName, p.LastName)
	set(&u.NotificationEmailEnabled, p.NotificationEmailEnabled)
	set(&u.ThemePreference, p.ThemePreference)
	set(&u.PasswordHash, p.PasswordHash)
}
