package client

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterInput is the registration payload.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// ProfileUpdate carries the fields to change; nil fields are not sent.
type ProfileUpdate struct {
	Email                    *string `json:"email,omitempty"`
	FirstName                *string `json:"first_name,omitempty"`
	LastName                 *string `json:"last_name,omitempty"`
	NotificationEmailEnabled *bool   `json:"notification_email_enabled,omitempty"`
	ThemePreference          *string `json:"theme_preference,omitempty"`
	CurrentPassword          *string `json:"current_password,omitempty"`
	NewPassword              *string `json:"new_password,omitempty"`
}

type User struct {
	ID                       uint      `json:"id"`
	Email                    string    `json:"email"`
	FirstName                string    `json:"first_name"`
	LastName                 string    `json:"last_name"`
	NotificationEmailEnabled bool      `json:"notification_email_enabled"`
	ThemePreference          string    `json:"theme_preference"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// SymptomInput is the create-symptom payload. Date is YYYY-MM-DD or empty.
type SymptomInput struct {
	Description string `json:"description"`
	Severity    string `json:"severity,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Date        string `json:"date,omitempty"`
}

type Symptom struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	Duration    string    `json:"duration"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type DiagnosticTestInput struct {
	Name     string  `json:"name"`
	Result   *string `json:"result,omitempty"`
	TestDate string  `json:"test_date,omitempty"`
}

type DiagnosticTest struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Result   *string   `json:"result"`
	TestDate time.Time `json:"test_date"`
}

type Alert struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type Metrics struct {
	TotalSymptoms   int             `json:"total_symptoms"`
	BySeverity      map[string]int  `json:"by_severity"`
	RecentSymptoms  int             `json:"recent_symptoms"`
	AverageSeverity decimal.Decimal `json:"average_severity"`
	DiagnosticTests int64           `json:"diagnostic_tests"`
	OpenAlerts      int64           `json:"open_alerts"`
}

type Score struct {
	Score  int    `json:"score"`
	Status string `json:"status"`
}

type Diagnosis struct {
	Message         string   `json:"message"`
	Recommendations []string `json:"recommendations"`
	Urgency         string   `json:"urgency"`
}
