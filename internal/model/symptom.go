package model

import "time"

// Severity grades a symptom.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Valid reports whether s is one of the enumerated severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

// Weight is the numeric grade used for averages (mild=1, moderate=2, severe=3).
func (s Severity) Weight() int {
	switch s {
	case SeverityMild:
		return 1
	case SeverityModerate:
		return 2
	case SeveritySevere:
		return 3
	}
	return 0
}

// Symptom is a health record entered by the user.
type Symptom struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Severity    Severity  `json:"severity" gorm:"type:varchar(16);not null"`
	Duration    string    `json:"duration" gorm:"size:64;not null"`
	Date        time.Time `json:"date" gorm:"type:date;not null;index"`
	CreatedAt   time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
