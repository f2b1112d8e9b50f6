package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestProfilePatch_OnlyPresentFieldsBecomeColumns(t *testing.T) {
	patch := ProfilePatch{FirstName: ptr("Ada")}

	assert.Equal(t, map[string]interface{}{"first_name": "Ada"}, patch.Columns())
	assert.False(t, patch.IsEmpty())
	assert.True(t, ProfilePatch{}.IsEmpty())
}

func TestProfilePatch_FalseIsStillPresent(t *testing.T) {
	patch := ProfilePatch{NotificationEmailEnabled: ptr(false)}

	cols := patch.Columns()
	assert.Contains(t, cols, "notification_email_enabled")
	assert.Equal(t, false, cols["notification_email_enabled"])
}

func TestProfilePatch_Apply(t *testing.T) {
	user := &User{Email: "a@x.com", FirstName: "A", LastName: "Z", PasswordHash: "hash"}

	ProfilePatch{FirstName: ptr("Ada")}.Apply(user)

	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Z", user.LastName)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestDiagnosticTestPatch_Columns(t *testing.T) {
	when := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	patch := DiagnosticTestPatch{Result: ptr(""), TestDate: &when}

	assert.Equal(t, map[string]interface{}{"result": "", "test_date": when}, patch.Columns())
	assert.True(t, DiagnosticTestPatch{}.IsEmpty())
}

func TestSeverity(t *testing.T) {
	assert.True(t, SeverityModerate.Valid())
	assert.False(t, Severity("critical").Valid())
	assert.Equal(t, 3, SeveritySevere.Weight())
	assert.Equal(t, 0, Severity("").Weight())
}
