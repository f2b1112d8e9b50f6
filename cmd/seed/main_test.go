package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixture_Default(t *testing.T) {
	f, err := loadFixture("")
	require.NoError(t, err)

	assert.Equal(t, "demo@healthtrack.local", f.User.Email)
	assert.Len(t, f.Symptoms, 3)
	assert.Len(t, f.Tests, 3)
	assert.Len(t, f.Alerts, 3)
	assert.Nil(t, f.Tests[1].Result)
	assert.Equal(t, "read", f.Alerts[2].Status)
}

func TestLoadFixture_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user:\n  email: a@b.co\nalerts:\n  - title: hi\n"), 0o600))

	f, err := loadFixture(path)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", f.User.Email)
	assert.Empty(t, f.Symptoms)
	assert.Equal(t, "hi", f.Alerts[0].Title)
}

func TestLoadFixture_Errors(t *testing.T) {
	dir := t.TempDir()
	noEmail := filepath.Join(dir, "no-email.yaml")
	require.NoError(t, os.WriteFile(noEmail, []byte("symptoms: []\n"), 0o600))
	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("user: [unclosed\n"), 0o600))

	for _, path := range []string{noEmail, broken, filepath.Join(dir, "missing.yaml")} {
		_, err := loadFixture(path)
		assert.Error(t, err, path)
	}
}
