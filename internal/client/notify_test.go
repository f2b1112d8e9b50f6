package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestNotifier(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	n := NewNotifier(clock.now)

	info := n.Notify(LevelInfo, "saved")
	clock.advance(time.Second)
	errID := n.Notify(LevelError, "could not reach server")
	clock.advance(time.Second)
	n.Notify(LevelSuccess, "logged in")

	active := n.Active()
	require.Len(t, active, 3)
	assert.Equal(t, "logged in", active[0].Message)
	assert.Equal(t, info, active[2].ID)

	clock.advance(3 * time.Second)
	active = n.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "logged in", active[0].Message)
	assert.Equal(t, errID, active[1].ID)

	clock.advance(time.Hour)
	active = n.Active()
	require.Len(t, active, 1)
	assert.Equal(t, LevelError, active[0].Level)

	assert.True(t, n.Dismiss(errID))
	assert.False(t, n.Dismiss(errID))
	assert.Empty(t, n.Active())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "success", LevelSuccess.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "error", LevelError.String())
}
