package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstore/console/internal/notify"
)

func fastCenter() *notify.Center {
	return notify.NewCenterWith(notify.Options{
		ShowDelay:    5 * time.Millisecond,
		DismissAfter: 50 * time.Millisecond,
		RemoveAfter:  10 * time.Millisecond,
	})
}

func TestNotifyLifecycle(t *testing.T) {
	c := fastCenter()

	id := c.Notify("Product added successfully", notify.Success)

	entries := c.Active()
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ID)
	assert.False(t, entries[0].Visible, "entry starts hidden so the transition can play")

	// Visible after the show delay.
	time.Sleep(20 * time.Millisecond)
	entries = c.Active()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Visible)

	// Auto-dismissed and removed within the bounded window.
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, c.Active(), "entry must auto-remove without user interaction")
}

func TestExplicitDismiss(t *testing.T) {
	c := fastCenter()

	id := c.Notify("Failed to load users", notify.Error)
	time.Sleep(10 * time.Millisecond)

	c.Dismiss(id)
	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, c.Active())

	// Dismissing an already-removed entry is a no-op.
	c.Dismiss(id)
}

func TestEntriesCoexist(t *testing.T) {
	c := fastCenter()

	c.Notify("first", notify.Info)
	c.Notify("second", notify.Warning)
	c.Notify("second", notify.Warning) // duplicates are not merged

	entries := c.Active()
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Message)
}

func TestSeverityIcons(t *testing.T) {
	assert.Equal(t, "check-circle", notify.Icon(notify.Success))
	assert.Equal(t, "exclamation-circle", notify.Icon(notify.Error))
	assert.Equal(t, "info-circle", notify.Icon(notify.Info))
	assert.Equal(t, "exclamation-triangle", notify.Icon(notify.Warning))
	assert.Equal(t, "info-circle", notify.Icon(notify.Severity("bogus")))
}

type captureCast struct {
	got []interface{}
}

func (c *captureCast) BroadcastJSON(v interface{}) { c.got = append(c.got, v) }

func TestBroadcastOnNotify(t *testing.T) {
	c := fastCenter()
	cast := &captureCast{}
	c.SetBroadcaster(cast)

	c.Notify("pushed", notify.Info)

	require.Len(t, cast.got, 1)
	entry, ok := cast.got[0].(notify.Entry)
	require.True(t, ok)
	assert.Equal(t, "pushed", entry.Message)
}
