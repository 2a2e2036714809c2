// Package notify is the console's notification center: transient,
// auto-dismissing user-facing messages raised by panel operations.
//
// Every entry runs the same lifecycle regardless of how it ends: created
// hidden, shown after a short delay (so the client transition can play),
// hidden again either by timeout or explicit dismissal, and removed a fixed
// beat after hiding. Entries coexist independently; there is no dedup or
// queueing.
package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/cardstore/console/pkg/metrics"
)

// Severity selects the icon and styling of an entry.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Error   Severity = "error"
	Warning Severity = "warning"
)

// Icon names by severity.
var icons = map[Severity]string{
	Success: "check-circle",
	Error:   "exclamation-circle",
	Info:    "info-circle",
	Warning: "exclamation-triangle",
}

// Icon returns the icon name for s, defaulting to the info icon.
func Icon(s Severity) string {
	if icon, ok := icons[s]; ok {
		return icon
	}
	return icons[Info]
}

// Entry is one live notification.
type Entry struct {
	ID       int64     `json:"id"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	Icon     string    `json:"icon"`
	Visible  bool      `json:"visible"`
	RaisedAt time.Time `json:"raised_at"`
}

// Options tune the lifecycle timings. Tests shrink them.
type Options struct {
	ShowDelay    time.Duration // delay before an entry becomes visible
	DismissAfter time.Duration // visible lifetime before auto-dismissal
	RemoveAfter  time.Duration // delay between hiding and removal
}

// DefaultOptions match the panel's transition timings.
var DefaultOptions = Options{
	ShowDelay:    100 * time.Millisecond,
	DismissAfter: 5 * time.Second,
	RemoveAfter:  300 * time.Millisecond,
}

// Broadcaster pushes new entries to connected clients. Satisfied by
// pkg/ws.Hub.
type Broadcaster interface {
	BroadcastJSON(v interface{})
}

// Center owns the live entries.
type Center struct {
	mu      sync.Mutex
	entries map[int64]*Entry
	timers  map[int64][]*time.Timer
	nextID  int64
	opts    Options
	cast    Broadcaster
}

// NewCenter creates a Center with default timings.
func NewCenter() *Center { return NewCenterWith(DefaultOptions) }

// NewCenterWith creates a Center with explicit timings.
func NewCenterWith(opts Options) *Center {
	return &Center{
		entries: make(map[int64]*Entry),
		timers:  make(map[int64][]*time.Timer),
		opts:    opts,
	}
}

// SetBroadcaster wires a push channel for new entries (WebSocket hub).
func (c *Center) SetBroadcaster(b Broadcaster) {
	c.mu.Lock()
	c.cast = b
	c.mu.Unlock()
}

// Notify raises a new entry and starts its lifecycle.
// Returns the entry id so callers (and tests) can dismiss it explicitly.
func (c *Center) Notify(message string, severity Severity) int64 {
	c.mu.Lock()

	c.nextID++
	id := c.nextID
	e := &Entry{
		ID:       id,
		Message:  message,
		Severity: severity,
		Icon:     Icon(severity),
		RaisedAt: time.Now(),
	}
	c.entries[id] = e

	show := time.AfterFunc(c.opts.ShowDelay, func() { c.setVisible(id) })
	auto := time.AfterFunc(c.opts.ShowDelay+c.opts.DismissAfter, func() { c.Dismiss(id) })
	c.timers[id] = []*time.Timer{show, auto}

	cast := c.cast
	snapshot := *e
	c.mu.Unlock()

	metrics.NotificationsShown.WithLabelValues(string(severity)).Inc()

	if cast != nil {
		cast.BroadcastJSON(snapshot)
	}
	return id
}

func (c *Center) setVisible(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[id]; ok {
		e.Visible = true
	}
}

// Dismiss hides entry id and removes it after the removal delay.
// Explicit dismissal and auto-dismissal converge here; dismissing an
// already-removed entry is a no-op.
func (c *Center) Dismiss(id int64) {
	c.mu.Lock()
	e, ok := c.entries[id]
	if !ok {
		c.mu.Unlock()
		return
	}
	e.Visible = false
	remove := time.AfterFunc(c.opts.RemoveAfter, func() { c.remove(id) })
	c.timers[id] = append(c.timers[id], remove)
	c.mu.Unlock()
}

func (c *Center) remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.timers[id] {
		t.Stop()
	}
	delete(c.timers, id)
	delete(c.entries, id)
}

// Active returns a snapshot of the live entries, oldest first.
func (c *Center) Active() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, *e)
	}
	// map iteration order is random; ids are monotonic
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
