// Package form coordinates create-form submissions: one submission per
// form at a time, defaults applied before validation, and a
// guaranteed-release contract on the submit latch so a failure never
// leaves the form stuck disabled.
package form

import (
	"errors"
	"sync"
)

// ErrInFlight is returned when a form already has a submission running.
// The duplicate submission is rejected without any side effects.
var ErrInFlight = errors.New("form: submission already in flight")

// Default field values applied when the form leaves them unset.
const (
	DefaultProductStatus = "active"
	DefaultUserStatus    = "active"
)

// Latch serialises submissions per form id. It is the server-side
// equivalent of disabling the submit button for the duration of the
// request.
type Latch struct {
	mu   sync.Mutex
	busy map[string]bool
}

// NewLatch creates an empty Latch.
func NewLatch() *Latch {
	return &Latch{busy: make(map[string]bool)}
}

// Submit runs fn under the form's latch. A second submission for the same
// form while one is running returns ErrInFlight immediately. The latch is
// released on every path — success, error or panic — so the form is
// always re-enabled afterwards.
func (l *Latch) Submit(formID string, fn func() error) error {
	l.mu.Lock()
	if l.busy[formID] {
		l.mu.Unlock()
		return ErrInFlight
	}
	l.busy[formID] = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		delete(l.busy, formID)
		l.mu.Unlock()
	}()

	return fn()
}

// InFlight reports whether a submission is currently running for formID.
func (l *Latch) InFlight(formID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busy[formID]
}
