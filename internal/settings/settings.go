// Package settings holds the two server-side singletons the console edits:
// shipping configuration and payment channels. Unlike the collections there
// is no post-write reload; a successful save keeps the submitted values as
// the local state, since the server holds exactly one record of each.
package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/internal/notify"
	"github.com/cardstore/console/pkg/logger"
	"github.com/cardstore/console/pkg/validate"
)

// ─────────────────────────────── shipping ───────────────────────────────

// Shipping wraps the shipping singleton.
type Shipping struct {
	fetch func(context.Context) (models.ShippingSettings, error)
	save  func(context.Context, models.ShippingSettings) error

	center *notify.Center

	mu      sync.Mutex
	current models.ShippingSettings
	loaded  bool
}

// NewShipping builds the shipping editor on the given fetch and save calls.
func NewShipping(
	fetch func(context.Context) (models.ShippingSettings, error),
	save func(context.Context, models.ShippingSettings) error,
	center *notify.Center,
) *Shipping {
	return &Shipping{fetch: fetch, save: save, center: center}
}

// Current returns the last loaded or saved values. Fields the server never
// sent stay at their zero values.
func (s *Shipping) Current() models.ShippingSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Loaded reports whether at least one load has succeeded.
func (s *Shipping) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Load fetches the shipping record and replaces the local state with it.
// On failure the previous state is retained.
func (s *Shipping) Load(ctx context.Context) error {
	got, err := s.fetch(ctx)
	if err != nil {
		logger.Error("shipping load failed", "error", err)
		s.center.Notify(fmt.Sprintf("Failed to load shipping settings: %v", err), notify.Error)
		return fmt.Errorf("settings: load shipping: %w", err)
	}
	s.mu.Lock()
	s.current = got
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Save validates and persists in. On success in becomes the local state and
// a success notification is raised; on failure the previous state stands.
func (s *Shipping) Save(ctx context.Context, in models.ShippingSettings) error {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return &ValidationError{Fields: errs}
	}
	if err := s.save(ctx, in); err != nil {
		logger.Error("shipping save failed", "error", err)
		s.center.Notify(fmt.Sprintf("Failed to save shipping settings: %v", err), notify.Error)
		return fmt.Errorf("settings: save shipping: %w", err)
	}
	s.mu.Lock()
	s.current = in
	s.loaded = true
	s.mu.Unlock()
	s.center.Notify("Shipping settings saved", notify.Success)
	return nil
}

// ─────────────────────────────── payment ───────────────────────────────

// Payment wraps the payment channels singleton. Its editor lives in a
// modal, so Load doubles as the modal-open hook: the caller opens the
// modal only when Load succeeds in populating the form.
type Payment struct {
	fetch func(context.Context) (models.PaymentMethods, error)
	save  func(context.Context, models.PaymentMethods) error

	center *notify.Center

	mu      sync.Mutex
	current models.PaymentMethods
	loaded  bool
}

// NewPayment builds the payment editor on the given fetch and save calls.
func NewPayment(
	fetch func(context.Context) (models.PaymentMethods, error),
	save func(context.Context, models.PaymentMethods) error,
	center *notify.Center,
) *Payment {
	return &Payment{fetch: fetch, save: save, center: center}
}

// Current returns the last loaded or saved channel values.
func (p *Payment) Current() models.PaymentMethods {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Loaded reports whether at least one load has succeeded.
func (p *Payment) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// Load fetches the payment channels and replaces the local state. Channels
// absent from the response stay empty strings.
func (p *Payment) Load(ctx context.Context) error {
	got, err := p.fetch(ctx)
	if err != nil {
		logger.Error("payment methods load failed", "error", err)
		p.center.Notify(fmt.Sprintf("Failed to load payment methods: %v", err), notify.Error)
		return fmt.Errorf("settings: load payment methods: %w", err)
	}
	p.mu.Lock()
	p.current = got
	p.loaded = true
	p.mu.Unlock()
	return nil
}

// Save persists in. Every channel is optional free text, so there is no
// field validation beyond what the server applies.
func (p *Payment) Save(ctx context.Context, in models.PaymentMethods) error {
	if err := p.save(ctx, in); err != nil {
		logger.Error("payment methods save failed", "error", err)
		p.center.Notify(fmt.Sprintf("Failed to save payment methods: %v", err), notify.Error)
		return fmt.Errorf("settings: save payment methods: %w", err)
	}
	p.mu.Lock()
	p.current = in
	p.loaded = true
	p.mu.Unlock()
	p.center.Notify("Payment methods saved", notify.Success)
	return nil
}

// ValidationError carries per-field messages from a rejected save.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("settings: validation failed on %d field(s)", len(e.Fields))
}
