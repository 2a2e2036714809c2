// Package resource implements the console's view-state synchronization
// policy for server-backed collections (products, users, orders).
//
// The single consistency mechanism is reload-after-write: every mutation
// that succeeds is followed by a full re-fetch of the collection, and the
// fetched set replaces the local snapshot wholesale. The snapshot is never
// patched incrementally and never derived from a write response. Load
// failures surface as notifications and leave the prior snapshot in place.
package resource

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cardstore/console/internal/notify"
	"github.com/cardstore/console/pkg/event"
	"github.com/cardstore/console/pkg/logger"
	"github.com/cardstore/console/pkg/metrics"
)

// ErrNotConfirmed is the early-exit for a declined destructive action.
// It is not an error condition: no request is issued, no notification is
// raised, and the snapshot stays unchanged.
var ErrNotConfirmed = errors.New("resource: destructive action not confirmed")

// Fetcher reads the full server-held collection.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Collection is one named server-backed collection and its local snapshot.
type Collection[T any] struct {
	name   string
	fetch  Fetcher[T]
	center *notify.Center

	mu      sync.Mutex
	items   []T
	loaded  bool
	started uint64 // generation of the most recently started load
	applied uint64 // generation of the most recently applied load
}

// NewCollection builds a Collection around a fetcher.
// Notifications for load failures go through center.
func NewCollection[T any](name string, fetch Fetcher[T], center *notify.Center) *Collection[T] {
	return &Collection[T]{name: name, fetch: fetch, center: center}
}

// Name returns the resource name ("products", "users", "orders").
func (c *Collection[T]) Name() string { return c.name }

// Items returns a copy of the current snapshot.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the snapshot size.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Loaded reports whether at least one load has been applied.
func (c *Collection[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Load re-fetches the full collection and replaces the snapshot.
//
// Rapid repeated loads race only at the network: each call gets a
// generation number when it starts, and a response is applied only when no
// newer load has started since. Stale responses are dropped, so renders
// never go backwards. Failures raise one error notification carrying the
// resource name and leave the prior snapshot untouched; there is no
// automatic retry.
func (c *Collection[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.started++
	gen := c.started
	c.mu.Unlock()

	items, err := c.fetch(ctx)
	if err != nil {
		metrics.SyncReloads.WithLabelValues(c.name, "error").Inc()
		c.center.Notify(fmt.Sprintf("Failed to load %s: %v", c.name, err), notify.Error)
		return fmt.Errorf("resource: load %s: %w", c.name, err)
	}

	c.mu.Lock()
	if gen < c.started {
		// A newer load started while this one was in flight.
		c.mu.Unlock()
		metrics.SyncStaleDrops.WithLabelValues(c.name).Inc()
		logger.Debug("resource: stale load dropped", "resource", c.name, "generation", gen)
		return nil
	}
	c.items = items
	c.loaded = true
	c.applied = gen
	c.mu.Unlock()

	metrics.SyncReloads.WithLabelValues(c.name, "ok").Inc()
	event.Fire(c.name+".reloaded", len(items))
	return nil
}

// Create runs the remote write and, on success, reloads the collection.
// The snapshot is never patched with the created record. On failure the
// error is returned for the form layer to surface; the snapshot and any
// open form stay as they were.
func (c *Collection[T]) Create(ctx context.Context, write func(context.Context) error) error {
	if err := write(ctx); err != nil {
		metrics.SyncMutations.WithLabelValues(c.name, "create", "error").Inc()
		return err
	}
	metrics.SyncMutations.WithLabelValues(c.name, "create", "ok").Inc()
	return c.Load(ctx)
}

// Delete runs the remote delete behind the confirmation gate and, on
// success, reloads the collection. A declined confirmation returns
// ErrNotConfirmed without issuing any request. This policy is uniform for
// every collection, users included.
func (c *Collection[T]) Delete(ctx context.Context, confirmed bool, write func(context.Context) error) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := write(ctx); err != nil {
		metrics.SyncMutations.WithLabelValues(c.name, "delete", "error").Inc()
		return err
	}
	metrics.SyncMutations.WithLabelValues(c.name, "delete", "ok").Inc()
	return c.Load(ctx)
}
