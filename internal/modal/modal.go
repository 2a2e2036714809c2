// Package modal tracks the console's overlay dialogs. Each modal is
// addressable by id; dismissal converges on HideAll regardless of trigger
// (explicit close control, backdrop click, successful form submission).
package modal

import (
	"sync"

	"github.com/cardstore/console/pkg/event"
)

// Controller holds the visibility state of every modal.
type Controller struct {
	mu      sync.Mutex
	visible map[string]bool
}

// NewController creates a Controller with no modal shown.
func NewController() *Controller {
	return &Controller{visible: make(map[string]bool)}
}

// Show makes the modal with the given id visible.
func (c *Controller) Show(id string) {
	c.mu.Lock()
	c.visible[id] = true
	c.mu.Unlock()

	event.Fire("modal.shown", id)
}

// HideAll hides every modal regardless of id.
func (c *Controller) HideAll() {
	c.mu.Lock()
	for id := range c.visible {
		delete(c.visible, id)
	}
	c.mu.Unlock()

	event.Fire("modal.hide-all", nil)
}

// IsVisible reports whether the modal with the given id is shown.
func (c *Controller) IsVisible(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible[id]
}

// Visible returns the ids of all shown modals.
func (c *Controller) Visible() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.visible))
	for id := range c.visible {
		out = append(out, id)
	}
	return out
}

// Click resolves a click event inside a modal's subtree. targetID is the
// element the click landed on; modalID is the modal container. The modal
// dismisses only when the click hit the container itself (the backdrop) or
// an explicit close control — clicks on modal content must not dismiss.
func (c *Controller) Click(targetID, modalID string) {
	if targetID == modalID || targetID == "close" {
		c.HideAll()
	}
}
