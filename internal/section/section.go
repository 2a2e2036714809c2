// Package section is the console's view switcher: a set of named,
// mutually exclusive panels with exactly one active at a time.
package section

import (
	"fmt"
	"sync"

	"github.com/cardstore/console/pkg/event"
)

// Known section names.
const (
	Dashboard = "dashboard"
	Products  = "products"
	Users     = "users"
	Content   = "content"
	Orders    = "orders"
	Settings  = "settings"
)

// titles maps section names to their page title labels.
var titles = map[string]string{
	Dashboard: "Dashboard",
	Products:  "Products Management",
	Users:     "User Management",
	Content:   "Site Content",
	Orders:    "Order Management",
	Settings:  "Admin Settings",
}

// Title returns the page title of a section name.
func Title(name string) string { return titles[name] }

// Valid reports whether name is a known section.
func Valid(name string) bool {
	_, ok := titles[name]
	return ok
}

// Names returns all known section names.
func Names() []string {
	return []string{Dashboard, Products, Users, Content, Orders, Settings}
}

// Router tracks the active section. Transitions are user-driven and
// unconstrained: any section is reachable from any other. The initial
// state is the dashboard.
type Router struct {
	mu     sync.Mutex
	active string
}

// NewRouter creates a Router on the dashboard.
func NewRouter() *Router {
	return &Router{active: Dashboard}
}

// Active returns the current section name.
func (r *Router) Active() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Show activates the named section, implicitly deactivating the previous
// one, and fires "section.shown" for listeners (nav highlight, title).
func (r *Router) Show(name string) error {
	if !Valid(name) {
		return fmt.Errorf("section: unknown section %q", name)
	}

	r.mu.Lock()
	r.active = name
	r.mu.Unlock()

	event.Fire("section.shown", name)
	return nil
}
