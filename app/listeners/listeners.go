// Package listeners binds the console's event handler table. The server
// registers it once at startup; everything else only fires events.
package listeners

import (
	"github.com/cardstore/console/pkg/event"
	"github.com/cardstore/console/pkg/logger"
)

// Broadcaster pushes a payload to every connected browser. *ws.Hub
// satisfies it.
type Broadcaster interface {
	BroadcastJSON(v interface{})
}

// Recorder writes one audit row. *audit.Store satisfies it.
type Recorder interface {
	Record(actor, action, resource, targetID, outcome, detail string)
}

// RegisterAll binds the handler table: applied collection reloads are
// pushed to connected browsers so open dashboards can refresh their
// counts, section changes land in the audit trail, and modal events are
// traced at debug level.
func RegisterAll(b Broadcaster, trail Recorder) {
	for _, name := range []string{"products", "users", "orders"} {
		name := name
		event.Listen(name+".reloaded", func(payload interface{}) {
			count, _ := payload.(int)
			logger.Debug("collection reloaded", "resource", name, "count", count)
			if b != nil {
				b.BroadcastJSON(map[string]interface{}{
					"event":    "reloaded",
					"resource": name,
					"count":    count,
				})
			}
		})
	}

	event.Listen("section.shown", func(payload interface{}) {
		name, _ := payload.(string)
		if trail != nil {
			trail.Record("admin", "navigate", "sections", name, "ok", "")
		}
	})

	event.Listen("modal.shown", func(payload interface{}) {
		id, _ := payload.(string)
		logger.Debug("modal shown", "modal", id)
	})
	event.Listen("modal.hide-all", func(interface{}) {
		logger.Debug("modals hidden")
	})
}
