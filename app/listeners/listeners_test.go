package listeners_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstore/console/app/listeners"
	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/internal/notify"
	"github.com/cardstore/console/internal/resource"
	"github.com/cardstore/console/pkg/event"
)

type broadcastStub struct {
	payloads []interface{}
}

func (b *broadcastStub) BroadcastJSON(v interface{}) { b.payloads = append(b.payloads, v) }

type recorderStub struct {
	actions []string
	targets []string
}

func (r *recorderStub) Record(actor, action, resource, targetID, outcome, detail string) {
	r.actions = append(r.actions, action)
	r.targets = append(r.targets, targetID)
}

func freshTable(t *testing.T) {
	t.Helper()
	event.Flush()
	t.Cleanup(event.Flush)
}

func TestReloadEventBroadcastsCount(t *testing.T) {
	freshTable(t)
	b := &broadcastStub{}
	listeners.RegisterAll(b, nil)

	event.Fire("products.reloaded", 3)

	require.Len(t, b.payloads, 1)
	assert.Equal(t, map[string]interface{}{
		"event":    "reloaded",
		"resource": "products",
		"count":    3,
	}, b.payloads[0])
}

func TestSectionShownLandsInAuditTrail(t *testing.T) {
	freshTable(t)
	rec := &recorderStub{}
	listeners.RegisterAll(nil, rec)

	event.Fire("section.shown", "orders")

	require.Len(t, rec.actions, 1)
	assert.Equal(t, "navigate", rec.actions[0])
	assert.Equal(t, "orders", rec.targets[0])
}

func TestCollectionLoadReachesBroadcaster(t *testing.T) {
	freshTable(t)
	b := &broadcastStub{}
	listeners.RegisterAll(b, nil)

	col := resource.NewCollection("users", func(context.Context) ([]models.User, error) {
		return []models.User{{ID: 1, Username: "jordan"}}, nil
	}, notify.NewCenter())
	require.NoError(t, col.Load(context.Background()))

	require.Len(t, b.payloads, 1)
	assert.Equal(t, map[string]interface{}{
		"event":    "reloaded",
		"resource": "users",
		"count":    1,
	}, b.payloads[0])
}

func TestNilSinksAreSafe(t *testing.T) {
	freshTable(t)
	listeners.RegisterAll(nil, nil)

	assert.NotPanics(t, func() {
		event.Fire("products.reloaded", 0)
		event.Fire("section.shown", "dashboard")
		event.Fire("modal.shown", "add-product-modal")
		event.Fire("modal.hide-all", nil)
	})
}
