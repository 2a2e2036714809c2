package resource_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/internal/notify"
	"github.com/cardstore/console/internal/resource"
)

func testCenter() *notify.Center {
	return notify.NewCenterWith(notify.Options{
		ShowDelay:    time.Millisecond,
		DismissAfter: time.Minute,
		RemoveAfter:  time.Millisecond,
	})
}

func TestLoadReplacesSnapshot(t *testing.T) {
	sets := [][]models.Product{
		{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}},
		{{ID: "3", Name: "C"}},
	}
	call := 0
	col := resource.NewCollection("products", func(context.Context) ([]models.Product, error) {
		s := sets[call]
		call++
		return s, nil
	}, testCenter())

	require.NoError(t, col.Load(context.Background()))
	assert.Len(t, col.Items(), 2)

	// Second load replaces, never merges.
	require.NoError(t, col.Load(context.Background()))
	items := col.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "3", items[0].ID)
}

func TestLoadFailureKeepsSnapshotAndNotifies(t *testing.T) {
	center := testCenter()
	fail := false
	col := resource.NewCollection("users", func(context.Context) ([]models.User, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		return []models.User{{ID: 1, Username: "dana"}}, nil
	}, center)

	require.NoError(t, col.Load(context.Background()))
	fail = true
	err := col.Load(context.Background())
	require.Error(t, err)

	// Prior snapshot untouched.
	items := col.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "dana", items[0].Username)

	// One error notification carrying the resource name.
	entries := center.Active()
	require.Len(t, entries, 1)
	assert.Equal(t, notify.Error, entries[0].Severity)
	assert.Contains(t, entries[0].Message, "users")
}

func TestStaleLoadDiscarded(t *testing.T) {
	slowStarted := make(chan struct{})
	release := make(chan struct{})
	call := 0

	col := resource.NewCollection("orders", func(context.Context) ([]models.Order, error) {
		call++
		if call == 1 {
			close(slowStarted)
			<-release
			return []models.Order{{ID: "stale"}}, nil
		}
		return []models.Order{{ID: "fresh"}}, nil
	}, testCenter())

	done := make(chan error, 1)
	go func() { done <- col.Load(context.Background()) }()
	<-slowStarted

	// A newer load starts and finishes first.
	require.NoError(t, col.Load(context.Background()))

	close(release)
	require.NoError(t, <-done)

	// The slow response must not overwrite the newer snapshot.
	items := col.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].ID)
}

func TestCreateReloadsAfterWrite(t *testing.T) {
	loads := 0
	col := resource.NewCollection("products", func(context.Context) ([]models.Product, error) {
		loads++
		return []models.Product{{ID: "1"}}, nil
	}, testCenter())

	wrote := false
	err := col.Create(context.Background(), func(context.Context) error {
		wrote = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, wrote)
	assert.Equal(t, 1, loads, "successful create triggers exactly one reload")
}

func TestCreateFailureSkipsReload(t *testing.T) {
	loads := 0
	col := resource.NewCollection("products", func(context.Context) ([]models.Product, error) {
		loads++
		return nil, nil
	}, testCenter())

	err := col.Create(context.Background(), func(context.Context) error {
		return errors.New("price is required")
	})
	require.Error(t, err)
	assert.Zero(t, loads)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	loads, writes := 0, 0
	col := resource.NewCollection("users", func(context.Context) ([]models.User, error) {
		loads++
		return nil, nil
	}, testCenter())

	err := col.Delete(context.Background(), false, func(context.Context) error {
		writes++
		return nil
	})
	assert.ErrorIs(t, err, resource.ErrNotConfirmed)
	assert.Zero(t, writes, "declined confirmation never issues a request")
	assert.Zero(t, loads)

	require.NoError(t, col.Delete(context.Background(), true, func(context.Context) error {
		writes++
		return nil
	}))
	assert.Equal(t, 1, writes)
	assert.Equal(t, 1, loads, "confirmed delete reloads from the server")
}

func TestCategoryNormalization(t *testing.T) {
	assert.Equal(t, "gift-cards", resource.NormalizeCategory("Gift Cards"))
	assert.Equal(t, "gift-cards", resource.NormalizeCategory("gift-cards"))
	assert.Equal(t, "gift-cards", resource.NormalizeCategory("  GIFT   CARDS "))

	//Idempotent.
	once := resource.NormalizeCategory("Steam Gift Cards")
	assert.Equal(t, once, resource.NormalizeCategory(once))

	assert.True(t, resource.CategoryMatches("Gift Card", "gift-card"))
	assert.True(t, resource.CategoryMatches("gift-card", "Gift Card"))
	assert.True(t, resource.CategoryMatches("anything", ""))
	assert.False(t, resource.CategoryMatches("games", "gift-card"))
}
