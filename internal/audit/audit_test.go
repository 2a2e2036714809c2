package audit_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstore/console/internal/audit"
)

func openTestStore(t *testing.T) *audit.Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "audit.db")
	store, err := audit.OpenWith("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	store.Record("admin", "create", "products", "prod-1", "ok", "")
	store.Record("admin", "delete", "users", "42", "ok", "")
	store.Record("admin", "save", "shipping", "", "error", "upstream timeout")

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	assert.Equal(t, "shipping", entries[0].Resource)
	assert.Equal(t, "error", entries[0].Outcome)
	assert.Equal(t, "upstream timeout", entries[0].Detail)
	assert.Equal(t, "products", entries[2].Resource)
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.Record("admin", "create", "products", "", "ok", "")
	}

	entries, err := store.Recent(2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestForResource(t *testing.T) {
	store := openTestStore(t)

	store.Record("admin", "create", "products", "p1", "ok", "")
	store.Record("admin", "delete", "orders", "o1", "ok", "")
	store.Record("admin", "delete", "products", "p1", "ok", "")

	entries, err := store.ForResource("products", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "delete", entries[0].Action)
	assert.Equal(t, "create", entries[1].Action)
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := audit.OpenWith("oracle", "whatever")
	assert.Error(t, err)
}
