package section_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstore/console/internal/section"
)

func TestInitialStateIsDashboard(t *testing.T) {
	r := section.NewRouter()
	assert.Equal(t, section.Dashboard, r.Active())
}

func TestShowSwitchesActiveSection(t *testing.T) {
	r := section.NewRouter()

	require.NoError(t, r.Show(section.Products))
	assert.Equal(t, section.Products, r.Active())

	// Any section is reachable from any other.
	require.NoError(t, r.Show(section.Settings))
	assert.Equal(t, section.Settings, r.Active())
	require.NoError(t, r.Show(section.Dashboard))
	assert.Equal(t, section.Dashboard, r.Active())
}

func TestShowRejectsUnknownSection(t *testing.T) {
	r := section.NewRouter()

	err := r.Show("billing")
	require.Error(t, err)
	assert.Equal(t, section.Dashboard, r.Active(), "failed transition leaves state unchanged")
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "Dashboard", section.Title(section.Dashboard))
	assert.Equal(t, "Products Management", section.Title(section.Products))
	assert.Equal(t, "User Management", section.Title(section.Users))
	assert.Equal(t, "Site Content", section.Title(section.Content))
	assert.Equal(t, "Order Management", section.Title(section.Orders))
	assert.Equal(t, "Admin Settings", section.Title(section.Settings))
}
