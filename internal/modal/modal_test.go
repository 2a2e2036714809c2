package modal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardstore/console/internal/modal"
)

func TestShowAndHideAll(t *testing.T) {
	c := modal.NewController()

	c.Show("add-product-modal")
	c.Show("manage-payments-modal")
	assert.True(t, c.IsVisible("add-product-modal"))
	assert.True(t, c.IsVisible("manage-payments-modal"))

	c.HideAll()
	assert.False(t, c.IsVisible("add-product-modal"))
	assert.False(t, c.IsVisible("manage-payments-modal"))
	assert.Empty(t, c.Visible())
}

func TestBackdropClickDismisses(t *testing.T) {
	c := modal.NewController()
	c.Show("add-user-modal")

	// Click target equals the modal container itself — backdrop click.
	c.Click("add-user-modal", "add-user-modal")
	assert.False(t, c.IsVisible("add-user-modal"))
}

func TestContentClickDoesNotDismiss(t *testing.T) {
	c := modal.NewController()
	c.Show("add-user-modal")

	// Click landed on content inside the modal's subtree.
	c.Click("username-input", "add-user-modal")
	assert.True(t, c.IsVisible("add-user-modal"))
}

func TestExplicitCloseDismisses(t *testing.T) {
	c := modal.NewController()
	c.Show("add-product-modal")

	c.Click("close", "add-product-modal")
	assert.False(t, c.IsVisible("add-product-modal"))
}
