package view_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/internal/view"
)

func TestProductsPriceTwoDecimals(t *testing.T) {
	html, err := view.Products([]models.Product{
		{ID: "1", Name: "Steam Card", Category: "Gift Card", Price: 10},
		{ID: "2", Name: "PSN Card", Category: "Gift Card", Price: 4.5},
	}, "")
	require.NoError(t, err)

	assert.Contains(t, html, "$10.00")
	assert.Contains(t, html, "$4.50")
}

func TestProductsFilterCaseAndSpaceInsensitive(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "A", Category: "Gift Card", Price: 10},
		{ID: "2", Name: "B", Category: "gift-card", Price: 5},
		{ID: "3", Name: "C", Category: "Games", Price: 20},
	}

	byLabel, err := view.Products(products, "Gift Card")
	require.NoError(t, err)
	bySlug, err := view.Products(products, "gift-card")
	require.NoError(t, err)

	// Both spellings of the filter yield the identical result set.
	assert.Equal(t, byLabel, bySlug)
	assert.Contains(t, byLabel, `data-id="1"`)
	assert.Contains(t, byLabel, `data-id="2"`)
	assert.NotContains(t, byLabel, `data-id="3"`)
}

func TestProductsRenderIdempotent(t *testing.T) {
	products := []models.Product{{ID: "1", Name: "A", Category: "x", Price: 1}}

	first, err := view.Products(products, "")
	require.NoError(t, err)
	second, err := view.Products(products, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProductsEmpty(t *testing.T) {
	html, err := view.Products(nil, "")
	require.NoError(t, err)
	assert.Contains(t, html, "No products found")
}

func TestProductsEscapesMarkup(t *testing.T) {
	html, err := view.Products([]models.Product{
		{ID: "1", Name: `<script>alert(1)</script>`, Category: "x", Price: 1},
	}, "")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}

func TestUsersTable(t *testing.T) {
	html, err := view.Users([]models.User{
		{ID: 7, Username: "dana", Email: "dana@example.com", Role: "admin", Status: "active"},
	})
	require.NoError(t, err)

	assert.Contains(t, html, `data-id="7"`)
	assert.Contains(t, html, "dana@example.com")
	assert.Contains(t, html, "role-admin")
	assert.Contains(t, html, "status-active")
}

func TestOrdersPassthroughColumns(t *testing.T) {
	var orders []models.Order
	raw := `[{"id":"o1","customer":"dana","total":25.5},{"id":"o2","customer":"lee","status":"pending"}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &orders))

	html, err := view.Orders(orders)
	require.NoError(t, err)

	assert.Contains(t, html, `data-id="o1"`)
	assert.Contains(t, html, "dana")
	assert.Contains(t, html, "pending")
	// Column union is stable and includes every provider field seen.
	assert.Contains(t, html, "<th>Customer</th>")
	assert.Contains(t, html, "<th>Status</th>")
	assert.Contains(t, html, "<th>Total</th>")
	assert.Contains(t, html, "Cancel")
}

func TestDashboardStats(t *testing.T) {
	html, err := view.Dashboard(view.Stats{Products: 3, Users: 2, Orders: 5})
	require.NoError(t, err)

	assert.Contains(t, html, ">3<")
	assert.Contains(t, html, ">2<")
	assert.Contains(t, html, ">5<")
}
