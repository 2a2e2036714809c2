package dashboard_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/internal/dashboard"
	"github.com/cardstore/console/internal/notify"
	"github.com/cardstore/console/internal/resource"
	consolegraphql "github.com/cardstore/console/pkg/graphql"
)

func loadedSource(t *testing.T) *dashboard.Source {
	t.Helper()
	center := notify.NewCenterWith(notify.Options{
		ShowDelay:    time.Millisecond,
		DismissAfter: 50 * time.Millisecond,
		RemoveAfter:  time.Millisecond,
	})

	products := resource.NewCollection("products", func(context.Context) ([]models.Product, error) {
		return []models.Product{
			{ID: "1", Name: "Birthday Card", Category: "Gift Card"},
			{ID: "2", Name: "Thank You Card", Category: "gift-card"},
			{ID: "3", Name: "Poster", Category: "Wall Art"},
		}, nil
	}, center)
	users := resource.NewCollection("users", func(context.Context) ([]models.User, error) {
		return []models.User{{ID: 1, Username: "admin"}}, nil
	}, center)
	orders := resource.NewCollection("orders", func(context.Context) ([]models.Order, error) {
		return nil, nil
	}, center)

	require.NoError(t, products.Load(context.Background()))
	require.NoError(t, users.Load(context.Background()))
	require.NoError(t, orders.Load(context.Background()))

	return &dashboard.Source{Products: products, Users: users, Orders: orders}
}

func TestStatsCounts(t *testing.T) {
	src := loadedSource(t)

	st := src.Stats()
	assert.Equal(t, 3, st.Products)
	assert.Equal(t, 1, st.Users)
	assert.Equal(t, 0, st.Orders)
}

func TestCategoryBreakdownNormalizes(t *testing.T) {
	src := loadedSource(t)

	got := src.CategoryBreakdown()
	require.Len(t, got, 2)
	assert.Equal(t, dashboard.CategoryCount{Category: "gift-card", Count: 2}, got[0])
	assert.Equal(t, dashboard.CategoryCount{Category: "wall-art", Count: 1}, got[1])
}

func TestGraphQLStatsQuery(t *testing.T) {
	src := loadedSource(t)

	schema, err := consolegraphql.NewSchema(dashboard.RootQuery(src))
	require.NoError(t, err)

	result := consolegraphql.Execute(schema, `{ stats { products users orders } categories { category count } }`)
	require.Empty(t, result.Errors)

	raw, err := json.Marshal(result.Data)
	require.NoError(t, err)

	var data struct {
		Stats struct {
			Products int `json:"products"`
			Users    int `json:"users"`
			Orders   int `json:"orders"`
		} `json:"stats"`
		Categories []dashboard.CategoryCount `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(raw, &data))

	assert.Equal(t, 3, data.Stats.Products)
	assert.Equal(t, 1, data.Stats.Users)
	require.Len(t, data.Categories, 2)
	assert.Equal(t, "gift-card", data.Categories[0].Category)
}
