// Package dashboard derives the console's headline stats from the loaded
// collections and exposes them over a GraphQL query for programmatic
// consumers.
package dashboard

import (
	"github.com/graphql-go/graphql"

	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/internal/resource"
	"github.com/cardstore/console/internal/view"
	"github.com/cardstore/console/pkg/collection"
)

// Source aggregates the collections the stats are computed from.
type Source struct {
	Products *resource.Collection[models.Product]
	Users    *resource.Collection[models.User]
	Orders   *resource.Collection[models.Order]
}

// Stats returns the current counts for the dashboard cards.
func (s *Source) Stats() view.Stats {
	return view.Stats{
		Products: s.Products.Len(),
		Users:    s.Users.Len(),
		Orders:   s.Orders.Len(),
	}
}

// CategoryCount is the number of products in one normalized category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryBreakdown groups the loaded products by normalized category,
// sorted by category name.
func (s *Source) CategoryBreakdown() []CategoryCount {
	counts := collection.CountBy(s.Products.Items(), func(p models.Product) string {
		return resource.NormalizeCategory(p.Category)
	})

	out := make([]CategoryCount, 0, len(counts))
	for cat, n := range counts {
		out = append(out, CategoryCount{Category: cat, Count: n})
	}
	return collection.SortBy(out, func(a, b CategoryCount) bool { return a.Category < b.Category })
}

var categoryCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CategoryCount",
	Fields: graphql.Fields{
		"category": &graphql.Field{Type: graphql.String},
		"count":    &graphql.Field{Type: graphql.Int},
	},
})

var statsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Stats",
	Fields: graphql.Fields{
		"products": &graphql.Field{Type: graphql.Int},
		"users":    &graphql.Field{Type: graphql.Int},
		"orders":   &graphql.Field{Type: graphql.Int},
	},
})

// RootQuery builds the GraphQL query object over s.
func RootQuery(s *Source) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			"stats": &graphql.Field{
				Type: statsType,
				Resolve: func(graphql.ResolveParams) (interface{}, error) {
					st := s.Stats()
					return map[string]interface{}{
						"products": st.Products,
						"users":    st.Users,
						"orders":   st.Orders,
					}, nil
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(categoryCountType),
				Resolve: func(graphql.ResolveParams) (interface{}, error) {
					return s.CategoryBreakdown(), nil
				},
			},
		},
	})
}
