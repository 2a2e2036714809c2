// Package view renders the console's HTML fragments.
//
// Every renderer is a pure function of a snapshot (plus an optional
// filter): same input, same markup, no hidden state. Event wiring lives in
// the controllers; nothing here touches the network or the collections.
package view

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/internal/resource"
	"github.com/cardstore/console/pkg/collection"
)

var funcs = template.FuncMap{
	// price renders with exactly two decimal places, always.
	"price": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"slug":  resource.NormalizeCategory,
}

var productsTmpl = template.Must(template.New("products").Funcs(funcs).Parse(`<div class="product-grid">
{{- if not .Items}}
<p class="empty">No products found.</p>
{{- end}}
{{- range .Items}}
<div class="product-card" data-id="{{.ID}}" data-category="{{slug .Category}}">
  <img src="{{.Image}}" alt="{{.Name}}">
  <h3>{{.Name}}</h3>
  <span class="category">{{.Category}}</span>
  <span class="price">{{price .Price}}</span>
  {{- if .Review}}
  <p class="review">{{.Review}}</p>
  {{- end}}
  <span class="status status-{{.Status}}">{{.Status}}</span>
  <button class="delete-btn" data-id="{{.ID}}">Delete</button>
</div>
{{- end}}
</div>
`))

// Products renders the product grid for the given snapshot and category
// filter. Filtering is case and whitespace insensitive; an empty filter
// shows everything.
func Products(items []models.Product, filter string) (string, error) {
	visible := collection.Filter(items, func(p models.Product) bool {
		return resource.CategoryMatches(p.Category, filter)
	})

	var b strings.Builder
	if err := productsTmpl.Execute(&b, map[string]interface{}{"Items": visible}); err != nil {
		return "", fmt.Errorf("view: render products: %w", err)
	}
	return b.String(), nil
}

var usersTmpl = template.Must(template.New("users").Parse(`<table class="user-table">
<thead><tr><th>ID</th><th>Username</th><th>Email</th><th>Role</th><th>Status</th><th></th></tr></thead>
<tbody>
{{- range .Items}}
<tr data-id="{{.ID}}">
  <td>{{.ID}}</td>
  <td>{{.Username}}</td>
  <td>{{.Email}}</td>
  <td><span class="role role-{{.Role}}">{{.Role}}</span></td>
  <td><span class="status status-{{.Status}}">{{.Status}}</span></td>
  <td><button class="delete-btn" data-id="{{.ID}}">Delete</button></td>
</tr>
{{- end}}
</tbody>
</table>
`))

// Users renders the user management table.
func Users(items []models.User) (string, error) {
	var b strings.Builder
	if err := usersTmpl.Execute(&b, map[string]interface{}{"Items": items}); err != nil {
		return "", fmt.Errorf("view: render users: %w", err)
	}
	return b.String(), nil
}

// Orders renders the order table. Order fields beyond the id are
// provider-defined, so the column set is the union of the field names seen
// in the snapshot, sorted for stable output.
func Orders(items []models.Order) (string, error) {
	cols := orderColumns(items)

	var b strings.Builder
	b.WriteString(`<table class="order-table">` + "\n<thead><tr><th>ID</th>")
	for _, col := range cols {
		b.WriteString("<th>" + template.HTMLEscapeString(title(col)) + "</th>")
	}
	b.WriteString("<th></th></tr></thead>\n<tbody>\n")

	for _, o := range items {
		b.WriteString(`<tr data-id="` + template.HTMLEscapeString(o.ID) + `">`)
		b.WriteString("<td>" + template.HTMLEscapeString(o.ID) + "</td>")
		for _, col := range cols {
			b.WriteString("<td>" + template.HTMLEscapeString(o.Field(col)) + "</td>")
		}
		b.WriteString(`<td><button class="cancel-btn" data-id="` +
			template.HTMLEscapeString(o.ID) + `">Cancel</button></td></tr>` + "\n")
	}

	b.WriteString("</tbody>\n</table>\n")
	return b.String(), nil
}

func orderColumns(items []models.Order) []string {
	seen := map[string]bool{}
	for _, o := range items {
		for name := range o.Fields {
			seen[name] = true
		}
	}
	cols := make([]string, 0, len(seen))
	for name := range seen {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	return cols
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Stats are the dashboard counters, recomputed after every reload.
type Stats struct {
	Products int
	Users    int
	Orders   int
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<div class="stats-grid">
<div class="stat-card"><span class="stat-value">{{.Products}}</span><span class="stat-label">Products</span></div>
<div class="stat-card"><span class="stat-value">{{.Users}}</span><span class="stat-label">Users</span></div>
<div class="stat-card"><span class="stat-value">{{.Orders}}</span><span class="stat-label">Orders</span></div>
</div>
`))

// Content renders the site-content section. The storefront exposes no
// content endpoint, so this section is a static editor shell.
func Content() string {
	return `<div class="content-editor">
<p>Site content is managed directly in the storefront.</p>
</div>
`
}

// Dashboard renders the stat cards.
func Dashboard(s Stats) (string, error) {
	var b strings.Builder
	if err := dashboardTmpl.Execute(&b, s); err != nil {
		return "", fmt.Errorf("view: render dashboard: %w", err)
	}
	return b.String(), nil
}
