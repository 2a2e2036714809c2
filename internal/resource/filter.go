package resource

import "strings"

// NormalizeCategory folds a category label or filter value into its
// canonical form: lowercase, trimmed, internal whitespace runs replaced by
// a single hyphen. "Gift Cards", "gift cards" and "gift-cards" all
// normalize to "gift-cards", so display labels match stored values
// regardless of casing or spacing. The function is idempotent.
func NormalizeCategory(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), "-")
}

// CategoryMatches reports whether a stored category value matches the
// active filter. An empty filter matches everything.
func CategoryMatches(category, filter string) bool {
	if strings.TrimSpace(filter) == "" {
		return true
	}
	return NormalizeCategory(category) == NormalizeCategory(filter)
}
