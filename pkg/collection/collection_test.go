package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardstore/console/pkg/collection"
)

func TestFilter(t *testing.T) {
	got := collection.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, got)
}

func TestFilterNoMatch(t *testing.T) {
	got := collection.Filter([]string{"a", "b"}, func(string) bool { return false })
	assert.Empty(t, got)
}

func TestCountBy(t *testing.T) {
	got := collection.CountBy([]string{"card", "card", "mug"}, func(s string) string { return s })
	assert.Equal(t, map[string]int{"card": 2, "mug": 1}, got)
}

func TestSortByLeavesInputUnmodified(t *testing.T) {
	in := []int{3, 1, 2}
	got := collection.SortBy(in, func(a, b int) bool { return a < b })

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, []int{3, 1, 2}, in)
}
