package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniquesKeepsFirstOccurrenceOrder(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Uniques([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, Uniques([]int{}))
}

func TestGroupBy(t *testing.T) {
	keys, groups := GroupBy([]int{3, 1, 4, 1, 5, 9, 2, 6}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []bool{false, true}, keys)
	assert.Equal(t, []int{3, 1, 1, 5, 9}, groups[false])
	assert.Equal(t, []int{4, 2, 6}, groups[true])
}

func TestFilterAndContains(t *testing.T) {
	evens := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, evens)
	assert.True(t, Contains(evens, 4))
	assert.False(t, Contains(evens, 3))
}
