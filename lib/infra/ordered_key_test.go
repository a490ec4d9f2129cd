package infra

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedKeyComparator(t *testing.T) {
	intCmp := OrderedKeyComparator[int]()
	assert.Equal(t, 0, intCmp(3, 3))
	assert.Equal(t, -1, intCmp(1, 3))
	assert.Equal(t, 1, intCmp(3, 1))

	u8Cmp := OrderedKeyComparator[uint8]()
	assert.Equal(t, -1, u8Cmp(0, math.MaxUint8))

	strCmp := OrderedKeyComparator[string]()
	assert.Equal(t, -1, strCmp("a", "b"))
	assert.Equal(t, 1, strCmp("b", "a"))
	assert.Equal(t, 0, strCmp("abc", "abc"))
}

func TestOrderedKeyComparator_NaN(t *testing.T) {
	cmp := OrderedKeyComparator[float64]()
	nan := math.NaN()
	assert.Equal(t, 0, cmp(nan, nan))
	assert.Equal(t, -1, cmp(nan, math.Inf(-1)))
	assert.Equal(t, 1, cmp(0, nan))

	values := []float64{3.5, nan, -1, math.Inf(1), nan, 0}
	sort.SliceStable(values, func(i, j int) bool {
		return cmp(values[i], values[j]) < 0
	})
	require.True(t, math.IsNaN(values[0]))
	require.True(t, math.IsNaN(values[1]))
	require.Equal(t, []float64{-1, 0, 3.5, math.Inf(1)}, values[2:])
}

func TestStringComparator(t *testing.T) {
	cmp := StringComparator()
	assert.Less(t, cmp("B", "a"), 0)
	assert.Greater(t, cmp("ab", "a"), 0)
	assert.Equal(t, 0, cmp("", ""))
}

func TestReverseComparator(t *testing.T) {
	require.Nil(t, ReverseComparator[int](nil))

	cmp := ReverseComparator(OrderedKeyComparator[int]())
	assert.Equal(t, 1, cmp(1, 3))
	assert.Equal(t, -1, cmp(3, 1))
	assert.Equal(t, 0, cmp(2, 2))
}
