package list

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedListDelegator_ConcurrentAddRemove(t *testing.T) {
	l, err := NewOrderedSortedList[int](WithSortedListConcSafe())
	require.NoError(t, err)

	const (
		workers = 8
		perW    = 500
	)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perW; i++ {
				l.Add(w*perW + i)
				_ = l.Contains(i)
				_ = l.Len()
			}
		}(w)
	}
	wg.Wait()
	require.Equal(t, int64(workers*perW), l.Len())
	requireSorted[int](t, l, func(i, j int) int { return i - j })

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perW; i += 2 {
				assert.True(t, l.Remove(w*perW+i))
			}
		}(w)
	}
	wg.Wait()
	require.Equal(t, int64(workers*perW/2), l.Len())
	for v := range l.All() {
		require.Equal(t, 1, v%2)
	}
}

func TestSortedListDelegator_MutateWhileRanging(t *testing.T) {
	l, err := NewOrderedSortedList[int](WithSortedListArena(0), WithSortedListConcSafe())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		l.Add(i)
	}
	seen := make([]int, 0, 5)
	for v := range l.All() {
		seen = append(seen, v)
		require.True(t, l.Remove(v))
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	require.Equal(t, int64(0), l.Len())
}
