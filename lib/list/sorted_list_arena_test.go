package list

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaSortedList_ReuseFreeSlots(t *testing.T) {
	l := newArenaSortedList[int](cmp.Compare[int], 2)
	for _, v := range []int{5, 1, 3} {
		l.Add(v)
	}
	require.Equal(t, 3, l.slots())
	require.Equal(t, []int{1, 3, 5}, l.ToSlice())

	require.True(t, l.Remove(3))
	require.True(t, l.Remove(1))
	require.Equal(t, 3, l.slots())
	require.Equal(t, int64(1), l.Len())

	t.Log("freed slots are recycled before growing")
	l.Add(4)
	l.Add(0)
	require.Equal(t, 3, l.slots())
	require.Equal(t, []int{0, 4, 5}, l.ToSlice())

	l.Add(9)
	require.Equal(t, 4, l.slots())
	require.Equal(t, []int{0, 4, 5, 9}, l.ToSlice())
}

func TestArenaSortedList_ReleaseResetsValue(t *testing.T) {
	type payload struct {
		key int
		buf *[]byte
	}
	l := newArenaSortedList[payload](func(i, j payload) int {
		return cmp.Compare(i.key, j.key)
	}, 0)
	buf := make([]byte, 16)
	l.Add(payload{key: 1, buf: &buf})
	l.Add(payload{key: 2, buf: &buf})

	require.True(t, l.Remove(payload{key: 1}))
	require.Equal(t, nilArenaIdx, l.nodes[l.free].next)
	require.Nil(t, l.nodes[l.free].value.buf)
	require.Equal(t, 0, l.nodes[l.free].value.key)
}

func TestArenaSortedList_MatchesLinked(t *testing.T) {
	arena := newArenaSortedList[int](cmp.Compare[int], 0)
	linked := newLinkedSortedList[int](cmp.Compare[int])
	ops := []struct {
		add bool
		v   int
	}{
		{true, 3}, {true, 3}, {true, 1}, {false, 3}, {true, 2}, {false, 1},
		{false, 7}, {true, 7}, {true, 0}, {false, 0}, {false, 2}, {true, 3},
	}
	for i, op := range ops {
		if op.add {
			arena.Add(op.v)
			linked.Add(op.v)
		} else {
			require.Equal(t, linked.Remove(op.v), arena.Remove(op.v), "op %d", i)
		}
		require.Equal(t, linked.ToSlice(), arena.ToSlice(), "op %d", i)
		require.Equal(t, linked.Len(), arena.Len(), "op %d", i)
	}
}
