package list

import (
	"iter"
	"math"

	"github.com/benz9527/xsortedlist/lib/infra"
)

// The arena sorted list keeps every node in one slice and links them by index.
// Removed slots are pushed onto a free list and reused by later insertions, so
// a list with a stable size stops allocating. There is no recursive ownership
// chain for the GC to walk either.
//
// nodes  [0]     [1]     [2]     [3]
//        +-+     +-+     +-+     +-+
//        |5|     |1|     |x|     |3|
//        +-+     +-+     +-+     +-+
// head = 1, 1 -> 3 -> 0 -> nil
// free = 2

var _ SortedList[struct{}] = (*arenaSortedList[struct{}])(nil) // Type check assertion

type arenaSortedList[T any] struct {
	cmp   infra.Comparator[T]
	nodes []arenaNode[T]
	head  int32
	free  int32
	len   int64
}

func newArenaSortedList[T any](cmp infra.Comparator[T], capacity int) *arenaSortedList[T] {
	return &arenaSortedList[T]{
		cmp:   cmp,
		nodes: make([]arenaNode[T], 0, capacity),
		head:  nilArenaIdx,
		free:  nilArenaIdx,
	}
}

func (l *arenaSortedList[T]) alloc(v T) int32 {
	if l.free != nilArenaIdx {
		idx := l.free
		l.free = l.nodes[idx].next
		l.nodes[idx] = arenaNode[T]{next: nilArenaIdx, value: v}
		return idx
	}
	if len(l.nodes) >= math.MaxInt32 {
		panic(ErrSortedListArenaFull)
	}
	l.nodes = append(l.nodes, arenaNode[T]{next: nilArenaIdx, value: v})
	return int32(len(l.nodes) - 1)
}

func (l *arenaSortedList[T]) release(idx int32) {
	var zero T
	// avoid memory leaks
	l.nodes[idx].value = zero
	l.nodes[idx].next = l.free
	l.free = idx
}

func (l *arenaSortedList[T]) Len() int64 {
	return l.len
}

func (l *arenaSortedList[T]) Add(v T) {
	idx := l.alloc(v)
	if l.head == nilArenaIdx || l.cmp(v, l.nodes[l.head].value) < 0 {
		l.nodes[idx].next = l.head
		l.head = idx
		l.len++
		return
	}

	prev := l.head
	for next := l.nodes[prev].next; next != nilArenaIdx && l.cmp(v, l.nodes[next].value) >= 0; next = l.nodes[prev].next {
		prev = next
	}
	l.nodes[idx].next = l.nodes[prev].next
	l.nodes[prev].next = idx
	l.len++
}

func (l *arenaSortedList[T]) Remove(v T) bool {
	if l.head == nilArenaIdx {
		return false
	}

	res := l.cmp(v, l.nodes[l.head].value)
	if res == 0 {
		removed := l.head
		l.head = l.nodes[removed].next
		l.release(removed)
		l.len--
		return true
	} else if res < 0 {
		return false
	}

	prev := l.head
	for next := l.nodes[prev].next; next != nilArenaIdx; next = l.nodes[prev].next {
		res = l.cmp(v, l.nodes[next].value)
		if res == 0 {
			l.nodes[prev].next = l.nodes[next].next
			l.release(next)
			l.len--
			return true
		} else if res < 0 {
			return false
		}
		prev = next
	}
	return false
}

func (l *arenaSortedList[T]) Contains(v T) bool {
	for idx := l.head; idx != nilArenaIdx; idx = l.nodes[idx].next {
		res := l.cmp(v, l.nodes[idx].value)
		if res == 0 {
			return true
		} else if res < 0 {
			return false
		}
	}
	return false
}

func (l *arenaSortedList[T]) ToSlice() []T {
	values := make([]T, 0, l.len)
	for idx := l.head; idx != nilArenaIdx; idx = l.nodes[idx].next {
		values = append(values, l.nodes[idx].value)
	}
	return values
}

func (l *arenaSortedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for idx := l.head; idx != nilArenaIdx; idx = l.nodes[idx].next {
			if !yield(l.nodes[idx].value) {
				return
			}
		}
	}
}

func (l *arenaSortedList[T]) Foreach(fn func(idx int64, v T) bool) {
	if fn == nil {
		return
	}
	var i int64
	for idx := l.head; idx != nilArenaIdx; idx = l.nodes[idx].next {
		if !fn(i, l.nodes[idx].value) {
			return
		}
		i++
	}
}

// slots reports how many node slots the arena holds, free ones included.
func (l *arenaSortedList[T]) slots() int {
	return len(l.nodes)
}
