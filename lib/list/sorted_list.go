package list

import (
	"iter"

	"github.com/benz9527/xsortedlist/lib/infra"
)

// References:
// https://github.com/liuzl/ds/blob/master/sorted_list.go
//
// head
// +-+    +-+    +-+    +-+
// |1|--->|3|--->|5|--->|5|--->nil
// +-+    +-+    +-+    +-+
//
// Insertion walks while the next value is less than or equal to the new one,
// so the new value is spliced after every equal value (FIFO among equals).
// Lookups and removals stop at the first value greater than the target.

var _ SortedList[struct{}] = (*linkedSortedList[struct{}])(nil) // Type check assertion

type linkedSortedList[T any] struct {
	cmp  infra.Comparator[T]
	head *sortedListNode[T]
	len  int64
}

func newLinkedSortedList[T any](cmp infra.Comparator[T]) *linkedSortedList[T] {
	return &linkedSortedList[T]{
		cmp: cmp,
	}
}

func (l *linkedSortedList[T]) Len() int64 {
	return l.len
}

func (l *linkedSortedList[T]) Add(v T) {
	node := newSortedListNode(v)
	if l.head == nil || l.cmp(v, l.head.value) < 0 {
		node.next = l.head
		l.head = node
		l.len++
		return
	}

	prev := l.head
	for prev.next != nil && l.cmp(v, prev.next.value) >= 0 {
		prev = prev.next
	}
	node.next = prev.next
	prev.next = node
	l.len++
}

func (l *linkedSortedList[T]) Remove(v T) bool {
	if l.head == nil {
		return false
	}

	res := l.cmp(v, l.head.value)
	if res == 0 {
		removed := l.head
		l.head = removed.next
		removed.next = nil
		l.len--
		return true
	} else if res < 0 {
		return false
	}

	prev := l.head
	for prev.next != nil {
		res = l.cmp(v, prev.next.value)
		if res == 0 {
			removed := prev.next
			prev.next = removed.next
			// avoid memory leaks
			removed.next = nil
			l.len--
			return true
		} else if res < 0 {
			return false
		}
		prev = prev.next
	}
	return false
}

func (l *linkedSortedList[T]) Contains(v T) bool {
	for node := l.head; node != nil; node = node.next {
		res := l.cmp(v, node.value)
		if res == 0 {
			return true
		} else if res < 0 {
			return false
		}
	}
	return false
}

func (l *linkedSortedList[T]) ToSlice() []T {
	values := make([]T, 0, l.len)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.value)
	}
	return values
}

func (l *linkedSortedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

func (l *linkedSortedList[T]) Foreach(fn func(idx int64, v T) bool) {
	if fn == nil {
		return
	}
	var idx int64
	for node := l.head; node != nil; node = node.next {
		if !fn(idx, node.value) {
			return
		}
		idx++
	}
}
