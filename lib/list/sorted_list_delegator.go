package list

import (
	"iter"
	"sync"
)

var _ SortedList[struct{}] = (*sortedListDelegator[struct{}])(nil) // Type check assertion

type sortedListDelegator[T any] struct {
	rwmu *sync.RWMutex
	impl SortedList[T]
}

func newSortedListDelegator[T any](impl SortedList[T]) *sortedListDelegator[T] {
	return &sortedListDelegator[T]{
		rwmu: &sync.RWMutex{},
		impl: impl,
	}
}

func (l *sortedListDelegator[T]) Len() int64 {
	l.rwmu.RLock()
	defer l.rwmu.RUnlock()
	return l.impl.Len()
}

func (l *sortedListDelegator[T]) Add(v T) {
	l.rwmu.Lock()
	defer l.rwmu.Unlock()
	l.impl.Add(v)
}

func (l *sortedListDelegator[T]) Remove(v T) bool {
	l.rwmu.Lock()
	defer l.rwmu.Unlock()
	return l.impl.Remove(v)
}

func (l *sortedListDelegator[T]) Contains(v T) bool {
	l.rwmu.RLock()
	defer l.rwmu.RUnlock()
	return l.impl.Contains(v)
}

func (l *sortedListDelegator[T]) ToSlice() []T {
	l.rwmu.RLock()
	defer l.rwmu.RUnlock()
	return l.impl.ToSlice()
}

// All ranges over a snapshot, so the consumer is free to mutate the list
// without deadlocking on the read lock.
func (l *sortedListDelegator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.ToSlice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Foreach holds the read lock for the whole traversal, fn must not mutate the list.
func (l *sortedListDelegator[T]) Foreach(fn func(idx int64, v T) bool) {
	l.rwmu.RLock()
	defer l.rwmu.RUnlock()
	l.impl.Foreach(fn)
}
