package list

import (
	"iter"
)

// Note that the sorted list is not thread safe unless it is built
// with WithSortedListConcSafe.

// SortedList keeps its values in non-decreasing order of the comparator
// it was built with. Values that compare equal keep their insertion order.
type SortedList[T any] interface {
	// Len returns the number of values in the list.
	Len() int64
	// Add inserts v after every value that is less than or equal to it.
	Add(v T)
	// Remove removes the earliest inserted value that compares equal to v
	// and reports whether one was found.
	Remove(v T) bool
	// Contains reports whether any value compares equal to v.
	Contains(v T) bool
	// ToSlice returns a copy of the values in order.
	ToSlice() []T
	// All returns a lazy sequence of the values in order. Each range over
	// the sequence starts again from the head. Mutating the list while
	// ranging over it is undefined unless the list is concurrent safe.
	All() iter.Seq[T]
	// Foreach visits the values in order until fn returns false.
	Foreach(fn func(idx int64, v T) bool)
}
