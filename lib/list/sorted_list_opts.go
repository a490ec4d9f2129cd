package list

import (
	"errors"
	"strings"

	"github.com/benz9527/xsortedlist/lib/infra"
)

var (
	ErrSortedListArenaFull = errors.New("[sorted-list] arena index space exhausted")
)

type sortedListOptions struct {
	arenaEnabled  bool
	arenaCapacity int
	concSafe      bool
}

type SortedListOption func(*sortedListOptions) error

// WithSortedListArena stores the nodes in an index arena that recycles
// removed slots. The capacity only preallocates, the arena still grows.
func WithSortedListArena(capacity int) SortedListOption {
	return func(opts *sortedListOptions) error {
		if capacity < 0 {
			return infra.NewErrorStack("[sorted-list] negative arena capacity")
		}
		opts.arenaEnabled = true
		opts.arenaCapacity = capacity
		return nil
	}
}

// WithSortedListConcSafe guards the list by a read-write mutex.
func WithSortedListConcSafe() SortedListOption {
	return func(opts *sortedListOptions) error {
		opts.concSafe = true
		return nil
	}
}

// NewSortedList builds an empty list ordered by cmp.
// The cmp has to be a total order, see infra.Comparator.
func NewSortedList[T any](cmp infra.Comparator[T], opts ...SortedListOption) (SortedList[T], error) {
	if cmp == nil {
		return nil, infra.NewErrorStack("[sorted-list] nil comparator")
	}

	options := &sortedListOptions{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(options); err != nil {
			return nil, err
		}
	}

	var impl SortedList[T]
	if options.arenaEnabled {
		impl = newArenaSortedList[T](cmp, options.arenaCapacity)
	} else {
		impl = newLinkedSortedList[T](cmp)
	}
	if options.concSafe {
		impl = newSortedListDelegator[T](impl)
	}
	return impl, nil
}

// NewOrderedSortedList builds an empty list in the natural ascending order of T.
func NewOrderedSortedList[T infra.OrderedKey](opts ...SortedListOption) (SortedList[T], error) {
	return NewSortedList[T](infra.OrderedKeyComparator[T](), opts...)
}

// NewIntSortedList builds an empty list of ascending integers.
func NewIntSortedList() SortedList[int] {
	return newLinkedSortedList[int](infra.OrderedKeyComparator[int]())
}

// NewStringSortedList builds an empty list of bytewise ascending strings.
func NewStringSortedList() SortedList[string] {
	return newLinkedSortedList[string](strings.Compare)
}
