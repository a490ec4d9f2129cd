package list

// sortedListNode owns the next node of the chain. The last node has a nil next.
type sortedListNode[T any] struct {
	next  *sortedListNode[T]
	value T // It should be placed at the end of the struct to avoid taking too much padding.
}

func newSortedListNode[T any](v T) *sortedListNode[T] {
	return &sortedListNode[T]{
		value: v,
	}
}

// arenaNode is linked by index into the arena's node slice.
type arenaNode[T any] struct {
	next  int32
	value T
}

const nilArenaIdx int32 = -1
