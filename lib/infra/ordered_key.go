package infra

import (
	"strings"
)

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// Comparator
// Assume i is the new value.
//  1. i == j, return 0.
//  2. i > j, return positive.
//  3. i < j, return negative.
//
// The comparator must be a total order (consistent and transitive).
// It is not possible to verify that from samples, so a broken comparator
// silently breaks every structure sorted by it.
type Comparator[T any] func(i, j T) int

// OrderedKeyComparator returns the natural ascending order of K.
// NaN floats are treated as equal to each other and less than any number,
// so that the order stays total.
func OrderedKeyComparator[K OrderedKey]() Comparator[K] {
	return func(i, j K) int {
		iNaN, jNaN := i != i, j != j
		switch {
		case iNaN && jNaN:
			return 0
		case iNaN:
			return -1
		case jNaN:
			return 1
		case i < j:
			return -1
		case i > j:
			return 1
		}
		return 0
	}
}

// StringComparator compares strings bytewise.
func StringComparator() Comparator[string] {
	return strings.Compare
}

// ReverseComparator flips the order of cmp.
func ReverseComparator[T any](cmp Comparator[T]) Comparator[T] {
	if cmp == nil {
		return nil
	}
	return func(i, j T) int {
		return cmp(j, i)
	}
}
