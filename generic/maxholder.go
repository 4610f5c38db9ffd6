package generic

import (
	"cmp"

	"github.com/sgostarter/libkata/query"
)

// Comparable is satisfied by types that order themselves against values of T.
type Comparable[T any] interface {
	CompareTo(o T) int
}

// MaxHolder keeps the greatest value put so far. It is not safe for concurrent use.
type MaxHolder[T any] struct {
	max     T
	compare query.Comparator[T]
}

func NewMaxHolder[T cmp.Ordered](initial T) *MaxHolder[T] {
	return NewMaxHolderFunc(initial, cmp.Compare[T])
}

func NewComparableMaxHolder[T Comparable[T]](initial T) *MaxHolder[T] {
	return NewMaxHolderFunc(initial, func(a, b T) int {
		return a.CompareTo(b)
	})
}

func NewMaxHolderFunc[T any](initial T, compare query.Comparator[T]) *MaxHolder[T] {
	return &MaxHolder[T]{
		max:     initial,
		compare: compare,
	}
}

// Put stores v only when it is strictly greater than the current max.
func (h *MaxHolder[T]) Put(v T) {
	if h.compare(v, h.max) > 0 {
		h.max = v
	}
}

func (h *MaxHolder[T]) Max() T {
	return h.max
}
