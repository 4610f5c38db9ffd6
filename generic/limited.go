package generic

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Limited is an immutable (actual, min, max) triple. Construction does not check that actual
// lies within [min, max]; see InRange.
type Limited[T Number] struct {
	actual T
	min    T
	max    T
}

func NewLimited[T Number](actual, min, max T) Limited[T] {
	return Limited[T]{
		actual: actual,
		min:    min,
		max:    max,
	}
}

func (l Limited[T]) Actual() T {
	return l.actual
}

func (l Limited[T]) Min() T {
	return l.min
}

func (l Limited[T]) Max() T {
	return l.max
}

func (l Limited[T]) InRange() bool {
	return l.min <= l.actual && l.actual <= l.max
}
