package query

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

type Predicate[T any] func(T) bool

// Comparator returns a negative number when a sorts before b, zero when they are equal and a
// positive number otherwise.
type Comparator[T any] func(a, b T) int

type Number interface {
	constraints.Integer | constraints.Float
}

func Comparing[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

func ComparingFunc[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return c(key(a), key(b))
	}
}

func (c Comparator[T]) ThenComparing(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}

		return next(a, b)
	}
}

func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

func (p Predicate[T]) Negate() Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

func (p Predicate[T]) And(o Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) && o(v)
	}
}

// Set is an unordered group of distinct values.
type Set[V comparable] map[V]struct{}

func (s Set[V]) Has(v V) bool {
	_, ok := s[v]

	return ok
}

func (s Set[V]) Add(v V) {
	s[v] = struct{}{}
}
