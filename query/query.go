package query

import (
	"slices"
	"strings"

	"github.com/sgostarter/i/commerr"
)

// MaxBy returns the greatest element under c. On ties the earliest element wins.
func MaxBy[T any](items []T, c Comparator[T]) (v T, ok bool) {
	for idx, item := range items {
		if idx == 0 || c(item, v) > 0 {
			v = item
		}
	}

	ok = len(items) > 0

	return
}

func MinBy[T any](items []T, c Comparator[T]) (T, bool) {
	return MaxBy(items, c.Reversed())
}

func MustMaxBy[T any](items []T, c Comparator[T]) (v T, err error) {
	v, ok := MaxBy(items, c)
	if !ok {
		err = commerr.ErrNotFound
	}

	return
}

func MustMinBy[T any](items []T, c Comparator[T]) (v T, err error) {
	v, ok := MinBy(items, c)
	if !ok {
		err = commerr.ErrNotFound
	}

	return
}

func Filter[T any](items []T, p Predicate[T]) []T {
	out := make([]T, 0, len(items))

	for _, item := range items {
		if p(item) {
			out = append(out, item)
		}
	}

	return out
}

func Map[T, U any](items []T, f func(T) U) []U {
	out := make([]U, 0, len(items))

	for _, item := range items {
		out = append(out, f(item))
	}

	return out
}

func FlatMap[T, U any](items []T, f func(T) []U) []U {
	var out []U

	for _, item := range items {
		out = append(out, f(item)...)
	}

	return out
}

func AnyMatch[T any](items []T, p Predicate[T]) bool {
	return slices.ContainsFunc(items, p)
}

func AllMatch[T any](items []T, p Predicate[T]) bool {
	return !slices.ContainsFunc(items, p.Negate())
}

func NoneMatch[T any](items []T, p Predicate[T]) bool {
	return !AnyMatch(items, p)
}

func Count[T any](items []T, p Predicate[T]) (n int64) {
	for _, item := range items {
		if p(item) {
			n++
		}
	}

	return
}

func FindFirst[T any](items []T, p Predicate[T]) (v T, ok bool) {
	idx := slices.IndexFunc(items, p)
	if idx < 0 {
		return
	}

	return items[idx], true
}

func MustFindFirst[T any](items []T, p Predicate[T]) (v T, err error) {
	v, ok := FindFirst(items, p)
	if !ok {
		err = commerr.ErrNotFound
	}

	return
}

// Partition splits items by p. Both the true and the false group are always present.
func Partition[T any](items []T, p Predicate[T]) map[bool][]T {
	m := map[bool][]T{
		true:  make([]T, 0),
		false: make([]T, 0),
	}

	for _, item := range items {
		r := p(item)
		m[r] = append(m[r], item)
	}

	return m
}

func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	m := make(map[K][]T)

	for _, item := range items {
		k := key(item)
		m[k] = append(m[k], item)
	}

	return m
}

// GroupByKeys returns the distinct keys of items in first-seen order.
func GroupByKeys[T any, K comparable](items []T, key func(T) K) []K {
	seen := make(Set[K])
	keys := make([]K, 0)

	for _, item := range items {
		k := key(item)
		if seen.Has(k) {
			continue
		}

		seen.Add(k)
		keys = append(keys, k)
	}

	return keys
}

func GroupByMapping[T any, K comparable, V any](items []T, key func(T) K, value func(T) V) map[K][]V {
	m := make(map[K][]V)

	for _, item := range items {
		k := key(item)
		m[k] = append(m[k], value(item))
	}

	return m
}

func GroupBySet[T any, K, V comparable](items []T, key func(T) K, value func(T) V) map[K]Set[V] {
	m := make(map[K]Set[V])

	for _, item := range items {
		k := key(item)
		if _, ok := m[k]; !ok {
			m[k] = make(Set[V])
		}

		m[k].Add(value(item))
	}

	return m
}

func GroupByJoin[T any, K comparable](items []T, key func(T) K, value func(T) string, sep string) map[K]string {
	m := make(map[K]string)

	for k, vs := range GroupByMapping(items, key, value) {
		m[k] = strings.Join(vs, sep)
	}

	return m
}

func GroupByReduce[T any, K comparable, V any](items []T, key func(T) K, zero V, op func(V, T) V) map[K]V {
	m := make(map[K]V)

	for _, item := range items {
		k := key(item)

		acc, ok := m[k]
		if !ok {
			acc = zero
		}

		m[k] = op(acc, item)
	}

	return m
}

func Reduce[T, U any](items []T, zero U, op func(U, T) U) U {
	acc := zero

	for _, item := range items {
		acc = op(acc, item)
	}

	return acc
}

func SumBy[T any, N Number](items []T, f func(T) N) N {
	return Reduce(items, N(0), func(acc N, item T) N {
		return acc + f(item)
	})
}

// SortedBy returns a stably sorted copy of items; items itself is left untouched.
func SortedBy[T any](items []T, c Comparator[T]) []T {
	out := slices.Clone(items)
	if out == nil {
		out = make([]T, 0)
	}

	slices.SortStableFunc(out, c)

	return out
}

// Frequency counts the units derived from every item.
func Frequency[T any, K comparable](items []T, units func(T) []K) map[K]int64 {
	m := make(map[K]int64)

	for _, item := range items {
		for _, unit := range units(item) {
			m[unit]++
		}
	}

	return m
}

func ToMap[T any, K comparable, V any](items []T, key func(T) K, value func(T) V) (m map[K]V, err error) {
	m = make(map[K]V, len(items))

	for _, item := range items {
		k := key(item)
		if _, ok := m[k]; ok {
			err = commerr.ErrAlreadyExists

			return nil, err
		}

		m[k] = value(item)
	}

	return
}
