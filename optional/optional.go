package optional

import "github.com/sgostarter/i/commerr"

// Optional holds zero or one value. The zero Optional is empty.
type Optional[T any] struct {
	v       T
	present bool
}

func Of[T any](v T) Optional[T] {
	return Optional[T]{
		v:       v,
		present: true,
	}
}

func OfNullable[T any](v *T) Optional[T] {
	if v == nil {
		return Empty[T]()
	}

	return Of(*v)
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

func (o Optional[T]) Get() (T, bool) {
	return o.v, o.present
}

func (o Optional[T]) OrElse(v T) T {
	if o.present {
		return o.v
	}

	return v
}

func (o Optional[T]) OrElseGet(fn func() T) T {
	if o.present {
		return o.v
	}

	return fn()
}

// OrElseErr returns the value, or the error built by fn. A nil fn yields commerr.ErrNotFound.
func (o Optional[T]) OrElseErr(fn func() error) (v T, err error) {
	if o.present {
		return o.v, nil
	}

	if fn == nil {
		err = commerr.ErrNotFound
	} else {
		err = fn()
	}

	return
}

func (o Optional[T]) IfPresent(fn func(T)) {
	if o.present {
		fn(o.v)
	}
}

func (o Optional[T]) IfPresentOrElse(fn func(T), orElse func()) {
	if o.present {
		fn(o.v)

		return
	}

	orElse()
}

func (o Optional[T]) Filter(fn func(T) bool) Optional[T] {
	if o.present && fn(o.v) {
		return o
	}

	return Empty[T]()
}

func Map[T, R any](o Optional[T], fn func(T) R) Optional[R] {
	if !o.present {
		return Empty[R]()
	}

	return Of(fn(o.v))
}

func FlatMap[T, R any](o Optional[T], fn func(T) Optional[R]) Optional[R] {
	if !o.present {
		return Empty[R]()
	}

	return fn(o.v)
}

// FromPair lifts the (value, ok) result of a lookup.
func FromPair[T any](v T, ok bool) Optional[T] {
	if !ok {
		return Empty[T]()
	}

	return Of(v)
}
