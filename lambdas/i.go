package lambdas

type Supplier[T any] func() T

type Predicate[T any] func(T) bool

type Function[T, R any] func(T) R

type BiFunction[T, U, R any] func(T, U) R

type UnaryOperator[T any] func(T) T

type BinaryOperator[T any] func(T, T) T

type Consumer[T any] func(T)

type Runnable func()

func (f Function[T, R]) AndThen(after func(R) R) Function[T, R] {
	return func(v T) R {
		return after(f(v))
	}
}
