package generic

import "encoding"

// Strict is the set of types a StrictProcessor accepts: they serialize themselves and have a
// total order.
type Strict[T any] interface {
	encoding.BinaryMarshaler
	Comparable[T]
}

type StrictProcessor[T Strict[T]] interface {
	Process(obj T)
}

type StrictProcessorFunc[T Strict[T]] func(obj T)

func (fn StrictProcessorFunc[T]) Process(obj T) {
	fn(obj)
}
