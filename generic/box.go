package generic

// Box stores a single value of a fixed type.
type Box[T any] struct {
	value T
}

func NewBox[T any](value T) *Box[T] {
	return &Box[T]{
		value: value,
	}
}

func (b *Box[T]) Value() T {
	return b.value
}

func (b *Box[T]) SetValue(value T) {
	b.value = value
}

// Sourced keeps a value together with the name of where it came from.
type Sourced[T any] struct {
	Value  T      `json:"value" yaml:"value"`
	Source string `json:"source" yaml:"source"`
}
