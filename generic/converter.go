package generic

type Converter[T, R any] interface {
	Convert(source T) R
}

type ConverterFunc[T, R any] func(source T) R

func (fn ConverterFunc[T, R]) Convert(source T) R {
	return fn(source)
}

func Chain[T, M, R any](first Converter[T, M], second Converter[M, R]) Converter[T, R] {
	return ConverterFunc[T, R](func(source T) R {
		return second.Convert(first.Convert(source))
	})
}
