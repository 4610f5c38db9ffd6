package lambdas

import (
	"cmp"
	"context"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sgostarter/libeasygo/routineman"
	"github.com/sgostarter/libkata/query"
	"github.com/shopspring/decimal"
)

func HelloSupplier() Supplier[string] {
	return func() string {
		return "Hello"
	}
}

func IsEmptyPredicate() Predicate[string] {
	return func(s string) bool {
		return s == ""
	}
}

// StringMultiplier repeats a string n times; a non-positive n gives "".
func StringMultiplier() BiFunction[string, int, string] {
	return func(s string, n int) string {
		if n <= 0 {
			return ""
		}

		return strings.Repeat(s, n)
	}
}

func ToDollarStringFunction() Function[decimal.Decimal, string] {
	return func(d decimal.Decimal) string {
		return "$" + d.String()
	}
}

// LengthInRangePredicate accepts strings whose rune count is in [min, max).
func LengthInRangePredicate(min, max int) Predicate[string] {
	return func(s string) bool {
		n := utf8.RuneCountInString(s)

		return n >= min && n < max
	}
}

func RandomIntSupplier() Supplier[int] {
	return func() int {
		return rand.Intn(math.MaxInt32) // nolint: gosec
	}
}

func BoundedRandomIntSupplier() UnaryOperator[int] {
	return func(bound int) int {
		if bound <= 0 {
			return 0
		}

		return rand.Intn(bound) // nolint: gosec
	}
}

func IntSquareOperation() UnaryOperator[int] {
	return func(x int) int {
		return x * x
	}
}

func LongSumOperation() BinaryOperator[int64] {
	return func(a, b int64) int64 {
		return a + b
	}
}

// StringToIntConverter parses a base 10 integer with an optional sign. Surrounding spaces are
// ignored; prefixes like "0x" and fractions are rejected, and a leading zero is not octal.
func StringToIntConverter() func(s string) (int, error) {
	return func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}
}

func NMultiplyFunctionSupplier(n int) Supplier[UnaryOperator[int]] {
	return func() UnaryOperator[int] {
		return func(x int) int {
			return n * x
		}
	}
}

func ComposeWithTrimFunction() UnaryOperator[Function[string, string]] {
	return func(fn Function[string, string]) Function[string, string] {
		return fn.AndThen(strings.TrimSpace)
	}
}

func FunctionToConditionalFunction() BiFunction[UnaryOperator[int], Predicate[int], UnaryOperator[int]] {
	return func(fn UnaryOperator[int], p Predicate[int]) UnaryOperator[int] {
		return func(x int) int {
			if p(x) {
				return fn(x)
			}

			return x
		}
	}
}

// FunctionLoader looks a function up by name, falling back to identity.
func FunctionLoader() BiFunction[map[string]UnaryOperator[int], string, UnaryOperator[int]] {
	return func(functions map[string]UnaryOperator[int], name string) UnaryOperator[int] {
		if fn, ok := functions[name]; ok && fn != nil {
			return fn
		}

		return func(x int) int {
			return x
		}
	}
}

func Comparing[T any, U cmp.Ordered](mapper func(T) U) query.Comparator[T] {
	return query.Comparing(mapper)
}

func ThenComparing[T any, U cmp.Ordered](comparator query.Comparator[T], mapper func(T) U) query.Comparator[T] {
	return comparator.ThenComparing(query.Comparing(mapper))
}

func TrickyWellDoneSupplier() Supplier[Supplier[Supplier[string]]] {
	return func() Supplier[Supplier[string]] {
		return func() Supplier[string] {
			return func() string {
				return "WELL DONE!"
			}
		}
	}
}

//
//
//

// Routine is a runnable that has not been started yet.
type Routine struct {
	name     string
	runnable Runnable
}

func NewRoutine(name string, runnable Runnable) *Routine {
	return &Routine{
		name:     name,
		runnable: runnable,
	}
}

func (r *Routine) Name() string {
	return r.name
}

// Start runs the routine in the background; the caller does not wait for it.
func (r *Routine) Start(routineMan routineman.RoutineMan) {
	routineMan.StartRoutine(func(_ context.Context, _ func() bool) {
		r.runnable()
	}, r.name)
}

func RunningRoutineSupplier(runnable Runnable) Supplier[*Routine] {
	return func() *Routine {
		return NewRoutine("runnable", runnable)
	}
}

func NewRoutineRunnableConsumer(routineMan routineman.RoutineMan) Consumer[Runnable] {
	return func(runnable Runnable) {
		NewRoutine("runnable", runnable).Start(routineMan)
	}
}

func RunnableToRoutineSupplierFunction() Function[Runnable, Supplier[*Routine]] {
	return func(runnable Runnable) Supplier[*Routine] {
		return RunningRoutineSupplier(runnable)
	}
}
