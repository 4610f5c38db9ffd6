package numbers

import (
	"errors"

	"github.com/sgostarter/libkata/query"
)

var (
	ErrInvalidRange = errors.New("invalid range")
)

// ForEachInRange calls fn for every integer from startInclusive to endInclusive, in order,
// without materializing the range.
func ForEachInRange(startInclusive, endInclusive int, fn func(n int)) error {
	if endInclusive < startInclusive {
		return ErrInvalidRange
	}

	for n := startInclusive; ; n++ {
		fn(n)

		if n == endInclusive {
			break
		}
	}

	return nil
}

// RangeClosed returns the integers from startInclusive to endInclusive.
func RangeClosed(startInclusive, endInclusive int) (ns []int, err error) {
	err = ForEachInRange(startInclusive, endInclusive, func(n int) {
		ns = append(ns, n)
	})

	return
}

func SumOfSquaresInRange(startInclusive, endInclusive int) (sum int, err error) {
	err = ForEachInRange(startInclusive, endInclusive, func(n int) {
		sum += n * n
	})
	if err != nil {
		sum = 0
	}

	return
}

func IsPrime(n int) bool {
	if n < 2 {
		return false
	}

	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// FirstPrimes returns the first count primes in ascending order.
func FirstPrimes(count int) []int {
	primes := make([]int, 0, max(count, 0))

	for n := 2; len(primes) < count; n++ {
		if IsPrime(n) {
			primes = append(primes, n)
		}
	}

	return primes
}

// SumOfFirstPrimes adds up the first count primes. peek, when set, sees every prime before it
// is added.
func SumOfFirstPrimes(count int, peek func(prime int)) int {
	return query.Reduce(FirstPrimes(count), 0, func(acc, prime int) int {
		if peek != nil {
			peek(prime)
		}

		return acc + prime
	})
}
