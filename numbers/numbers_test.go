package numbers

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSumOfSquaresInRange(t *testing.T) {
	sum, err := SumOfSquaresInRange(5, 10)
	assert.Nil(t, err)
	assert.EqualValues(t, 455, sum)

	sum, err = SumOfSquaresInRange(3, 3)
	assert.Nil(t, err)
	assert.EqualValues(t, 9, sum)

	sum, err = SumOfSquaresInRange(-2, 2)
	assert.Nil(t, err)
	assert.EqualValues(t, 10, sum)

	_, err = SumOfSquaresInRange(10, 5)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestRangeClosed(t *testing.T) {
	ns, err := RangeClosed(1, 4)
	assert.Nil(t, err)
	assert.EqualValues(t, []int{1, 2, 3, 4}, ns)

	_, err = RangeClosed(1, 0)
	assert.Equal(t, ErrInvalidRange, err)

	ns, err = RangeClosed(7, 7)
	assert.Nil(t, err)
	assert.EqualValues(t, []int{7}, ns)
}

func TestRangeAtIntBounds(t *testing.T) {
	done := make(chan []int, 1)

	go func() {
		ns, _ := RangeClosed(math.MaxInt-1, math.MaxInt)
		done <- ns
	}()

	select {
	case ns := <-done:
		assert.EqualValues(t, []int{math.MaxInt - 1, math.MaxInt}, ns)
	case <-time.After(time.Second * 3):
		assert.FailNow(t, "range ending at MaxInt did not stop")
	}

	var seen []int

	err := ForEachInRange(math.MinInt, math.MinInt+1, func(n int) {
		seen = append(seen, n)
	})
	assert.Nil(t, err)
	assert.EqualValues(t, []int{math.MinInt, math.MinInt + 1}, seen)

	a, b := math.MaxInt-1, math.MaxInt

	sum, err := SumOfSquaresInRange(a, b)
	assert.Nil(t, err)
	assert.EqualValues(t, a*a+b*b, sum)
}

func TestPrimes(t *testing.T) {
	assert.False(t, IsPrime(-7))
	assert.False(t, IsPrime(0))
	assert.False(t, IsPrime(1))
	assert.True(t, IsPrime(2))
	assert.True(t, IsPrime(97))
	assert.False(t, IsPrime(91))

	assert.EqualValues(t, []int{2, 3, 5, 7, 11}, FirstPrimes(5))
	assert.Empty(t, FirstPrimes(0))
	assert.Empty(t, FirstPrimes(-1))

	var seen []int

	sum := SumOfFirstPrimes(20, func(prime int) {
		seen = append(seen, prime)
	})
	assert.EqualValues(t, 639, sum)
	assert.Len(t, seen, 20)
	assert.EqualValues(t, 71, seen[19])

	assert.EqualValues(t, 0, SumOfFirstPrimes(0, nil))
}
