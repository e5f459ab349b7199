// Package money holds overflow-checked arithmetic for integer minor-unit amounts.
package money

import (
	"errors"
	"math"
	"math/bits"
)

var ErrOverflow = errors.New("amount overflows int64")

// Add returns a+b, or ErrOverflow when the sum does not fit in an int64.
func Add(a, b int64) (int64, error) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, ErrOverflow
	}
	return c, nil
}

// Sum adds vals left to right, stopping at the first overflow.
func Sum(vals ...int64) (int64, error) {
	var total int64
	for _, v := range vals {
		var err error
		if total, err = Add(total, v); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// Mul returns a*b, or ErrOverflow when the product does not fit in an int64.
func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(abs(a), abs(b))
	if hi != 0 {
		return 0, ErrOverflow
	}
	if neg {
		if lo > 1<<63 {
			return 0, ErrOverflow
		}
		return -int64(lo), nil
	}
	if lo > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(lo), nil
}

func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
