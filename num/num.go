// Package num implements various utility functions regarding numeric types.
package num

import (
	"math"
	"math/bits"

	"github.com/tuneinsight/lattigo/v6/ring"
)

// MulMod returns x * y mod q.
// Both x and y must be smaller than q.
func MulMod(x, y, q uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	_, r := bits.Div64(hi, lo, q)
	return r
}

// AddMod returns x + y mod q.
// Both x and y must be smaller than q.
func AddMod(x, y, q uint64) uint64 {
	r, c := bits.Add64(x, y, 0)
	if c != 0 || r >= q {
		r -= q
	}
	return r
}

// SubMod returns x - y mod q.
// Both x and y must be smaller than q.
func SubMod(x, y, q uint64) uint64 {
	if x >= y {
		return x - y
	}
	return x + (q - y)
}

// RoundMod returns round(p * x / q) mod p, rounding halves up.
// x must be smaller than q, and p must not exceed q.
func RoundMod(x, q, p uint64) uint64 {
	hi, lo := bits.Mul64(x, p)
	lo, c := bits.Add64(lo, q>>1, 0)
	hi += c
	quo, _ := bits.Div64(hi, lo, q)
	return quo % p
}

// Centered returns the representative of x mod q in (-q/2, q/2].
func Centered(x, q uint64) int64 {
	if x > q>>1 {
		return -int64(q - x)
	}
	return int64(x)
}

// IsPowerOfTwo reports whether x is a positive power of two.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// IsPrime reports whether x is prime.
func IsPrime(x uint64) bool {
	return ring.IsPrime(x)
}

// IsPrimePower reports whether x = r^k for some prime r and k >= 1.
func IsPrimePower(x uint64) bool {
	if x < 2 {
		return false
	}
	for k := 1; k < 64; k++ {
		r := IntRoot(x, k)
		if r < 2 {
			break
		}
		if powExceeds(r, k, x-1) && IsPrime(r) {
			return true
		}
	}
	return false
}

// IntRoot returns the largest r such that r^k <= x.
func IntRoot(x uint64, k int) uint64 {
	if k == 1 || x < 2 {
		return x
	}

	r := uint64(math.Pow(float64(x), 1/float64(k)))
	for r > 0 && powExceeds(r, k, x) {
		r--
	}
	for !powExceeds(r+1, k, x) {
		r++
	}
	return r
}

// powExceeds reports whether r^k > x.
func powExceeds(r uint64, k int, x uint64) bool {
	acc := uint64(1)
	for i := 0; i < k; i++ {
		hi, lo := bits.Mul64(acc, r)
		if hi != 0 || lo > x {
			return true
		}
		acc = lo
	}
	return false
}
