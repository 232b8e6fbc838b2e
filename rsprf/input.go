package rsprf

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Input is a PRF input, a bit string x_1 ... x_k.
// Bit 0 is x_1, the first bit consumed by the evaluation.
// Input is immutable.
type Input struct {
	bits   *bitset.BitSet
	length int
}

// NewInput creates a new Input from bits.
func NewInput(bits []bool) Input {
	b := bitset.New(uint(len(bits)))
	for i, x := range bits {
		if x {
			b.Set(uint(i))
		}
	}
	return Input{bits: b, length: len(bits)}
}

// ParseInput parses a string of '0' and '1' characters, such as "010", into an Input.
func ParseInput(s string) (Input, error) {
	b := bitset.New(uint(len(s)))
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			b.Set(uint(i))
		default:
			return Input{}, fmt.Errorf("invalid character %q at position %d of input", c, i)
		}
	}
	return Input{bits: b, length: len(s)}, nil
}

// NewInputFromUint64 creates a new Input of length bits from the binary representation of x,
// most significant bit first.
// length must be at most 64, and x must fit in length bits.
func NewInputFromUint64(x uint64, length int) (Input, error) {
	if length < 0 || length > 64 {
		return Input{}, fmt.Errorf("input length %d is not in [0, 64]", length)
	}
	if length < 64 && x>>length != 0 {
		return Input{}, fmt.Errorf("value %d does not fit in %d bits", x, length)
	}

	b := bitset.New(uint(length))
	for i := 0; i < length; i++ {
		if (x>>(length-1-i))&1 == 1 {
			b.Set(uint(i))
		}
	}
	return Input{bits: b, length: length}, nil
}

// Len returns the number of bits of x.
func (x Input) Len() int {
	return x.length
}

// Bit returns the i-th bit of x.
// It returns false if i is out of range.
func (x Input) Bit(i int) bool {
	if x.bits == nil || i < 0 || i >= x.length {
		return false
	}
	return x.bits.Test(uint(i))
}

// String implements the [fmt.Stringer] interface.
func (x Input) String() string {
	var sb strings.Builder
	sb.Grow(x.length)
	for i := 0; i < x.length; i++ {
		if x.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
