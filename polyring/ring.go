// Package polyring implements arithmetic over Z_q[X]/(X^N + 1)
// and matrices of its elements.
package polyring

import (
	"errors"
	"fmt"

	"github.com/sp301415/ringswitch-prf/num"
	"github.com/tuneinsight/lattigo/v6/ring"
)

// MaxModulusBits is the maximum bit length of the modulus.
const MaxModulusBits = 62

var (
	// ErrRingMismatch is returned when an operation mixes elements
	// of different rings, i.e. different (N, Q).
	ErrRingMismatch = errors.New("ring mismatch")
	// ErrDimensionMismatch is returned when matrix shapes are incompatible.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Ring is the negacyclic ring Z_q[X]/(X^N + 1).
// Ring is immutable, and safe for concurrent use.
type Ring struct {
	degree  int
	modulus uint64

	// nttRing is nil if Q is not an NTT-friendly prime for N.
	// In that case, multiplication is done by schoolbook convolution.
	nttRing *ring.Ring
}

// NewRing creates a new Ring with the given degree and modulus.
// N must be a power of two, and 2 <= Q < 2^62.
// If Q is a prime with Q = 1 mod 2N, multiplication uses the NTT.
func NewRing(N int, Q uint64) (*Ring, error) {
	r, err := NewRingWithoutNTT(N, Q)
	if err != nil {
		return nil, err
	}

	if nttRing, err := ring.NewRing(N, []uint64{Q}); err == nil {
		r.nttRing = nttRing
	}

	return r, nil
}

// NewRingWithoutNTT creates a new Ring that always multiplies by schoolbook convolution.
func NewRingWithoutNTT(N int, Q uint64) (*Ring, error) {
	switch {
	case !num.IsPowerOfTwo(N):
		return nil, fmt.Errorf("degree %d is not a power of two", N)
	case Q < 2:
		return nil, fmt.Errorf("modulus %d is smaller than 2", Q)
	case Q>>MaxModulusBits != 0:
		return nil, fmt.Errorf("modulus %d exceeds %d bits", Q, MaxModulusBits)
	}

	return &Ring{
		degree:  N,
		modulus: Q,
	}, nil
}

// Degree returns the degree N of the Ring.
func (r *Ring) Degree() int {
	return r.degree
}

// Modulus returns the modulus Q of the Ring.
func (r *Ring) Modulus() uint64 {
	return r.modulus
}

// HasNTT reports whether multiplication runs in the NTT domain.
func (r *Ring) HasNTT() bool {
	return r.nttRing != nil
}

// String implements the [fmt.Stringer] interface.
func (r *Ring) String() string {
	return fmt.Sprintf("Z_%d[X]/(X^%d+1)", r.modulus, r.degree)
}

// NewPoly creates a new zero Poly in the Ring.
func (r *Ring) NewPoly() Poly {
	return Poly{
		Coeffs:  make([]uint64, r.degree),
		modulus: r.modulus,
	}
}

// NewPolyFromCoeffs creates a new Poly from signed coefficients,
// reducing each of them modulo Q.
func (r *Ring) NewPolyFromCoeffs(coeffs []int64) (Poly, error) {
	if len(coeffs) != r.degree {
		return Poly{}, fmt.Errorf("%w: %d coefficients for degree %d", ErrRingMismatch, len(coeffs), r.degree)
	}

	q := int64(r.modulus)
	p := r.NewPoly()
	for i, c := range coeffs {
		c %= q
		if c < 0 {
			c += q
		}
		p.Coeffs[i] = uint64(c)
	}
	return p, nil
}

// checkPoly returns ErrRingMismatch if p is not an element of r.
func (r *Ring) checkPoly(p Poly) error {
	if len(p.Coeffs) != r.degree || p.modulus != r.modulus {
		return fmt.Errorf("%w: element of Z_%d[X]/(X^%d+1) used in %v", ErrRingMismatch, p.modulus, len(p.Coeffs), r)
	}
	return nil
}

// checkPolys returns ErrRingMismatch if any of ps is not an element of r.
func (r *Ring) checkPolys(ps ...Poly) error {
	for _, p := range ps {
		if err := r.checkPoly(p); err != nil {
			return err
		}
	}
	return nil
}
