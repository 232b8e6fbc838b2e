// Package ringswitch implements the map from Z_t[X]/(X^N + 1)
// to the smaller ring Z_t[X]/(X^N' + 1), where N' divides N.
//
// The map folds the N coefficients in N/N' blocks of length N':
//
//	y_i = sum_j (-1)^j x_{j*N' + i} mod t,
//
// which is the reduction of the coefficient polynomial of x modulo X^N' + 1.
// It is Z_t-linear, so it commutes with rounding up to ErrorBound(N, N').
package ringswitch

import (
	"fmt"

	"github.com/sp301415/ringswitch-prf/polyring"
)

// Switcher maps elements of ringIn to ringOut.
// Switcher is immutable, and safe for concurrent use.
type Switcher struct {
	ringIn  *polyring.Ring
	ringOut *polyring.Ring

	blocks int
}

// NewSwitcher creates a new Switcher from ringIn to ringOut.
// Both rings must share their modulus, and the degree of ringOut must divide the degree of ringIn.
func NewSwitcher(ringIn, ringOut *polyring.Ring) (*Switcher, error) {
	if ringIn.Modulus() != ringOut.Modulus() {
		return nil, fmt.Errorf("%w: modulus %d differs from %d", polyring.ErrRingMismatch, ringIn.Modulus(), ringOut.Modulus())
	}
	if ringIn.Degree()%ringOut.Degree() != 0 {
		return nil, fmt.Errorf("%w: degree %d does not divide %d", polyring.ErrRingMismatch, ringOut.Degree(), ringIn.Degree())
	}

	return &Switcher{
		ringIn:  ringIn,
		ringOut: ringOut,

		blocks: ringIn.Degree() / ringOut.Degree(),
	}, nil
}

// RingIn returns the input ring.
func (s *Switcher) RingIn() *polyring.Ring {
	return s.ringIn
}

// RingOut returns the output ring.
func (s *Switcher) RingOut() *polyring.Ring {
	return s.ringOut
}

// Blocks returns N / N'.
func (s *Switcher) Blocks() int {
	return s.blocks
}

// ErrorBound returns the bound on the discrepancy between
// switching then rounding, and rounding then switching.
func (s *Switcher) ErrorBound() uint64 {
	return ErrorBound(s.ringIn.Degree(), s.ringOut.Degree())
}

// ErrorBound returns floor((N/N' + 1) / 2).
//
// Each of the N/N' folded coefficients carries a rounding error in [-1/2, 1/2),
// and the rounding of the folded value carries one more.
// The discrepancy is an integer of magnitude at most (N/N' + 1) / 2.
func ErrorBound(N, NOut int) uint64 {
	return uint64(N/NOut+1) / 2
}

// Switch returns the image of p in ringOut.
func (s *Switcher) Switch(p polyring.Poly) (polyring.Poly, error) {
	pOut := s.ringOut.NewPoly()
	if err := s.SwitchAssign(p, pOut); err != nil {
		return polyring.Poly{}, err
	}
	return pOut, nil
}

// SwitchAssign assigns the image of p in ringOut to pOut.
func (s *Switcher) SwitchAssign(p, pOut polyring.Poly) error {
	if p.Degree() != s.ringIn.Degree() || p.Modulus() != s.ringIn.Modulus() {
		return fmt.Errorf("%w: input is not an element of %v", polyring.ErrRingMismatch, s.ringIn)
	}
	if pOut.Degree() != s.ringOut.Degree() || pOut.Modulus() != s.ringOut.Modulus() {
		return fmt.Errorf("%w: output is not an element of %v", polyring.ErrRingMismatch, s.ringOut)
	}
	s.switchAssign(p, pOut)
	return nil
}

func (s *Switcher) switchAssign(p, pOut polyring.Poly) {
	t := s.ringIn.Modulus()
	NOut := s.ringOut.Degree()

	for i := 0; i < NOut; i++ {
		var acc uint64
		for j := 0; j < s.blocks; j++ {
			c := p.Coeffs[j*NOut+i]
			// X^N' = -1 in the output ring.
			if j&1 == 0 {
				acc += c
				if acc >= t {
					acc -= t
				}
			} else {
				if acc < c {
					acc += t
				}
				acc -= c
			}
		}
		pOut.Coeffs[i] = acc
	}
}

// SwitchMatrix returns the entrywise image of A in ringOut.
func (s *Switcher) SwitchMatrix(A polyring.Matrix) (polyring.Matrix, error) {
	if A.Degree() != s.ringIn.Degree() || A.Modulus() != s.ringIn.Modulus() {
		return polyring.Matrix{}, fmt.Errorf("%w: matrix is not over %v", polyring.ErrRingMismatch, s.ringIn)
	}

	B := s.ringOut.NewMatrix(A.Rows(), A.Cols())
	in, out := A.Entries(), B.Entries()
	for i := range in {
		s.switchAssign(in[i], out[i])
	}
	return B, nil
}
