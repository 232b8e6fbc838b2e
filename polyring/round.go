package polyring

import (
	"fmt"

	"github.com/sp301415/ringswitch-prf/num"
)

// Round returns the rounding of p from modulus Q to the modulus P of ringOut,
// i.e. round(P/Q * c) mod P for each coefficient c.
// ringOut must have the same degree and a smaller modulus.
func (r *Ring) Round(p Poly, ringOut *Ring) (Poly, error) {
	pOut := ringOut.NewPoly()
	if err := r.RoundAssign(p, ringOut, pOut); err != nil {
		return Poly{}, err
	}
	return pOut, nil
}

// RoundAssign assigns pOut = round(P/Q * p) mod P, where pOut is an element of ringOut.
func (r *Ring) RoundAssign(p Poly, ringOut *Ring, pOut Poly) error {
	if err := r.checkRoundTarget(ringOut); err != nil {
		return err
	}
	if err := r.checkPoly(p); err != nil {
		return err
	}
	if err := ringOut.checkPoly(pOut); err != nil {
		return err
	}
	r.roundAssign(p, ringOut, pOut)
	return nil
}

func (r *Ring) roundAssign(p Poly, ringOut *Ring, pOut Poly) {
	for i := 0; i < r.degree; i++ {
		pOut.Coeffs[i] = num.RoundMod(p.Coeffs[i], r.modulus, ringOut.modulus)
	}
}

// checkRoundTarget returns ErrRingMismatch if ringOut cannot be a rounding target of r.
func (r *Ring) checkRoundTarget(ringOut *Ring) error {
	if ringOut.degree != r.degree {
		return fmt.Errorf("%w: cannot round %v to %v", ErrRingMismatch, r, ringOut)
	}
	if ringOut.modulus >= r.modulus {
		return fmt.Errorf("%w: rounding target %v has no smaller modulus than %v", ErrRingMismatch, ringOut, r)
	}
	return nil
}

// Centered returns the coefficients of p as representatives in (-Q/2, Q/2].
func (r *Ring) Centered(p Poly) ([]int64, error) {
	if err := r.checkPoly(p); err != nil {
		return nil, err
	}

	c := make([]int64, r.degree)
	for i := 0; i < r.degree; i++ {
		c[i] = num.Centered(p.Coeffs[i], r.modulus)
	}
	return c, nil
}

// InfNorm returns the infinity norm of p, using centered representatives.
func (r *Ring) InfNorm(p Poly) (uint64, error) {
	c, err := r.Centered(p)
	if err != nil {
		return 0, err
	}

	var norm uint64
	for _, ci := range c {
		if ci < 0 {
			ci = -ci
		}
		norm = max(norm, uint64(ci))
	}
	return norm, nil
}
