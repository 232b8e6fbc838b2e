package polyring

import (
	"github.com/sp301415/ringswitch-prf/num"
)

// Add returns pOut = p0 + p1.
func (r *Ring) Add(p0, p1 Poly) (Poly, error) {
	pOut := r.NewPoly()
	if err := r.AddAssign(p0, p1, pOut); err != nil {
		return Poly{}, err
	}
	return pOut, nil
}

// AddAssign assigns pOut = p0 + p1.
func (r *Ring) AddAssign(p0, p1, pOut Poly) error {
	if err := r.checkPolys(p0, p1, pOut); err != nil {
		return err
	}
	r.addAssign(p0, p1, pOut)
	return nil
}

func (r *Ring) addAssign(p0, p1, pOut Poly) {
	for i := 0; i < r.degree; i++ {
		pOut.Coeffs[i] = num.AddMod(p0.Coeffs[i], p1.Coeffs[i], r.modulus)
	}
}

// Sub returns pOut = p0 - p1.
func (r *Ring) Sub(p0, p1 Poly) (Poly, error) {
	pOut := r.NewPoly()
	if err := r.SubAssign(p0, p1, pOut); err != nil {
		return Poly{}, err
	}
	return pOut, nil
}

// SubAssign assigns pOut = p0 - p1.
func (r *Ring) SubAssign(p0, p1, pOut Poly) error {
	if err := r.checkPolys(p0, p1, pOut); err != nil {
		return err
	}
	for i := 0; i < r.degree; i++ {
		pOut.Coeffs[i] = num.SubMod(p0.Coeffs[i], p1.Coeffs[i], r.modulus)
	}
	return nil
}

// Neg returns pOut = -p.
func (r *Ring) Neg(p Poly) (Poly, error) {
	pOut := r.NewPoly()
	if err := r.NegAssign(p, pOut); err != nil {
		return Poly{}, err
	}
	return pOut, nil
}

// NegAssign assigns pOut = -p.
func (r *Ring) NegAssign(p, pOut Poly) error {
	if err := r.checkPolys(p, pOut); err != nil {
		return err
	}
	for i := 0; i < r.degree; i++ {
		pOut.Coeffs[i] = num.SubMod(0, p.Coeffs[i], r.modulus)
	}
	return nil
}

// ScalarMul returns pOut = c * p.
func (r *Ring) ScalarMul(p Poly, c uint64) (Poly, error) {
	pOut := r.NewPoly()
	if err := r.ScalarMulAssign(p, c, pOut); err != nil {
		return Poly{}, err
	}
	return pOut, nil
}

// ScalarMulAssign assigns pOut = c * p.
func (r *Ring) ScalarMulAssign(p Poly, c uint64, pOut Poly) error {
	if err := r.checkPolys(p, pOut); err != nil {
		return err
	}
	c %= r.modulus
	for i := 0; i < r.degree; i++ {
		pOut.Coeffs[i] = num.MulMod(p.Coeffs[i], c, r.modulus)
	}
	return nil
}

// Mul returns pOut = p0 * p1 mod X^N + 1.
func (r *Ring) Mul(p0, p1 Poly) (Poly, error) {
	pOut := r.NewPoly()
	if err := r.MulAssign(p0, p1, pOut); err != nil {
		return Poly{}, err
	}
	return pOut, nil
}

// MulAssign assigns pOut = p0 * p1 mod X^N + 1.
// pOut may alias p0 or p1.
func (r *Ring) MulAssign(p0, p1, pOut Poly) error {
	if err := r.checkPolys(p0, p1, pOut); err != nil {
		return err
	}
	if r.nttRing != nil {
		r.mulNTTAssign(p0, p1, pOut)
	} else {
		r.mulSchoolbookAssign(p0, p1, pOut)
	}
	return nil
}

// MulAddAssign assigns pOut += p0 * p1 mod X^N + 1.
func (r *Ring) MulAddAssign(p0, p1, pOut Poly) error {
	if err := r.checkPolys(p0, p1, pOut); err != nil {
		return err
	}
	prod := r.NewPoly()
	if r.nttRing != nil {
		r.mulNTTAssign(p0, p1, prod)
	} else {
		r.mulSchoolbookAssign(p0, p1, prod)
	}
	r.addAssign(pOut, prod, pOut)
	return nil
}
