package polyring

import (
	"github.com/sp301415/ringswitch-prf/num"
	"github.com/tuneinsight/lattigo/v6/ring"
)

// mulSchoolbookAssign assigns pOut = p0 * p1 mod X^N + 1
// using the negacyclic schoolbook convolution.
func (r *Ring) mulSchoolbookAssign(p0, p1, pOut Poly) {
	acc := make([]uint64, r.degree)
	for i := 0; i < r.degree; i++ {
		for j := 0; j < r.degree; j++ {
			c := num.MulMod(p0.Coeffs[i], p1.Coeffs[j], r.modulus)
			if k := i + j; k < r.degree {
				acc[k] = num.AddMod(acc[k], c, r.modulus)
			} else {
				// X^N = -1
				acc[k-r.degree] = num.SubMod(acc[k-r.degree], c, r.modulus)
			}
		}
	}
	copy(pOut.Coeffs, acc)
}

// mulNTTAssign assigns pOut = p0 * p1 mod X^N + 1 using the NTT.
func (r *Ring) mulNTTAssign(p0, p1, pOut Poly) {
	p0NTT := r.toNTTPoly(p0)
	p1NTT := r.toNTTPoly(p1)

	r.nttRing.MForm(p0NTT, p0NTT)
	r.nttRing.MulCoeffsMontgomery(p0NTT, p1NTT, p0NTT)

	r.fromNTTPolyAssign(p0NTT, pOut)
}

// toNTTPoly returns the NTT of p as a lattigo polynomial.
func (r *Ring) toNTTPoly(p Poly) ring.Poly {
	pNTT := r.nttRing.NewPoly()
	copy(pNTT.Coeffs[0], p.Coeffs)
	r.nttRing.NTT(pNTT, pNTT)
	return pNTT
}

// fromNTTPolyAssign computes the inverse NTT of pNTT and assigns it to pOut.
// pNTT is overwritten.
func (r *Ring) fromNTTPolyAssign(pNTT ring.Poly, pOut Poly) {
	r.nttRing.INTT(pNTT, pNTT)
	for i := 0; i < r.degree; i++ {
		pOut.Coeffs[i] = pNTT.Coeffs[0][i] % r.modulus
	}
}
