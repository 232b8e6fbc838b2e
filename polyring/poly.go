package polyring

import "slices"

// Poly is an element of Z_q[X]/(X^N + 1).
// Coefficients are always kept in [0, Q).
type Poly struct {
	Coeffs []uint64

	modulus uint64
}

// Degree returns the degree N of the ring of p.
func (p Poly) Degree() int {
	return len(p.Coeffs)
}

// Modulus returns the modulus Q of the ring of p.
func (p Poly) Modulus() uint64 {
	return p.modulus
}

// Copy returns a deep copy of p.
func (p Poly) Copy() Poly {
	return Poly{
		Coeffs:  slices.Clone(p.Coeffs),
		modulus: p.modulus,
	}
}

// CopyFrom copies the coefficients of p0 to p.
// Both must have the same degree.
func (p Poly) CopyFrom(p0 Poly) {
	copy(p.Coeffs, p0.Coeffs)
}

// Equal reports whether p and p0 are the same element of the same ring.
func (p Poly) Equal(p0 Poly) bool {
	return p.modulus == p0.modulus && slices.Equal(p.Coeffs, p0.Coeffs)
}

// Clear sets p to zero.
func (p Poly) Clear() {
	clear(p.Coeffs)
}
