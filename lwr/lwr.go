// Package lwr implements the Learning With Rounding map
// (A, S) -> round(p/q * A * S) over polynomial rings.
package lwr

import (
	"fmt"

	"github.com/sp301415/ringswitch-prf/polyring"
)

// Sampler computes LWR samples from R_q to R_p.
// Rounding takes the role of the error term: no noise is added.
// Sampler is immutable, and safe for concurrent use.
type Sampler struct {
	ringQ *polyring.Ring
	ringP *polyring.Ring
}

// NewSampler creates a new Sampler rounding from ringQ to ringP.
// Both rings must have the same degree, and p < q.
func NewSampler(ringQ, ringP *polyring.Ring) (*Sampler, error) {
	if ringQ.Degree() != ringP.Degree() {
		return nil, fmt.Errorf("%w: degree %d differs from %d", polyring.ErrRingMismatch, ringQ.Degree(), ringP.Degree())
	}
	if ringP.Modulus() >= ringQ.Modulus() {
		return nil, fmt.Errorf("%w: rounding modulus %d is not smaller than %d", polyring.ErrRingMismatch, ringP.Modulus(), ringQ.Modulus())
	}

	return &Sampler{
		ringQ: ringQ,
		ringP: ringP,
	}, nil
}

// RingQ returns the ring the samples are computed in.
func (s *Sampler) RingQ() *polyring.Ring {
	return s.ringQ
}

// RingP returns the ring the samples are rounded to.
func (s *Sampler) RingP() *polyring.Ring {
	return s.ringP
}

// ErrorBound returns ceil(q / 2p), the maximum distance in Z_q
// between a coefficient x and the lift round(x) * q / p of its rounding.
func (s *Sampler) ErrorBound() uint64 {
	return ErrorBound(s.ringQ.Modulus(), s.ringP.Modulus())
}

// ErrorBound returns ceil(q / 2p).
func ErrorBound(q, p uint64) uint64 {
	return (q + 2*p - 1) / (2 * p)
}

// Sample returns round(p/q * A * S).
// The full product A * S is computed in R_q before rounding.
func (s *Sampler) Sample(A, S polyring.Matrix) (polyring.Matrix, error) {
	AS, err := s.ringQ.MatMul(A, S)
	if err != nil {
		return polyring.Matrix{}, err
	}
	return s.Round(AS)
}

// Round returns the entrywise rounding of A from R_q to R_p.
func (s *Sampler) Round(A polyring.Matrix) (polyring.Matrix, error) {
	return s.ringQ.MatRound(A, s.ringP)
}

// RoundPoly returns the rounding of p from R_q to R_p.
func (s *Sampler) RoundPoly(p polyring.Poly) (polyring.Poly, error) {
	return s.ringQ.Round(p, s.ringP)
}
