package rsprf

import (
	"fmt"

	"github.com/sp301415/ringswitch-prf/lwr"
	"github.com/sp301415/ringswitch-prf/num"
	"github.com/sp301415/ringswitch-prf/polyring"
	"github.com/sp301415/ringswitch-prf/ringswitch"
)

// ParametersLiteral is a structure for PRF parameters.
type ParametersLiteral struct {
	// N is the degree of the working ring R_q.
	// Must be a power of two.
	N int
	// Q is the modulus of the working ring R_q.
	// Must be a prime or a prime power.
	Q uint64

	// NOut is the degree of the output ring.
	// Must divide N.
	NOut int
	// P is the rounding modulus, which is also the modulus of the output ring.
	// Must satisfy 2 <= P < Q.
	P uint64

	// M is the dimension of the public matrices A_0 and A_1.
	M int
	// L is the number of columns of the secret key.
	// The secret key is an M x L matrix.
	L int

	// InputBits is the maximum bit length of an input.
	InputBits int
}

// Validate checks the literal, and returns an error wrapping ErrInvalidParameters
// if any constraint is violated.
func (p ParametersLiteral) Validate() error {
	switch {
	case !num.IsPowerOfTwo(p.N):
		return fmt.Errorf("%w: N = %d is not a power of two", ErrInvalidParameters, p.N)
	case p.NOut < 1 || p.N%p.NOut != 0:
		return fmt.Errorf("%w: NOut = %d does not divide N = %d", ErrInvalidParameters, p.NOut, p.N)
	case p.Q>>polyring.MaxModulusBits != 0:
		return fmt.Errorf("%w: Q = %d exceeds %d bits", ErrInvalidParameters, p.Q, polyring.MaxModulusBits)
	case !num.IsPrimePower(p.Q):
		return fmt.Errorf("%w: Q = %d is not a prime power", ErrInvalidParameters, p.Q)
	case p.P < 2 || p.P >= p.Q:
		return fmt.Errorf("%w: P = %d is not in [2, Q = %d)", ErrInvalidParameters, p.P, p.Q)
	case 2*ringswitch.ErrorBound(p.N, p.NOut) >= p.P:
		return fmt.Errorf("%w: switching error bound %d is not below half of P = %d", ErrInvalidParameters, ringswitch.ErrorBound(p.N, p.NOut), p.P)
	case p.M < 1 || p.L < 1:
		return fmt.Errorf("%w: M = %d and L = %d must be positive", ErrInvalidParameters, p.M, p.L)
	case p.InputBits < 1:
		return fmt.Errorf("%w: InputBits = %d must be positive", ErrInvalidParameters, p.InputBits)
	}
	return nil
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If there is any invalid parameter in the literal, it returns an error wrapping ErrInvalidParameters.
func (p ParametersLiteral) Compile() (Parameters, error) {
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}

	ringQ, err := polyring.NewRing(p.N, p.Q)
	if err != nil {
		return Parameters{}, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}

	ringP, err := polyring.NewRing(p.N, p.P)
	if err != nil {
		return Parameters{}, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}

	ringOut, err := polyring.NewRing(p.NOut, p.P)
	if err != nil {
		return Parameters{}, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}

	return Parameters{
		literal: p,

		ringQ:   ringQ,
		ringP:   ringP,
		ringOut: ringOut,

		roundingErrorBound: lwr.ErrorBound(p.Q, p.P),
		switchErrorBound:   ringswitch.ErrorBound(p.N, p.NOut),
	}, nil
}

// Parameters is a read-only structure for PRF parameters.
// It is safe for concurrent use.
type Parameters struct {
	literal ParametersLiteral

	// ringQ is the working ring R_q of degree N.
	ringQ *polyring.Ring
	// ringP is the rounded ring R_p of degree N.
	ringP *polyring.Ring
	// ringOut is the output ring of degree N'.
	ringOut *polyring.Ring

	// roundingErrorBound is ceil(Q / 2P).
	roundingErrorBound uint64
	// switchErrorBound is floor((N/N' + 1) / 2).
	switchErrorBound uint64
}

// Validate returns an error wrapping ErrInvalidParameters
// if p was not obtained by Compile, or holds invalid values.
func (p Parameters) Validate() error {
	if p.ringQ == nil || p.ringP == nil || p.ringOut == nil {
		return fmt.Errorf("%w: parameters are not compiled", ErrInvalidParameters)
	}
	return p.literal.Validate()
}

// Literal returns the ParametersLiteral p was compiled from.
func (p Parameters) Literal() ParametersLiteral {
	return p.literal
}

// N returns the degree of the working ring.
func (p Parameters) N() int {
	return p.literal.N
}

// Q returns the modulus of the working ring.
func (p Parameters) Q() uint64 {
	return p.literal.Q
}

// NOut returns the degree of the output ring.
func (p Parameters) NOut() int {
	return p.literal.NOut
}

// P returns the rounding modulus.
func (p Parameters) P() uint64 {
	return p.literal.P
}

// M returns the dimension of the public matrices.
func (p Parameters) M() int {
	return p.literal.M
}

// L returns the number of columns of the secret key.
func (p Parameters) L() int {
	return p.literal.L
}

// InputBits returns the maximum bit length of an input.
func (p Parameters) InputBits() int {
	return p.literal.InputBits
}

// OutputSize returns the number of coefficients of an output.
func (p Parameters) OutputSize() int {
	return p.literal.M * p.literal.L * p.literal.NOut
}

// RingQ returns the working ring R_q.
func (p Parameters) RingQ() *polyring.Ring {
	return p.ringQ
}

// RingP returns the rounded ring R_p.
func (p Parameters) RingP() *polyring.Ring {
	return p.ringP
}

// RingOut returns the output ring.
func (p Parameters) RingOut() *polyring.Ring {
	return p.ringOut
}

// RoundingErrorBound returns ceil(Q / 2P), the rounding error bound in Z_q.
func (p Parameters) RoundingErrorBound() uint64 {
	return p.roundingErrorBound
}

// SwitchErrorBound returns the bound on the discrepancy, in Z_p,
// between rounding after and before ring switching.
func (p Parameters) SwitchErrorBound() uint64 {
	return p.switchErrorBound
}
