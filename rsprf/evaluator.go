package rsprf

import (
	"fmt"

	"github.com/sp301415/ringswitch-prf/lwr"
	"github.com/sp301415/ringswitch-prf/polyring"
	"github.com/sp301415/ringswitch-prf/ringswitch"
)

// Output is a PRF output, an M x L matrix over the output ring Z_p[X]/(X^N' + 1).
type Output struct {
	Value polyring.Matrix
}

// Coeffs returns the coefficients of o,
// entries in row-major order and coefficients in increasing degree.
func (o Output) Coeffs() []uint64 {
	entries := o.Value.Entries()
	coeffs := make([]uint64, 0, len(entries)*o.Value.Degree())
	for _, p := range entries {
		coeffs = append(coeffs, p.Coeffs...)
	}
	return coeffs
}

// Equal reports whether o and o0 are equal.
func (o Output) Equal(o0 Output) bool {
	return o.Value.Equal(o0.Value)
}

// Evaluator evaluates the PRF under a fixed key.
// Evaluator is safe for concurrent use.
type Evaluator struct {
	params Parameters
	pk     PublicKey
	sk     SecretKey

	// a0NTT and a1NTT are A_0 and A_1 transformed once for the fold.
	a0NTT polyring.MatrixNTT
	a1NTT polyring.MatrixNTT

	lwrSampler *lwr.Sampler
	switcher   *ringswitch.Switcher
}

// NewEvaluator creates a new Evaluator.
// It returns an error if params is invalid, or the keys do not match params.
// The keys are copied.
func NewEvaluator(params Parameters, pk PublicKey, sk SecretKey) (*Evaluator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := checkKeys(params, pk, sk); err != nil {
		return nil, err
	}

	lwrSampler, err := lwr.NewSampler(params.RingQ(), params.RingP())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}

	switcher, err := ringswitch.NewSwitcher(params.RingP(), params.RingOut())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}

	a0NTT, err := params.RingQ().ToMatrixNTT(pk.A0)
	if err != nil {
		return nil, err
	}
	a1NTT, err := params.RingQ().ToMatrixNTT(pk.A1)
	if err != nil {
		return nil, err
	}

	return &Evaluator{
		params: params,
		pk:     PublicKey{A0: pk.A0.Copy(), A1: pk.A1.Copy()},
		sk:     SecretKey{S: sk.S.Copy()},

		a0NTT: a0NTT,
		a1NTT: a1NTT,

		lwrSampler: lwrSampler,
		switcher:   switcher,
	}, nil
}

// Parameters returns the parameters of e.
func (e *Evaluator) Parameters() Parameters {
	return e.params
}

// PublicKey returns a copy of the public matrices of e.
func (e *Evaluator) PublicKey() PublicKey {
	return PublicKey{A0: e.pk.A0.Copy(), A1: e.pk.A1.Copy()}
}

// SecretKey returns a copy of the secret key of e.
func (e *Evaluator) SecretKey() SecretKey {
	return SecretKey{S: e.sk.S.Copy()}
}

// Evaluate returns F_S(x) = Switch(round_p(A_{x_1} * ... * A_{x_k} * S)).
// Inputs shorter than InputBits are accepted.
func (e *Evaluator) Evaluate(x Input) (Output, error) {
	R, err := e.EvaluateRounded(x)
	if err != nil {
		return Output{}, err
	}

	out, err := e.switcher.SwitchMatrix(R)
	if err != nil {
		return Output{}, err
	}
	return Output{Value: out}, nil
}

// EvaluateRounded returns round_p(A_{x_1} * ... * A_{x_k} * S),
// the value over R_p before ring switching.
func (e *Evaluator) EvaluateRounded(x Input) (polyring.Matrix, error) {
	if x.Len() > e.params.InputBits() {
		return polyring.Matrix{}, fmt.Errorf("%w: %d bits, maximum is %d", ErrInputTooLong, x.Len(), e.params.InputBits())
	}

	ringQ := e.params.RingQ()

	var err error
	P := ringQ.Identity(e.params.M())
	for i := 0; i < x.Len(); i++ {
		A := e.a0NTT
		if x.Bit(i) {
			A = e.a1NTT
		}
		if P, err = ringQ.MatMulNTT(P, A); err != nil {
			return polyring.Matrix{}, err
		}
	}

	return e.lwrSampler.Sample(P, e.sk.S)
}

// Evaluate is a shorthand for NewEvaluator followed by Evaluator.Evaluate.
func Evaluate(params Parameters, pk PublicKey, sk SecretKey, x Input) (Output, error) {
	e, err := NewEvaluator(params, pk, sk)
	if err != nil {
		return Output{}, err
	}
	return e.Evaluate(x)
}
