package rsprf

import (
	"fmt"

	"github.com/sp301415/ringswitch-prf/csprng"
	"github.com/sp301415/ringswitch-prf/num"
	"github.com/sp301415/ringswitch-prf/polyring"
)

const (
	// publicKeyLabel separates the streams of the public matrices.
	publicKeyLabel = "RSPRF-PublicMatrix"
	// secretKeyLabel separates the stream of the secret key.
	secretKeyLabel = "RSPRF-SecretKey"
	// smallSecretKeyLabel separates the stream of the bounded secret key.
	smallSecretKeyLabel = "RSPRF-SmallSecretKey"

	// SmallSecretBound bounds the coefficients of GenSmallSecretKey.
	SmallSecretBound = 3
)

// SecretKey is the PRF key S, an M x L matrix over R_q.
type SecretKey struct {
	S polyring.Matrix
}

// PublicKey holds the public matrices A_0 and A_1, M x M matrices over R_q.
type PublicKey struct {
	A0 polyring.Matrix
	A1 polyring.Matrix
}

// Matrix returns A_1 if bit is set, and A_0 otherwise.
func (pk PublicKey) Matrix(bit bool) polyring.Matrix {
	if bit {
		return pk.A1
	}
	return pk.A0
}

// KeyGenerator generates PRF keys deterministically from a seed.
type KeyGenerator struct {
	Parameters Parameters
}

// NewKeyGenerator creates a new KeyGenerator.
func NewKeyGenerator(params Parameters) *KeyGenerator {
	return &KeyGenerator{
		Parameters: params,
	}
}

// GenSecretKey samples a uniform secret key from seed.
func (kg *KeyGenerator) GenSecretKey(seed []byte) SecretKey {
	ringQ := kg.Parameters.RingQ()
	S := ringQ.NewMatrix(kg.Parameters.M(), kg.Parameters.L())
	samplePolysAssign(csprng.NewUniformSampler(seed, secretKeyLabel), ringQ.Modulus(), S.Entries())
	return SecretKey{S: S}
}

// GenSmallSecretKey samples a secret key from seed,
// with coefficients uniform in [-SmallSecretBound, SmallSecretBound].
// Use GenSecretKey unless a short key is required.
func (kg *KeyGenerator) GenSmallSecretKey(seed []byte) SecretKey {
	ringQ := kg.Parameters.RingQ()
	q := ringQ.Modulus()
	S := ringQ.NewMatrix(kg.Parameters.M(), kg.Parameters.L())

	s := csprng.NewUniformSampler(seed, smallSecretKeyLabel)
	for _, p := range S.Entries() {
		for i := range p.Coeffs {
			c := s.SampleN(2*SmallSecretBound + 1)
			p.Coeffs[i] = num.SubMod(c%q, SmallSecretBound%q, q)
		}
	}
	return SecretKey{S: S}
}

// GenPublicKey samples uniform public matrices from seed.
// A_b is expanded from an AES-CTR stream with index b.
func (kg *KeyGenerator) GenPublicKey(seed []byte) PublicKey {
	ringQ := kg.Parameters.RingQ()
	M := kg.Parameters.M()

	A0 := ringQ.NewMatrix(M, M)
	samplePolysAssign(csprng.NewStreamSampler(seed, publicKeyLabel, 0), ringQ.Modulus(), A0.Entries())

	A1 := ringQ.NewMatrix(M, M)
	samplePolysAssign(csprng.NewStreamSampler(seed, publicKeyLabel, 1), ringQ.Modulus(), A1.Entries())

	return PublicKey{A0: A0, A1: A1}
}

// GenKeyPair samples a secret key and public matrices from seed.
func (kg *KeyGenerator) GenKeyPair(seed []byte) (SecretKey, PublicKey) {
	return kg.GenSecretKey(seed), kg.GenPublicKey(seed)
}

// GenerateKey validates params, and samples a secret key and public matrices from seed.
func GenerateKey(params Parameters, seed []byte) (SecretKey, PublicKey, error) {
	if err := params.Validate(); err != nil {
		return SecretKey{}, PublicKey{}, err
	}
	sk, pk := NewKeyGenerator(params).GenKeyPair(seed)
	return sk, pk, nil
}

// samplePolysAssign fills ps with uniform coefficients in [0, q),
// in order of polys and then coefficients.
func samplePolysAssign(s csprng.Sampler, q uint64, ps []polyring.Poly) {
	for _, p := range ps {
		for i := range p.Coeffs {
			p.Coeffs[i] = s.SampleN(q)
		}
	}
}

// checkKeys returns an error if the keys do not match params.
func checkKeys(params Parameters, pk PublicKey, sk SecretKey) error {
	M, L := params.M(), params.L()
	if err := checkMatrix(params.RingQ(), pk.A0, M, M); err != nil {
		return fmt.Errorf("public matrix A_0: %w", err)
	}
	if err := checkMatrix(params.RingQ(), pk.A1, M, M); err != nil {
		return fmt.Errorf("public matrix A_1: %w", err)
	}
	if err := checkMatrix(params.RingQ(), sk.S, M, L); err != nil {
		return fmt.Errorf("secret key: %w", err)
	}
	return nil
}

func checkMatrix(r *polyring.Ring, A polyring.Matrix, rows, cols int) error {
	if A.Degree() != r.Degree() || A.Modulus() != r.Modulus() {
		return fmt.Errorf("%w: matrix is not over %v", ErrRingMismatch, r)
	}
	if A.Rows() != rows || A.Cols() != cols {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrDimensionMismatch, A.Rows(), A.Cols(), rows, cols)
	}
	return nil
}
