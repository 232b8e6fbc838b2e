package polyring_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/sp301415/ringswitch-prf/csprng"
	"github.com/sp301415/ringswitch-prf/polyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPoly(t *testing.T, r *polyring.Ring, s csprng.Sampler) polyring.Poly {
	t.Helper()
	p := r.NewPoly()
	for i := range p.Coeffs {
		p.Coeffs[i] = s.SampleN(r.Modulus())
	}
	return p
}

func randomMatrix(t *testing.T, r *polyring.Ring, s csprng.Sampler, rows, cols int) polyring.Matrix {
	t.Helper()
	A := r.NewMatrix(rows, cols)
	for _, p := range A.Entries() {
		p.CopyFrom(randomPoly(t, r, s))
	}
	return A
}

func TestNewRing(t *testing.T) {
	_, err := polyring.NewRing(3, 17)
	assert.Error(t, err)

	_, err = polyring.NewRing(4, 1)
	assert.Error(t, err)

	_, err = polyring.NewRing(4, 1<<62)
	assert.Error(t, err)

	r, err := polyring.NewRing(16, 12289)
	require.NoError(t, err)
	assert.True(t, r.HasNTT())
	assert.Equal(t, "Z_12289[X]/(X^16+1)", r.String())

	r, err = polyring.NewRingWithoutNTT(16, 12289)
	require.NoError(t, err)
	assert.False(t, r.HasNTT())

	r, err = polyring.NewRing(8, 1<<10)
	require.NoError(t, err)
	assert.False(t, r.HasNTT())
}

func TestPolyOps(t *testing.T) {
	r, err := polyring.NewRing(4, 17)
	require.NoError(t, err)

	p0, err := r.NewPolyFromCoeffs([]int64{1, -2, 3, 20})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 15, 3, 3}, p0.Coeffs)

	p1, err := r.NewPolyFromCoeffs([]int64{0, 1, 0, 0})
	require.NoError(t, err)

	t.Run("Add", func(t *testing.T) {
		p, err := r.Add(p0, p1)
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 16, 3, 3}, p.Coeffs)
	})

	t.Run("Sub", func(t *testing.T) {
		p, err := r.Sub(p1, p0)
		require.NoError(t, err)
		assert.Equal(t, []uint64{16, 3, 14, 14}, p.Coeffs)
	})

	t.Run("Neg", func(t *testing.T) {
		p, err := r.Neg(p0)
		require.NoError(t, err)
		assert.Equal(t, []uint64{16, 2, 14, 14}, p.Coeffs)
	})

	t.Run("ScalarMul", func(t *testing.T) {
		p, err := r.ScalarMul(p0, 3)
		require.NoError(t, err)
		assert.Equal(t, []uint64{3, 11, 9, 9}, p.Coeffs)
	})

	t.Run("MulByX", func(t *testing.T) {
		// X * (1 - 2X + 3X^2 + 3X^3) = -3 + X - 2X^2 + 3X^3
		p, err := r.Mul(p0, p1)
		require.NoError(t, err)
		assert.Equal(t, []uint64{14, 1, 15, 3}, p.Coeffs)
	})

	t.Run("Negacyclic", func(t *testing.T) {
		x3, err := r.NewPolyFromCoeffs([]int64{0, 0, 0, 1})
		require.NoError(t, err)
		p, err := r.Mul(p1, x3)
		require.NoError(t, err)
		assert.Equal(t, []uint64{16, 0, 0, 0}, p.Coeffs)
	})

	t.Run("MulAddAssign", func(t *testing.T) {
		pOut := p0.Copy()
		require.NoError(t, r.MulAddAssign(p0, p1, pOut))
		want, err := r.Mul(p0, p1)
		require.NoError(t, err)
		want, err = r.Add(want, p0)
		require.NoError(t, err)
		assert.True(t, want.Equal(pOut))
	})

	t.Run("RingMismatch", func(t *testing.T) {
		r0, err := polyring.NewRing(4, 13)
		require.NoError(t, err)
		_, err = r.Add(p0, r0.NewPoly())
		assert.ErrorIs(t, err, polyring.ErrRingMismatch)
		_, err = r.Mul(p0, r0.NewPoly())
		assert.ErrorIs(t, err, polyring.ErrRingMismatch)

		r1, err := polyring.NewRing(8, 17)
		require.NoError(t, err)
		_, err = r.Sub(p0, r1.NewPoly())
		assert.ErrorIs(t, err, polyring.ErrRingMismatch)
	})
}

func TestMulNTT(t *testing.T) {
	s := csprng.NewUniformSampler([]byte("polyring"), "TestMulNTT")

	for _, tc := range []struct {
		N int
		Q uint64
	}{
		{16, 12289},
		{256, 8380417},
		{1024, 2013265921},
	} {
		rNTT, err := polyring.NewRing(tc.N, tc.Q)
		require.NoError(t, err)
		require.True(t, rNTT.HasNTT())

		rSchoolbook, err := polyring.NewRingWithoutNTT(tc.N, tc.Q)
		require.NoError(t, err)

		t.Run(rNTT.String(), func(t *testing.T) {
			p0, p1 := randomPoly(t, rNTT, s), randomPoly(t, rNTT, s)

			want, err := rSchoolbook.Mul(p0, p1)
			require.NoError(t, err)
			got, err := rNTT.Mul(p0, p1)
			require.NoError(t, err)
			assert.Equal(t, want.Coeffs, got.Coeffs)

			A := randomMatrix(t, rNTT, s, 2, 3)
			B := randomMatrix(t, rNTT, s, 3, 2)
			CWant, err := rSchoolbook.MatMul(A, B)
			require.NoError(t, err)
			C, err := rNTT.MatMul(A, B)
			require.NoError(t, err)
			assert.True(t, CWant.Equal(C))
		})
	}
}

func TestMatMulNTT(t *testing.T) {
	s := csprng.NewUniformSampler([]byte("polyring"), "TestMatMulNTT")

	for _, tc := range []struct {
		N int
		Q uint64
	}{
		{4, 17},
		{16, 12289},
		{256, 8380417},
	} {
		r, err := polyring.NewRing(tc.N, tc.Q)
		require.NoError(t, err)

		t.Run(r.String(), func(t *testing.T) {
			A := randomMatrix(t, r, s, 3, 3)
			B := randomMatrix(t, r, s, 3, 2)

			BNTT, err := r.ToMatrixNTT(B)
			require.NoError(t, err)
			assert.True(t, B.Equal(BNTT.Matrix()))

			want, err := r.MatMul(A, B)
			require.NoError(t, err)

			for i := 0; i < 2; i++ {
				got, err := r.MatMulNTT(A, BNTT)
				require.NoError(t, err)
				assert.True(t, want.Equal(got))
			}

			_, err = r.MatMulNTT(B, BNTT)
			assert.ErrorIs(t, err, polyring.ErrDimensionMismatch)

			_, err = r.MatMulNTT(A, polyring.MatrixNTT{})
			assert.ErrorIs(t, err, polyring.ErrRingMismatch)
		})
	}
}

func TestRingClosure(t *testing.T) {
	r, err := polyring.NewRing(16, 12289)
	require.NoError(t, err)
	q := r.Modulus()

	inRing := func(p polyring.Poly) bool {
		for _, c := range p.Coeffs {
			if c >= q {
				return false
			}
		}
		return len(p.Coeffs) == r.Degree()
	}

	genPoly := gen.SliceOfN(r.Degree(), gen.UInt64Range(0, q-1))
	toPoly := func(c []uint64) polyring.Poly {
		p := r.NewPoly()
		copy(p.Coeffs, c)
		return p
	}

	properties := gopter.NewProperties(nil)

	properties.Property("Add", prop.ForAll(func(c0, c1 []uint64) bool {
		p, err := r.Add(toPoly(c0), toPoly(c1))
		return err == nil && inRing(p)
	}, genPoly, genPoly))

	properties.Property("Sub", prop.ForAll(func(c0, c1 []uint64) bool {
		p, err := r.Sub(toPoly(c0), toPoly(c1))
		return err == nil && inRing(p)
	}, genPoly, genPoly))

	properties.Property("Mul", prop.ForAll(func(c0, c1 []uint64) bool {
		p, err := r.Mul(toPoly(c0), toPoly(c1))
		return err == nil && inRing(p)
	}, genPoly, genPoly))

	properties.Property("MulCommutes", prop.ForAll(func(c0, c1 []uint64) bool {
		p0, err0 := r.Mul(toPoly(c0), toPoly(c1))
		p1, err1 := r.Mul(toPoly(c1), toPoly(c0))
		return err0 == nil && err1 == nil && p0.Equal(p1)
	}, genPoly, genPoly))

	properties.TestingRun(t)
}

func TestMatrix(t *testing.T) {
	r, err := polyring.NewRing(4, 17)
	require.NoError(t, err)
	s := csprng.NewUniformSampler([]byte("polyring"), "TestMatrix")

	t.Run("DimensionLaw", func(t *testing.T) {
		properties := gopter.NewProperties(nil)
		properties.Property("MatMul", prop.ForAll(func(a, b, c int) bool {
			C, err := r.MatMul(r.NewMatrix(a, b), r.NewMatrix(b, c))
			return err == nil && C.Rows() == a && C.Cols() == c
		}, gen.IntRange(1, 5), gen.IntRange(1, 5), gen.IntRange(1, 5)))
		properties.TestingRun(t)

		_, err := r.MatMul(r.NewMatrix(2, 3), r.NewMatrix(2, 3))
		assert.ErrorIs(t, err, polyring.ErrDimensionMismatch)

		_, err = r.MatAdd(r.NewMatrix(2, 3), r.NewMatrix(3, 2))
		assert.ErrorIs(t, err, polyring.ErrDimensionMismatch)
	})

	t.Run("Identity", func(t *testing.T) {
		A := randomMatrix(t, r, s, 3, 2)
		IA, err := r.MatMul(r.Identity(3), A)
		require.NoError(t, err)
		assert.True(t, A.Equal(IA))
	})

	t.Run("Distributive", func(t *testing.T) {
		A := randomMatrix(t, r, s, 2, 3)
		B := randomMatrix(t, r, s, 3, 2)
		C := randomMatrix(t, r, s, 3, 2)

		BC, err := r.MatAdd(B, C)
		require.NoError(t, err)
		lhs, err := r.MatMul(A, BC)
		require.NoError(t, err)

		AB, err := r.MatMul(A, B)
		require.NoError(t, err)
		AC, err := r.MatMul(A, C)
		require.NoError(t, err)
		rhs, err := r.MatAdd(AB, AC)
		require.NoError(t, err)

		assert.True(t, lhs.Equal(rhs))
	})

	t.Run("NewMatrixFromPolys", func(t *testing.T) {
		ps := []polyring.Poly{randomPoly(t, r, s), randomPoly(t, r, s)}
		A, err := r.NewMatrixFromPolys(1, 2, ps)
		require.NoError(t, err)
		assert.True(t, ps[1].Equal(A.At(0, 1)))

		_, err = r.NewMatrixFromPolys(2, 2, ps)
		assert.ErrorIs(t, err, polyring.ErrDimensionMismatch)
	})

	t.Run("RingMismatch", func(t *testing.T) {
		r0, err := polyring.NewRing(4, 13)
		require.NoError(t, err)
		_, err = r.MatMul(r.NewMatrix(2, 2), r0.NewMatrix(2, 2))
		assert.ErrorIs(t, err, polyring.ErrRingMismatch)
	})
}

func TestRound(t *testing.T) {
	for _, tc := range []struct {
		N    int
		Q, P uint64
	}{
		{4, 17, 5},
		{16, 12289, 1 << 4},
		{64, 8380417, 1 << 8},
	} {
		rQ, err := polyring.NewRing(tc.N, tc.Q)
		require.NoError(t, err)
		rP, err := polyring.NewRing(tc.N, tc.P)
		require.NoError(t, err)

		t.Run(rQ.String(), func(t *testing.T) {
			q, p := int64(tc.Q), int64(tc.P)
			properties := gopter.NewProperties(nil)
			properties.Property("Bounded", prop.ForAll(func(c []uint64) bool {
				x := rQ.NewPoly()
				copy(x.Coeffs, c)
				y, err := rQ.Round(x, rP)
				if err != nil {
					return false
				}
				for i := range c {
					// y * q / p - x, scaled by p and centered mod p * q.
					d := (int64(y.Coeffs[i])*q - p*int64(c[i])) % (p * q)
					if d < 0 {
						d += p * q
					}
					if d > p*q/2 {
						d -= p * q
					}
					if d < 0 {
						d = -d
					}
					if 2*d > q || y.Coeffs[i] >= tc.P {
						return false
					}
				}
				return true
			}, gen.SliceOfN(tc.N, gen.UInt64Range(0, tc.Q-1))))
			properties.TestingRun(t)
		})
	}

	t.Run("Target", func(t *testing.T) {
		rQ, err := polyring.NewRing(4, 17)
		require.NoError(t, err)
		rBig, err := polyring.NewRing(4, 32)
		require.NoError(t, err)
		rWide, err := polyring.NewRing(8, 5)
		require.NoError(t, err)

		_, err = rQ.Round(rQ.NewPoly(), rBig)
		assert.ErrorIs(t, err, polyring.ErrRingMismatch)
		_, err = rQ.MatRound(rQ.NewMatrix(1, 1), rWide)
		assert.ErrorIs(t, err, polyring.ErrRingMismatch)
	})
}

func TestCentered(t *testing.T) {
	r, err := polyring.NewRing(4, 17)
	require.NoError(t, err)

	p, err := r.NewPolyFromCoeffs([]int64{0, 8, 9, -3})
	require.NoError(t, err)

	c, err := r.Centered(p)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 8, -8, -3}, c)

	norm, err := r.InfNorm(p)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), norm)
}
