package polyring

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/ring"
)

// MatAdd returns A + B.
// A and B must have the same dimensions.
func (r *Ring) MatAdd(A, B Matrix) (Matrix, error) {
	if err := r.checkMatrix(A); err != nil {
		return Matrix{}, err
	}
	if err := r.checkMatrix(B); err != nil {
		return Matrix{}, err
	}
	if A.rows != B.rows || A.cols != B.cols {
		return Matrix{}, fmt.Errorf("%w: cannot add %dx%d and %dx%d", ErrDimensionMismatch, A.rows, A.cols, B.rows, B.cols)
	}

	C := r.NewMatrix(A.rows, A.cols)
	for i := range C.entries {
		r.addAssign(A.entries[i], B.entries[i], C.entries[i])
	}
	return C, nil
}

// MatMul returns A * B.
// The number of columns of A must equal the number of rows of B.
func (r *Ring) MatMul(A, B Matrix) (Matrix, error) {
	if err := r.checkMatrix(A); err != nil {
		return Matrix{}, err
	}
	if err := r.checkMatrix(B); err != nil {
		return Matrix{}, err
	}
	if A.cols != B.rows {
		return Matrix{}, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d", ErrDimensionMismatch, A.rows, A.cols, B.rows, B.cols)
	}

	C := r.NewMatrix(A.rows, B.cols)
	if r.nttRing != nil {
		r.matMulNTTAssign(A, B, C)
	} else {
		r.matMulSchoolbookAssign(A, B, C)
	}
	return C, nil
}

// matMulSchoolbookAssign assigns C = A * B, multiplying entries by schoolbook convolution.
func (r *Ring) matMulSchoolbookAssign(A, B, C Matrix) {
	prod := r.NewPoly()
	for i := 0; i < A.rows; i++ {
		for j := 0; j < B.cols; j++ {
			c := C.At(i, j)
			for k := 0; k < A.cols; k++ {
				r.mulSchoolbookAssign(A.At(i, k), B.At(k, j), prod)
				r.addAssign(c, prod, c)
			}
		}
	}
}

// matMulNTTAssign assigns C = A * B.
// Every entry of A and B is transformed once,
// and each entry of C is accumulated in the NTT domain before a single inverse NTT.
func (r *Ring) matMulNTTAssign(A, B, C Matrix) {
	r.matMulTransformedAssign(A, B, r.toNTTPolys(B), C)
}

// toNTTPolys returns the NTT of every entry of B.
func (r *Ring) toNTTPolys(B Matrix) []ring.Poly {
	BNTT := make([]ring.Poly, len(B.entries))
	for i := range B.entries {
		BNTT[i] = r.toNTTPoly(B.entries[i])
	}
	return BNTT
}

// matMulTransformedAssign assigns C = A * B, where BNTT holds the NTT of the entries of B.
func (r *Ring) matMulTransformedAssign(A, B Matrix, BNTT []ring.Poly, C Matrix) {
	ANTT := make([]ring.Poly, len(A.entries))
	for i := range A.entries {
		ANTT[i] = r.toNTTPoly(A.entries[i])
		r.nttRing.MForm(ANTT[i], ANTT[i])
	}

	acc := r.nttRing.NewPoly()
	for i := 0; i < A.rows; i++ {
		for j := 0; j < B.cols; j++ {
			acc.Zero()
			for k := 0; k < A.cols; k++ {
				r.nttRing.MulCoeffsMontgomeryThenAdd(ANTT[i*A.cols+k], BNTT[k*B.cols+j], acc)
			}
			r.fromNTTPolyAssign(acc, C.At(i, j))
		}
	}
}

// MatRound returns the entrywise rounding of A to the modulus of ringOut.
func (r *Ring) MatRound(A Matrix, ringOut *Ring) (Matrix, error) {
	if err := r.checkMatrix(A); err != nil {
		return Matrix{}, err
	}
	if err := r.checkRoundTarget(ringOut); err != nil {
		return Matrix{}, err
	}

	B := ringOut.NewMatrix(A.rows, A.cols)
	for i := range A.entries {
		r.roundAssign(A.entries[i], ringOut, B.entries[i])
	}
	return B, nil
}
