package polyring

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/ring"
)

// MatrixNTT is a Matrix kept together with the NTT of its entries,
// for repeated use as the right operand of MatMulNTT.
// MatrixNTT is read-only, and safe for concurrent use.
type MatrixNTT struct {
	matrix Matrix

	// entriesNTT is nil if the ring has no NTT.
	entriesNTT []ring.Poly
}

// ToMatrixNTT transforms every entry of B once.
// B is copied.
func (r *Ring) ToMatrixNTT(B Matrix) (MatrixNTT, error) {
	if err := r.checkMatrix(B); err != nil {
		return MatrixNTT{}, err
	}

	BNTT := MatrixNTT{matrix: B.Copy()}
	if r.nttRing != nil {
		BNTT.entriesNTT = r.toNTTPolys(B)
	}
	return BNTT, nil
}

// Matrix returns a copy of the underlying Matrix.
func (B MatrixNTT) Matrix() Matrix {
	return B.matrix.Copy()
}

// MatMulNTT returns A * B.
// It equals MatMul(A, B.Matrix()), but skips the transform of B.
func (r *Ring) MatMulNTT(A Matrix, B MatrixNTT) (Matrix, error) {
	if err := r.checkMatrix(A); err != nil {
		return Matrix{}, err
	}
	if err := r.checkMatrix(B.matrix); err != nil {
		return Matrix{}, err
	}
	if A.cols != B.matrix.rows {
		return Matrix{}, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d", ErrDimensionMismatch, A.rows, A.cols, B.matrix.rows, B.matrix.cols)
	}

	C := r.NewMatrix(A.rows, B.matrix.cols)
	switch {
	case r.nttRing != nil && B.entriesNTT != nil:
		r.matMulTransformedAssign(A, B.matrix, B.entriesNTT, C)
	case r.nttRing != nil:
		r.matMulNTTAssign(A, B.matrix, C)
	default:
		r.matMulSchoolbookAssign(A, B.matrix, C)
	}
	return C, nil
}
