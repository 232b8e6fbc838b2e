package polyring

import "fmt"

// Matrix is a matrix of polynomials from a single Ring.
// Its dimensions are fixed at creation.
type Matrix struct {
	rows    int
	cols    int
	degree  int
	modulus uint64

	// entries are stored in row-major order.
	entries []Poly
}

// NewMatrix creates a new zero Matrix with the given dimensions.
// Panics if rows or cols is not positive.
func (r *Ring) NewMatrix(rows, cols int) Matrix {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("invalid matrix dimensions %dx%d", rows, cols))
	}

	entries := make([]Poly, rows*cols)
	for i := range entries {
		entries[i] = r.NewPoly()
	}

	return Matrix{
		rows:    rows,
		cols:    cols,
		degree:  r.degree,
		modulus: r.modulus,

		entries: entries,
	}
}

// Identity creates a new dim x dim identity Matrix.
func (r *Ring) Identity(dim int) Matrix {
	m := r.NewMatrix(dim, dim)
	for i := 0; i < dim; i++ {
		m.At(i, i).Coeffs[0] = 1
	}
	return m
}

// NewMatrixFromPolys creates a new Matrix from polys in row-major order.
// The polys are copied.
func (r *Ring) NewMatrixFromPolys(rows, cols int, polys []Poly) (Matrix, error) {
	if rows < 1 || cols < 1 || len(polys) != rows*cols {
		return Matrix{}, fmt.Errorf("%w: %d entries for a %dx%d matrix", ErrDimensionMismatch, len(polys), rows, cols)
	}
	if err := r.checkPolys(polys...); err != nil {
		return Matrix{}, err
	}

	m := r.NewMatrix(rows, cols)
	for i, p := range polys {
		m.entries[i].CopyFrom(p)
	}
	return m, nil
}

// Rows returns the number of rows of m.
func (m Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns of m.
func (m Matrix) Cols() int {
	return m.cols
}

// Degree returns the degree of the ring of m.
func (m Matrix) Degree() int {
	return m.degree
}

// Modulus returns the modulus of the ring of m.
func (m Matrix) Modulus() uint64 {
	return m.modulus
}

// At returns the entry at (i, j).
// The returned Poly shares its coefficients with m.
func (m Matrix) At(i, j int) Poly {
	return m.entries[i*m.cols+j]
}

// Entries returns all entries of m in row-major order.
// The returned Polys share their coefficients with m.
func (m Matrix) Entries() []Poly {
	return m.entries
}

// Copy returns a deep copy of m.
func (m Matrix) Copy() Matrix {
	entries := make([]Poly, len(m.entries))
	for i := range m.entries {
		entries[i] = m.entries[i].Copy()
	}

	return Matrix{
		rows:    m.rows,
		cols:    m.cols,
		degree:  m.degree,
		modulus: m.modulus,

		entries: entries,
	}
}

// Equal reports whether m and m0 have the same shape, ring and entries.
func (m Matrix) Equal(m0 Matrix) bool {
	if m.rows != m0.rows || m.cols != m0.cols || m.degree != m0.degree || m.modulus != m0.modulus {
		return false
	}
	for i := range m.entries {
		if !m.entries[i].Equal(m0.entries[i]) {
			return false
		}
	}
	return true
}

// checkMatrix returns ErrRingMismatch if m is not a matrix over r.
func (r *Ring) checkMatrix(m Matrix) error {
	if m.degree != r.degree || m.modulus != r.modulus {
		return fmt.Errorf("%w: matrix over Z_%d[X]/(X^%d+1) used in %v", ErrRingMismatch, m.modulus, m.degree, r)
	}
	return nil
}
