// SPDX-License-Identifier: MIT

// Package triplet: storage and operations.
//
// Storage is three parallel slices (rows, cols, values) of identical
// capacity; numNonzeros marks how many leading entries are live. Writers
// fill the slices through the Mutable accessors and then publish the count
// with SetNumNonzeros — the same protocol the block sparse exporter uses.

package triplet

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a sparse matrix in scalar coordinate (COO) form.
type Matrix struct {
	numRows, numCols int

	rows   []int
	cols   []int
	values []float64

	numNonzeros int
}

// New returns an empty rows×cols triplet matrix.
// Complexity: O(1).
func New(rows, cols int) (*Matrix, error) {
	m := &Matrix{}
	if err := m.Resize(rows, cols); err != nil {
		return nil, err
	}

	return m, nil
}

// NumRows returns the scalar row count.
func (m *Matrix) NumRows() int { return m.numRows }

// NumCols returns the scalar column count.
func (m *Matrix) NumCols() int { return m.numCols }

// NumNonzeros returns the number of live entries.
func (m *Matrix) NumNonzeros() int { return m.numNonzeros }

// Rows returns the live row indices (read-only view).
func (m *Matrix) Rows() []int { return m.rows[:m.numNonzeros] }

// Cols returns the live column indices (read-only view).
func (m *Matrix) Cols() []int { return m.cols[:m.numNonzeros] }

// Values returns the live values (read-only view).
func (m *Matrix) Values() []float64 { return m.values[:m.numNonzeros] }

// MutableRows returns the full row-index slice up to capacity for writers.
func (m *Matrix) MutableRows() []int { return m.rows }

// MutableCols returns the full column-index slice up to capacity for writers.
func (m *Matrix) MutableCols() []int { return m.cols }

// MutableValues returns the full value slice up to capacity for writers.
func (m *Matrix) MutableValues() []float64 { return m.values }

// Reserve grows the entry capacity to at least n, preserving live entries.
// Shrinking never happens; a smaller n is a no-op.
// Complexity: O(n) on growth.
func (m *Matrix) Reserve(n int) {
	if n <= cap(m.rows) {
		m.rows = m.rows[:cap(m.rows)]
		m.cols = m.cols[:cap(m.cols)]
		m.values = m.values[:cap(m.values)]

		return
	}
	rows := make([]int, n)
	cols := make([]int, n)
	values := make([]float64, n)
	copy(rows, m.rows[:m.numNonzeros])
	copy(cols, m.cols[:m.numNonzeros])
	copy(values, m.values[:m.numNonzeros])
	m.rows, m.cols, m.values = rows, cols, values
}

// Resize sets the logical shape. Entries are kept; callers that change
// shape incompatibly are expected to SetZero first (the exporter does).
func (m *Matrix) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("Resize(%d,%d): %w", rows, cols, ErrShape)
	}
	m.numRows, m.numCols = rows, cols

	return nil
}

// SetZero drops all live entries (capacity retained).
// Complexity: O(1).
func (m *Matrix) SetZero() {
	m.numNonzeros = 0
}

// SetNumNonzeros publishes n leading entries of the parallel slices as
// live. n must not exceed the reserved capacity.
func (m *Matrix) SetNumNonzeros(n int) error {
	if n < 0 || n > len(m.rows) {
		return fmt.Errorf("SetNumNonzeros(%d): capacity %d: %w", n, len(m.rows), ErrCapacity)
	}
	m.numNonzeros = n

	return nil
}

// Append adds one entry, growing capacity as needed. Convenience for
// tests and small fixtures; bulk writers use Reserve + Mutable slices.
func (m *Matrix) Append(row, col int, value float64) error {
	if row < 0 || row >= m.numRows || col < 0 || col >= m.numCols {
		return fmt.Errorf("Append(%d,%d): shape %dx%d: %w", row, col, m.numRows, m.numCols, ErrIndexRange)
	}
	if m.numNonzeros == len(m.rows) {
		m.Reserve(2*len(m.rows) + 1)
	}
	m.rows[m.numNonzeros] = row
	m.cols[m.numNonzeros] = col
	m.values[m.numNonzeros] = value
	m.numNonzeros++

	return nil
}

// ToDense reshapes dst to the matrix shape, zeroes it and accumulates
// every live entry (duplicates sum). Entries outside the shape are a
// structural defect and reported as ErrIndexRange.
// Complexity: O(rows*cols + nnz).
func (m *Matrix) ToDense(dst *mat.Dense) error {
	if dst == nil {
		return fmt.Errorf("ToDense: %w", ErrNilTarget)
	}
	if m.numRows == 0 || m.numCols == 0 {
		// mat.Dense cannot represent zero-sized shapes.
		return fmt.Errorf("ToDense: shape %dx%d: %w", m.numRows, m.numCols, ErrShape)
	}
	dst.Reset()
	dst.ReuseAs(m.numRows, m.numCols)
	for k := 0; k < m.numNonzeros; k++ {
		i, j := m.rows[k], m.cols[k]
		if i < 0 || i >= m.numRows || j < 0 || j >= m.numCols {
			return fmt.Errorf("ToDense: entry %d at (%d,%d): %w", k, i, j, ErrIndexRange)
		}
		dst.Set(i, j, dst.At(i, j)+m.values[k])
	}

	return nil
}

// MulVec computes dst = A·x (overwriting dst), accumulating duplicate
// entries. len(x) must cover NumCols and len(dst) must cover NumRows.
// Complexity: O(rows + nnz).
func (m *Matrix) MulVec(dst, x []float64) error {
	if len(x) < m.numCols {
		return fmt.Errorf("MulVec: len(x)=%d < cols=%d: %w", len(x), m.numCols, ErrVectorLength)
	}
	if len(dst) < m.numRows {
		return fmt.Errorf("MulVec: len(dst)=%d < rows=%d: %w", len(dst), m.numRows, ErrVectorLength)
	}
	for i := 0; i < m.numRows; i++ {
		dst[i] = 0
	}
	for k := 0; k < m.numNonzeros; k++ {
		dst[m.rows[k]] += m.values[k] * x[m.cols[k]]
	}

	return nil
}
