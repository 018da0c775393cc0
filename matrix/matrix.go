// SPDX-License-Identifier: MIT

// Package matrix: BlockSparseMatrix state, construction and accessors.
//
// Layout contract (shared with every kernel in this package):
//   - values is one contiguous arena; live data occupies values[:numNonzeros]
//     and len(values) == maxNumNonzeros (slack appears after DeleteRowBlocks).
//   - Each cell's block is stored row-major at values[cell.Position:] with
//     stride equal to its column block size.
//
// Derived counts (numRows, numCols, numNonzeros) are recomputed at
// construction and kept incrementally correct by AppendRows/DeleteRowBlocks;
// nothing else mutates the structure.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/blockmat/core"
)

// BlockSparseMatrix pairs an exclusively owned block structure with a flat
// value buffer. See the package documentation for the concurrency and
// ownership contract.
type BlockSparseMatrix struct {
	bs *core.BlockStructure

	values []float64 // len == maxNumNonzeros; live prefix is [:numNonzeros]

	numRows        int
	numCols        int
	numNonzeros    int
	maxNumNonzeros int
}

// New constructs a matrix over bs, taking exclusive ownership of it.
// The structure is validated (a malformed pattern is a caller bug and is
// reported via the core sentinels), derived counts are computed, and a
// zero value buffer of exactly NumNonzeros scalars is allocated.
//
// Complexity: O(C + R + K log K) validation + O(nnz) allocation.
func New(bs *core.BlockStructure) (*BlockSparseMatrix, error) {
	if err := bs.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	m := &BlockSparseMatrix{bs: bs}
	m.numCols = bs.NumCols()

	// Count rows and nonzeros in one pass over the pattern.
	for i := range bs.Rows {
		row := &bs.Rows[i]
		m.numRows += row.Block.Size
		for _, cell := range row.Cells {
			m.numNonzeros += row.Block.Size * bs.ColSizes[cell.BlockID]
		}
	}

	m.values = make([]float64, m.numNonzeros)
	m.maxNumNonzeros = m.numNonzeros

	return m, nil
}

// NumRows returns the scalar row count.
func (m *BlockSparseMatrix) NumRows() int { return m.numRows }

// NumCols returns the scalar column count.
func (m *BlockSparseMatrix) NumCols() int { return m.numCols }

// NumNonzeros returns the scalar nonzero count (live buffer length).
func (m *BlockSparseMatrix) NumNonzeros() int { return m.numNonzeros }

// Values returns the live value buffer for reading. The slice is
// invalidated by AppendRows (it may reallocate).
func (m *BlockSparseMatrix) Values() []float64 { return m.values[:m.numNonzeros] }

// MutableValues returns the live value buffer for writing, e.g. to fill a
// Jacobian in place. Same invalidation rule as Values.
func (m *BlockSparseMatrix) MutableValues() []float64 { return m.values[:m.numNonzeros] }

// BlockStructure returns the owned pattern for reading. The matrix keeps
// ownership; callers must not mutate it.
func (m *BlockSparseMatrix) BlockStructure() *core.BlockStructure { return m.bs }

// MutableBlockStructure returns the owned pattern for mutation. Callers
// that change it are responsible for keeping it valid; the derived counts
// are only maintained by this package's own mutators.
func (m *BlockSparseMatrix) MutableBlockStructure() *core.BlockStructure { return m.bs }

// SetZero sets every live value to 0. Complexity: O(nnz).
func (m *BlockSparseMatrix) SetZero() {
	for i := range m.values[:m.numNonzeros] {
		m.values[i] = 0
	}
}
