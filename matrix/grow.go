// SPDX-License-Identifier: MIT

// Package matrix: dynamic growth and shrink.
//
// AppendRows and DeleteRowBlocks are the pair a regularized least-squares
// step relies on: stack a damping block under the Jacobian, solve, then
// trim it off again. Delete keeps the allocated buffer (slack recorded in
// maxNumNonzeros), so the next append of the same shape reuses it without
// reallocating.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/blockmat/core"
)

// AppendRows appends every row block of other to the end of this matrix's
// row sequence, preserving other's cell layout. Appended row positions are
// rebased by the current NumRows and appended cell positions by the
// current NumNonzeros; other's values are copied into the appended range.
//
// other must be column-compatible: identical ColSizes and ColPositions
// (ErrColMismatch otherwise). If the new nonzero total exceeds the buffer
// capacity, the buffer is reallocated to exactly the new total (no slack
// retained) — any previously obtained Values/MutableValues slice is
// invalid afterwards.
//
// Complexity: O(other row blocks + cells) structure work + O(nnz) on
// reallocation + O(other nnz) value copy.
func (m *BlockSparseMatrix) AppendRows(other *BlockSparseMatrix) error {
	if m == nil || other == nil {
		return fmt.Errorf("AppendRows: %w", ErrNilMatrix)
	}
	if !sameColumnLayout(m.bs.ColSizes, other.bs.ColSizes) ||
		!sameColumnLayout(m.bs.ColPositions, other.bs.ColPositions) {
		return fmt.Errorf("AppendRows: %w", ErrColMismatch)
	}

	// Snapshot source extents first: self-append must read the pre-append
	// state even though m and other share counters.
	src := other.bs
	srcRows := src.Rows
	srcNonzeros := other.numNonzeros
	oldNonzeros := m.numNonzeros

	// Rebase and append the pattern, updating the derived counts as we go.
	for i := range srcRows {
		srcRow := &srcRows[i]
		row := core.CompressedRow{
			Block: core.Block{Size: srcRow.Block.Size, Position: m.numRows},
			Cells: append([]core.Cell(nil), srcRow.Cells...),
		}
		m.numRows += row.Block.Size
		for c := range row.Cells {
			row.Cells[c].Position = m.numNonzeros
			m.numNonzeros += row.Block.Size * src.ColSizes[row.Cells[c].BlockID]
		}
		m.bs.Rows = append(m.bs.Rows, row)
	}

	// Copy-and-grow to exactly the new total when capacity is exceeded;
	// otherwise reuse slack left behind by DeleteRowBlocks.
	if m.numNonzeros > m.maxNumNonzeros {
		grown := make([]float64, m.numNonzeros)
		copy(grown, m.values[:oldNonzeros])
		m.values = grown
		m.maxNumNonzeros = m.numNonzeros
	}

	if other == m {
		// Self-append: the source prefix survived the (possible) realloc.
		copy(m.values[oldNonzeros:m.numNonzeros], m.values[:srcNonzeros])
	} else {
		copy(m.values[oldNonzeros:m.numNonzeros], other.values[:srcNonzeros])
	}

	return nil
}

// DeleteRowBlocks removes the trailing count row blocks, decrementing the
// row and nonzero counts accordingly. The value buffer is NOT shrunk:
// maxNumNonzeros is unchanged and the freed range is reusable by a
// subsequent AppendRows. count must lie in [0, number of row blocks].
//
// Complexity: O(count + their cells).
func (m *BlockSparseMatrix) DeleteRowBlocks(count int) error {
	if m == nil {
		return fmt.Errorf("DeleteRowBlocks: %w", ErrNilMatrix)
	}
	numRowBlocks := len(m.bs.Rows)
	if count < 0 || count > numRowBlocks {
		return fmt.Errorf("DeleteRowBlocks(%d): have %d row blocks: %w",
			count, numRowBlocks, ErrRowBlockCount)
	}

	deltaRows := 0
	deltaNonzeros := 0
	for i := 0; i < count; i++ {
		row := &m.bs.Rows[numRowBlocks-1-i]
		deltaRows += row.Block.Size
		for _, cell := range row.Cells {
			deltaNonzeros += row.Block.Size * m.bs.ColSizes[cell.BlockID]
		}
	}

	m.numRows -= deltaRows
	m.numNonzeros -= deltaNonzeros
	m.bs.Rows = m.bs.Rows[:numRowBlocks-count]

	return nil
}

// sameColumnLayout reports whether two column layout slices are identical.
func sameColumnLayout(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
