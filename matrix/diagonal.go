// SPDX-License-Identifier: MIT

// Package matrix: block-diagonal factory.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/blockmat/core"
)

// NewDiagonal builds a square block-diagonal matrix over the given column
// layout: one row block per column block, each holding a single cell on
// the diagonal of blocks. diagonal supplies the scalar main-diagonal
// entries in column-block order (len(diagonal) must equal ΣcolSizes);
// every off-diagonal entry inside the blocks is zero.
//
// This is the damping-term factory: the result is appended under a
// Jacobian to regularize the least-squares system.
//
// Complexity: O(Σ sᵢ²) values.
func NewDiagonal(diagonal []float64, colSizes, colPositions []int) (*BlockSparseMatrix, error) {
	if len(colSizes) != len(colPositions) {
		return nil, fmt.Errorf("NewDiagonal: %d sizes vs %d positions: %w",
			len(colSizes), len(colPositions), core.ErrColLayout)
	}

	bs := &core.BlockStructure{
		ColSizes:     append([]int(nil), colSizes...),
		ColPositions: append([]int(nil), colPositions...),
		Rows:         make([]core.CompressedRow, len(colSizes)),
	}

	position := 0
	for i, size := range colSizes {
		bs.Rows[i] = core.CompressedRow{
			Block: core.Block{Size: size, Position: colPositions[i]},
			Cells: []core.Cell{{BlockID: i, Position: position}},
		}
		position += size * size
	}

	// New validates the layout (cumulative offsets, paired lengths) and
	// allocates the zeroed value buffer.
	m, err := New(bs)
	if err != nil {
		return nil, fmt.Errorf("NewDiagonal: %w", err)
	}
	if len(diagonal) < m.numCols {
		return nil, fmt.Errorf("NewDiagonal: len(diagonal)=%d < cols=%d: %w",
			len(diagonal), m.numCols, ErrVectorLength)
	}

	// Write diagonal entries: inside an s×s row-major block, (j,j) lives at
	// offset j*(s+1).
	values := m.values
	offset := 0
	next := 0
	for _, size := range colSizes {
		for j := 0; j < size; j++ {
			values[offset+j*(size+1)] = diagonal[next+j]
		}
		next += size
		offset += size * size
	}

	return m, nil
}
