// SPDX-License-Identifier: MIT

// Package matrix: conversions out of the block sparse layout.
//
// All three conversions traverse cells in the same fixed order (row blocks
// ascending, cells ascending) and each cell's block row-major, i.e. the
// linear order of the flat value buffer. ToTriplet is a lossless scalar
// expansion: densifying its output equals ToDense.

package matrix

import (
	"bufio"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockmat/triplet"
)

// textLineFormat is the diagnostic dump layout: fixed-width row and column
// indices plus a fixed-precision value, one scalar nonzero per line. Not a
// stable machine format.
const textLineFormat = "% 10d % 10d %17f\n"

// ToDense reshapes dst to NumRows×NumCols, zeroes it, and accumulates
// every cell block into its dense sub-rectangle. Accumulation (rather
// than overwrite) keeps the conversion correct even for patterns with
// logically overlapping blocks.
//
// Complexity: O(rows*cols + nnz).
func (m *BlockSparseMatrix) ToDense(dst *mat.Dense) error {
	if m == nil {
		return fmt.Errorf("ToDense: %w", ErrNilMatrix)
	}
	if dst == nil {
		return fmt.Errorf("ToDense: %w", ErrNilTarget)
	}
	if m.numRows == 0 || m.numCols == 0 {
		// mat.Dense cannot represent zero-sized shapes.
		return fmt.Errorf("ToDense: shape %dx%d: %w", m.numRows, m.numCols, ErrEmptyShape)
	}

	dst.Reset()
	dst.ReuseAs(m.numRows, m.numCols)

	bs := m.bs
	for i := range bs.Rows {
		row := &bs.Rows[i]
		rowBlockPos := row.Block.Position
		rowBlockSize := row.Block.Size
		for _, cell := range row.Cells {
			colBlockSize := bs.ColSizes[cell.BlockID]
			colBlockPos := bs.ColPositions[cell.BlockID]
			pos := cell.Position
			for r := 0; r < rowBlockSize; r++ {
				for c := 0; c < colBlockSize; c++ {
					dst.Set(rowBlockPos+r, colBlockPos+c,
						dst.At(rowBlockPos+r, colBlockPos+c)+m.values[pos])
					pos++
				}
			}
		}
	}

	return nil
}

// ToTriplet expands the matrix into dst as one scalar (row, col, value)
// entry per nonzero, in flat-buffer traversal order: entry k of dst
// corresponds exactly to Values()[k].
//
// Complexity: O(nnz).
func (m *BlockSparseMatrix) ToTriplet(dst *triplet.Matrix) error {
	if m == nil {
		return fmt.Errorf("ToTriplet: %w", ErrNilMatrix)
	}
	if dst == nil {
		return fmt.Errorf("ToTriplet: %w", ErrNilTarget)
	}

	dst.Reserve(m.numNonzeros)
	if err := dst.Resize(m.numRows, m.numCols); err != nil {
		return fmt.Errorf("ToTriplet: %w", err)
	}
	dst.SetZero()

	rows := dst.MutableRows()
	cols := dst.MutableCols()
	values := dst.MutableValues()

	bs := m.bs
	for i := range bs.Rows {
		row := &bs.Rows[i]
		rowBlockPos := row.Block.Position
		rowBlockSize := row.Block.Size
		for _, cell := range row.Cells {
			colBlockSize := bs.ColSizes[cell.BlockID]
			colBlockPos := bs.ColPositions[cell.BlockID]
			pos := cell.Position
			for r := 0; r < rowBlockSize; r++ {
				for c := 0; c < colBlockSize; c++ {
					rows[pos] = rowBlockPos + r
					cols[pos] = colBlockPos + c
					values[pos] = m.values[pos]
					pos++
				}
			}
		}
	}

	if err := dst.SetNumNonzeros(m.numNonzeros); err != nil {
		return fmt.Errorf("ToTriplet: %w", err)
	}

	return nil
}

// WriteText writes one "<row> <col> <value>" line per scalar nonzero to w,
// in the same traversal order as ToTriplet. Diagnostic use only; the
// layout is not guaranteed stable across versions.
//
// Complexity: O(nnz) lines.
func (m *BlockSparseMatrix) WriteText(w io.Writer) error {
	if m == nil {
		return fmt.Errorf("WriteText: %w", ErrNilMatrix)
	}
	if w == nil {
		return fmt.Errorf("WriteText: %w", ErrNilTarget)
	}

	buf := bufio.NewWriter(w)
	bs := m.bs
	for i := range bs.Rows {
		row := &bs.Rows[i]
		rowBlockPos := row.Block.Position
		rowBlockSize := row.Block.Size
		for _, cell := range row.Cells {
			colBlockSize := bs.ColSizes[cell.BlockID]
			colBlockPos := bs.ColPositions[cell.BlockID]
			pos := cell.Position
			for r := 0; r < rowBlockSize; r++ {
				for c := 0; c < colBlockSize; c++ {
					if _, err := fmt.Fprintf(buf, textLineFormat,
						rowBlockPos+r, colBlockPos+c, m.values[pos]); err != nil {
						return fmt.Errorf("WriteText: %w", err)
					}
					pos++
				}
			}
		}
	}

	return buf.Flush()
}
