// SPDX-License-Identifier: MIT

// Package matrix: block-aware linear-algebra kernels.
//
// Every kernel walks the same double loop — row blocks in order, cells in
// ascending column order — and hands each cell's row-major block to a
// gonum BLAS primitive:
//
//	RightMultiply      → blas64.Gemv(NoTrans): y[rows] += B · x[cols]
//	LeftMultiply       → blas64.Gemv(Trans):   y[cols] += Bᵀ · x[rows]
//	SquaredColumnNorm  → strided blas64.Dot per block column
//	ScaleColumns       → strided blas64.Scal per block column
//
// Determinism: fixed traversal order, so floating-point accumulation order
// is identical across runs on the same structure.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// RightMultiply accumulates y += A·x. The product is ADDED to y — callers
// needing a pure product must zero y first. len(x) must cover NumCols and
// len(y) must cover NumRows.
//
// Complexity: O(nnz).
func (m *BlockSparseMatrix) RightMultiply(x, y []float64) error {
	if m == nil {
		return fmt.Errorf("RightMultiply: %w", ErrNilMatrix)
	}
	if len(x) < m.numCols {
		return fmt.Errorf("RightMultiply: len(x)=%d < cols=%d: %w", len(x), m.numCols, ErrVectorLength)
	}
	if len(y) < m.numRows {
		return fmt.Errorf("RightMultiply: len(y)=%d < rows=%d: %w", len(y), m.numRows, ErrVectorLength)
	}

	bs := m.bs
	for i := range bs.Rows {
		row := &bs.Rows[i]
		rowBlockPos := row.Block.Position
		rowBlockSize := row.Block.Size
		for _, cell := range row.Cells {
			colBlockSize := bs.ColSizes[cell.BlockID]
			colBlockPos := bs.ColPositions[cell.BlockID]
			if rowBlockSize == 0 || colBlockSize == 0 {
				continue
			}
			block := blas64.General{
				Rows:   rowBlockSize,
				Cols:   colBlockSize,
				Stride: colBlockSize,
				Data:   m.values[cell.Position : cell.Position+rowBlockSize*colBlockSize],
			}
			xv := blas64.Vector{N: colBlockSize, Inc: 1, Data: x[colBlockPos : colBlockPos+colBlockSize]}
			yv := blas64.Vector{N: rowBlockSize, Inc: 1, Data: y[rowBlockPos : rowBlockPos+rowBlockSize]}
			blas64.Gemv(blas.NoTrans, 1, block, xv, 1, yv)
		}
	}

	return nil
}

// LeftMultiply accumulates y += Aᵀ·x, the adjoint of RightMultiply over
// the same block data. len(x) must cover NumRows and len(y) must cover
// NumCols.
//
// Complexity: O(nnz).
func (m *BlockSparseMatrix) LeftMultiply(x, y []float64) error {
	if m == nil {
		return fmt.Errorf("LeftMultiply: %w", ErrNilMatrix)
	}
	if len(x) < m.numRows {
		return fmt.Errorf("LeftMultiply: len(x)=%d < rows=%d: %w", len(x), m.numRows, ErrVectorLength)
	}
	if len(y) < m.numCols {
		return fmt.Errorf("LeftMultiply: len(y)=%d < cols=%d: %w", len(y), m.numCols, ErrVectorLength)
	}

	bs := m.bs
	for i := range bs.Rows {
		row := &bs.Rows[i]
		rowBlockPos := row.Block.Position
		rowBlockSize := row.Block.Size
		for _, cell := range row.Cells {
			colBlockSize := bs.ColSizes[cell.BlockID]
			colBlockPos := bs.ColPositions[cell.BlockID]
			if rowBlockSize == 0 || colBlockSize == 0 {
				continue
			}
			block := blas64.General{
				Rows:   rowBlockSize,
				Cols:   colBlockSize,
				Stride: colBlockSize,
				Data:   m.values[cell.Position : cell.Position+rowBlockSize*colBlockSize],
			}
			xv := blas64.Vector{N: rowBlockSize, Inc: 1, Data: x[rowBlockPos : rowBlockPos+rowBlockSize]}
			yv := blas64.Vector{N: colBlockSize, Inc: 1, Data: y[colBlockPos : colBlockPos+colBlockSize]}
			blas64.Gemv(blas.Trans, 1, block, xv, 1, yv)
		}
	}

	return nil
}

// SquaredColumnNorm fills x with the squared Euclidean norm of every
// column: x[j] = Σ_i A[i,j]², the diagonal of AᵀA. Unlike the multiply
// kernels, x is ZEROED first — this operation owns its output. len(x)
// must cover NumCols.
//
// Complexity: O(cols + nnz).
func (m *BlockSparseMatrix) SquaredColumnNorm(x []float64) error {
	if m == nil {
		return fmt.Errorf("SquaredColumnNorm: %w", ErrNilMatrix)
	}
	if len(x) < m.numCols {
		return fmt.Errorf("SquaredColumnNorm: len(x)=%d < cols=%d: %w", len(x), m.numCols, ErrVectorLength)
	}
	for j := 0; j < m.numCols; j++ {
		x[j] = 0
	}

	bs := m.bs
	for i := range bs.Rows {
		row := &bs.Rows[i]
		rowBlockSize := row.Block.Size
		if rowBlockSize == 0 {
			continue
		}
		for _, cell := range row.Cells {
			colBlockSize := bs.ColSizes[cell.BlockID]
			colBlockPos := bs.ColPositions[cell.BlockID]
			for j := 0; j < colBlockSize; j++ {
				// Column j of the block: stride colBlockSize through the arena.
				col := blas64.Vector{
					N:    rowBlockSize,
					Inc:  colBlockSize,
					Data: m.values[cell.Position+j:],
				}
				x[colBlockPos+j] += blas64.Dot(col, col)
			}
		}
	}

	return nil
}

// ScaleColumns multiplies every column j of the matrix by scale[j], in
// place, without rebuilding the structure (Jacobian column normalization).
// len(scale) must cover NumCols.
//
// Complexity: O(cols + nnz).
func (m *BlockSparseMatrix) ScaleColumns(scale []float64) error {
	if m == nil {
		return fmt.Errorf("ScaleColumns: %w", ErrNilMatrix)
	}
	if len(scale) < m.numCols {
		return fmt.Errorf("ScaleColumns: len(scale)=%d < cols=%d: %w", len(scale), m.numCols, ErrVectorLength)
	}

	bs := m.bs
	for i := range bs.Rows {
		row := &bs.Rows[i]
		rowBlockSize := row.Block.Size
		if rowBlockSize == 0 {
			continue
		}
		for _, cell := range row.Cells {
			colBlockSize := bs.ColSizes[cell.BlockID]
			colBlockPos := bs.ColPositions[cell.BlockID]
			for j := 0; j < colBlockSize; j++ {
				col := blas64.Vector{
					N:    rowBlockSize,
					Inc:  colBlockSize,
					Data: m.values[cell.Position+j:],
				}
				blas64.Scal(scale[colBlockPos+j], col)
			}
		}
	}

	return nil
}
