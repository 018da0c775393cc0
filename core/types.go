// SPDX-License-Identifier: MIT

// Package core: entity definitions for the compressed block-row pattern.
// This file contains ONLY the value types and their derived-count helpers;
// invariant checking lives in validate.go per the global conventions.

package core

// Block describes Size consecutive scalar rows (or columns) starting at
// global offset Position. Immutable once placed in a structure.
type Block struct {
	// Size is the number of scalar rows/columns in the block (>= 0).
	Size int

	// Position is the global offset of the block's first row/column.
	Position int
}

// Cell is one nonzero dense block inside a row: it occupies column block
// BlockID and its row-major values begin at offset Position in the owning
// matrix's flat value buffer. The block's shape is rowBlockSize×colBlockSize,
// where rowBlockSize comes from the owning row and colBlockSize from
// ColSizes[BlockID].
type Cell struct {
	// BlockID indexes the column block list (ColSizes/ColPositions).
	BlockID int

	// Position is the offset of the block's first value in the flat buffer.
	Position int
}

// CompressedRow is one row block plus its ordered nonzero cells.
// Cells are ordered by strictly ascending BlockID, no duplicates.
type CompressedRow struct {
	Block Block
	Cells []Cell
}

// BlockStructure is the sparsity pattern of a block sparse matrix:
// the column block layout plus the ordered row blocks. It carries no
// values; see the matrix package for the paired value buffer.
type BlockStructure struct {
	// ColSizes holds the width of each column block, in order.
	ColSizes []int

	// ColPositions holds the global column offset of each column block:
	// ColPositions[0] == 0 and each entry is the running sum of the
	// preceding sizes.
	ColPositions []int

	// Rows holds the row blocks in ascending Position order.
	Rows []CompressedRow
}

// NumRows returns the total scalar row count (sum of row block sizes).
// Complexity: O(len(Rows)).
func (bs *BlockStructure) NumRows() int {
	n := 0
	for i := range bs.Rows {
		n += bs.Rows[i].Block.Size
	}

	return n
}

// NumCols returns the total scalar column count (sum of ColSizes).
// Complexity: O(len(ColSizes)).
func (bs *BlockStructure) NumCols() int {
	n := 0
	for _, size := range bs.ColSizes {
		n += size
	}

	return n
}

// NumNonzeros returns the total scalar nonzero count: the sum over all
// cells of rowBlockSize×colBlockSize. Assumes a validated structure
// (every BlockID in range). Complexity: O(total cells).
func (bs *BlockStructure) NumNonzeros() int {
	n := 0
	for i := range bs.Rows {
		rowBlockSize := bs.Rows[i].Block.Size
		for _, cell := range bs.Rows[i].Cells {
			n += rowBlockSize * bs.ColSizes[cell.BlockID]
		}
	}

	return n
}

// Clone returns a deep, independent copy of the structure.
// Complexity: O(len(ColSizes) + total cells).
func (bs *BlockStructure) Clone() *BlockStructure {
	cp := &BlockStructure{
		ColSizes:     append([]int(nil), bs.ColSizes...),
		ColPositions: append([]int(nil), bs.ColPositions...),
		Rows:         make([]CompressedRow, len(bs.Rows)),
	}
	for i := range bs.Rows {
		cp.Rows[i].Block = bs.Rows[i].Block
		cp.Rows[i].Cells = append([]Cell(nil), bs.Rows[i].Cells...)
	}

	return cp
}
