// SPDX-License-Identifier: MIT

// Package core: sentinel error set for structure validation.
// All validation failures return these sentinels (wrapped with positional
// context via %w); callers match with errors.Is. No panics on bad input.

package core

import "errors"

var (
	// ErrNilStructure indicates a nil *BlockStructure where one is required.
	ErrNilStructure = errors.New("core: nil block structure")

	// ErrColLayout indicates the column layout violates the cumulative-offset
	// invariant: mismatched ColSizes/ColPositions lengths, a negative size,
	// or a position that is not the running sum of the preceding sizes.
	ErrColLayout = errors.New("core: invalid column block layout")

	// ErrRowLayout indicates the row blocks do not partition the row range:
	// a negative size, or a position that is not the running sum of the
	// preceding row block sizes.
	ErrRowLayout = errors.New("core: row blocks do not partition the row range")

	// ErrBlockID indicates a cell references a column block that does not
	// exist in the structure.
	ErrBlockID = errors.New("core: cell references unknown column block")

	// ErrCellOrder indicates the cells of a row are not in strictly
	// ascending BlockID order (duplicates included).
	ErrCellOrder = errors.New("core: cells not in ascending column order")

	// ErrCellRange indicates a cell's value range is negative, extends past
	// the structure's nonzero count, or overlaps another cell's range.
	ErrCellRange = errors.New("core: cell value range out of bounds or overlapping")
)
