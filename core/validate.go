// SPDX-License-Identifier: MIT

// Package core: structure validation.
//
// Validate is the single gate between caller-built patterns and the
// kernels: once a structure passes, every downstream loop may index
// ColSizes/ColPositions and slice the value buffer without further checks.
//
// Determinism: fixed scan order (columns, then rows, then cells); the
// first violation found is the one reported.

package core

import (
	"fmt"
	"sort"
)

// valueRange is a cell's half-open slice [start, end) of the value buffer,
// collected during validation to detect overlaps.
type valueRange struct {
	start, end int
}

// Validate checks every structural invariant documented in doc.go.
// Returns nil for a well-formed structure, otherwise one of the package
// sentinels wrapped with positional context.
//
// Complexity: O(C + R + K log K) for C column blocks, R row blocks and
// K cells (the log factor comes from sorting cell value ranges).
func (bs *BlockStructure) Validate() error {
	if bs == nil {
		return ErrNilStructure
	}

	// 1) Column layout: paired lengths, non-negative sizes, cumulative offsets.
	if len(bs.ColSizes) != len(bs.ColPositions) {
		return fmt.Errorf("Validate: %d sizes vs %d positions: %w",
			len(bs.ColSizes), len(bs.ColPositions), ErrColLayout)
	}
	wantPos := 0
	for i, size := range bs.ColSizes {
		if size < 0 {
			return fmt.Errorf("Validate: col block %d has size %d: %w", i, size, ErrColLayout)
		}
		if bs.ColPositions[i] != wantPos {
			return fmt.Errorf("Validate: col block %d at position %d, want %d: %w",
				i, bs.ColPositions[i], wantPos, ErrColLayout)
		}
		wantPos += size
	}

	// 2) Row layout: non-negative sizes, cumulative positions from 0.
	wantPos = 0
	for i := range bs.Rows {
		block := bs.Rows[i].Block
		if block.Size < 0 {
			return fmt.Errorf("Validate: row block %d has size %d: %w", i, block.Size, ErrRowLayout)
		}
		if block.Position != wantPos {
			return fmt.Errorf("Validate: row block %d at position %d, want %d: %w",
				i, block.Position, wantPos, ErrRowLayout)
		}
		wantPos += block.Size
	}

	// 3) Cells: valid BlockID, strictly ascending per row, sane value offsets.
	ranges := make([]valueRange, 0, totalCells(bs))
	for i := range bs.Rows {
		row := &bs.Rows[i]
		prevID := -1
		for j, cell := range row.Cells {
			if cell.BlockID < 0 || cell.BlockID >= len(bs.ColSizes) {
				return fmt.Errorf("Validate: row %d cell %d block id %d: %w",
					i, j, cell.BlockID, ErrBlockID)
			}
			if cell.BlockID <= prevID {
				return fmt.Errorf("Validate: row %d cell %d block id %d after %d: %w",
					i, j, cell.BlockID, prevID, ErrCellOrder)
			}
			prevID = cell.BlockID
			if cell.Position < 0 {
				return fmt.Errorf("Validate: row %d cell %d position %d: %w",
					i, j, cell.Position, ErrCellRange)
			}
			extent := row.Block.Size * bs.ColSizes[cell.BlockID]
			if extent == 0 {
				continue // zero-size blocks own no values
			}
			ranges = append(ranges, valueRange{cell.Position, cell.Position + extent})
		}
	}

	// 4) Cell value ranges must fit the total nonzero count and not overlap.
	total := bs.NumNonzeros()
	sort.Slice(ranges, func(a, b int) bool { return ranges[a].start < ranges[b].start })
	prevEnd := 0
	for _, r := range ranges {
		if r.end > total {
			return fmt.Errorf("Validate: cell range [%d,%d) exceeds %d nonzeros: %w",
				r.start, r.end, total, ErrCellRange)
		}
		if r.start < prevEnd {
			return fmt.Errorf("Validate: cell range [%d,%d) overlaps previous end %d: %w",
				r.start, r.end, prevEnd, ErrCellRange)
		}
		prevEnd = r.end
	}

	return nil
}

// totalCells counts cells across all rows (capacity hint for validation).
func totalCells(bs *BlockStructure) int {
	n := 0
	for i := range bs.Rows {
		n += len(bs.Rows[i].Cells)
	}

	return n
}
