// SPDX-License-Identifier: MIT

// Package builder: RandomMatrix implementation.
//
// Contract:
//   - numRowBlocks >= 1, numColBlocks >= 1 (else ErrBlockCount).
//   - 0 < density <= 1 (else ErrDensity).
//   - A random source is mandatory (else ErrNeedRandSource).
//   - Result always holds at least one cell: the row pattern is redrawn
//     until one exists (terminates with probability 1 for density > 0).
//   - Returned matrix passes core.Validate by construction.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/blockmat/core"
	"github.com/katalvlaran/blockmat/matrix"
)

// Density domain bounds.
const (
	densityMin = 0.0 // exclusive
	densityMax = 1.0 // inclusive
)

// RandomMatrix synthesizes a block sparse matrix with numRowBlocks random
// row blocks, numColBlocks random column blocks and cells present
// independently with probability density. Values are standard normal.
//
// Complexity: O(numRowBlocks·numColBlocks) trials per pattern draw plus
// O(nnz) fill (expected constant number of redraws).
func RandomMatrix(numRowBlocks, numColBlocks int, density float64, opts ...Option) (*matrix.BlockSparseMatrix, error) {
	// 1) Gather and validate configuration (fail fast, no side effects).
	if numRowBlocks < 1 || numColBlocks < 1 {
		return nil, fmt.Errorf("RandomMatrix: %dx%d blocks: %w", numRowBlocks, numColBlocks, ErrBlockCount)
	}
	if density <= densityMin || density > densityMax {
		return nil, fmt.Errorf("RandomMatrix: density=%g: %w", density, ErrDensity)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("RandomMatrix: %w", err)
		}
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("RandomMatrix: %w", ErrNeedRandSource)
	}

	// 2) Draw the column layout: sizes uniform in [min, max], positions cumulative.
	bs := &core.BlockStructure{}
	colBlockPosition := 0
	for i := 0; i < numColBlocks; i++ {
		size := cfg.minColBlockSize + cfg.rng.Intn(cfg.maxColBlockSize-cfg.minColBlockSize+1)
		bs.ColSizes = append(bs.ColSizes, size)
		bs.ColPositions = append(bs.ColPositions, colBlockPosition)
		colBlockPosition += size
	}

	// 3) Draw rows until the pattern holds at least one cell. Fixed trial
	// order (r asc, c asc) keeps the draw deterministic per seed.
	hasCells := false
	for !hasCells {
		bs.Rows = bs.Rows[:0]
		rowBlockPosition := 0
		valuePosition := 0
		for r := 0; r < numRowBlocks; r++ {
			size := cfg.minRowBlockSize + cfg.rng.Intn(cfg.maxRowBlockSize-cfg.minRowBlockSize+1)
			row := core.CompressedRow{Block: core.Block{Size: size, Position: rowBlockPosition}}
			rowBlockPosition += size
			for c := 0; c < numColBlocks; c++ {
				if cfg.rng.Float64() > density {
					continue
				}
				row.Cells = append(row.Cells, core.Cell{BlockID: c, Position: valuePosition})
				valuePosition += size * bs.ColSizes[c]
				hasCells = true
			}
			bs.Rows = append(bs.Rows, row)
		}
	}

	// 4) Materialize the matrix and fill values with standard normal draws.
	m, err := matrix.New(bs)
	if err != nil {
		return nil, fmt.Errorf("RandomMatrix: %w", err)
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: cfg.rng}
	values := m.MutableValues()
	for i := range values {
		values[i] = normal.Rand()
	}

	return m, nil
}
