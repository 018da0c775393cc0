// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set. All operations return these
// sentinels (wrapped with method context via %w); tests match them with
// errors.Is. Structure-shape violations surface the core package's
// sentinels unchanged, so callers can tell "bad pattern" from "bad call".

package matrix

import "errors"

var (
	// ErrNilMatrix indicates a nil *BlockSparseMatrix receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrVectorLength indicates a vector argument shorter than the matrix
	// dimension it must cover (x vs NumCols, y vs NumRows, and so on).
	ErrVectorLength = errors.New("matrix: vector length mismatch")

	// ErrNilTarget indicates a nil conversion target or writer.
	ErrNilTarget = errors.New("matrix: nil conversion target")

	// ErrColMismatch indicates AppendRows operands with incompatible column
	// layouts (differing ColSizes/ColPositions).
	ErrColMismatch = errors.New("matrix: column layouts are not compatible")

	// ErrRowBlockCount indicates DeleteRowBlocks asked for more trailing row
	// blocks than the matrix has (or a negative count).
	ErrRowBlockCount = errors.New("matrix: row block count out of range")

	// ErrEmptyShape indicates an operation that cannot represent a matrix
	// with zero rows or zero columns (dense conversion).
	ErrEmptyShape = errors.New("matrix: empty shape")
)
