// SPDX-License-Identifier: MIT

// Package triplet: sentinel error set.

package triplet

import "errors"

var (
	// ErrShape indicates a negative row or column count passed to Resize.
	ErrShape = errors.New("triplet: invalid shape")

	// ErrCapacity indicates SetNumNonzeros exceeds the reserved capacity.
	ErrCapacity = errors.New("triplet: nonzero count exceeds capacity")

	// ErrVectorLength indicates a vector argument shorter than the matrix
	// dimension it must cover.
	ErrVectorLength = errors.New("triplet: vector length mismatch")

	// ErrNilTarget indicates a nil conversion target.
	ErrNilTarget = errors.New("triplet: nil conversion target")

	// ErrIndexRange indicates an entry's coordinates lie outside the shape.
	ErrIndexRange = errors.New("triplet: entry index out of range")
)
