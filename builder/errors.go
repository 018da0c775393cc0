// SPDX-License-Identifier: MIT

// Package builder: sentinel error set.

package builder

import "errors"

var (
	// ErrBlockCount indicates a non-positive row or column block count.
	ErrBlockCount = errors.New("builder: block count must be positive")

	// ErrBlockSize indicates an invalid block size range (min < 1 or
	// min > max).
	ErrBlockSize = errors.New("builder: invalid block size range")

	// ErrDensity indicates a block density outside (0, 1].
	ErrDensity = errors.New("builder: block density must be in (0,1]")

	// ErrNeedRandSource indicates no random source was configured. Even
	// density 1 requires one: the contract demands explicit seeding.
	ErrNeedRandSource = errors.New("builder: random source is required")
)
