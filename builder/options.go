// SPDX-License-Identifier: MIT

// Package builder: functional configuration for RandomMatrix.
// Defaults live here as constants (single source of truth); every option
// validates at apply time and returns only sentinel errors.

package builder

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Block size range defaults: small rectangular blocks, the shape a bundle
// adjustment Jacobian typically produces.
const (
	// DefaultMinBlockSize is the smallest row/column block drawn.
	DefaultMinBlockSize = 1

	// DefaultMaxBlockSize is the largest row/column block drawn.
	DefaultMaxBlockSize = 3
)

// config carries the generator parameters; fields are unexported and only
// reachable through options.
type config struct {
	minRowBlockSize, maxRowBlockSize int
	minColBlockSize, maxColBlockSize int

	rng *rand.Rand
}

// Option mutates the generator config; applied in order, first error wins.
type Option func(*config) error

// defaultConfig returns the documented defaults with no random source:
// the caller must supply one via WithRand or WithSeed.
func defaultConfig() config {
	return config{
		minRowBlockSize: DefaultMinBlockSize,
		maxRowBlockSize: DefaultMaxBlockSize,
		minColBlockSize: DefaultMinBlockSize,
		maxColBlockSize: DefaultMaxBlockSize,
	}
}

// WithRowBlockSize sets the inclusive row block size range [min, max].
func WithRowBlockSize(min, max int) Option {
	return func(cfg *config) error {
		if min < 1 || min > max {
			return fmt.Errorf("WithRowBlockSize(%d,%d): %w", min, max, ErrBlockSize)
		}
		cfg.minRowBlockSize, cfg.maxRowBlockSize = min, max

		return nil
	}
}

// WithColBlockSize sets the inclusive column block size range [min, max].
func WithColBlockSize(min, max int) Option {
	return func(cfg *config) error {
		if min < 1 || min > max {
			return fmt.Errorf("WithColBlockSize(%d,%d): %w", min, max, ErrBlockSize)
		}
		cfg.minColBlockSize, cfg.maxColBlockSize = min, max

		return nil
	}
}

// WithRand supplies the random source driving every draw.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) error {
		if rng == nil {
			return fmt.Errorf("WithRand: %w", ErrNeedRandSource)
		}
		cfg.rng = rng

		return nil
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed uint64) Option {
	return func(cfg *config) error {
		cfg.rng = rand.New(rand.NewSource(seed))

		return nil
	}
}
