// Package matrix implements BlockSparseMatrix: a sparse matrix whose
// nonzero pattern is a core.BlockStructure and whose values live in one
// flat contiguous []float64 buffer, each cell owning a disjoint row-major
// slice of it.
//
// The package provides:
//
//   - Construction from a validated structure (New) and from a diagonal
//     (NewDiagonal, the damping-term factory for regularized least squares)
//   - Accumulating kernels RightMultiply (y += A·x) and LeftMultiply
//     (y += Aᵀ·x), driven by gonum blas64.Gemv on each cell block
//   - SquaredColumnNorm (diag of AᵀA) and in-place ScaleColumns
//   - Conversions: ToDense (*mat.Dense), ToTriplet (COO expansion) and the
//     diagnostic WriteText dump
//   - Dynamic growth: AppendRows / DeleteRowBlocks for stacking a damping
//     block under a Jacobian and removing it again without reallocating
//
// Concurrency contract: no internal locking. Read-only operations
// (RightMultiply, LeftMultiply, SquaredColumnNorm's reads, conversions) may
// run concurrently with each other, but never with a mutator (SetZero,
// ScaleColumns, AppendRows, DeleteRowBlocks, writes through
// MutableValues). AppendRows may reallocate the value buffer: any slice
// previously obtained from Values/MutableValues is invalid afterwards.
//
// Error policy: every caller-triggered violation returns a package
// sentinel wrapped with method context; nothing panics on bad input.
package matrix
