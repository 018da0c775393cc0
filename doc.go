// Package blockmat is an in-memory engine for block-structured sparse
// matrices — the Jacobian/normal-equation storage used inside iterative
// nonlinear least-squares solvers.
//
// 🚀 What is blockmat?
//
//	A compact, deterministic library built around one layout:
//		• Compressed block-row structure — the nonzero pattern is a list of
//		  row blocks, each holding ordered cells at column-block positions
//		• Flat contiguous value buffer — every cell owns a disjoint,
//		  row-major slice of one []float64 arena
//		• Block-aware kernels — multiply, transpose-multiply, column norms
//		  and column scaling run directly on that layout via gonum BLAS
//
// ✨ Why this layout?
//
//   - Cache-friendly — kernels stream one contiguous buffer, block by block
//   - Cheap structure sharing — a pattern is built once, values are refilled
//     every solver iteration
//   - Growable — row blocks can be appended (column-compatible operands)
//     and trimmed without reallocating on every step
//
// Everything is organized under four subpackages:
//
//	core/    — Block, Cell, CompressedRow, BlockStructure + validation
//	matrix/  — BlockSparseMatrix: construction, kernels, conversions, growth
//	triplet/ — scalar (row, col, value) COO collaborator for exports
//	builder/ — random block-matrix fixtures for tests and benchmarks
//
// Quick ASCII example — two column blocks [2,1], one row block of size 3:
//
//	    ┌ 1 2 │ 7 ┐
//	    │ 3 4 │ 8 │
//	    └ 5 6 │ 9 ┘
//
// The buffer is simply 1..9: the first cell stores its 3×2 block row-major
// as {1,2,3,4,5,6}, the second stores {7,8,9} right after it.
//
// All operations are synchronous and single-threaded by contract: readers
// may run concurrently, writers must be serialized by the caller.
package blockmat
