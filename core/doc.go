// Package core defines the compressed block-row sparsity pattern shared by
// every block sparse matrix: Block, Cell, CompressedRow and BlockStructure.
//
// A BlockStructure describes WHERE the nonzero dense blocks of a matrix
// live; it never holds values. The owning matrix pairs one structure with a
// flat []float64 value buffer, and each Cell records the offset of its
// row-major block inside that buffer.
//
// Invariants (enforced by Validate, assumed by every kernel downstream):
//
//   - ColPositions are the cumulative sums of ColSizes starting at 0
//     (no gaps, no overlaps between column blocks).
//   - Row blocks partition [0, NumRows): each row's Position equals the
//     previous row's Position+Size, starting at 0.
//   - Within a row, cells are ordered by strictly ascending BlockID and
//     every BlockID indexes a real column block.
//   - Every cell owns a disjoint value range [Position, Position+rows*cols)
//     inside [0, NumNonzeros).
//
// All types are plain values; Clone is the only way to get an independent
// copy. The package is stdlib-only: it is pure integer bookkeeping.
package core
