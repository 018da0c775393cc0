// Package triplet implements the scalar coordinate (COO) sparse format:
// an unordered list of (row, col, value) entries stored as three parallel
// slices. It is the export target of matrix.ToTriplet and the oracle the
// tests densify against.
//
// Entries may repeat a coordinate; consumers (ToDense, MulVec) accumulate
// duplicates, so the format can represent sums of overlapping pieces.
//
// The zero Matrix is empty; Resize sets the logical shape, Reserve grows
// entry capacity, and SetNumNonzeros declares how many leading entries of
// the parallel slices are live. All mutators return sentinel errors, never
// panic, per the module-wide error policy.
package triplet
