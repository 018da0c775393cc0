// Package builder generates random block sparse matrices for tests and
// benchmarks. It is a fixture factory, not part of any solver path.
//
// RandomMatrix draws a column layout with uniformly random block sizes,
// then rows with uniformly random sizes and Bernoulli cell presence at the
// requested block density, retrying until the pattern holds at least one
// cell. Values are filled i.i.d. standard normal.
//
// Determinism: all randomness flows through one caller-supplied source
// (WithRand or WithSeed — a source is mandatory, there is no implicit
// global RNG), and trial order is fixed (rows ascending, columns ascending
// within a row), so a fixed seed reproduces the same matrix bit for bit.
package builder
