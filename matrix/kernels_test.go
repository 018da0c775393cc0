package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockmat/builder"
	"github.com/katalvlaran/blockmat/matrix"
)

const kernelTol = 1e-12

// randomVector returns a deterministic pseudo-random vector of length n.
func randomVector(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}

	return v
}

// TestRightMultiply_Scenario pins y += A·x on the canonical fixture:
// with x = [1,1,1] and y pre-zeroed the result is the dense row sums.
func TestRightMultiply_Scenario(t *testing.T) {
	m := newScenario(t)
	y := make([]float64, 3)
	require.NoError(t, m.RightMultiply([]float64{1, 1, 1}, y))
	require.Equal(t, []float64{10, 15, 20}, y)

	// Accumulation: a second call doubles the result.
	require.NoError(t, m.RightMultiply([]float64{1, 1, 1}, y))
	require.Equal(t, []float64{20, 30, 40}, y)
}

// TestRightMultiply_Linearity checks A·(a·x1 + b·x2) == a·A·x1 + b·A·x2
// on random matrices.
func TestRightMultiply_Linearity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 5; trial++ {
		m, err := builder.RandomMatrix(4, 3, 0.5, builder.WithRand(rng))
		require.NoError(t, err)

		x1 := randomVector(rng, m.NumCols())
		x2 := randomVector(rng, m.NumCols())
		const a, b = 2.5, -1.25

		combined := make([]float64, m.NumCols())
		for j := range combined {
			combined[j] = a*x1[j] + b*x2[j]
		}

		lhs := make([]float64, m.NumRows())
		require.NoError(t, m.RightMultiply(combined, lhs))

		y1 := make([]float64, m.NumRows())
		y2 := make([]float64, m.NumRows())
		require.NoError(t, m.RightMultiply(x1, y1))
		require.NoError(t, m.RightMultiply(x2, y2))
		rhs := make([]float64, m.NumRows())
		for i := range rhs {
			rhs[i] = a*y1[i] + b*y2[i]
		}

		require.InDeltaSlice(t, rhs, lhs, kernelTol)
	}
}

// TestAdjointness checks ⟨z, A·x⟩ == ⟨x, Aᵀ·z⟩: RightMultiply and
// LeftMultiply are true adjoints over the same block data.
func TestAdjointness(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 5; trial++ {
		m, err := builder.RandomMatrix(5, 4, 0.4, builder.WithRand(rng))
		require.NoError(t, err)

		x := randomVector(rng, m.NumCols())
		z := randomVector(rng, m.NumRows())

		ax := make([]float64, m.NumRows())
		require.NoError(t, m.RightMultiply(x, ax))
		atz := make([]float64, m.NumCols())
		require.NoError(t, m.LeftMultiply(z, atz))

		require.InDelta(t, floats.Dot(z, ax), floats.Dot(x, atz), kernelTol)
	}
}

// TestSquaredColumnNorm compares against column sums of squares of the
// dense form, and verifies the output is owned (zeroed) by the call.
func TestSquaredColumnNorm(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	m, err := builder.RandomMatrix(4, 3, 0.6, builder.WithRand(rng))
	require.NoError(t, err)

	var dense mat.Dense
	require.NoError(t, m.ToDense(&dense))

	// Poison x to prove SquaredColumnNorm resets it.
	x := make([]float64, m.NumCols())
	for j := range x {
		x[j] = 1e9
	}
	require.NoError(t, m.SquaredColumnNorm(x))

	for j := 0; j < m.NumCols(); j++ {
		want := 0.0
		for i := 0; i < m.NumRows(); i++ {
			v := dense.At(i, j)
			want += v * v
		}
		require.InDelta(t, want, x[j], kernelTol, "column %d", j)
	}
}

// TestScaleColumns compares against scaling the dense form column-wise.
func TestScaleColumns(t *testing.T) {
	rng := rand.New(rand.NewSource(47))
	m, err := builder.RandomMatrix(3, 3, 0.7, builder.WithRand(rng))
	require.NoError(t, err)

	var before mat.Dense
	require.NoError(t, m.ToDense(&before))

	scale := randomVector(rng, m.NumCols())
	require.NoError(t, m.ScaleColumns(scale))

	var after mat.Dense
	require.NoError(t, m.ToDense(&after))

	for i := 0; i < m.NumRows(); i++ {
		for j := 0; j < m.NumCols(); j++ {
			require.InDelta(t, before.At(i, j)*scale[j], after.At(i, j), kernelTol,
				"entry (%d,%d)", i, j)
		}
	}
}

// TestKernels_VectorLength walks the length sentinels of every kernel.
func TestKernels_VectorLength(t *testing.T) {
	m := newScenario(t)
	short := make([]float64, 1)
	full := make([]float64, 3)

	require.ErrorIs(t, m.RightMultiply(short, full), matrix.ErrVectorLength)
	require.ErrorIs(t, m.RightMultiply(full, short), matrix.ErrVectorLength)
	require.ErrorIs(t, m.LeftMultiply(short, full), matrix.ErrVectorLength)
	require.ErrorIs(t, m.LeftMultiply(full, short), matrix.ErrVectorLength)
	require.ErrorIs(t, m.SquaredColumnNorm(short), matrix.ErrVectorLength)
	require.ErrorIs(t, m.ScaleColumns(short), matrix.ErrVectorLength)
}
