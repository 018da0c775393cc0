package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockmat/core"
	"github.com/katalvlaran/blockmat/matrix"
)

// twoBlockStructure returns the canonical pattern: column blocks [2,1] and
// one row block of size 3 holding a cell in each column block.
func twoBlockStructure() *core.BlockStructure {
	return &core.BlockStructure{
		ColSizes:     []int{2, 1},
		ColPositions: []int{0, 2},
		Rows: []core.CompressedRow{
			{
				Block: core.Block{Size: 3, Position: 0},
				Cells: []core.Cell{
					{BlockID: 0, Position: 0},
					{BlockID: 1, Position: 6},
				},
			},
		},
	}
}

// newScenario builds the canonical matrix with values 1..9 in traversal
// order. Densified it is:
//
//	┌ 1 2 7 ┐
//	│ 3 4 8 │
//	└ 5 6 9 ┘
func newScenario(t *testing.T) *matrix.BlockSparseMatrix {
	t.Helper()
	m, err := matrix.New(twoBlockStructure())
	require.NoError(t, err)
	values := m.MutableValues()
	for i := range values {
		values[i] = float64(i + 1)
	}

	return m
}

// scenarioDense is the dense form of newScenario's matrix.
func scenarioDense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 2, 7,
		3, 4, 8,
		5, 6, 9,
	})
}

// TestNew_DerivedCounts checks the constructor's count computation and
// exact buffer sizing.
func TestNew_DerivedCounts(t *testing.T) {
	m, err := matrix.New(twoBlockStructure())
	require.NoError(t, err)

	require.Equal(t, 3, m.NumRows())
	require.Equal(t, 3, m.NumCols())
	require.Equal(t, 9, m.NumNonzeros())
	require.Len(t, m.Values(), 9)
	for _, v := range m.Values() {
		require.Zero(t, v, "buffer must be zero-initialized")
	}
}

// TestNew_RejectsInvalidStructure surfaces core validation sentinels.
func TestNew_RejectsInvalidStructure(t *testing.T) {
	_, err := matrix.New(nil)
	require.ErrorIs(t, err, core.ErrNilStructure)

	bs := twoBlockStructure()
	bs.ColPositions[1] = 5
	_, err = matrix.New(bs)
	require.ErrorIs(t, err, core.ErrColLayout)

	bs = twoBlockStructure()
	bs.Rows[0].Cells[1].BlockID = 7
	_, err = matrix.New(bs)
	require.ErrorIs(t, err, core.ErrBlockID)
}

// TestDense_ReproducesCounts re-derives the shape from the dense form
// (property: dense dimensions equal the block sums).
func TestDense_ReproducesCounts(t *testing.T) {
	m := newScenario(t)
	var dense mat.Dense
	require.NoError(t, m.ToDense(&dense))
	r, c := dense.Dims()
	require.Equal(t, m.NumRows(), r)
	require.Equal(t, m.NumCols(), c)
}

// TestScenario_Dense pins the literal 3×3 matrix of the canonical fixture.
func TestScenario_Dense(t *testing.T) {
	m := newScenario(t)
	var dense mat.Dense
	require.NoError(t, m.ToDense(&dense))
	require.True(t, mat.Equal(&dense, scenarioDense()),
		"got:\n%v", mat.Formatted(&dense))
}

// TestSetZero wipes the live buffer.
func TestSetZero(t *testing.T) {
	m := newScenario(t)
	m.SetZero()
	for i, v := range m.Values() {
		require.Zero(t, v, "values[%d]", i)
	}
}

// TestAccessors checks the structure accessors share one owned pattern.
func TestAccessors(t *testing.T) {
	m := newScenario(t)
	require.Same(t, m.BlockStructure(), m.MutableBlockStructure())
	require.Equal(t, []int{2, 1}, m.BlockStructure().ColSizes)
}
