package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/blockmat/core"
)

// TestValidate_OK accepts the canonical fixture and an empty structure.
func TestValidate_OK(t *testing.T) {
	if err := twoBlockStructure().Validate(); err != nil {
		t.Fatalf("Validate() = %v; want nil", err)
	}
	empty := &core.BlockStructure{}
	if err := empty.Validate(); err != nil {
		t.Fatalf("Validate(empty) = %v; want nil", err)
	}
}

// TestValidate_Nil checks the nil-receiver sentinel.
func TestValidate_Nil(t *testing.T) {
	var bs *core.BlockStructure
	if err := bs.Validate(); !errors.Is(err, core.ErrNilStructure) {
		t.Fatalf("Validate(nil) = %v; want ErrNilStructure", err)
	}
}

// TestValidate_Violations walks one mutation per invariant and checks the
// reported sentinel.
func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(bs *core.BlockStructure)
		err    error
	}{
		{
			"ColLengthMismatch",
			func(bs *core.BlockStructure) { bs.ColPositions = bs.ColPositions[:1] },
			core.ErrColLayout,
		},
		{
			"NegativeColSize",
			func(bs *core.BlockStructure) { bs.ColSizes[1] = -1 },
			core.ErrColLayout,
		},
		{
			"ColPositionGap",
			func(bs *core.BlockStructure) { bs.ColPositions[1] = 3 },
			core.ErrColLayout,
		},
		{
			"NegativeRowSize",
			func(bs *core.BlockStructure) { bs.Rows[0].Block.Size = -3 },
			core.ErrRowLayout,
		},
		{
			"RowPositionGap",
			func(bs *core.BlockStructure) { bs.Rows[0].Block.Position = 1 },
			core.ErrRowLayout,
		},
		{
			"UnknownBlockID",
			func(bs *core.BlockStructure) { bs.Rows[0].Cells[1].BlockID = 2 },
			core.ErrBlockID,
		},
		{
			"DuplicateBlockID",
			func(bs *core.BlockStructure) { bs.Rows[0].Cells[1].BlockID = 0 },
			core.ErrCellOrder,
		},
		{
			"NegativeCellPosition",
			func(bs *core.BlockStructure) { bs.Rows[0].Cells[0].Position = -1 },
			core.ErrCellRange,
		},
		{
			"CellRangePastEnd",
			func(bs *core.BlockStructure) { bs.Rows[0].Cells[1].Position = 7 },
			core.ErrCellRange,
		},
		{
			"OverlappingCells",
			func(bs *core.BlockStructure) { bs.Rows[0].Cells[1].Position = 3 },
			core.ErrCellRange,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bs := twoBlockStructure()
			tc.mutate(bs)
			if err := bs.Validate(); !errors.Is(err, tc.err) {
				t.Errorf("Validate() = %v; want %v", err, tc.err)
			}
		})
	}
}
