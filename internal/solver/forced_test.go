package solver

import (
	"errors"
	"testing"

	"svw.info/starbattle/internal/domain"
)

func TestNextForcedFindsZeroSlackRegion(t *testing.T) {
	b := &domain.Board{Size: 3, Stars: 1, Regions: [][]int{
		{5, -1, -1},
		{-1, -1, -1},
		{-1, -1, -1},
	}}
	f, ok, err := NextForced(b, nil)
	if err != nil {
		t.Fatalf("NextForced: %v", err)
	}
	if !ok {
		t.Fatal("expected a forced placement for the single-cell region")
	}
	if f.Unit != domain.UnitRegion || f.Index != 5 {
		t.Fatalf("forced unit = %v %d, want region 5", f.Unit, f.Index)
	}
	if len(f.Cells) != 1 || f.Cells[0] != (domain.CellCoord{Row: 0, Col: 0}) {
		t.Fatalf("forced cells = %v, want [(0,0)]", f.Cells)
	}
}

func TestNextForcedAfterPartialPlacement(t *testing.T) {
	regions := [][]int{
		{-1, -1, -1},
		{-1, -1, -1},
		{-1, -1, -1},
	}
	b := &domain.Board{Size: 3, Stars: 1, Regions: regions}
	// A star at (0,0) forbids (1,0) and (1,1); row 1 is down to one cell.
	f, ok, err := NextForced(b, []domain.CellCoord{{Row: 0, Col: 0}})
	if err != nil {
		t.Fatalf("NextForced: %v", err)
	}
	if !ok || f.Unit != domain.UnitRow || f.Index != 1 {
		t.Fatalf("forced = %+v ok=%v, want row 1", f, ok)
	}
	if len(f.Cells) != 1 || f.Cells[0] != (domain.CellCoord{Row: 1, Col: 2}) {
		t.Fatalf("forced cells = %v, want [(1,2)]", f.Cells)
	}
}

func TestNextForcedNothingOnOpenBoard(t *testing.T) {
	b := quadrantBoard4()
	_, ok, err := NextForced(b, nil)
	if err != nil {
		t.Fatalf("NextForced: %v", err)
	}
	if ok {
		t.Fatal("no unit is tight on the empty quadrant board")
	}
}

func TestNextForcedRejectsIllegalPlacement(t *testing.T) {
	b := quadrantBoard4()
	adjacent := []domain.CellCoord{{Row: 0, Col: 0}, {Row: 1, Col: 1}}
	_, _, err := NextForced(b, adjacent)
	if !errors.Is(err, domain.ErrBadBoard) {
		t.Fatalf("NextForced with adjacent stars: got %v, want ErrBadBoard", err)
	}
	outOfBounds := []domain.CellCoord{{Row: 9, Col: 0}}
	_, _, err = NextForced(b, outOfBounds)
	if !errors.Is(err, domain.ErrBadBoard) {
		t.Fatalf("NextForced out of bounds: got %v, want ErrBadBoard", err)
	}
}
