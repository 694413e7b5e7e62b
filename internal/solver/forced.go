package solver

import (
	"fmt"

	"svw.info/starbattle/internal/domain"
)

// Forced is one zero-slack deduction: a unit whose open cells must all
// hold stars.
type Forced struct {
	Unit  domain.UnitKind
	Index int // row or column number, or the board's region id
	Cells []domain.CellCoord
}

// NextForced applies a partial placement to a board and scans each unit
// once for a zero-slack deduction, without searching. Returns false if
// no unit forces anything. The placement itself must be legal; an
// adjacent pair or overfilled unit is reported as an error.
func NextForced(b *domain.Board, stars []domain.CellCoord) (Forced, bool, error) {
	inst, err := NewInstance(b)
	if err != nil {
		return Forced{}, false, err
	}
	st := newState(inst)
	for _, sc := range stars {
		if sc.Row < 0 || sc.Row >= inst.Size || sc.Col < 0 || sc.Col >= inst.Size {
			return Forced{}, false, fmt.Errorf("%w: star at %v out of bounds", domain.ErrBadBoard, sc)
		}
		pos := sc.Row*inst.Size + sc.Col
		if !st.canPlace(pos) {
			return Forced{}, false, fmt.Errorf("%w: star at %v violates a quota or adjacency", domain.ErrBadBoard, sc)
		}
		if err := st.place(pos); err != nil {
			return Forced{}, false, err
		}
	}

	deduction := func(kind domain.UnitKind, index int, avail []int, needed int) (Forced, bool) {
		if needed <= 0 || len(avail) != needed {
			return Forced{}, false
		}
		f := Forced{Unit: kind, Index: index}
		for _, pos := range avail {
			f.Cells = append(f.Cells, inst.coord(pos))
		}
		return f, true
	}

	for r := 0; r < inst.Size; r++ {
		if f, ok := deduction(domain.UnitRow, r, st.availRow(r), st.rowsNeeded[r]); ok {
			return f, true, nil
		}
	}
	for c := 0; c < inst.Size; c++ {
		if f, ok := deduction(domain.UnitCol, c, st.availCol(c), st.colsNeeded[c]); ok {
			return f, true, nil
		}
	}
	for idx := range inst.regionCells {
		if f, ok := deduction(domain.UnitRegion, inst.regionIDs[idx], st.availRegion(idx), st.regionNeeded[idx]); ok {
			return f, true, nil
		}
	}
	return Forced{}, false, nil
}
