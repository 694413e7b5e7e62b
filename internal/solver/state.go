package solver

import (
	"fmt"
	"sort"

	"svw.info/starbattle/internal/domain"
)

// state is the mutable constraint bookkeeping of one search branch:
// the current placement, remaining quota per unit, and a forbidden
// counter per cell. Exactly one in-flight branch owns a state at a
// time; branching copies the whole thing via clone and undoes a failed
// branch with restore.
type state struct {
	inst *Instance

	placed    []bool
	starCount int

	rowsNeeded   []int
	colsNeeded   []int
	regionNeeded []int

	// forbidden[pos] counts placed stars adjacent to pos, plus any
	// explicit forbid marks from the search's second branch. A cell is
	// open only while the count is zero.
	forbidden []int
}

func newState(inst *Instance) *state {
	n := inst.Size
	s := &state{
		inst:         inst,
		placed:       make([]bool, n*n),
		rowsNeeded:   make([]int, n),
		colsNeeded:   make([]int, n),
		regionNeeded: make([]int, inst.Regions()),
		forbidden:    make([]int, n*n),
	}
	for i := range s.rowsNeeded {
		s.rowsNeeded[i] = inst.Stars
		s.colsNeeded[i] = inst.Stars
	}
	for i := range s.regionNeeded {
		s.regionNeeded[i] = inst.Stars
	}
	return s
}

// clone takes a deep snapshot. The Instance is shared; every mutable
// field is copied.
func (s *state) clone() *state {
	c := &state{
		inst:         s.inst,
		placed:       append([]bool(nil), s.placed...),
		starCount:    s.starCount,
		rowsNeeded:   append([]int(nil), s.rowsNeeded...),
		colsNeeded:   append([]int(nil), s.colsNeeded...),
		regionNeeded: append([]int(nil), s.regionNeeded...),
		forbidden:    append([]int(nil), s.forbidden...),
	}
	return c
}

// restore copies a snapshot's fields back into s, reusing s's backing
// arrays. The snapshot stays valid for further restores.
func (s *state) restore(snap *state) {
	copy(s.placed, snap.placed)
	s.starCount = snap.starCount
	copy(s.rowsNeeded, snap.rowsNeeded)
	copy(s.colsNeeded, snap.colsNeeded)
	copy(s.regionNeeded, snap.regionNeeded)
	copy(s.forbidden, snap.forbidden)
}

// canPlace is the availability predicate: unoccupied, not forbidden,
// and every governing quota still open.
func (s *state) canPlace(pos int) bool {
	if s.placed[pos] || s.forbidden[pos] > 0 {
		return false
	}
	r, c := s.inst.cell(pos)
	if s.rowsNeeded[r] <= 0 || s.colsNeeded[c] <= 0 {
		return false
	}
	if rid := s.inst.regionOf[pos]; rid != domain.Unlabeled && s.regionNeeded[rid] <= 0 {
		return false
	}
	return true
}

func (s *state) hasAdjacentStar(pos int) bool {
	for _, q := range s.inst.neighbors[pos] {
		if s.placed[q] {
			return true
		}
	}
	return false
}

// put records a star: placement set, three quotas, and the forbidden
// counters of every neighbor. Callers must have established that no
// adjacent star exists.
func (s *state) put(pos int) {
	s.placed[pos] = true
	s.starCount++
	r, c := s.inst.cell(pos)
	s.rowsNeeded[r]--
	s.colsNeeded[c]--
	if rid := s.inst.regionOf[pos]; rid != domain.Unlabeled {
		s.regionNeeded[rid]--
	}
	for _, q := range s.inst.neighbors[pos] {
		s.forbidden[q]++
	}
}

// place is the direct-placement entry used by the search on a cell the
// selector chose. An adjacent star here means the availability
// bookkeeping is broken, so the whole solve aborts.
func (s *state) place(pos int) error {
	if s.hasAdjacentStar(pos) {
		return fmt.Errorf("%w: star at %v touches an existing star", domain.ErrInconsistent, s.inst.coord(pos))
	}
	s.put(pos)
	return nil
}

// forcePlace is the propagation entry. An adjacent star means two cells
// of a zero-slack unit conflict, which makes the branch unsatisfiable:
// the caller treats false as a contradiction, never as a skip, so an
// invalid star can never enter the placement.
func (s *state) forcePlace(pos int) bool {
	if s.hasAdjacentStar(pos) {
		return false
	}
	s.put(pos)
	return true
}

// complete reports whether every quota has reached zero.
func (s *state) complete() bool {
	for _, v := range s.rowsNeeded {
		if v != 0 {
			return false
		}
	}
	for _, v := range s.colsNeeded {
		if v != 0 {
			return false
		}
	}
	for _, v := range s.regionNeeded {
		if v != 0 {
			return false
		}
	}
	return true
}

// stars returns the placement in row-major order.
func (s *state) stars() []domain.CellCoord {
	out := make([]domain.CellCoord, 0, s.starCount)
	for pos, p := range s.placed {
		if p {
			out = append(out, s.inst.coord(pos))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// --- availability counts per unit, shared by propagation, the
// impossibility check, and the selector ---

func (s *state) availRow(r int) []int {
	n := s.inst.Size
	var out []int
	for c := 0; c < n; c++ {
		if pos := r*n + c; s.canPlace(pos) {
			out = append(out, pos)
		}
	}
	return out
}

func (s *state) availCol(c int) []int {
	n := s.inst.Size
	var out []int
	for r := 0; r < n; r++ {
		if pos := r*n + c; s.canPlace(pos) {
			out = append(out, pos)
		}
	}
	return out
}

func (s *state) availRegion(idx int) []int {
	var out []int
	for _, pos := range s.inst.regionCells[idx] {
		if s.canPlace(pos) {
			out = append(out, pos)
		}
	}
	return out
}

func (s *state) countAvailRow(r int) int {
	n := s.inst.Size
	count := 0
	for c := 0; c < n; c++ {
		if s.canPlace(r*n + c) {
			count++
		}
	}
	return count
}

func (s *state) countAvailCol(c int) int {
	n := s.inst.Size
	count := 0
	for r := 0; r < n; r++ {
		if s.canPlace(r*n + c) {
			count++
		}
	}
	return count
}

func (s *state) countAvailRegion(idx int) int {
	count := 0
	for _, pos := range s.inst.regionCells[idx] {
		if s.canPlace(pos) {
			count++
		}
	}
	return count
}
