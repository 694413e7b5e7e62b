package solver

import "svw.info/starbattle/internal/domain"

// selectCell picks the branch cell: the available cell with the fewest
// open cells across its row, column, and region, breaking ties toward
// the cell whose star would forbid the most other open cells. The scan
// order is fixed, so selection is deterministic. Returns false when no
// cell is available.
func (s *state) selectCell() (int, bool) {
	n := s.inst.Size
	best := -1
	minChoices := int(^uint(0) >> 1)
	maxConstraints := -1

	for pos := 0; pos < n*n; pos++ {
		if !s.canPlace(pos) {
			continue
		}
		r, c := s.inst.cell(pos)
		choices := s.countAvailRow(r) + s.countAvailCol(c)
		if rid := s.inst.regionOf[pos]; rid != domain.Unlabeled {
			choices += s.countAvailRegion(rid)
		}

		constraints := 0
		for _, q := range s.inst.neighbors[pos] {
			if s.canPlace(q) {
				constraints++
			}
		}

		if choices < minChoices || (choices == minChoices && constraints > maxConstraints) {
			minChoices = choices
			maxConstraints = constraints
			best = pos
		}
	}
	return best, best >= 0
}
