package solver

// propagate runs unit deductions to a fixpoint. For every row, column,
// and labeled region with remaining quota: if the available cells are
// exactly as many as the quota, all of them are forced stars; if fewer,
// the branch is contradictory. Returns false on contradiction.
//
// Each pass either forces at least one star or changes nothing, so the
// loop terminates. passes is incremented per full pass (diagnostic).
func (s *state) propagate(passes *int) bool {
	n := s.inst.Size
	changed := true
	for changed {
		changed = false
		*passes++

		for r := 0; r < n; r++ {
			if s.rowsNeeded[r] <= 0 {
				continue
			}
			if !s.deduceUnit(s.availRow(r), s.rowsNeeded[r], &changed) {
				return false
			}
		}

		for c := 0; c < n; c++ {
			if s.colsNeeded[c] <= 0 {
				continue
			}
			if !s.deduceUnit(s.availCol(c), s.colsNeeded[c], &changed) {
				return false
			}
		}

		for idx := range s.inst.regionCells {
			if s.regionNeeded[idx] <= 0 {
				continue
			}
			if !s.deduceUnit(s.availRegion(idx), s.regionNeeded[idx], &changed) {
				return false
			}
		}
	}
	return true
}

// deduceUnit applies the zero-slack rule to one unit's available cells.
// Availability is re-checked before each forced star, since an earlier
// star in the same batch may have closed a later cell; that closure, or
// a forced star touching an existing one, means the unit cannot be
// filled and the branch fails.
func (s *state) deduceUnit(avail []int, needed int, changed *bool) bool {
	if len(avail) < needed {
		return false
	}
	if len(avail) > needed {
		return true
	}
	for _, pos := range avail {
		if !s.canPlace(pos) || !s.forcePlace(pos) {
			return false
		}
		*changed = true
	}
	return true
}

// impossible reports whether some unit already has fewer available
// cells than remaining quota. Unlike propagate it never mutates.
func (s *state) impossible() bool {
	n := s.inst.Size
	for r := 0; r < n; r++ {
		if s.countAvailRow(r) < s.rowsNeeded[r] {
			return true
		}
	}
	for c := 0; c < n; c++ {
		if s.countAvailCol(c) < s.colsNeeded[c] {
			return true
		}
	}
	for idx := range s.inst.regionCells {
		if s.countAvailRegion(idx) < s.regionNeeded[idx] {
			return true
		}
	}
	return false
}
