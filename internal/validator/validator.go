package validator

import (
	"context"

	"svw.info/starbattle/internal/domain"
)

// PlacementValidator re-checks a finished placement against every
// invariant: exactly the quota per row, column, and labeled region, no
// two stars king-adjacent, all stars in bounds and distinct. It is the
// safety net behind the solver, not the primary correctness mechanism.
type PlacementValidator struct{}

func New() *PlacementValidator { return &PlacementValidator{} }

func (v *PlacementValidator) Validate(ctx context.Context, b *domain.Board, stars []domain.CellCoord) (bool, []domain.CellCoord, error) {
	n := b.Size
	if n < 1 || len(b.Regions) != n {
		return false, nil, domain.ErrBadBoard
	}
	for _, row := range b.Regions {
		if len(row) != n {
			return false, nil, domain.ErrBadBoard
		}
	}

	conf := make([]domain.CellCoord, 0, 4)
	grid := make([]bool, n*n)
	rows := make([]int, n)
	cols := make([]int, n)
	regions := map[int]int{}

	for _, s := range stars {
		if s.Row < 0 || s.Row >= n || s.Col < 0 || s.Col >= n {
			conf = append(conf, s)
			continue
		}
		pos := s.Row*n + s.Col
		if grid[pos] {
			conf = append(conf, s)
			continue
		}
		grid[pos] = true
		rows[s.Row]++
		cols[s.Col]++
		if id := b.Regions[s.Row][s.Col]; id != domain.Unlabeled {
			regions[id]++
		}
	}

	// Adjacent pairs, each reported once.
	for _, s := range stars {
		if s.Row < 0 || s.Row >= n || s.Col < 0 || s.Col >= n {
			continue
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				r, c := s.Row+dr, s.Col+dc
				if r < 0 || r >= n || c < 0 || c >= n || !grid[r*n+c] {
					continue
				}
				if r > s.Row || (r == s.Row && c > s.Col) {
					conf = append(conf, s, domain.CellCoord{Row: r, Col: c})
				}
			}
		}
	}

	quotaOK := true
	for i := 0; i < n; i++ {
		if rows[i] != b.Stars || cols[i] != b.Stars {
			quotaOK = false
		}
	}
	seen := map[int]bool{}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			id := b.Regions[r][c]
			if id == domain.Unlabeled || seen[id] {
				continue
			}
			seen[id] = true
			if regions[id] != b.Stars {
				quotaOK = false
			}
		}
	}

	return len(conf) == 0 && quotaOK, conf, nil
}
