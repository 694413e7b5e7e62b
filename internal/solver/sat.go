package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/starbattle/internal/domain"
	"svw.info/starbattle/internal/ports"
)

// SATSolver encodes the board as CNF and hands it to the gini SAT
// solver. One Boolean variable per cell; a pairwise clause per
// king-adjacent pair; and combinational at-most/at-least clauses give
// each unit exactly its quota. The subset encoding grows with the
// quota, which stays small for the one- and two-star grids Star Battle
// uses in practice.
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

func (s *SATSolver) Solve(ctx context.Context, b *domain.Board) ([]domain.CellCoord, ports.Stats, error) {
	start := time.Now()
	inst, err := NewInstance(b)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	n := inst.Size
	k := inst.Stars
	g := gini.New()
	lit := func(pos int) z.Lit { return z.Var(pos + 1).Pos() }

	// No two adjacent stars.
	for pos, ns := range inst.neighbors {
		for _, q := range ns {
			if q > pos {
				g.Add(lit(pos).Not())
				g.Add(lit(q).Not())
				g.Add(0)
			}
		}
	}

	// Exactly k stars per unit: every (k+1)-subset has a non-star, and
	// every subset that excludes only k-1 cells has a star.
	addUnit := func(cells []int) {
		forEachSubset(cells, k+1, func(sub []int) {
			for _, pos := range sub {
				g.Add(lit(pos).Not())
			}
			g.Add(0)
		})
		forEachSubset(cells, len(cells)-k+1, func(sub []int) {
			for _, pos := range sub {
				g.Add(lit(pos))
			}
			g.Add(0)
		})
	}

	for r := 0; r < n; r++ {
		cells := make([]int, n)
		for c := 0; c < n; c++ {
			cells[c] = r*n + c
		}
		addUnit(cells)
	}
	for c := 0; c < n; c++ {
		cells := make([]int, n)
		for r := 0; r < n; r++ {
			cells[r] = r*n + c
		}
		addUnit(cells)
	}
	for _, cells := range inst.regionCells {
		addUnit(cells)
	}

	var res int
	if dl, ok := ctx.Deadline(); ok {
		budget := time.Until(dl)
		if budget <= 0 {
			return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrNoSolution
		}
		res = g.GoSolve().Try(budget)
	} else {
		res = g.Solve()
	}
	stats := ports.Stats{Duration: time.Since(start)}
	if res != 1 {
		// Unsat and timeout surface identically.
		return nil, stats, domain.ErrNoSolution
	}

	out := make([]domain.CellCoord, 0, n*k)
	for pos := 0; pos < n*n; pos++ {
		if g.Value(lit(pos)) {
			out = append(out, inst.coord(pos))
		}
	}
	return out, stats, nil
}

// forEachSubset calls fn with every ascending size-m subset of cells.
// No-op when m is out of range.
func forEachSubset(cells []int, m int, fn func([]int)) {
	if m <= 0 || m > len(cells) {
		return
	}
	sub := make([]int, m)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == m {
			fn(sub)
			return
		}
		for i := start; i <= len(cells)-(m-depth); i++ {
			sub[depth] = cells[i]
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}
