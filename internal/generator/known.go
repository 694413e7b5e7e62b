package generator

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"svw.info/starbattle/internal/domain"
	"svw.info/starbattle/internal/ports"
)

// sampleNodeBudget bounds one placement-sampling attempt; attempts
// beyond it restart with a derived seed.
const sampleNodeBudget = 200000

const sampleAttempts = 8

func (g *KnownSolutionGenerator) Generate(ctx context.Context, seed int64, size, stars int) (*domain.Puzzle, []domain.CellCoord, ports.Stats, error) {
	start := time.Now()
	if size < 1 || stars < 1 || stars > size {
		return nil, nil, ports.Stats{}, fmt.Errorf("%w: size %d, stars %d", domain.ErrBadBoard, size, stars)
	}

	var placement []domain.CellCoord
	ok := false
	for attempt := 0; attempt < sampleAttempts && !ok; attempt++ {
		rng := rand.New(rand.NewSource(seed + int64(attempt)*0x9e3779b9))
		placement, ok = samplePlacement(rng, size, stars)
	}
	if !ok {
		return nil, nil, ports.Stats{Duration: time.Since(start)},
			fmt.Errorf("%w: no star arrangement for size %d with %d stars", domain.ErrNoSolution, size, stars)
	}

	board := domain.Board{
		Size:    size,
		Stars:   stars,
		Regions: voronoiRegions(placement, size, stars),
	}

	stats := ports.Stats{}
	if g.Solver != nil {
		// The construction guarantees a solution; failing here means
		// the deadline expired.
		_, st, err := g.Solver.Solve(ctx, &board)
		if err != nil {
			return nil, nil, st, err
		}
		stats = st
	}
	stats.Duration = time.Since(start)

	p := &domain.Puzzle{
		Seed:  seed,
		Board: board,
		Name:  fmt.Sprintf("%dx%d, %d star(s)", size, size, stars),
	}
	return p, placement, stats, nil
}

// samplePlacement finds a random arrangement with exactly `stars` per
// row and column and no king-adjacent pair, by row-by-row randomized
// backtracking over column choices. Region constraints do not apply
// yet; regions are built around the result afterwards.
func samplePlacement(rng *rand.Rand, n, stars int) ([]domain.CellCoord, bool) {
	colCount := make([]int, n)
	rowCols := make([][]int, n)
	nodes := 0

	var fillRow func(r int) bool
	var pick func(r int, order []int, from int, cur []int) bool

	pick = func(r int, order []int, from int, cur []int) bool {
		nodes++
		if nodes > sampleNodeBudget {
			return false
		}
		if len(cur) == stars {
			cols := append([]int(nil), cur...)
			sort.Ints(cols)
			rowCols[r] = cols
			for _, c := range cols {
				colCount[c]++
			}
			if fillRow(r + 1) {
				return true
			}
			for _, c := range cols {
				colCount[c]--
			}
			rowCols[r] = nil
			return false
		}
		for i := from; i < len(order); i++ {
			c := order[i]
			if colCount[c] >= stars {
				continue
			}
			clash := false
			for _, pc := range cur {
				if abs(pc-c) <= 1 {
					clash = true
					break
				}
			}
			if !clash && r > 0 {
				for _, pc := range rowCols[r-1] {
					if abs(pc-c) <= 1 {
						clash = true
						break
					}
				}
			}
			if clash {
				continue
			}
			if pick(r, order, i+1, append(cur, c)) {
				return true
			}
		}
		return false
	}

	fillRow = func(r int) bool {
		if r == n {
			return true
		}
		order := rng.Perm(n)
		return pick(r, order, 0, nil)
	}

	if !fillRow(0) {
		return nil, false
	}

	out := make([]domain.CellCoord, 0, n*stars)
	for r := 0; r < n; r++ {
		for _, c := range rowCols[r] {
			out = append(out, domain.CellCoord{Row: r, Col: c})
		}
	}
	return out, true
}

// voronoiRegions labels every cell with the nearest star group under
// Chebyshev distance, ties to the lowest group. Stars arrive in
// row-major order and are chunked into n groups of `stars` each, so
// each group's own stars are at distance zero and every region holds
// exactly its quota under the sampled placement.
func voronoiRegions(placement []domain.CellCoord, n, stars int) [][]int {
	groups := make([][]domain.CellCoord, n)
	for i := range groups {
		groups[i] = placement[i*stars : (i+1)*stars]
	}

	regions := make([][]int, n)
	for r := 0; r < n; r++ {
		regions[r] = make([]int, n)
		for c := 0; c < n; c++ {
			best, bestDist := 0, int(^uint(0)>>1)
			for gi, group := range groups {
				for _, s := range group {
					d := chebyshev(r, c, s.Row, s.Col)
					if d < bestDist {
						bestDist = d
						best = gi
					}
				}
			}
			regions[r][c] = best
		}
	}
	return regions
}

func chebyshev(r1, c1, r2, c2 int) int {
	dr, dc := abs(r1-r2), abs(c1-c2)
	if dr > dc {
		return dr
	}
	return dc
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
