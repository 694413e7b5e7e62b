package solver

import (
	"fmt"

	"svw.info/starbattle/internal/domain"
)

// Instance is the immutable, precomputed form of a board: king-move
// neighbor lists per cell, and region membership with arbitrary region
// ids compacted to dense indexes. Cells are addressed by pos = row*n + col.
//
// Instance is built once per solve and shared read-only by every search
// branch; all mutable bookkeeping lives in state.
type Instance struct {
	Size  int
	Stars int

	// regionOf maps pos to a compact region index, or domain.Unlabeled.
	regionOf []int
	// regionIDs maps a compact index back to the board's region value.
	regionIDs []int
	// regionCells lists member positions of each compact region, ascending.
	regionCells [][]int
	// neighbors lists the in-bounds king-move neighbors of each pos.
	neighbors [][]int
}

// NewInstance validates a board and precomputes its lookup tables.
// A region with fewer cells than the star quota, or a quota larger than
// the grid side, is rejected with domain.ErrInfeasible before any search.
func NewInstance(b *domain.Board) (*Instance, error) {
	n := b.Size
	if n < 1 {
		return nil, fmt.Errorf("%w: size %d", domain.ErrBadBoard, n)
	}
	if b.Stars < 1 {
		return nil, fmt.Errorf("%w: stars %d", domain.ErrBadBoard, b.Stars)
	}
	if len(b.Regions) != n {
		return nil, fmt.Errorf("%w: %d region rows for size %d", domain.ErrBadBoard, len(b.Regions), n)
	}
	for r, row := range b.Regions {
		if len(row) != n {
			return nil, fmt.Errorf("%w: region row %d has %d cells for size %d", domain.ErrBadBoard, r, len(row), n)
		}
	}
	if b.Stars > n {
		return nil, fmt.Errorf("%w: %d stars per row of %d cells", domain.ErrInfeasible, b.Stars, n)
	}

	inst := &Instance{
		Size:     n,
		Stars:    b.Stars,
		regionOf: make([]int, n*n),
	}

	// Compact region ids in row-major first-seen order.
	compact := make(map[int]int)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			id := b.Regions[r][c]
			pos := r*n + c
			if id == domain.Unlabeled {
				inst.regionOf[pos] = domain.Unlabeled
				continue
			}
			idx, seen := compact[id]
			if !seen {
				idx = len(inst.regionIDs)
				compact[id] = idx
				inst.regionIDs = append(inst.regionIDs, id)
				inst.regionCells = append(inst.regionCells, nil)
			}
			inst.regionOf[pos] = idx
			inst.regionCells[idx] = append(inst.regionCells[idx], pos)
		}
	}

	for idx, cells := range inst.regionCells {
		if len(cells) < b.Stars {
			return nil, fmt.Errorf("%w: region %d has %d cells, needs %d",
				domain.ErrInfeasible, inst.regionIDs[idx], len(cells), b.Stars)
		}
	}

	inst.neighbors = make([][]int, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			pos := r*n + c
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if nr >= 0 && nr < n && nc >= 0 && nc < n {
						inst.neighbors[pos] = append(inst.neighbors[pos], nr*n+nc)
					}
				}
			}
		}
	}
	return inst, nil
}

// Regions reports the number of labeled regions.
func (in *Instance) Regions() int { return len(in.regionCells) }

func (in *Instance) cell(pos int) (r, c int) { return pos / in.Size, pos % in.Size }

func (in *Instance) coord(pos int) domain.CellCoord {
	r, c := in.cell(pos)
	return domain.CellCoord{Row: r, Col: c}
}
