package solver

import (
	"context"
	"time"

	"svw.info/starbattle/internal/domain"
	"svw.info/starbattle/internal/ports"
)

// BacktrackingSolver is the constraint-propagation-plus-backtracking
// solver: propagate to a fixpoint, pick the most constrained cell, and
// branch place-or-forbid with whole-state snapshots for undo.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) ([]domain.CellCoord, ports.Stats, error) {
	start := time.Now()
	inst, err := NewInstance(b)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	st := newState(inst)
	var stats ports.Stats
	found, err := search(ctx, st, &stats)
	stats.Duration = time.Since(start)
	if err != nil {
		return nil, stats, err
	}
	if !found {
		return nil, stats, domain.ErrNoSolution
	}
	return st.stars(), stats, nil
}

// search is one node of the depth-first search. A non-nil error is an
// internal inconsistency and unwinds the entire solve; a false result
// is ordinary backtracking (contradiction, dead end, or expired
// deadline — the deadline check is cooperative, once per node).
func search(ctx context.Context, s *state, stats *ports.Stats) (bool, error) {
	stats.Nodes++
	if ctx.Err() != nil {
		return false, nil
	}

	if !s.propagate(&stats.Passes) {
		return false, nil
	}
	if s.complete() {
		return true, nil
	}
	if s.impossible() {
		return false, nil
	}

	pos, ok := s.selectCell()
	if !ok {
		return false, nil
	}

	snap := s.clone()

	// Branch A: star at pos.
	if err := s.place(pos); err != nil {
		return false, err
	}
	found, err := search(ctx, s, stats)
	if err != nil || found {
		return found, err
	}
	s.restore(snap)

	// Branch B: pos holds no star anywhere in this subtree.
	s.forbidden[pos]++
	found, err = search(ctx, s, stats)
	if err != nil || found {
		return found, err
	}
	s.restore(snap)
	return false, nil
}
