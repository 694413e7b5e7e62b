package domain

import "errors"

var (
	// ErrNoSolution is returned when solving fails, whether the instance
	// is proven infeasible or the deadline expired first. Callers that
	// need to tell the two apart inspect the solve Stats.
	ErrNoSolution = errors.New("no solution found")

	// ErrInfeasible marks a board rejected before search: some region has
	// fewer cells than the star quota, or the quota exceeds the grid size.
	ErrInfeasible = errors.New("board infeasible by construction")

	// ErrBadBoard marks a malformed board (bad dimensions or quota).
	ErrBadBoard = errors.New("malformed board")

	// ErrInconsistent signals a solver-internal invariant violation:
	// a direct placement next to an existing star. It aborts the solve
	// rather than risk returning an invalid placement.
	ErrInconsistent = errors.New("internal inconsistency during search")
)
