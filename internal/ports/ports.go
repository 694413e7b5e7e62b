package ports

import (
	"context"
	"time"

	"svw.info/starbattle/internal/domain"
)

// Stats captures performance characteristics of an operation.
// Nodes and Passes are diagnostics only; in particular they let tests
// distinguish a proved dead end from a deadline expiry, which the
// public error deliberately does not.
type Stats struct {
	Nodes    int
	Passes   int
	Duration time.Duration
}

// Solver finds a star placement for a board, or reports that none was
// found within the context deadline.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) ([]domain.CellCoord, Stats, error)
}

// Generator creates new boards with at least one known solution.
type Generator interface {
	Generate(ctx context.Context, seed int64, size, stars int) (*domain.Puzzle, []domain.CellCoord, Stats, error)
}

// Validator checks a placement against all quotas and adjacency.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board, stars []domain.CellCoord) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next forced placement given a partial placement.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, stars []domain.CellCoord) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
