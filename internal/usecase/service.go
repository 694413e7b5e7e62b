package usecase

import (
	"context"
	"errors"

	"svw.info/starbattle/internal/domain"
	"svw.info/starbattle/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve runs the solver and re-validates any claimed solution. A
// placement the validator rejects is downgraded to "no solution":
// it signals a solver defect and must never reach the caller.
func (u *Service) Solve(ctx context.Context, b *domain.Board) ([]domain.CellCoord, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	stars, st, err := u.Solver.Solve(ctx, b)
	if err != nil {
		return nil, st, err
	}
	if u.Validator != nil {
		ok, _, verr := u.Validator.Validate(ctx, b, stars)
		if verr != nil || !ok {
			return nil, st, domain.ErrNoSolution
		}
	}
	return stars, st, nil
}

func (u *Service) Generate(ctx context.Context, seed int64, size, stars int) (*domain.Puzzle, []domain.CellCoord, ports.Stats, error) {
	if u.Generator == nil {
		return nil, nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, size, stars)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board, stars []domain.CellCoord) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b, stars)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board, stars []domain.CellCoord) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b, stars)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
