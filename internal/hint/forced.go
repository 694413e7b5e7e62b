package hint

import (
	"context"
	"fmt"

	"svw.info/starbattle/internal/domain"
	"svw.info/starbattle/internal/solver"
)

// ForcedHinter suggests the first zero-slack deduction: a unit whose
// remaining open cells must all be stars.
type ForcedHinter struct{}

func NewForced() *ForcedHinter { return &ForcedHinter{} }

func (h *ForcedHinter) Hint(ctx context.Context, b *domain.Board, stars []domain.CellCoord) (domain.Hint, bool, error) {
	f, ok, err := solver.NextForced(b, stars)
	if err != nil || !ok {
		return domain.Hint{}, false, err
	}
	var msg string
	if len(f.Cells) == 1 {
		msg = fmt.Sprintf("%s %d has no slack: its last open cell must be a star", f.Unit, f.Index)
	} else {
		msg = fmt.Sprintf("%s %d has no slack: all %d open cells must be stars", f.Unit, f.Index, len(f.Cells))
	}
	return domain.Hint{
		Message: msg,
		Cells:   f.Cells,
		Unit:    f.Unit,
	}, true, nil
}
