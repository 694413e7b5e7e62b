package generator

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"svw.info/starbattle/internal/domain"
	"svw.info/starbattle/internal/solver"
	"svw.info/starbattle/internal/validator"
)

func TestGenerateKnownSolutionBoards(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		stars int
	}{
		{"5x5 one star", 5, 1},
		{"8x8 one star", 8, 1},
		{"10x10 two stars", 10, 2},
	}
	g := NewKnownSolution(solver.NewSATSolver())
	v := validator.New()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
			defer cancel()

			p, solution, st, err := g.Generate(ctx, 12345, tc.size, tc.stars)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if p.Board.Size != tc.size || p.Board.Stars != tc.stars {
				t.Fatalf("board is %dx%d/%d stars, want %dx%d/%d",
					p.Board.Size, p.Board.Size, p.Board.Stars, tc.size, tc.size, tc.stars)
			}
			if want := tc.size * tc.stars; len(solution) != want {
				t.Fatalf("known solution has %d stars, want %d", len(solution), want)
			}
			ok, conf, err := v.Validate(ctx, &p.Board, solution)
			if err != nil || !ok {
				t.Fatalf("known solution invalid: err=%v conflicts=%v", err, conf)
			}
			t.Logf("generated in %v", st.Duration)
		})
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	g := NewKnownSolution(nil) // sampling only, no sanity solve
	a, sa, _, err := g.Generate(context.Background(), 7, 6, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, sb, _, err := g.Generate(context.Background(), 7, 6, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(a.Board, b.Board) || !reflect.DeepEqual(sa, sb) {
		t.Fatal("same seed produced different boards")
	}
}

func TestGenerateRejectsBadParameters(t *testing.T) {
	g := NewKnownSolution(nil)
	for _, tc := range []struct{ size, stars int }{
		{0, 1}, {5, 0}, {3, 4},
	} {
		_, _, _, err := g.Generate(context.Background(), 1, tc.size, tc.stars)
		if !errors.Is(err, domain.ErrBadBoard) {
			t.Fatalf("Generate(%d,%d): got %v, want ErrBadBoard", tc.size, tc.stars, err)
		}
	}
}

func TestGenerateImpossibleGeometryFails(t *testing.T) {
	// 2x2 with one star per row and column has no non-adjacent
	// arrangement; sampling must give up rather than spin.
	g := NewKnownSolution(nil)
	_, _, _, err := g.Generate(context.Background(), 1, 2, 1)
	if !errors.Is(err, domain.ErrNoSolution) {
		t.Fatalf("Generate(2,1): got %v, want ErrNoSolution", err)
	}
}
