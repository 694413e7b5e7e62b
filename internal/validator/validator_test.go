package validator

import (
	"context"
	"testing"

	"svw.info/starbattle/internal/domain"
)

func quadrantBoard() *domain.Board {
	return &domain.Board{Size: 4, Stars: 1, Regions: [][]int{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
		{2, 2, 3, 3},
		{2, 2, 3, 3},
	}}
}

func TestValidateAcceptsGoodPlacement(t *testing.T) {
	stars := []domain.CellCoord{
		{Row: 0, Col: 1}, {Row: 1, Col: 3}, {Row: 2, Col: 0}, {Row: 3, Col: 2},
	}
	ok, conf, err := New().Validate(context.Background(), quadrantBoard(), stars)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !ok {
		t.Fatalf("valid placement rejected, conflicts: %v", conf)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name         string
		stars        []domain.CellCoord
		wantConflict bool
	}{
		{
			// (1,0) and (2,1) touch diagonally.
			name: "adjacent pair",
			stars: []domain.CellCoord{
				{Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 2, Col: 1}, {Row: 3, Col: 3},
			},
			wantConflict: true,
		},
		{
			// Row/column/region quotas all satisfiable only by 4 stars.
			name: "missing star",
			stars: []domain.CellCoord{
				{Row: 0, Col: 1}, {Row: 1, Col: 3}, {Row: 2, Col: 0},
			},
			wantConflict: false, // quota failure, no cell to blame
		},
		{
			name: "duplicate star",
			stars: []domain.CellCoord{
				{Row: 0, Col: 1}, {Row: 0, Col: 1}, {Row: 2, Col: 0}, {Row: 3, Col: 2},
			},
			wantConflict: true,
		},
		{
			name: "out of bounds",
			stars: []domain.CellCoord{
				{Row: 7, Col: 1}, {Row: 1, Col: 3}, {Row: 2, Col: 0}, {Row: 3, Col: 2},
			},
			wantConflict: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, conf, err := New().Validate(context.Background(), quadrantBoard(), tc.stars)
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if ok {
				t.Fatalf("invalid placement accepted")
			}
			if tc.wantConflict && len(conf) == 0 {
				t.Fatalf("expected conflict cells, got none")
			}
		})
	}
}

func TestValidateRejectsRegionImbalance(t *testing.T) {
	// Two vertical band regions with a one-star quota: any placement
	// with one star per row and column overfills both bands.
	b := &domain.Board{Size: 4, Stars: 1, Regions: [][]int{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	}}
	stars := []domain.CellCoord{
		{Row: 0, Col: 1}, {Row: 1, Col: 3}, {Row: 2, Col: 0}, {Row: 3, Col: 2},
	}
	ok, conf, err := New().Validate(context.Background(), b, stars)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if ok {
		t.Fatal("region-overfilled placement accepted")
	}
	if len(conf) != 0 {
		t.Fatalf("quota failure should report no conflict cells, got %v", conf)
	}
}

func TestValidateRejectsMalformedBoard(t *testing.T) {
	b := &domain.Board{Size: 3, Stars: 1, Regions: [][]int{{0, 0, 0}}}
	_, _, err := New().Validate(context.Background(), b, nil)
	if err == nil {
		t.Fatal("malformed board accepted")
	}
}
