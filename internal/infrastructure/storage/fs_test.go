package storage

import (
	"context"
	"os"
	"reflect"
	"testing"

	"svw.info/starbattle/internal/domain"
)

func samplePuzzle(id string) *domain.Puzzle {
	return &domain.Puzzle{
		ID:        id,
		Name:      "quadrants",
		CreatedAt: 42,
		Board: domain.Board{
			Size:  4,
			Stars: 1,
			Regions: [][]int{
				{0, 0, 1, 1},
				{0, 0, 1, 1},
				{2, 2, 3, 3},
				{2, 2, 3, 3},
			},
		},
	}
}

func TestFSRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := samplePuzzle("abc")
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx, "abc")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(p, got) {
		t.Fatalf("round trip mismatch:\nsaved  %+v\nloaded %+v", p, got)
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != "abc" || metas[0].Size != 4 || metas[0].Stars != 1 {
		t.Fatalf("List = %+v, want one entry for abc", metas)
	}
}

func TestFSRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("Save without ID must fail")
	}
}

func TestFSLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !os.IsNotExist(err) {
		t.Fatalf("Load missing: got %v, want not-exist", err)
	}
}

func TestFSListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir() + "/never-created")
	metas, err := s.List(context.Background())
	if err != nil || len(metas) != 0 {
		t.Fatalf("List on absent dir: %v, %v", metas, err)
	}
}
