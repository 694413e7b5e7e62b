package domain

// Unlabeled is the region value of a cell that belongs to no region.
// Such cells carry no region quota; only their row and column constrain them.
const Unlabeled = -1

// Board describes a Star Battle instance: an n×n grid partitioned into
// labeled regions, with a star quota per row, column, and region.
type Board struct {
	Size    int     `json:"size"`
	Stars   int     `json:"stars"`
	Regions [][]int `json:"regions"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a forced-placement suggestion for the UI.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Unit    UnitKind    `json:"unit,omitempty"`
}

// Puzzle is a persisted Star Battle board with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	Board     Board  `json:"board"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size"`
	Stars     int    `json:"stars"`
	CreatedAt int64  `json:"createdAt"`
}
