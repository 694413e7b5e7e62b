package domain

// UnitKind names a constraint unit: a row, a column, or a labeled region.
type UnitKind int

const (
	UnitRow UnitKind = iota
	UnitCol
	UnitRegion
)

func (u UnitKind) String() string {
	switch u {
	case UnitRow:
		return "row"
	case UnitCol:
		return "column"
	case UnitRegion:
		return "region"
	}
	return "unknown"
}
