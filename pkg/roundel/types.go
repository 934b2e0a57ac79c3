package roundel

// Type defines for the board
type Cell uint8
type WinKind uint8

// Enum for the cell, the numeric values double as the base-3 digits
// of the packed ring representation
const (
	CellNone Cell = iota
	CellX
	CellO
)

// Enum for the win kind
const (
	// The whole line lies on the ring: three consecutive cells
	WinRing WinKind = iota

	// The line goes through the center: two opposite ring cells
	// plus the center itself
	WinCenter
)

// Where a winning line was found. For WinRing the index is the first
// cell of the run of three, for WinCenter it is one of the two ring
// cells on the diameter (the other one is half the ring away).
type Win struct {
	Kind  WinKind
	Index int
}

// Get the display glyph of the cell
func (c Cell) Rune() rune {
	switch c {
	case CellX:
		return 'X'
	case CellO:
		return 'O'
	default:
		return ' '
	}
}

func (c Cell) String() string {
	return string(c.Rune())
}

// Get the mark of the other player, none maps to none
func (c Cell) Opponent() Cell {
	switch c {
	case CellX:
		return CellO
	case CellO:
		return CellX
	default:
		return CellNone
	}
}
