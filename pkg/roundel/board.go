package roundel

// A full position: the ring of outer cells plus the single center cell.
//
// The board is a plain value with no turn or history bookkeeping, that
// is the caller's job (see pkg/game). Mutate it through Ring.Set and by
// assigning Center, then ask Winner or Wins.
//
// Precondition for the center rule: the ring length is even, otherwise
// "diametrically opposite" is not a cell and the pairing below is
// geometric nonsense. Not checked here.
type Board struct {
	Center Cell
	Ring   Ring
}

// Create a blank board with the given number of ring cells
func NewBoard(cells uint8) (*Board, error) {
	ring, err := NewRing(cells)
	if err != nil {
		return nil, err
	}
	return &Board{Ring: ring}, nil
}

// Get the mark of the first winning line found, scanning the ring lines
// first and the center lines second, or CellNone when nobody has won.
// With alternating turns at most one player can have a line, so a single
// mark is enough.
func (b *Board) Winner() Cell {
	n := b.Ring.Len()

	// Every width-3 window of the cyclic cell sequence, the modular Get
	// handles the two windows that wrap past the end
	for i := 0; i < n; i++ {
		c := b.Ring.Get(i)
		if c != CellNone && c == b.Ring.Get(i+1) && c == b.Ring.Get(i+2) {
			return c
		}
	}

	// A blank center means no line can go through it
	if b.Center == CellNone {
		return CellNone
	}

	// Pair each cell with the one on the opposite side of the ring
	half := n / 2
	for i := 0; i < half; i++ {
		if b.Ring.Get(i) == b.Center && b.Ring.Get(i+half) == b.Center {
			return b.Center
		}
	}

	return CellNone
}

// Get every winning line on the board: ring wins in ascending start
// order, then center wins in ascending index order. A run of more than
// three equal marks reports one win per window start inside the run.
func (b *Board) Wins() []Win {
	var out []Win
	n := b.Ring.Len()

	for i := 0; i < n; i++ {
		c := b.Ring.Get(i)
		if c != CellNone && c == b.Ring.Get(i+1) && c == b.Ring.Get(i+2) {
			out = append(out, Win{Kind: WinRing, Index: i})
		}
	}

	if b.Center != CellNone {
		half := n / 2
		for i := 0; i < half; i++ {
			if b.Ring.Get(i) == b.Center && b.Ring.Get(i+half) == b.Center {
				out = append(out, Win{Kind: WinCenter, Index: i})
			}
		}
	}

	return out
}

// Check if every cell of the board, center included, holds a mark
func (b *Board) Full() bool {
	if b.Center == CellNone {
		return false
	}
	for it := b.Ring.Cells(); ; {
		c, ok := it.Next()
		if !ok {
			return true
		}
		if c == CellNone {
			return false
		}
	}
}
