// Package roundel is the board core of ring tic-tac-toe: a ring of
// tri-valued cells packed into one uint32 as base-3 digits, a dihedral
// normal form so that rotated and mirrored rings compare and hash as
// equal, and detection of winning lines on the ring and through the
// center. The package does no I/O and keeps no game state beyond the
// cells themselves.
package roundel

import (
	"errors"
	"strings"
)

// A ring of up to 20 cells is stored as that many base-3 digits of a
// single uint32, most significant digit first (3^20 < 2^32 < 3^21, so
// 20 is the hard cap for this width).
const MaxRingCells = 20

var (
	ErrNoCells      = errors.New("ring must have at least one cell")
	ErrTooManyCells = errors.New("ring cannot hold more than 20 cells")
)

// Powers of three, _pow3[n] == 3^n
var _pow3 [MaxRingCells + 1]uint32

func init() {
	_pow3[0] = 1
	for i := 1; i <= MaxRingCells; i++ {
		_pow3[i] = _pow3[i-1] * 3
	}
}

// The outer cells of the board, arranged in a cycle.
//
// Invariant: packed < 3^cells. Indexing is modular, so any index
// addresses the cell at i mod cells and rotation never runs off an end.
// Note that packed alone is not an identity key: two rings that are a
// rotation or mirror of each other are the same physical position, see
// Canonicalize.
type Ring struct {
	packed uint32
	cells  uint8
}

// Create a ring of all-empty cells
func NewRing(cells uint8) (Ring, error) {
	if cells == 0 {
		return Ring{}, ErrNoCells
	}
	if cells > MaxRingCells {
		return Ring{}, ErrTooManyCells
	}
	return Ring{cells: cells}, nil
}

// Build a ring from a cell sequence, first element at index 0
func RingFromCells(cells []Cell) (Ring, error) {
	if len(cells) == 0 {
		return Ring{}, ErrNoCells
	}
	if len(cells) > MaxRingCells {
		return Ring{}, ErrTooManyCells
	}
	r := Ring{cells: uint8(len(cells))}
	for _, c := range cells {
		r.packed = r.packed*3 + uint32(c)
	}
	return r, nil
}

func (r Ring) Len() int {
	return int(r.cells)
}

// Raw packed value, only meaningful as an identity key after Canonicalize
func (r Ring) Packed() uint32 {
	return r.packed
}

// Reduce any index onto the ring, negative indices wrap backwards
func (r Ring) mod(i int) int {
	i %= int(r.cells)
	if i < 0 {
		i += int(r.cells)
	}
	return i
}

// Get the cell at modular index i
func (r Ring) Get(i int) Cell {
	i = r.mod(i)
	return Cell(r.packed / _pow3[int(r.cells)-1-i] % 3)
}

// Overwrite the cell at modular index i, leaving every other digit
// untouched. Adds the signed digit difference scaled by the place value;
// the conversion back to uint32 wraps, which is exactly the two's
// complement identity the update relies on.
func (r *Ring) Set(i int, c Cell) {
	i = r.mod(i)
	place := _pow3[int(r.cells)-1-i]
	old := int64(r.packed / place % 3)
	r.packed += uint32((int64(c) - old) * int64(place))
}

// Rotate the ring k cells to the left (towards index 0). The digits
// pushed past the most significant place wrap around to the bottom, so
// this is a circular shift in base 3. The multiply is widened to 64
// bits, long rings overflow a uint32 product.
func (r Ring) RotateLeft(k int) Ring {
	k = r.mod(k)
	truncated := uint32(uint64(r.packed) * uint64(_pow3[k]) % uint64(_pow3[r.cells]))
	wrapped := r.packed / _pow3[int(r.cells)-k]
	return Ring{packed: truncated + wrapped, cells: r.cells}
}

// Rotate the ring k cells to the right, the inverse of RotateLeft
func (r Ring) RotateRight(k int) Ring {
	k = r.mod(k)
	// The low k digits wrap up to the most significant places
	wrapped := r.packed % _pow3[k] * _pow3[int(r.cells)-k]
	truncated := r.packed / _pow3[k]
	return Ring{packed: truncated + wrapped, cells: r.cells}
}

// Mirror the ring by reversing the digit order, as if the physical ring
// were flipped over and viewed from the back
func (r Ring) Reverse() Ring {
	out := Ring{cells: r.cells}
	for it := r.Cells(); ; {
		c, ok := it.NextBack()
		if !ok {
			break
		}
		out.packed = out.packed*3 + uint32(c)
	}
	return out
}

// Reduce the ring to the normal form of its symmetry orbit: out of the
// 2*cells candidates reachable by rotating and optionally mirroring,
// pick the one with the numerically greatest packed value. Distinct
// digit sequences pack to distinct values, so the maximum is unambiguous.
// Two rings describe the same physical position exactly when their
// canonical packed values match.
func (r Ring) Canonicalize() Ring {
	best := r
	for n := 0; n < int(r.cells); n++ {
		rot := r.RotateLeft(n)
		if rot.packed > best.packed {
			best = rot
		}
		if rev := rot.Reverse(); rev.packed > best.packed {
			best = rev
		}
	}
	return best
}

// Check if both rings are the same position up to rotation and mirroring
func (r Ring) Equal(other Ring) bool {
	return r.cells == other.cells &&
		r.Canonicalize().packed == other.Canonicalize().packed
}

// Hash key of the ring, equal rings (in the Equal sense) always collide
func (r Ring) Hash() uint32 {
	return r.Canonicalize().packed
}

// One glyph per cell in index order
func (r Ring) String() string {
	builder := strings.Builder{}
	builder.Grow(int(r.cells))
	for it := r.Cells(); ; {
		c, ok := it.Next()
		if !ok {
			break
		}
		builder.WriteRune(c.Rune())
	}
	return builder.String()
}

// Get a cell iterator positioned before index 0
func (r Ring) Cells() Cells {
	return Cells{packed: r.packed, denom: _pow3[r.cells-1]}
}

// Iterator over the cells of a ring. The zero value is exhausted; get a
// fresh one from Ring.Cells for every traversal. Both ends of the
// remaining range can be consumed, so a backward walk is just NextBack
// in a loop, no allocation involved.
type Cells struct {
	packed uint32
	denom  uint32
}

// Pop the next cell from the front of the remaining range
func (it *Cells) Next() (Cell, bool) {
	if it.denom == 0 {
		return CellNone, false
	}
	digit := it.packed / it.denom % 3
	it.packed %= it.denom
	it.denom /= 3
	return Cell(digit), true
}

// Pop the next cell from the back of the remaining range
func (it *Cells) NextBack() (Cell, bool) {
	if it.denom == 0 {
		return CellNone, false
	}
	digit := it.packed % 3
	it.packed /= 3
	it.denom /= 3
	return Cell(digit), true
}

// Number of cells left to iterate
func (it Cells) Len() int {
	count := 0
	for denom := it.denom; denom > 0; denom /= 3 {
		count++
	}
	return count
}
