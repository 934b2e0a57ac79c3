package roundel

import (
	"fmt"
	"strings"
)

// String notation for a ring: one ternary digit per cell in index
// order, most significant first, 0 empty, 1 X, 2 O.
//
// Examples:
//
//	"00000000" - blank 8-cell ring
//	"01201201" - the ring rendered as " XO XO X"
func ParseRing(digits string) (Ring, error) {
	if len(digits) == 0 {
		return Ring{}, ErrNoCells
	}
	if len(digits) > MaxRingCells {
		return Ring{}, ErrTooManyCells
	}

	r := Ring{cells: uint8(len(digits))}
	for i, ch := range digits {
		if ch < '0' || ch > '2' {
			return Ring{}, fmt.Errorf("invalid ternary digit %q at index %d", ch, i)
		}
		r.packed = r.packed*3 + uint32(ch-'0')
	}
	return r, nil
}

// Render the ring back into its digit notation
func (r Ring) Digits() string {
	builder := strings.Builder{}
	builder.Grow(int(r.cells))
	for it := r.Cells(); ; {
		c, ok := it.Next()
		if !ok {
			break
		}
		builder.WriteByte('0' + byte(c))
	}
	return builder.String()
}
