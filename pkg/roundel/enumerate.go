package roundel

import (
	"cmp"
	"slices"
)

// Enumerate every distinct ring position of the given length, where
// rotations and mirror images count as the same position. Walks all
// 3^cells packed values, keeps the first representative of each
// canonical orbit and returns them sorted ascending by packed value.
//
// The full walk is exponential in the cell count; 8 cells is instant,
// 20 is a few billion canonicalizations. Callers that only care about
// small rings should cap the length themselves.
func EnumerateCanonical(cells uint8) ([]Ring, error) {
	if _, err := NewRing(cells); err != nil {
		return nil, err
	}

	seen := make(map[uint32]struct{})
	var out []Ring

	for n := uint32(0); n < _pow3[cells]; n++ {
		canon := Ring{packed: n, cells: cells}.Canonicalize()
		if _, ok := seen[canon.packed]; ok {
			continue
		}
		seen[canon.packed] = struct{}{}
		out = append(out, canon)
	}

	slices.SortFunc(out, func(a, b Ring) int {
		return cmp.Compare(a.packed, b.packed)
	})
	return out, nil
}
