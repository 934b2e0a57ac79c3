package roundel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnumerateCanonical(t *testing.T) {
	// Distinct rings of n three-valued cells up to rotation and
	// reflection: the 3-color bracelet numbers
	wantCounts := []int{3, 6, 10, 21, 39, 92, 198, 498}

	for cells, want := range wantCounts {
		rings, err := EnumerateCanonical(uint8(cells + 1))
		require.NoError(t, err)
		require.Len(t, rings, want, "cells=%d", cells+1)
	}
}

func TestEnumerateCanonicalOrderAndForm(t *testing.T) {
	rings, err := EnumerateCanonical(6)
	require.NoError(t, err)

	for i, r := range rings {
		// Every entry is already in normal form
		require.Equal(t, r.Packed(), r.Canonicalize().Packed())

		// Sorted strictly ascending, so no duplicates either
		if i > 0 {
			require.Greater(t, r.Packed(), rings[i-1].Packed())
		}
	}

	// The blank ring comes first, the all-O ring last
	require.Equal(t, uint32(0), rings[0].Packed())
	require.Equal(t, "222222", rings[len(rings)-1].Digits())
}

func TestEnumerateCanonicalBadLength(t *testing.T) {
	_, err := EnumerateCanonical(0)
	require.ErrorIs(t, err, ErrNoCells)

	_, err = EnumerateCanonical(MaxRingCells + 1)
	require.ErrorIs(t, err, ErrTooManyCells)
}
