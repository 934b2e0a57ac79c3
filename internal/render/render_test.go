package render

import (
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundel-game/roundel/pkg/roundel"
)

func asciiRenderer() *Renderer {
	return New(termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.Ascii)))
}

func TestCellLabels(t *testing.T) {
	require.Equal(t, '0', CellLabel(0))
	require.Equal(t, 'a', CellLabel(10))
	require.Equal(t, 'j', CellLabel(roundel.MaxRingCells-1))

	i, ok := LabelIndex('7')
	require.True(t, ok)
	require.Equal(t, 7, i)

	i, ok = LabelIndex('j')
	require.True(t, ok)
	require.Equal(t, 19, i)

	_, ok = LabelIndex('z')
	require.False(t, ok)
}

func TestBoardLayout(t *testing.T) {
	rend := asciiRenderer()
	b, err := roundel.NewBoard(8)
	require.NoError(t, err)

	lines := strings.Split(rend.Board(b, nil), "\n")
	require.Len(t, lines, 9)

	// Index 0 sits alone at the top, 4 at the bottom
	assert.Equal(t, "0", strings.TrimSpace(lines[0]))
	assert.Equal(t, "4", strings.TrimSpace(lines[8]))

	// The middle row runs 6 .. c .. 2 left to right
	middle := strings.Fields(lines[4])
	assert.Equal(t, []string{"6", "c", "2"}, middle)
}

func TestBoardMarksAndHighlights(t *testing.T) {
	rend := asciiRenderer()
	b, err := roundel.NewBoard(8)
	require.NoError(t, err)

	b.Ring.Set(0, roundel.CellX)
	b.Ring.Set(1, roundel.CellX)
	b.Ring.Set(2, roundel.CellX)
	b.Center = roundel.CellO

	lines := strings.Split(rend.Board(b, b.Wins()), "\n")
	assert.Equal(t, "X", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[4], "O")

	// Cells without a mark keep their labels
	assert.Contains(t, strings.TrimSpace(lines[8]), "4")
}

func TestWinCells(t *testing.T) {
	b, err := roundel.NewBoard(8)
	require.NoError(t, err)

	ring, center := winCells(b, []roundel.Win{
		{Kind: roundel.WinRing, Index: 7},
		{Kind: roundel.WinCenter, Index: 1},
	})

	require.True(t, center)
	for _, i := range []int{7, 0, 1, 5} {
		assert.True(t, ring[i], "index %d", i)
	}
	assert.False(t, ring[2])
	assert.False(t, ring[4])
}
