// Package render draws a ring board as a circle of glyphs in the
// terminal: marks around an ellipse, the center cell in the middle and
// single-rune index labels on every empty cell so players can name
// their move. Colors and highlights degrade to plain text on dumb
// terminals through the termenv profile.
package render

import (
	"math"
	"strings"

	"github.com/muesli/termenv"

	"github.com/roundel-game/roundel/pkg/roundel"
)

// One label rune per possible ring index, 0-9 then a-j
const _labels = "0123456789abcdefghij"

// Get the label rune of ring index i
func CellLabel(i int) rune {
	return rune(_labels[i])
}

// Map a label rune back to its ring index
func LabelIndex(r rune) (int, bool) {
	idx := strings.IndexRune(_labels, r)
	return idx, idx >= 0
}

type Renderer struct {
	out *termenv.Output
}

func New(out *termenv.Output) *Renderer {
	return &Renderer{out: out}
}

// Draw the board into a multi-line string. Cells named by wins are
// highlighted, pass nil to draw without highlights.
//
// The n ring cells sit on an ellipse with index 0 at the top and
// indices increasing clockwise, which mirrors the angle-to-index
// mapping of a round physical board. The vertical radius is halved
// because terminal cells are roughly twice as tall as they are wide.
func (r *Renderer) Board(b *roundel.Board, wins []roundel.Win) string {
	n := b.Ring.Len()
	rx := max(6, n)
	ry := (rx + 1) / 2

	width, height := 2*rx+1, 2*ry+1
	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	ringHit, centerHit := winCells(b, wins)

	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		x := rx + int(math.Round(float64(rx)*math.Cos(angle)))
		y := ry + int(math.Round(float64(ry)*math.Sin(angle)))
		grid[y][x] = r.cell(b.Ring.Get(i), CellLabel(i), ringHit[i])
	}
	grid[ry][rx] = r.cell(b.Center, 'c', centerHit)

	lines := make([]string, height)
	for y := range grid {
		lines[y] = strings.TrimRight(strings.Join(grid[y], ""), " ")
	}
	return strings.Join(lines, "\n")
}

// Style one cell: empty cells show their faint label, marks get their
// player color, cells on a winning line are inverted
func (r *Renderer) cell(c roundel.Cell, label rune, won bool) string {
	if c == roundel.CellNone {
		return r.out.String(string(label)).Faint().String()
	}

	style := r.out.String(string(c.Rune()))
	if c == roundel.CellX {
		style = style.Foreground(termenv.ANSIBrightRed)
	} else {
		style = style.Foreground(termenv.ANSIBrightBlue)
	}
	if won {
		style = style.Bold().Reverse()
	}
	return style.String()
}

// Expand the win list into the set of ring indices to highlight, plus
// whether the center is part of any line
func winCells(b *roundel.Board, wins []roundel.Win) (map[int]bool, bool) {
	ring := make(map[int]bool)
	center := false
	n := b.Ring.Len()

	for _, w := range wins {
		switch w.Kind {
		case roundel.WinRing:
			for d := 0; d < 3; d++ {
				ring[(w.Index+d)%n] = true
			}
		case roundel.WinCenter:
			ring[w.Index] = true
			ring[(w.Index+n/2)%n] = true
			center = true
		}
	}
	return ring, center
}
