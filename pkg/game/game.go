// Package game layers the two-player rules on top of the board core:
// X moves first, turns alternate, occupied cells cannot be taken and
// nothing moves once the game is over. The board itself knows none of
// this, it only detects lines.
package game

import (
	"errors"

	"github.com/roundel-game/roundel/pkg/roundel"
)

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameOver     = errors.New("game is already over")
)

type Game struct {
	board  *roundel.Board
	turn   roundel.Cell
	winner roundel.Cell
	over   bool
}

// Create a game on a blank board, X to move
func New(cells uint8) (*Game, error) {
	board, err := roundel.NewBoard(cells)
	if err != nil {
		return nil, err
	}
	return &Game{board: board, turn: roundel.CellX}, nil
}

// The underlying board, read-only for callers that render or inspect it
func (g *Game) Board() *roundel.Board {
	return g.board
}

// Mark of the side to move
func (g *Game) Turn() roundel.Cell {
	return g.turn
}

// Mark of the winner, CellNone while ongoing or after a draw
func (g *Game) Winner() roundel.Cell {
	return g.winner
}

func (g *Game) Over() bool {
	return g.over
}

// Check if the game ended with a full board and no winner
func (g *Game) Draw() bool {
	return g.over && g.winner == roundel.CellNone
}

// Place the mover's mark on ring cell i (modular index)
func (g *Game) PlayRing(i int) error {
	if g.over {
		return ErrGameOver
	}
	if g.board.Ring.Get(i) != roundel.CellNone {
		return ErrCellOccupied
	}

	g.board.Ring.Set(i, g.turn)
	g.settle()
	return nil
}

// Place the mover's mark on the center cell
func (g *Game) PlayCenter() error {
	if g.over {
		return ErrGameOver
	}
	if g.board.Center != roundel.CellNone {
		return ErrCellOccupied
	}

	g.board.Center = g.turn
	g.settle()
	return nil
}

// Re-query the board after a move: latch a winner, detect the draw,
// otherwise hand the turn over
func (g *Game) settle() {
	if winner := g.board.Winner(); winner != roundel.CellNone {
		g.winner = winner
		g.over = true
		return
	}
	if g.board.Full() {
		g.over = true
		return
	}
	g.turn = g.turn.Opponent()
}
