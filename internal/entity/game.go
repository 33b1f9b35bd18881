package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type Cell int

const (
	EmptyCell Cell = iota
	MarkX
	MarkO
)

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "_"
	}
}

type Outcome int

const (
	InProgress Outcome = iota
	Win
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in-progress"
	}
}

const BoardSize = 3

// Position addresses a cell, row and column are zero based.
type Position struct {
	Row int
	Col int
}

func (that Position) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// WinLines lists every row, column and diagonal.
var WinLines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Board [BoardSize][BoardSize]Cell

func (that *Board) At(pos Position) Cell {
	return that[pos.Row][pos.Col]
}

// Outcome derives the game status from the board contents alone.
func (that *Board) Outcome() Outcome {
	for _, line := range WinLines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != EmptyCell && a == b && b == c {
			return Win
		}
	}

	// the game will continue until all the squares are full
	if that.EmptyCells() > 0 {
		return InProgress
	}

	return Draw
}

func (that *Board) EmptyCells() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				count++
			}
		}
	}
	return count
}

type Game struct {
	Board     Board
	Turn      Player
	Outcome   Outcome
	LastMover Player
}

// NewGame returns an empty board with X to move.
func NewGame() *Game {
	return &Game{
		Turn:    PlayerX,
		Outcome: InProgress,
	}
}

// ApplyMove places the current player's mark at pos. The turn is not advanced,
// so the caller can still see who moved before calling SwitchTurn.
func (that *Game) ApplyMove(pos Position) error {
	if !pos.IsValid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidPosition, pos)
	}

	if that.IsOver() {
		return apperror.ErrGameFinished
	}

	if that.Board.At(pos) != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[pos.Row][pos.Col] = that.Turn.Mark()
	that.LastMover = that.Turn
	that.Outcome = that.EvaluateOutcome()

	return nil
}

func (that *Game) SwitchTurn() {
	that.Turn = that.Turn.Opponent()
}

func (that *Game) EvaluateOutcome() Outcome {
	return that.Board.Outcome()
}

func (that *Game) IsOver() bool {
	return that.Outcome != InProgress
}

// Winner reports the player who completed a line. Only the last mover can
// have done so.
func (that *Game) Winner() (Player, bool) {
	if that.Outcome != Win {
		return PlayerX, false
	}
	return that.LastMover, true
}
