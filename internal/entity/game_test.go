package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = MarkX
	o = MarkO
	e = EmptyCell
)

func TestNewGame(t *testing.T) {
	// When: create a new game instance
	game := NewGame()

	// Then: the board is empty, X moves first and nothing is decided
	expectedGame := &Game{
		Board:   Board{},
		Turn:    PlayerX,
		Outcome: InProgress,
	}

	require.Equal(t, expectedGame, game)
	assert.Equal(t, 9, game.Board.EmptyCells())
	assert.False(t, game.IsOver())
}

func TestBoard_Outcome(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Outcome
	}{
		{
			name:  "empty board is in progress",
			board: Board{},
			want:  InProgress,
		},
		{
			name: "partial board is in progress",
			board: Board{
				{x, o, e},
				{e, x, e},
				{e, e, o},
			},
			want: InProgress,
		},
		{
			name: "X wins on the top row",
			board: Board{
				{x, x, x},
				{e, o, e},
				{e, e, o},
			},
			want: Win,
		},
		{
			name: "O wins on the middle column",
			board: Board{
				{x, o, e},
				{x, o, e},
				{e, o, x},
			},
			want: Win,
		},
		{
			name: "X wins on the main diagonal",
			board: Board{
				{x, o, e},
				{e, x, o},
				{e, e, x},
			},
			want: Win,
		},
		{
			name: "O wins on the anti-diagonal",
			board: Board{
				{x, x, o},
				{e, o, e},
				{o, e, x},
			},
			want: Win,
		},
		{
			name: "win on a full board is still a win",
			board: Board{
				{x, x, x},
				{o, o, x},
				{o, x, o},
			},
			want: Win,
		},
		{
			name: "full board without a line is a draw",
			board: Board{
				{x, o, x},
				{x, o, o},
				{o, x, x},
			},
			want: Draw,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.board.Outcome())
		})
	}
}

// hasLine checks every line by hand, independently of WinLines.
func hasLine(b Board) bool {
	same := func(a, b, c Cell) bool { return a != EmptyCell && a == b && b == c }
	for i := range BoardSize {
		if same(b[i][0], b[i][1], b[i][2]) || same(b[0][i], b[1][i], b[2][i]) {
			return true
		}
	}
	return same(b[0][0], b[1][1], b[2][2]) || same(b[0][2], b[1][1], b[2][0])
}

func TestBoard_OutcomeAllBoards(t *testing.T) {
	// Given: every one of the 3^9 possible cell assignments
	for code := 0; code < 19683; code++ {
		var board Board
		empty := false
		n := code
		for i := range 9 {
			board[i/3][i%3] = Cell(n % 3)
			if board[i/3][i%3] == EmptyCell {
				empty = true
			}
			n /= 3
		}

		// When: evaluating the outcome twice
		got := board.Outcome()
		require.Equal(t, got, board.Outcome(), "outcome must be idempotent")

		// Then: it agrees with a direct line check
		switch {
		case hasLine(board):
			require.Equal(t, Win, got, "board %v", board)
		case empty:
			require.Equal(t, InProgress, got, "board %v", board)
		default:
			require.Equal(t, Draw, got, "board %v", board)
		}
	}
}

func TestGame_ApplyMove(t *testing.T) {
	t.Run("Places the current mark and keeps the turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: X plays the center
		err := game.ApplyMove(Position{1, 1})
		require.NoError(t, err)

		// Then: only the center changed and X is still on turn
		expected := Board{}
		expected[1][1] = MarkX
		assert.Equal(t, expected, game.Board)
		assert.Equal(t, PlayerX, game.Turn)
		assert.Equal(t, PlayerX, game.LastMover)
		assert.Equal(t, InProgress, game.Outcome)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where X took the top-left corner and O is on turn
		game := NewGame()
		require.NoError(t, game.ApplyMove(Position{0, 0}))
		game.SwitchTurn()
		before := *game

		// When: O tries the same cell
		err := game.ApplyMove(Position{0, 0})

		// Then: ErrCellOccupied is returned and the game is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *game)
	})

	t.Run("Error on position outside the board", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: moves off the board are attempted
		for _, pos := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			err := game.ApplyMove(pos)

			// Then: every one is rejected
			assert.ErrorIs(t, err, apperror.ErrInvalidPosition)
		}
		assert.Equal(t, Board{}, game.Board)
	})

	t.Run("Error once the game is over", func(t *testing.T) {
		// Given: X already won
		game := &Game{
			Board: Board{
				{x, x, x},
				{o, o, e},
				{e, e, e},
			},
			Turn:      PlayerO,
			Outcome:   Win,
			LastMover: PlayerX,
		}

		// When: O tries to keep playing
		err := game.ApplyMove(Position{1, 2})

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, e, game.Board[1][2])
	})
}

func TestGame_SwitchTurn(t *testing.T) {
	// Given: a new game with X on turn
	game := NewGame()

	// When: switching once
	game.SwitchTurn()

	// Then: O is on turn
	assert.Equal(t, PlayerO, game.Turn)

	// When: switching again
	game.SwitchTurn()

	// Then: the original turn is restored
	assert.Equal(t, PlayerX, game.Turn)
}

func TestGame_BottomRowByKeys(t *testing.T) {
	// Given: a new game
	game := NewGame()

	// When: X plays keys 1, 2, 3 while O is ignored
	for _, key := range []int{1, 2, 3} {
		require.NoError(t, game.ApplyMove(PositionFromKey(key)))
	}

	// Then: the bottom row is all X and the game is won by X
	assert.Equal(t, [3]Cell{x, x, x}, game.Board[2])
	assert.Equal(t, Win, game.EvaluateOutcome())
	assert.True(t, game.IsOver())

	winner, ok := game.Winner()
	require.True(t, ok)
	assert.Equal(t, PlayerX, winner)
}

func TestGame_Draw(t *testing.T) {
	// Given: a sequence of alternating moves that fills the board without a line
	//   X O X
	//   X O O
	//   O X X
	moves := []Position{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {2, 2}}
	game := NewGame()

	// When: the moves are played with a turn switch after each one
	for _, pos := range moves {
		require.False(t, game.IsOver())
		require.NoError(t, game.ApplyMove(pos))
		game.SwitchTurn()
	}

	// Then: the game ends in a draw without a winner
	assert.Equal(t, Draw, game.Outcome)
	_, ok := game.Winner()
	assert.False(t, ok)
}

func TestGame_WinnerIsLastMover(t *testing.T) {
	// Given: O is one move from completing the middle column
	game := &Game{
		Board: Board{
			{x, o, x},
			{e, o, e},
			{x, e, e},
		},
		Turn: PlayerO,
	}

	// When: O completes the column and the turn is switched
	require.NoError(t, game.ApplyMove(Position{2, 1}))
	game.SwitchTurn()

	// Then: O is reported as the winner although X is on turn
	winner, ok := game.Winner()
	require.True(t, ok)
	assert.Equal(t, PlayerO, winner)
	assert.Equal(t, PlayerX, game.Turn)
}
