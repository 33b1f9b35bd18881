package tictactoe

//go:generate mockgen -source=driver.go -destination=mocks/move_source.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	msgHumanTurn    = "Player %s's turn: choose a number between 1 and 9:"
	msgComputerTurn = "Player %s's turn"
	msgChooseEmpty  = "Please choose an empty cell"
	msgDraw         = "It's a draw!"
	msgWon          = "Player %s won!"
)

// MoveSource proposes the next position for the side it plays.
type MoveSource interface {
	NextMove(ctx context.Context, game *entity.Game) (entity.Position, error)
}

type Options struct {
	// HumanPlays is the mark typed at the terminal, X always moves first.
	HumanPlays entity.Player
	// ComputerDelay is the pause after each computer move.
	ComputerDelay time.Duration
}

// Driver alternates turns between a human and a computer until the game ends.
type Driver struct {
	logger   *slog.Logger
	out      io.Writer
	renderer *Renderer

	game     *entity.Game
	human    MoveSource
	computer MoveSource
	opts     Options
}

func NewDriver(logger *slog.Logger, out io.Writer, renderer *Renderer, human, computer MoveSource, opts Options) *Driver {
	return &Driver{
		logger:   logger.With("component", "driver"),
		out:      out,
		renderer: renderer,

		game:     entity.NewGame(),
		human:    human,
		computer: computer,
		opts:     opts,
	}
}

// Game exposes the state being played.
func (that *Driver) Game() *entity.Game {
	return that.game
}

// Run plays until a win or a draw and prints the result. Errors come only
// from the move sources or from ctx.
func (that *Driver) Run(ctx context.Context) (entity.Outcome, error) {
	for !that.game.IsOver() {
		that.renderer.Board(&that.game.Board)

		var err error
		if that.game.Turn == that.opts.HumanPlays {
			err = that.humanTurn(ctx)
		} else {
			err = that.computerTurn(ctx)
		}

		if errors.Is(err, apperror.ErrCellOccupied) {
			fmt.Fprintln(that.out, msgChooseEmpty)
			continue
		}

		if err != nil {
			return that.game.Outcome, err
		}

		that.game.SwitchTurn()
	}

	that.renderer.Board(&that.game.Board)
	that.announce()

	return that.game.Outcome, nil
}

func (that *Driver) humanTurn(ctx context.Context) error {
	fmt.Fprintf(that.out, msgHumanTurn+"\n", that.game.Turn)

	pos, err := that.human.NextMove(ctx, that.game)
	if err != nil {
		return fmt.Errorf("failed to get human move: %w", err)
	}

	if err = that.game.ApplyMove(pos); err != nil {
		that.logger.Debug("human move rejected", "position", pos.String(), "error", err)
		return err
	}

	that.logMove(pos)

	return nil
}

// computerTurn draws until an empty cell comes up, without printing retries.
func (that *Driver) computerTurn(ctx context.Context) error {
	fmt.Fprintf(that.out, msgComputerTurn+"\n", that.game.Turn)

	attempts := 0
	for {
		pos, err := that.computer.NextMove(ctx, that.game)
		if err != nil {
			return fmt.Errorf("failed to get computer move: %w", err)
		}
		attempts++

		err = that.game.ApplyMove(pos)
		if errors.Is(err, apperror.ErrCellOccupied) {
			continue
		}

		if err != nil {
			return fmt.Errorf("computer move %s: %w", pos, err)
		}

		that.logger.Debug("computer settled", "attempts", attempts)
		that.logMove(pos)

		break
	}

	return that.pause(ctx)
}

func (that *Driver) pause(ctx context.Context) error {
	if that.opts.ComputerDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.opts.ComputerDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (that *Driver) logMove(pos entity.Position) {
	that.logger.Debug("move applied",
		"player", that.game.Turn.String(),
		"position", pos.String(),
		"empty_cells", that.game.Board.EmptyCells(),
		"outcome", that.game.Outcome.String(),
	)
}

func (that *Driver) announce() {
	winner, ok := that.game.Winner()
	if !ok {
		that.logger.Info("game over", "outcome", that.game.Outcome.String())
		fmt.Fprintln(that.out, msgDraw)
		return
	}

	that.logger.Info("game over", "outcome", that.game.Outcome.String(), "winner", winner.String())
	fmt.Fprintf(that.out, msgWon+"\n", winner)
}
