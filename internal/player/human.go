package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	msgNotANumber = "Please enter a number"
	msgOutOfRange = "Please enter a number between 1 and 9"
)

// Human reads keypad numbers typed at the terminal.
type Human struct {
	logger *slog.Logger
	in     *bufio.Reader
	out    io.Writer
}

func NewHuman(logger *slog.Logger, in io.Reader, out io.Writer) *Human {
	return &Human{
		logger: logger.With("component", "human"),
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// NextMove blocks until a line holding a number in [1, 9] is read.
// Any read failure ends the game.
func (that *Human) NextMove(ctx context.Context, _ *entity.Game) (entity.Position, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Position{}, err
		}

		line, err := that.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			if errors.Is(err, io.EOF) {
				return entity.Position{}, apperror.ErrInputClosed
			}
			return entity.Position{}, fmt.Errorf("failed to read move: %w", err)
		}

		key, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			that.logger.Debug("rejected input", "input", strings.TrimSpace(line))
			fmt.Fprintln(that.out, msgNotANumber)
			continue
		}

		if key < entity.KeyMin || key > entity.KeyMax {
			that.logger.Debug("rejected key", "key", key)
			fmt.Fprintln(that.out, msgOutOfRange)
			continue
		}

		return entity.PositionFromKey(key), nil
	}
}
