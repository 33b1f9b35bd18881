package player

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Randomizer is satisfied by *rand.Rand from math/rand/v2.
type Randomizer interface {
	IntN(n int) int
}

// Computer picks a key uniformly at random. It does not look at the board,
// the caller draws again when the cell is taken.
type Computer struct {
	logger *slog.Logger
	rng    Randomizer
}

func NewComputer(logger *slog.Logger, rng Randomizer) *Computer {
	return &Computer{
		logger: logger.With("component", "computer"),
		rng:    rng,
	}
}

func (that *Computer) NextMove(_ context.Context, _ *entity.Game) (entity.Position, error) {
	key := that.rng.IntN(entity.KeyMax) + entity.KeyMin
	that.logger.Debug("drew key", "key", key)

	return entity.PositionFromKey(key), nil
}
