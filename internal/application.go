package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/player"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// globalRand draws from the process-wide generator.
type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // it's ok
}

// RunApp - plays one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Play(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Play runs a single game reading moves from in and writing the transcript to out.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	logger = logger.With("session", uuid.NewString())
	log := logger.With("component", "app")

	var rng player.Randomizer = globalRand{}
	if conf.Seed != 0 {
		rng = rand.New(rand.NewPCG(conf.Seed, conf.Seed)) //nolint: gosec // it's ok
	}

	driver := tictactoe.NewDriver(logger, out, tictactoe.NewRenderer(out, conf.Color),
		player.NewHuman(logger, in, out),
		player.NewComputer(logger, rng),
		tictactoe.Options{
			HumanPlays:    conf.HumanPlayer(),
			ComputerDelay: conf.ComputerDelay,
		},
	)

	log.Info("Starting game", "human", conf.HumanPlayer().String(), "seeded", conf.Seed != 0)

	outcome, err := driver.Run(ctx)
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	log.Info("Game finished", "outcome", outcome.String())

	return nil
}
