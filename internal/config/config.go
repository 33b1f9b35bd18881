package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	LogLevel      string        `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"error" validate:"oneof=debug info warn error"`
	ComputerDelay time.Duration `yaml:"computer-delay" env:"TICTACTOE_COMPUTER_DELAY" env-default:"1s" validate:"gte=0"`
	HumanMark     string        `yaml:"human-mark" env:"TICTACTOE_HUMAN_MARK" env-default:"X" validate:"oneof=X O"`
	Seed          uint64        `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
	Color         bool          `yaml:"color" env:"TICTACTOE_COLOR" env-default:"false"`
}

// Load reads the yml file at path, environment variables override it.
// A missing file is not an error, defaults and environment are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// HumanPlayer returns the side typed at the terminal.
func (that *Config) HumanPlayer() entity.Player {
	p, _ := entity.ParsePlayer(that.HumanMark)
	return p
}
