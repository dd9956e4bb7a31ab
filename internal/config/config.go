package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/apperror"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"NROW_LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
	Seed     int64  `yaml:"seed" env:"NROW_SEED" env-default:"1"`
	Rounds   int    `yaml:"rounds" env:"NROW_ROUNDS" env-default:"10"`
}

type Game struct {
	BoardSize int `yaml:"board-size" env:"NROW_BOARD_SIZE" env-default:"3"`
	RunLength int `yaml:"run-length" env:"NROW_RUN_LENGTH" env-default:"3"`
}

// MustLoad - load configuration from the yaml file at path, or from the environment when path is empty.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Rounds < 1 {
		return fmt.Errorf("rounds must be positive, got %d", that.Rounds)
	}

	return that.Game.Validate()
}

func (that *Game) Validate() error {
	if that.BoardSize < 1 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, that.BoardSize)
	}

	if that.RunLength < 1 || that.RunLength > that.BoardSize {
		return fmt.Errorf("%w: run %d on %dx%d", apperror.ErrMalformedLine, that.RunLength, that.BoardSize, that.BoardSize)
	}

	return nil
}

// Cells is the number of cells on the configured board.
func (that *Game) Cells() int {
	return that.BoardSize * that.BoardSize
}
