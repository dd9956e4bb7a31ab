package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/nrow-tictactoe/internal/config"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Config *config.Config
}

// New returns a context bounded by maxWaitDuration and a suite with a debug
// logger and the classic 3x3 configuration.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	conf := &config.Config{
		LogLevel: "debug",
		Game: config.Game{
			BoardSize: 3,
			RunLength: 3,
		},
		Seed:   1,
		Rounds: 5,
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Config: conf,
	}
}
