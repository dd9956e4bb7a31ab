package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/nrow-tictactoe/internal/config"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/usecase"
)

// RunApp - runs conf.Rounds self-play rounds until done or interrupted.
func RunApp(logger *slog.Logger, conf *config.Config) (usecase.Summary, error) {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf)
}

// Run plays the configured rounds on ctx.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config) (usecase.Summary, error) {
	log := logger.With("component", "app")

	round, err := tictactoe.NewRound(conf.Game, conf.Seed)
	if err != nil {
		return usecase.Summary{}, fmt.Errorf("could not create round: %w", err)
	}

	log.Info("Starting self-play",
		"board_size", conf.Game.BoardSize,
		"run_length", conf.Game.RunLength,
		"rounds", conf.Rounds,
		"seed", conf.Seed,
	)

	summary, err := usecase.NewSelfPlay(logger, round).Play(ctx, conf.Rounds)
	if err != nil {
		return summary, fmt.Errorf("self-play failed: %w", err)
	}

	log.Info("Self-play finished", "x", summary.WinsX, "o", summary.WinsO, "ties", summary.Ties)

	return summary, nil
}
