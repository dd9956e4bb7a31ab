package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/nrow-tictactoe/internal"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/config"
)

func SelfPlay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let the bot play against itself",
		Long: heredoc.Doc(`selfplay plays bot-vs-bot rounds on an N-in-a-row board.
			Each move wins if it can, blocks an immediate threat otherwise, and
			falls back to any free cell. A summary of outcomes is printed at the end.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")

			conf, err := config.Load(path)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("rounds") {
				conf.Rounds, _ = cmd.Flags().GetInt("rounds")
			}
			if cmd.Flags().Changed("seed") {
				conf.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if err = conf.Validate(); err != nil {
				return err
			}

			summary, err := app.RunApp(initLogger(conf), conf)
			if err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "rounds: %d  X: %d  O: %d  ties: %d\n",
				summary.Rounds, summary.WinsX, summary.WinsO, summary.Ties)

			return nil
		},
	}

	cmd.Flags().IntP("rounds", "r", 0, "Number of rounds to play")
	cmd.Flags().Int64P("seed", "s", 0, "Seed for the free cell tree")

	return cmd
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
