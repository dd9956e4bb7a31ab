package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/nrow-tictactoe/internal/entity"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/oracle"
)

type round interface {
	Restart()
	BotTurn() (int, int, oracle.Decision, error)
	IsFinished() bool
	Winner() string
	Board() *entity.Board
}

// Summary counts finished rounds by outcome.
type Summary struct {
	Rounds int `json:"rounds"`
	WinsX  int `json:"wins_x"`
	WinsO  int `json:"wins_o"`
	Ties   int `json:"ties"`
}

type SelfPlay struct {
	logger *slog.Logger
	round  round
}

func NewSelfPlay(logger *slog.Logger, round round) *SelfPlay {
	return &SelfPlay{
		logger: logger.With("component", "selfplay"),
		round:  round,
	}
}

// Play runs rounds bot-vs-bot games back to back. It checks ctx between turns.
func (that *SelfPlay) Play(ctx context.Context, rounds int) (Summary, error) {
	log := that.logger.With("method", "Play")

	var summary Summary
	for i := 0; i < rounds; i++ {
		winner, err := that.playRound(ctx, i)
		if err != nil {
			return summary, fmt.Errorf("round %d: %w", i, err)
		}

		summary.Rounds++
		switch winner {
		case entity.PlayerX.String():
			summary.WinsX++
		case entity.PlayerO.String():
			summary.WinsO++
		default:
			summary.Ties++
		}

		log.Info("round finished", "round", i, "winner", winner)
	}

	return summary, nil
}

func (that *SelfPlay) playRound(ctx context.Context, index int) (string, error) {
	that.round.Restart()

	for !that.round.IsFinished() {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		row, col, decision, err := that.round.BotTurn()
		if err != nil {
			return "", fmt.Errorf("failed bot turn: %w", err)
		}

		that.logger.Debug("bot moved", "round", index, "row", row, "col", col, "decision", decision.String())
	}

	that.logger.Debug("final board", "round", index, "board", that.round.Board().String())

	return that.round.Winner(), nil
}
