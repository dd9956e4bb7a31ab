package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/nrow-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/config"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/entity"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/evaluator"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/indexset"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/oracle"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Round is one game between X and O. It owns the board and the set of free
// cells and applies one turn at a time.
type Round struct {
	board     *entity.Board
	free      *indexset.IndexSet
	evaluator *evaluator.LineEvaluator
	oracle    *oracle.MoveOracle

	turn   entity.Mark
	status string
	winner string
}

func NewRound(conf config.Game, seed int64) (*Round, error) {
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	board, err := entity.NewBoard(conf.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	free, err := indexset.New(conf.Cells(), seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create free cell set: %w", err)
	}

	ev, err := evaluator.New(conf.BoardSize, conf.RunLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluator: %w", err)
	}

	round := &Round{
		board:     board,
		free:      free,
		evaluator: ev,
		oracle:    oracle.New(ev),
	}
	round.Restart()

	return round, nil
}

// Restart clears the board and refills the free cells for a new round.
func (that *Round) Restart() {
	that.board.Reset()
	that.free.Fill()
	that.turn = entity.PlayerX
	that.status = StatusOngoing
	that.winner = ""
}

func (that *Round) MakeTurn(player entity.Mark, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := that.validateMove(player, row, col); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if err := that.board.Place(row, col, player); err != nil {
		return fmt.Errorf("failed to place mark: %w", err)
	}

	cell, _ := entity.Encode(that.board.Size(), row, col)
	if err := that.free.Remove(cell); err != nil {
		return fmt.Errorf("failed to release cell: %w", err)
	}

	return that.updateStatus(player, cell)
}

// BotTurn lets the oracle play for the player whose turn it is.
func (that *Round) BotTurn() (int, int, oracle.Decision, error) {
	if that.IsFinished() {
		return 0, 0, oracle.DecisionFallback, apperror.ErrGameFinished
	}

	cell, decision, err := that.oracle.ChooseMoveWithReason(that.board, that.free, that.turn)
	if err != nil {
		return 0, 0, decision, fmt.Errorf("failed to choose move: %w", err)
	}

	row, col, err := entity.Decode(that.board.Size(), cell)
	if err != nil {
		return 0, 0, decision, fmt.Errorf("oracle returned bad cell: %w", err)
	}

	if err = that.MakeTurn(that.turn, row, col); err != nil {
		return 0, 0, decision, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return row, col, decision, nil
}

// validateMove - checks if the move is valid.
func (that *Round) validateMove(player entity.Mark, row, col int) error {
	cell, err := entity.Encode(that.board.Size(), row, col)
	if err != nil {
		return err
	}

	if that.turn != player {
		return apperror.ErrNotYourTurn
	}

	if !that.free.Contains(cell) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateStatus - checks the round status after a move on cell.
func (that *Round) updateStatus(player entity.Mark, cell int) error {
	line, err := that.evaluator.Evaluate(that.board, cell, player, false)
	if err != nil {
		return fmt.Errorf("failed to evaluate move: %w", err)
	}

	switch {
	case line != 0:
		that.winner = entity.Mark(line / that.evaluator.RunLength()).String()
		that.status = StatusFinished
	case that.free.Len() == 0:
		that.winner = entity.PlayerTie
		that.status = StatusFinished
	default:
		that.turn = player.Opponent()
	}

	return nil
}

func (that *Round) Board() *entity.Board {
	return that.board
}

func (that *Round) Turn() entity.Mark {
	return that.turn
}

func (that *Round) Status() string {
	return that.status
}

// Winner is "X", "O", "-" for a tie, or empty while the round is ongoing.
func (that *Round) Winner() string {
	return that.winner
}

func (that *Round) FreeCells() int {
	return that.free.Len()
}

func (that *Round) IsFinished() bool {
	return that.status == StatusFinished
}
