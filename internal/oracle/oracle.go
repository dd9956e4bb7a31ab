package oracle

import (
	"fmt"

	"github.com/rocketscienceinc/nrow-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/entity"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/evaluator"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/indexset"
)

// Decision tells how a move was picked.
type Decision int

const (
	DecisionFallback Decision = iota
	DecisionBlock
	DecisionWin
)

func (d Decision) String() string {
	switch d {
	case DecisionWin:
		return "win"
	case DecisionBlock:
		return "block"
	default:
		return "fallback"
	}
}

// MoveOracle picks a move with one-ply lookahead: win now, otherwise block the
// opponent's immediate win, otherwise any free cell. Double threats are not
// detected.
type MoveOracle struct {
	evaluator *evaluator.LineEvaluator
}

func New(ev *evaluator.LineEvaluator) *MoveOracle {
	return &MoveOracle{evaluator: ev}
}

func (that *MoveOracle) ChooseMove(board evaluator.Board, set *indexset.IndexSet, player entity.Mark) (int, error) {
	cell, _, err := that.ChooseMoveWithReason(board, set, player)
	return cell, err
}

func (that *MoveOracle) ChooseMoveWithReason(
	board evaluator.Board, set *indexset.IndexSet, player entity.Mark,
) (int, Decision, error) {
	if !player.IsPlayer() {
		return 0, DecisionFallback, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, player)
	}

	root, err := set.Root()
	if err != nil {
		return 0, DecisionFallback, err
	}

	s := search{
		evaluator: that.evaluator,
		board:     board,
		player:    player,
		block:     -1,
	}

	won, err := s.visit(root)
	if err != nil {
		return 0, DecisionFallback, fmt.Errorf("failed to search moves: %w", err)
	}

	switch {
	case won:
		return s.win, DecisionWin, nil
	case s.block >= 0:
		return s.block, DecisionBlock, nil
	default:
		return root.Key(), DecisionFallback, nil
	}
}

type search struct {
	evaluator *evaluator.LineEvaluator
	board     evaluator.Board
	player    entity.Mark

	win   int
	block int
}

// visit returns true as soon as a winning cell is found in the subtree.
func (that *search) visit(n indexset.Node) (bool, error) {
	cell := n.Key()
	target := that.evaluator.RunLength()

	own, err := that.evaluator.Evaluate(that.board, cell, that.player, true)
	if err != nil {
		return false, err
	}

	if own == target*int(that.player) {
		that.win = cell
		return true, nil
	}

	if that.block < 0 {
		opponent := that.player.Opponent()

		theirs, err := that.evaluator.Evaluate(that.board, cell, opponent, true)
		if err != nil {
			return false, err
		}

		if theirs == target*int(opponent) {
			that.block = cell
		}
	}

	if left, ok := n.Left(); ok {
		if won, err := that.visit(left); won || err != nil {
			return won, err
		}
	}

	if right, ok := n.Right(); ok {
		return that.visit(right)
	}

	return false, nil
}
