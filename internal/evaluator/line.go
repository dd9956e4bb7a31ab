package evaluator

import (
	"fmt"

	"github.com/rocketscienceinc/nrow-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/entity"
)

// Board is the read-only view of the grid the evaluator scores.
type Board interface {
	Size() int
	At(row, col int) entity.Mark
}

// directions are row, column, main diagonal and anti-diagonal steps.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// LineEvaluator detects completed runs of a fixed length through a cell.
type LineEvaluator struct {
	boardSize int
	runLength int
}

func New(boardSize, runLength int) (*LineEvaluator, error) {
	if boardSize < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, boardSize)
	}

	if runLength < 1 || runLength > boardSize {
		return nil, fmt.Errorf("%w: run %d on %dx%d", apperror.ErrMalformedLine, runLength, boardSize, boardSize)
	}

	return &LineEvaluator{
		boardSize: boardSize,
		runLength: runLength,
	}, nil
}

func (that *LineEvaluator) BoardSize() int {
	return that.boardSize
}

func (that *LineEvaluator) RunLength() int {
	return that.runLength
}

// Evaluate sums signed marks over every run of RunLength cells through cell,
// along the row, the column and each diagonal long enough to hold a run.
// It returns the first sum whose magnitude equals RunLength, or 0.
//
// In forecast mode the cell counts as holding player's mark; the board is
// never written. A positive result favors X, a negative one O.
func (that *LineEvaluator) Evaluate(board Board, cell int, player entity.Mark, forecast bool) (int, error) {
	if board.Size() != that.boardSize {
		return 0, fmt.Errorf("%w: board %d, evaluator %d", apperror.ErrBoardMismatch, board.Size(), that.boardSize)
	}

	row, col, err := entity.Decode(that.boardSize, cell)
	if err != nil {
		return 0, err
	}

	if forecast && !player.IsPlayer() {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, player)
	}

	markAt := func(r, c int) int {
		if forecast && r == row && c == col {
			return int(player)
		}
		return int(board.At(r, c))
	}

	for _, dir := range directions {
		if sum := that.scanLine(row, col, dir, markAt); sum != 0 {
			return sum, nil
		}
	}

	return 0, nil
}

// scanLine slides a window of runLength cells along dir over every position
// that still covers (row, col).
func (that *LineEvaluator) scanLine(row, col int, dir [2]int, markAt func(r, c int) int) int {
	back := that.reach(row, col, -dir[0], -dir[1])
	forward := that.reach(row, col, dir[0], dir[1])

	// diagonal shorter than a run
	if back+forward+1 < that.runLength {
		return 0
	}

	for start := -min(back, that.runLength-1); start <= 0; start++ {
		if start+that.runLength-1 > forward {
			break
		}

		sum := 0
		for step := start; step < start+that.runLength; step++ {
			sum += markAt(row+step*dir[0], col+step*dir[1])
		}

		if sum == that.runLength || sum == -that.runLength {
			return sum
		}
	}

	return 0
}

// reach counts in-bounds cells from (row, col) along (dr, dc), excluding the origin.
func (that *LineEvaluator) reach(row, col, dr, dc int) int {
	steps := 0
	for {
		r, c := row+dr*(steps+1), col+dc*(steps+1)
		if r < 0 || c < 0 || r >= that.boardSize || c >= that.boardSize {
			return steps
		}
		steps++
	}
}
