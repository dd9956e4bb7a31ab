package oracle

import (
	"testing"

	"github.com/rocketscienceinc/nrow-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/entity"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/evaluator"
	"github.com/rocketscienceinc/nrow-tictactoe/internal/indexset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placement struct {
	row, col int
	mark     entity.Mark
}

// setup builds a board with the given marks and an index set holding exactly
// the remaining free cells.
func setup(t *testing.T, size int, seed int64, marks ...placement) (*entity.Board, *indexset.IndexSet) {
	t.Helper()

	board, err := entity.NewBoard(size)
	require.NoError(t, err)

	set, err := indexset.New(size*size, seed)
	require.NoError(t, err)
	set.Fill()

	for _, p := range marks {
		require.NoError(t, board.Place(p.row, p.col, p.mark))

		index, err := entity.Encode(size, p.row, p.col)
		require.NoError(t, err)
		require.NoError(t, set.Remove(index))
	}

	return board, set
}

func newOracle(t *testing.T, size, run int) *MoveOracle {
	t.Helper()

	ev, err := evaluator.New(size, run)
	require.NoError(t, err)

	return New(ev)
}

func TestMoveOracle_PrefersWinOverBlock(t *testing.T) {
	X, O := entity.PlayerX, entity.PlayerO
	oracle := newOracle(t, 3, 3)

	for seed := int64(0); seed < 50; seed++ {
		// Given: X can win at (0,2) while O threatens (1,2)
		board, set := setup(t, 3, seed,
			placement{0, 0, X}, placement{0, 1, X},
			placement{1, 0, O}, placement{1, 1, O},
		)

		// When: X asks for a move
		cell, decision, err := oracle.ChooseMoveWithReason(board, set, X)

		// Then: the winning cell is returned regardless of tree shape
		require.NoError(t, err)
		assert.Equal(t, 2, cell, "seed %d", seed)
		assert.Equal(t, DecisionWin, decision)
	}
}

func TestMoveOracle_Blocks(t *testing.T) {
	X, O := entity.PlayerX, entity.PlayerO
	oracle := newOracle(t, 3, 3)

	for seed := int64(0); seed < 50; seed++ {
		// Given: O holds (1,0) and (1,1); X has no win
		board, set := setup(t, 3, seed,
			placement{0, 0, X}, placement{2, 1, X},
			placement{1, 0, O}, placement{1, 1, O},
		)

		// When: X asks for a move
		cell, decision, err := oracle.ChooseMoveWithReason(board, set, X)

		// Then: X blocks at (1,2)
		require.NoError(t, err)
		assert.Equal(t, 5, cell, "seed %d", seed)
		assert.Equal(t, DecisionBlock, decision)
	}
}

func TestMoveOracle_OWinsWithNegativeEncoding(t *testing.T) {
	X, O := entity.PlayerX, entity.PlayerO
	oracle := newOracle(t, 3, 3)

	board, set := setup(t, 3, 11,
		placement{0, 2, O}, placement{1, 1, O},
		placement{0, 0, X}, placement{0, 1, X},
	)

	cell, err := oracle.ChooseMove(board, set, O)

	require.NoError(t, err)
	assert.Equal(t, 6, cell)
}

func TestMoveOracle_Fallback(t *testing.T) {
	oracle := newOracle(t, 3, 3)

	t.Run("Empty board returns the root cell", func(t *testing.T) {
		board, set := setup(t, 3, 9)

		cell, decision, err := oracle.ChooseMoveWithReason(board, set, entity.PlayerX)
		require.NoError(t, err)

		root, err := set.Root()
		require.NoError(t, err)
		assert.Equal(t, root.Key(), cell)
		assert.Equal(t, DecisionFallback, decision)
		assert.True(t, set.Contains(cell))
	})

	t.Run("Does not mutate board or set", func(t *testing.T) {
		board, set := setup(t, 3, 9, placement{1, 1, entity.PlayerO})
		before := board.String()
		keys := set.Keys()

		_, err := oracle.ChooseMove(board, set, entity.PlayerX)
		require.NoError(t, err)

		assert.Equal(t, before, board.String())
		assert.Equal(t, keys, set.Keys())
	})
}

func TestMoveOracle_LargerBoard(t *testing.T) {
	X, O := entity.PlayerX, entity.PlayerO
	oracle := newOracle(t, 5, 4)

	// Given: O has three on the anti-diagonal (0,4),(1,3),(2,2); X has scattered marks
	board, set := setup(t, 5, 3,
		placement{0, 4, O}, placement{1, 3, O}, placement{2, 2, O},
		placement{0, 0, X}, placement{4, 4, X}, placement{0, 2, X},
	)

	// When: X asks for a move
	cell, decision, err := oracle.ChooseMoveWithReason(board, set, X)

	// Then: X blocks at (3,1)
	require.NoError(t, err)
	assert.Equal(t, 16, cell)
	assert.Equal(t, DecisionBlock, decision)
}

func TestMoveOracle_Errors(t *testing.T) {
	oracle := newOracle(t, 3, 3)

	t.Run("No moves available on an empty set", func(t *testing.T) {
		board, set := setup(t, 3, 1)
		set.Clear()

		_, err := oracle.ChooseMove(board, set, entity.PlayerX)
		require.ErrorIs(t, err, apperror.ErrNoMovesAvailable)
	})

	t.Run("Invalid player", func(t *testing.T) {
		board, set := setup(t, 3, 1)

		_, err := oracle.ChooseMove(board, set, entity.Empty)
		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})

	t.Run("Board mismatch surfaces from the evaluator", func(t *testing.T) {
		board, _ := setup(t, 4, 1)
		_, set := setup(t, 3, 1)

		_, err := oracle.ChooseMove(board, set, entity.PlayerX)
		require.ErrorIs(t, err, apperror.ErrBoardMismatch)
	})
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "win", DecisionWin.String())
	assert.Equal(t, "block", DecisionBlock.String())
	assert.Equal(t, "fallback", DecisionFallback.String())
}
