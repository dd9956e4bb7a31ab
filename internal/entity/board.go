package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/nrow-tictactoe/internal/apperror"
)

const MaxBoardSize = 64

// Board is a square grid of marks stored row-major.
type Board struct {
	size  int
	cells []Mark
}

func NewBoard(size int) (*Board, error) {
	if size < 1 || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]Mark, size*size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

// Cells returns the number of cells on the board.
func (that *Board) Cells() int {
	return len(that.cells)
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < that.size && col < that.size
}

// At returns the mark at (row, col), or Empty when the coordinates are off the board.
func (that *Board) At(row, col int) Mark {
	if !that.InBounds(row, col) {
		return Empty
	}

	return that.cells[row*that.size+col]
}

// Place writes mark to an empty cell.
func (that *Board) Place(row, col int, mark Mark) error {
	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfRange, row, col)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, mark)
	}

	idx := row*that.size + col
	if that.cells[idx] != Empty {
		return apperror.ErrCellOccupied
	}

	that.cells[idx] = mark

	return nil
}

func (that *Board) Reset() {
	for i := range that.cells {
		that.cells[i] = Empty
	}
}

func (that *Board) String() string {
	var sb strings.Builder

	for row := 0; row < that.size; row++ {
		for col := 0; col < that.size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(that.At(row, col).String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Encode maps (row, col) to the linear cell index row*size + col.
func Encode(size, row, col int) (int, error) {
	if row < 0 || col < 0 || row >= size || col >= size {
		return 0, fmt.Errorf("%w: (%d, %d) on %dx%d", apperror.ErrOutOfRange, row, col, size, size)
	}

	return row*size + col, nil
}

// Decode is the inverse of Encode.
func Decode(size, index int) (int, int, error) {
	if size < 1 || index < 0 || index >= size*size {
		return 0, 0, fmt.Errorf("%w: %d on %dx%d", apperror.ErrOutOfRange, index, size, size)
	}

	return index / size, index % size, nil
}
