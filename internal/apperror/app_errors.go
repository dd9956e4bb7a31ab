package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfRange       = errors.New("cell index out of range")
	ErrNoMovesAvailable = errors.New("no moves available")
	ErrMalformedLine    = errors.New("run length does not fit the board")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrBoardMismatch    = errors.New("board size does not match evaluator")
	ErrInvalidPlayer    = errors.New("invalid player mark")
)
