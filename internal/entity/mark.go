package entity

// Mark is the signed encoding of a cell owner. Summing marks along a line
// yields a value whose magnitude is the run length and whose sign is the owner.
type Mark int8

const (
	Empty   Mark = 0
	PlayerX Mark = 1
	PlayerO Mark = -1
)

// PlayerTie is the winner label of a round that ended with no free cells.
const PlayerTie = "-"

// IsPlayer reports whether m is one of the two player marks.
func (m Mark) IsPlayer() bool {
	return m == PlayerX || m == PlayerO
}

// Opponent returns the other player's mark. Empty stays Empty.
func (m Mark) Opponent() Mark {
	return -m
}

func (m Mark) String() string {
	switch m {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}
