package board

import (
	. "github.com/cricklet/chessgrid/internal/helpers"
)

// Move indices are row-major: row*8 + col.
type Move struct {
	From      int
	To        int
	Promotion PieceType
}

func NewMove(from int, to int) Move {
	return Move{From: from, To: to, Promotion: NoPieceType}
}

func (m Move) String() string {
	if !validIndex(m.From) || !validIndex(m.To) {
		return "0000"
	}
	return SquareName(m.From) + SquareName(m.To) + m.Promotion.String()
}

// MoveFromString parses coordinate notation such as "e2e4" or "a7a8q".
func MoveFromString(s string) (Move, Error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, Errorf("invalid move '%v'", s)
	}

	from, fromErr := IndexFromSquareName(s[0:2])
	to, toErr := IndexFromSquareName(s[2:4])
	if !IsNil(fromErr) || !IsNil(toErr) {
		return Move{}, Join(Errorf("invalid move '%v'", s), fromErr, toErr)
	}

	move := NewMove(from, to)
	if len(s) == 5 {
		promotion, err := PieceTypeFromString(s[4:5])
		if !IsNil(err) || promotion == Pawn || promotion == King {
			return Move{}, Errorf("invalid promotion in move '%v'", s)
		}
		move.Promotion = promotion
	}
	return move, NilError
}
