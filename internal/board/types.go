package board

import (
	"strings"

	. "github.com/cricklet/chessgrid/internal/helpers"
)

type Color uint

const (
	White Color = iota
	Black
	NoColor
)

var _colorStrings = [3]string{
	"white", "black", "none",
}

func (c Color) String() string {
	return _colorStrings[c]
}

func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func ColorFromString(s string) (Color, Error) {
	switch s {
	case "w", "white":
		return White, NilError
	case "b", "black":
		return Black, NilError
	default:
		return NoColor, Errorf("invalid color '%v'", s)
	}
}

type PieceType uint

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var AllPieceTypes = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

var _pieceTypeStrings = [7]string{
	"", "p", "n", "b", "r", "q", "k",
}

var _pieceTypeNames = [7]string{
	"none", "pawn", "knight", "bishop", "rook", "queen", "king",
}

func (p PieceType) String() string {
	return _pieceTypeStrings[p]
}

func (p PieceType) Name() string {
	return _pieceTypeNames[p]
}

func (p PieceType) IsValid() bool {
	return p >= Pawn && p <= King
}

// PieceTypeFromString accepts either the one letter form or the full name.
func PieceTypeFromString(s string) (PieceType, Error) {
	s = strings.ToLower(s)
	for _, p := range AllPieceTypes {
		if s == p.String() || s == p.Name() {
			return p, NilError
		}
	}
	return NoPieceType, Errorf("invalid piece type '%v'", s)
}

// Occupant is the value held by a square: empty or one colored piece.
type Occupant uint

const (
	XX Occupant = iota
	WP
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
)

var _occupantColors = [13]Color{
	XX: NoColor,
	WP: White, WN: White, WB: White, WR: White, WQ: White, WK: White,
	BP: Black, BN: Black, BB: Black, BR: Black, BQ: Black, BK: Black,
}

var _occupantPieceTypes = [13]PieceType{
	XX: NoPieceType,
	WP: Pawn, WN: Knight, WB: Bishop, WR: Rook, WQ: Queen, WK: King,
	BP: Pawn, BN: Knight, BB: Bishop, BR: Rook, BQ: Queen, BK: King,
}

var _occupantForColor = func() [2][7]Occupant {
	result := [2][7]Occupant{}
	for o := WP; o <= BK; o++ {
		result[o.Color()][o.PieceType()] = o
	}
	return result
}()

func (o Occupant) Color() Color {
	return _occupantColors[o]
}

func (o Occupant) PieceType() PieceType {
	return _occupantPieceTypes[o]
}

func (o Occupant) IsEmpty() bool {
	return o == XX
}

func (o Occupant) IsWhite() bool {
	return o.Color() == White
}

func (o Occupant) IsBlack() bool {
	return o.Color() == Black
}

// OccupantFor returns XX when either argument is not a real color or piece type.
func OccupantFor(c Color, p PieceType) Occupant {
	if c == NoColor || !p.IsValid() {
		return XX
	}
	return _occupantForColor[c][p]
}

func (o Occupant) String() string {
	return []string{
		".",
		"P", "N", "B", "R", "Q", "K",
		"p", "n", "b", "r", "q", "k",
	}[o]
}

func (o Occupant) Unicode() string {
	return []string{
		" ",
		"♙", "♘", "♗", "♖", "♕", "♔",
		"♟", "♞", "♝", "♜", "♛", "♚",
	}[o]
}

func OccupantFromRune(c rune) (Occupant, Error) {
	switch c {
	case 'P':
		return WP, NilError
	case 'N':
		return WN, NilError
	case 'B':
		return WB, NilError
	case 'R':
		return WR, NilError
	case 'Q':
		return WQ, NilError
	case 'K':
		return WK, NilError
	case 'p':
		return BP, NilError
	case 'n':
		return BN, NilError
	case 'b':
		return BB, NilError
	case 'r':
		return BR, NilError
	case 'q':
		return BQ, NilError
	case 'k':
		return BK, NilError
	default:
		return XX, Errorf("invalid piece %q", c)
	}
}
