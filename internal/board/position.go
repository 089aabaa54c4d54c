package board

import (
	. "github.com/cricklet/chessgrid/internal/helpers"
)

const (
	NumRows = 8
	NumCols = 8
)

// Row 0 is rank 8 (black's back rank) and row 7 is rank 1 (white's back
// rank). Column 0 is file a. White pawns advance toward row 0.
type Grid [NumRows][NumCols]Occupant

type Position struct {
	Squares    Grid
	SideToMove Color
}

var InitialGrid = Grid{
	{BR, BN, BB, BQ, BK, BB, BN, BR},
	{BP, BP, BP, BP, BP, BP, BP, BP},
	{XX, XX, XX, XX, XX, XX, XX, XX},
	{XX, XX, XX, XX, XX, XX, XX, XX},
	{XX, XX, XX, XX, XX, XX, XX, XX},
	{XX, XX, XX, XX, XX, XX, XX, XX},
	{WP, WP, WP, WP, WP, WP, WP, WP},
	{WR, WN, WB, WQ, WK, WB, WN, WR},
}

func NewPosition() *Position {
	return &Position{
		Squares:    InitialGrid,
		SideToMove: White,
	}
}

func (p *Position) Clone() *Position {
	clone := *p
	return &clone
}

func InBounds(row int, col int) bool {
	return row >= 0 && row < NumRows && col >= 0 && col < NumCols
}

func IndexOf(row int, col int) int {
	return row*NumCols + col
}

func CoordinatesOf(index int) (int, int) {
	return index / NumCols, index % NumCols
}

func validIndex(index int) bool {
	return index >= 0 && index < NumRows*NumCols
}

// OccupantAt returns an empty optional for coordinates off the board.
func (p *Position) OccupantAt(row int, col int) Optional[Occupant] {
	if !InBounds(row, col) {
		return Empty[Occupant]()
	}
	return Some(p.Squares[row][col])
}

func (p *Position) OccupantAtIndex(index int) Optional[Occupant] {
	if !validIndex(index) {
		return Empty[Occupant]()
	}
	return p.OccupantAt(CoordinatesOf(index))
}

// SquareName maps an index to algebraic notation, so 0 is "a8" and 63 is "h1".
func SquareName(index int) string {
	row, col := CoordinatesOf(index)
	return string(rune('a'+col)) + string(rune('8'-row))
}

func IndexFromSquareName(s string) (int, Error) {
	if len(s) != 2 {
		return 0, Errorf("invalid square '%v'", s)
	}
	col := int(s[0]) - 'a'
	row := '8' - int(s[1])
	if !InBounds(row, col) {
		return 0, Errorf("invalid square '%v'", s)
	}
	return IndexOf(row, col), NilError
}

// ApplyMove rejects moves that do not start on a piece of the side to move
// or that land on one of its own pieces. The position is untouched on error.
func (p *Position) ApplyMove(move Move) Error {
	if !validIndex(move.From) || !validIndex(move.To) {
		return Errorf("move %v: index out of range (%v, %v)", move, move.From, move.To)
	}
	if move.From == move.To {
		return Errorf("move %v: origin and destination are the same square", move)
	}

	moving := p.OccupantAtIndex(move.From).Value()
	if moving.Color() != p.SideToMove {
		return Errorf("move %v: origin holds '%v', not a %v piece", move, moving, p.SideToMove)
	}

	target := p.OccupantAtIndex(move.To).Value()
	if target.Color() == p.SideToMove {
		return Errorf("move %v: destination holds own piece '%v'", move, target)
	}

	p.ApplyMoveUnchecked(move)
	return NilError
}

// ApplyMoveUnchecked moves whatever is on the origin to the destination,
// clears the origin and flips the side to move. It returns the occupant that
// was overwritten on the destination.
func (p *Position) ApplyMoveUnchecked(move Move) Occupant {
	fromRow, fromCol := CoordinatesOf(move.From)
	toRow, toCol := CoordinatesOf(move.To)

	captured := p.Squares[toRow][toCol]
	p.Squares[toRow][toCol] = p.Squares[fromRow][fromCol]
	p.Squares[fromRow][fromCol] = XX

	p.SideToMove = p.SideToMove.Other()
	return captured
}

// Undo reverses ApplyMoveUnchecked given the occupant it returned.
func (p *Position) Undo(move Move, captured Occupant) {
	fromRow, fromCol := CoordinatesOf(move.From)
	toRow, toCol := CoordinatesOf(move.To)

	p.Squares[fromRow][fromCol] = p.Squares[toRow][toCol]
	p.Squares[toRow][toCol] = captured

	p.SideToMove = p.SideToMove.Other()
}
