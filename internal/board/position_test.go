package board

import (
	"testing"

	. "github.com/cricklet/chessgrid/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestInitialPosition(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, White, p.SideToMove)

	assert.Equal(t, BR, p.OccupantAt(0, 0).Value())
	assert.Equal(t, BK, p.OccupantAt(0, 4).Value())
	assert.Equal(t, WQ, p.OccupantAt(7, 3).Value())
	assert.Equal(t, WK, p.OccupantAt(7, 4).Value())
	for col := 0; col < NumCols; col++ {
		assert.Equal(t, BP, p.OccupantAt(1, col).Value())
		assert.Equal(t, WP, p.OccupantAt(6, col).Value())
		for row := 2; row < 6; row++ {
			assert.Equal(t, XX, p.OccupantAt(row, col).Value())
		}
	}
}

func TestOccupantAtOutOfBounds(t *testing.T) {
	p := NewPosition()
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {8, 8}, {-1, -1}} {
		assert.True(t, p.OccupantAt(rc[0], rc[1]).IsEmpty(), rc)
	}
	assert.True(t, p.OccupantAtIndex(64).IsEmpty())
	assert.True(t, p.OccupantAtIndex(-1).IsEmpty())
	assert.Equal(t, WR, p.OccupantAtIndex(63).Value())
}

func TestIndexRoundTrip(t *testing.T) {
	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			index := IndexOf(row, col)
			assert.Equal(t, row*8+col, index)

			r, c := CoordinatesOf(index)
			assert.Equal(t, row, r)
			assert.Equal(t, col, c)
		}
	}
}

func TestSquareNames(t *testing.T) {
	assert.Equal(t, "a8", SquareName(0))
	assert.Equal(t, "h1", SquareName(63))
	assert.Equal(t, "e2", SquareName(IndexOf(6, 4)))

	for index := 0; index < 64; index++ {
		parsed, err := IndexFromSquareName(SquareName(index))
		assert.True(t, IsNil(err))
		assert.Equal(t, index, parsed)
	}

	for _, s := range []string{"", "e", "i1", "a0", "a9", "e2e4"} {
		_, err := IndexFromSquareName(s)
		assert.False(t, IsNil(err), s)
	}
}

func TestColorLookup(t *testing.T) {
	for _, o := range []Occupant{WP, WN, WB, WR, WQ, WK} {
		assert.True(t, o.IsWhite())
		assert.False(t, o.IsBlack())
		assert.Equal(t, o, OccupantFor(White, o.PieceType()))
	}
	for _, o := range []Occupant{BP, BN, BB, BR, BQ, BK} {
		assert.True(t, o.IsBlack())
		assert.False(t, o.IsWhite())
		assert.Equal(t, o, OccupantFor(Black, o.PieceType()))
	}
	assert.Equal(t, NoColor, XX.Color())
	assert.Equal(t, NoPieceType, XX.PieceType())
	assert.True(t, XX.IsEmpty())
	assert.Equal(t, XX, OccupantFor(NoColor, Pawn))
	assert.Equal(t, XX, OccupantFor(White, NoPieceType))

	assert.Equal(t, Black, White.Other())
	assert.Equal(t, White, Black.Other())
	assert.Equal(t, NoColor, NoColor.Other())
}

func TestPieceTypeFromString(t *testing.T) {
	for _, s := range []string{"n", "knight", "Knight", "N"} {
		p, err := PieceTypeFromString(s)
		assert.True(t, IsNil(err))
		assert.Equal(t, Knight, p)
	}
	_, err := PieceTypeFromString("wizard")
	assert.False(t, IsNil(err))
}

func TestApplyPawnPush(t *testing.T) {
	p := NewPosition()
	move, err := MoveFromString("e2e4")
	assert.True(t, IsNil(err))

	err = p.ApplyMove(move)
	assert.True(t, IsNil(err))

	assert.Equal(t, Black, p.SideToMove)
	assert.Equal(t, XX, p.OccupantAt(6, 4).Value())
	assert.Equal(t, WP, p.OccupantAt(4, 4).Value())
}

func TestApplyMoveRejectsContractViolations(t *testing.T) {
	p := NewPosition()
	before := *p

	for _, s := range []string{
		"e4e5", // empty origin
		"e7e5", // opponent's piece
		"a1a2", // own piece on destination
		"d1d1", // same square
	} {
		move, err := MoveFromString(s)
		assert.True(t, IsNil(err), s)
		err = p.ApplyMove(move)
		assert.False(t, IsNil(err), s)
		assert.Equal(t, before, *p, s)
	}

	err := p.ApplyMove(Move{From: 64, To: 0})
	assert.False(t, IsNil(err))
	err = p.ApplyMove(Move{From: 52, To: -1})
	assert.False(t, IsNil(err))
	assert.Equal(t, before, *p)
}

func TestApplyMoveUncheckedTwice(t *testing.T) {
	p := NewPosition()
	move := NewMove(IndexOf(6, 4), IndexOf(4, 4))

	captured := p.ApplyMoveUnchecked(move)
	assert.Equal(t, XX, captured)
	assert.Equal(t, Black, p.SideToMove)

	// the origin is now empty, so the second application moves "nothing"
	// onto the pawn and flips the turn back
	captured = p.ApplyMoveUnchecked(move)
	assert.Equal(t, WP, captured)
	assert.Equal(t, White, p.SideToMove)
	assert.Equal(t, XX, p.OccupantAt(6, 4).Value())
	assert.Equal(t, XX, p.OccupantAt(4, 4).Value())
}

func TestUndo(t *testing.T) {
	p, err := PositionFromFen("4k3/8/8/3p4/4N3/8/8/4K3 w - - 0 1")
	assert.True(t, IsNil(err))
	before := *p

	move, err := MoveFromString("e4d5")
	assert.True(t, IsNil(err))

	captured := p.ApplyMoveUnchecked(move)
	assert.Equal(t, BP, captured)
	assert.Equal(t, WN, p.OccupantAtIndex(move.To).Value())

	p.Undo(move, captured)
	assert.Equal(t, before, *p)
}

func TestClone(t *testing.T) {
	p := NewPosition()
	clone := p.Clone()
	clone.ApplyMoveUnchecked(NewMove(IndexOf(6, 0), IndexOf(5, 0)))

	assert.Equal(t, WP, p.OccupantAt(6, 0).Value())
	assert.Equal(t, White, p.SideToMove)
	assert.NotEqual(t, *p, *clone)
}
