package board

import (
	"testing"

	. "github.com/cricklet/chessgrid/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestInitialFen(t *testing.T) {
	assert.Equal(t, InitialFen, NewPosition().FenString())

	p, err := PositionFromFen(InitialFen)
	assert.True(t, IsNil(err))
	assert.Equal(t, *NewPosition(), *p)
}

func TestFenDecoding(t *testing.T) {
	s := "8/5k2/3p4/1p1Pp2p/pP2Pp1P/P4P1K/8/8 b - - 99 50"
	p, err := PositionFromFen(s)
	assert.True(t, IsNil(err))

	assert.Equal(t, Grid{
		{XX, XX, XX, XX, XX, XX, XX, XX},
		{XX, XX, XX, XX, XX, BK, XX, XX},
		{XX, XX, XX, BP, XX, XX, XX, XX},
		{XX, BP, XX, WP, BP, XX, XX, BP},
		{BP, WP, XX, XX, WP, BP, XX, WP},
		{WP, XX, XX, XX, XX, WP, XX, WK},
		{XX, XX, XX, XX, XX, XX, XX, XX},
		{XX, XX, XX, XX, XX, XX, XX, XX},
	}, p.Squares)
	assert.Equal(t, Black, p.SideToMove)

	assert.Equal(t, "8/5k2/3p4/1p1Pp2p/pP2Pp1P/P4P1K/8/8 b - - 0 1", p.FenString())
}

func TestFenFieldCounts(t *testing.T) {
	for _, s := range []string{
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	} {
		p, err := PositionFromFen(s)
		assert.True(t, IsNil(err), s)
		assert.Equal(t, WP, p.OccupantAt(4, 4).Value())
		assert.Equal(t, Black, p.SideToMove)
	}
}

func TestInvalidFen(t *testing.T) {
	for _, s := range []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w",
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w",
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - a 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR/8 w",
	} {
		_, err := PositionFromFen(s)
		assert.False(t, IsNil(err), s)
	}
}
