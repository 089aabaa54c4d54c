package board

import (
	"testing"

	. "github.com/cricklet/chessgrid/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestMoveStrings(t *testing.T) {
	move, err := MoveFromString("g1f3")
	assert.True(t, IsNil(err))
	assert.Equal(t, Move{From: IndexOf(7, 6), To: IndexOf(5, 5), Promotion: NoPieceType}, move)
	assert.Equal(t, "g1f3", move.String())

	move, err = MoveFromString("a7a8q")
	assert.True(t, IsNil(err))
	assert.Equal(t, Queen, move.Promotion)
	assert.Equal(t, "a7a8q", move.String())

	for _, s := range []string{"", "e2", "e2e9", "a7a8k", "a7a8x", "e2e4e5"} {
		_, err := MoveFromString(s)
		assert.False(t, IsNil(err), s)
	}

	assert.Equal(t, "0000", Move{From: -1, To: 70}.String())
}
