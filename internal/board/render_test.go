package board

import (
	"strings"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"
)

func TestBoardPrint(t *testing.T) {
	assert.Equal(t, strings.Join([]string{
		"8 r n b q k b n r",
		"7 p p p p p p p p",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 P P P P P P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
		"",
	}, "\n"), NewPosition().String())
}

func TestBoardUnicode(t *testing.T) {
	lines := strings.Split(stripansi.Strip(NewPosition().Unicode()), "\n")

	assert.Equal(t, "   a  b  c  d  e  f  g  h ", lines[0])
	assert.Equal(t, "8  ♜  ♞  ♝  ♛  ♚  ♝  ♞  ♜ ", lines[1])
	assert.Equal(t, "5                         ", lines[4])
	assert.Equal(t, "1  ♖  ♘  ♗  ♕  ♔  ♗  ♘  ♖ ", lines[8])
}
