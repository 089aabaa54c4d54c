package movegen

import (
	"testing"

	. "github.com/cricklet/chessgrid/internal/board"
	"github.com/stretchr/testify/assert"
)

func TestPerftFromInitialPosition(t *testing.T) {
	p := NewPosition()
	before := *p

	assert.Equal(t, PerftResult{Leaves: 1}, Perft(p, 0))
	assert.Equal(t, PerftResult{Leaves: 20}, Perft(p, 1))
	assert.Equal(t, PerftResult{Leaves: 400}, Perft(p, 2))
	assert.Equal(t, PerftResult{Leaves: 8902, Captures: 34}, Perft(p, 3))

	assert.Equal(t, before, *p)
}

func TestPerftDivide(t *testing.T) {
	p := NewPosition()

	calls := 0
	entries := PerftDivide(p, 2, func(done int, total int) {
		calls++
		assert.Equal(t, calls, done)
		assert.Equal(t, 20, total)
	})

	assert.Equal(t, 20, calls)
	assert.Equal(t, 20, len(entries))
	assert.Equal(t, "a2a3", entries[0].Move.String())
	for _, e := range entries {
		assert.Equal(t, 20, e.Result.Leaves, e.Move.String())
	}
	assert.Equal(t, PerftResult{Leaves: 400}, PerftDivideTotal(entries))

	assert.Empty(t, PerftDivide(p, 0, nil))
	assert.Equal(t, *NewPosition(), *p)
}

func TestPerftCountsCaptures(t *testing.T) {
	p := positionFromFen(t, "4k3/8/3p4/8/4N3/8/8/4K3 w - - 0 1")

	entries := PerftDivide(p, 1, nil)
	total := PerftDivideTotal(entries)
	assert.Equal(t, 1, total.Captures)
	assert.Equal(t, Perft(p, 1), total)
}
