package movegen

import (
	"sort"

	. "github.com/cricklet/chessgrid/internal/board"
)

type PerftResult struct {
	Leaves   int
	Captures int
}

func (r *PerftResult) Add(o PerftResult) {
	r.Leaves += o.Leaves
	r.Captures += o.Captures
}

// Perft counts the leaves of the pseudo-legal move tree. Moves that leave a
// king in check, or capture one, are counted like any other.
func Perft(p *Position, depth int) PerftResult {
	if depth <= 0 {
		return PerftResult{Leaves: 1}
	}
	return perft(p.Clone(), depth)
}

func perft(p *Position, depth int) PerftResult {
	result := PerftResult{}
	for _, move := range PseudoMoves(p) {
		captured := p.ApplyMoveUnchecked(move)
		if depth == 1 {
			result.Leaves++
			if !captured.IsEmpty() {
				result.Captures++
			}
		} else {
			result.Add(perft(p, depth-1))
		}
		p.Undo(move, captured)
	}
	return result
}

type PerftDivideEntry struct {
	Move   Move
	Result PerftResult
}

// PerftDivide reports the perft count below each root move, sorted by move
// string. progress, when non-nil, is called once per finished root move.
func PerftDivide(p *Position, depth int, progress func(done int, total int)) []PerftDivideEntry {
	if depth <= 0 {
		return []PerftDivideEntry{}
	}

	clone := p.Clone()
	moves := PseudoMoves(clone)
	entries := make([]PerftDivideEntry, 0, len(moves))

	for i, move := range moves {
		captured := clone.ApplyMoveUnchecked(move)

		var result PerftResult
		if depth == 1 {
			result = PerftResult{Leaves: 1}
			if !captured.IsEmpty() {
				result.Captures = 1
			}
		} else {
			result = perft(clone, depth-1)
		}
		clone.Undo(move, captured)

		entries = append(entries, PerftDivideEntry{move, result})
		if progress != nil {
			progress(i+1, len(moves))
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries
}

func PerftDivideTotal(entries []PerftDivideEntry) PerftResult {
	total := PerftResult{}
	for _, e := range entries {
		total.Add(e.Result)
	}
	return total
}
