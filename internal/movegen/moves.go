package movegen

import (
	. "github.com/cricklet/chessgrid/internal/board"
)

func MovesFor(p *Position, pieceType PieceType) []Move {
	if !pieceType.IsValid() {
		return nil
	}
	moves := []Move{}
	Generate(func(move Move) {
		moves = append(moves, move)
	}, p, pieceType)
	return moves
}

func PawnMoves(p *Position) []Move {
	return MovesFor(p, Pawn)
}

func KnightMoves(p *Position) []Move {
	return MovesFor(p, Knight)
}

func BishopMoves(p *Position) []Move {
	return MovesFor(p, Bishop)
}

func RookMoves(p *Position) []Move {
	return MovesFor(p, Rook)
}

func QueenMoves(p *Position) []Move {
	return MovesFor(p, Queen)
}

func KingMoves(p *Position) []Move {
	return MovesFor(p, King)
}

// PseudoMoves concatenates every piece type's moves, pawns first. Nothing is
// filtered for check.
func PseudoMoves(p *Position) []Move {
	moves := make([]Move, 0, 64)
	for _, pieceType := range AllPieceTypes {
		Generate(func(move Move) {
			moves = append(moves, move)
		}, p, pieceType)
	}
	return moves
}

func MovesFrom(p *Position, from int) []Move {
	occupant := p.OccupantAtIndex(from)
	if occupant.IsEmpty() || occupant.Value().Color() != p.SideToMove {
		return []Move{}
	}
	moves := []Move{}
	Generate(func(move Move) {
		if move.From == from {
			moves = append(moves, move)
		}
	}, p, occupant.Value().PieceType())
	return moves
}
