package movegen

import (
	. "github.com/cricklet/chessgrid/internal/board"
)

// Generate calls f with every pseudo-legal move of the given piece type for
// the side to move. Origins are visited row by row; moves from one origin
// follow the order of that piece's offset table.
func Generate(f func(move Move), p *Position, pieceType PieceType) {
	switch pieceType {
	case Pawn:
		eachOrigin(p, pieceType, func(row, col int) { generatePawnMoves(f, p, row, col) })
	case Knight:
		eachOrigin(p, pieceType, func(row, col int) { generateLeapingMoves(f, p, row, col, KnightOffsets[:]) })
	case Bishop:
		eachOrigin(p, pieceType, func(row, col int) { generateSlidingMoves(f, p, row, col, BishopDirections[:]) })
	case Rook:
		eachOrigin(p, pieceType, func(row, col int) { generateSlidingMoves(f, p, row, col, RookDirections[:]) })
	case Queen:
		eachOrigin(p, pieceType, func(row, col int) { generateSlidingMoves(f, p, row, col, QueenDirections[:]) })
	case King:
		eachOrigin(p, pieceType, func(row, col int) { generateLeapingMoves(f, p, row, col, KingOffsets[:]) })
	}
}

func eachOrigin(p *Position, pieceType PieceType, f func(row, col int)) {
	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			occupant := p.Squares[row][col]
			if occupant.PieceType() == pieceType && occupant.Color() == p.SideToMove {
				f(row, col)
			}
		}
	}
}

func isOpponent(p *Position, occupant Occupant) bool {
	return !occupant.IsEmpty() && occupant.Color() != p.SideToMove
}

func generateLeapingMoves(f func(move Move), p *Position, row, col int, offsets []Direction) {
	from := IndexOf(row, col)
	for _, offset := range offsets {
		target := p.OccupantAt(row+offset.DRow, col+offset.DCol)
		if target.IsEmpty() {
			continue
		}
		if target.Value().IsEmpty() || isOpponent(p, target.Value()) {
			f(NewMove(from, IndexOf(row+offset.DRow, col+offset.DCol)))
		}
	}
}

func generateSlidingMoves(f func(move Move), p *Position, row, col int, directions []Direction) {
	from := IndexOf(row, col)
	for _, dir := range directions {
		r, c := row+dir.DRow, col+dir.DCol
		for InBounds(r, c) {
			target := p.Squares[r][c]
			if target.IsEmpty() {
				f(NewMove(from, IndexOf(r, c)))
			} else {
				if isOpponent(p, target) {
					f(NewMove(from, IndexOf(r, c)))
				}
				break
			}
			r, c = r+dir.DRow, c+dir.DCol
		}
	}
}

// PawnDirection is the row delta of a forward pawn step.
func PawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// PawnStartRow is the row a color's pawns begin on.
func PawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// Pawns reaching the last row produce plain moves: promotion is not generated.
func generatePawnMoves(f func(move Move), p *Position, row, col int) {
	from := IndexOf(row, col)
	dir := PawnDirection(p.SideToMove)
	forwardRow := row + dir

	if InBounds(forwardRow, col) && p.Squares[forwardRow][col].IsEmpty() {
		f(NewMove(from, IndexOf(forwardRow, col)))

		doubleRow := row + 2*dir
		if row == PawnStartRow(p.SideToMove) && InBounds(doubleRow, col) && p.Squares[doubleRow][col].IsEmpty() {
			f(NewMove(from, IndexOf(doubleRow, col)))
		}
	}

	for _, dc := range [2]int{-1, 1} {
		target := p.OccupantAt(forwardRow, col+dc)
		if target.HasValue() && isOpponent(p, target.Value()) {
			f(NewMove(from, IndexOf(forwardRow, col+dc)))
		}
	}
}
