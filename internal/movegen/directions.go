package movegen

// Direction is a (row, col) step. Negative rows point toward rank 8.
type Direction struct {
	DRow int
	DCol int
}

var (
	N  = Direction{-1, 0}
	S  = Direction{1, 0}
	W  = Direction{0, -1}
	E  = Direction{0, 1}
	NW = Direction{-1, -1}
	NE = Direction{-1, 1}
	SW = Direction{1, -1}
	SE = Direction{1, 1}
)

var KnightOffsets = [8]Direction{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var BishopDirections = [4]Direction{NW, NE, SW, SE}

var RookDirections = [4]Direction{N, S, W, E}

var QueenDirections = [8]Direction{N, S, W, E, NW, NE, SW, SE}

var KingOffsets = QueenDirections
