package board

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/cricklet/chessgrid/internal/helpers"
)

const InitialFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

func fenStringForColor(c Color) string {
	if c == Black {
		return "b"
	}
	return "w"
}

func FenStringForGrid(g Grid) string {
	s := ""
	for row := 0; row < NumRows; row++ {
		numSpaces := 0
		for col := 0; col < NumCols; col++ {
			occupant := g[row][col]
			if occupant == XX {
				numSpaces++
				continue
			}
			if numSpaces > 0 {
				s += fmt.Sprint(numSpaces)
				numSpaces = 0
			}
			s += occupant.String()
		}
		if numSpaces > 0 {
			s += fmt.Sprint(numSpaces)
		}
		if row != NumRows-1 {
			s += "/"
		}
	}
	return s
}

// FenString always reports no castling rights, no en passant target and
// fresh clocks. None of those are tracked by a Position.
func (p *Position) FenString() string {
	return fmt.Sprintf("%v %v - - 0 1", FenStringForGrid(p.Squares), fenStringForColor(p.SideToMove))
}

// PositionFromFen reads the placement and side to move. Castling, en
// passant and clock fields are validated for shape and then dropped.
func PositionFromFen(s string) (*Position, Error) {
	ss := strings.Fields(s)
	if len(ss) != 6 && len(ss) != 4 && len(ss) != 2 {
		return nil, Errorf("wrong num %v of fields in str '%v'", len(ss), s)
	}

	boardStr, colorStr := ss[0], ss[1]
	position := &Position{}

	row, col := 0, 0
	for _, c := range boardStr {
		if c == '/' {
			if col != NumCols {
				return nil, Errorf("not enough squares in rank, '%v'", s)
			}
			row++
			col = 0
		} else if indicesToSkip, err := strconv.ParseInt(string(c), 10, 0); err == nil {
			col += int(indicesToSkip)
		} else if occupant, err := OccupantFromRune(c); IsNil(err) {
			if !InBounds(row, col) {
				return nil, Errorf("too many squares in rank, '%v'", s)
			}
			position.Squares[row][col] = occupant
			col++
		} else {
			return nil, Errorf("unknown character '%c' in '%v'", c, s)
		}
		if col > NumCols {
			return nil, Errorf("too many squares in rank, '%v'", s)
		}
	}
	if row != NumRows-1 || col != NumCols {
		return nil, Errorf("wrong number of squares in '%v'", s)
	}

	color, err := ColorFromString(colorStr)
	if !IsNil(err) {
		return nil, Errorf("invalid player '%v' in '%v'", colorStr, s)
	}
	position.SideToMove = color

	if len(ss) >= 4 {
		if strings.Trim(ss[2], "KQkq-") != "" {
			return nil, Errorf("invalid castling rights '%v' in '%v'", ss[2], s)
		}
		if ss[3] != "-" {
			if _, err := IndexFromSquareName(ss[3]); !IsNil(err) {
				return nil, Errorf("invalid en-passant target '%v' in '%v'", ss[3], s)
			}
		}
	}
	if len(ss) == 6 {
		for _, clock := range ss[4:6] {
			if _, err := strconv.ParseInt(clock, 10, 0); err != nil {
				return nil, Errorf("invalid clock '%v' in '%v'", clock, s)
			}
		}
	}

	return position, NilError
}
