package board

import "strings"

// String renders rank 8 at the top, white in upper case and empty squares as '.'.
func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < NumRows; row++ {
		sb.WriteString(rankLabel(row))
		for col := 0; col < NumCols; col++ {
			sb.WriteString(" ")
			sb.WriteString(p.Squares[row][col].String())
		}
		sb.WriteString("\n")
	}
	sb.WriteString(" ")
	for col := 0; col < NumCols; col++ {
		sb.WriteString(" ")
		sb.WriteString(fileLabel(col))
	}
	sb.WriteString("\n")
	return sb.String()
}

func rankLabel(row int) string {
	return string(rune('8' - row))
}

func fileLabel(col int) string {
	return string(rune('a' + col))
}

const _hintForeground = "\033[38;5;244m"
const _whiteForeground = "\033[38;5;255m"
const _blackForeground = "\033[38;5;232m"
const _lightBackground = "\033[48;5;250m"
const _darkBackground = "\033[48;5;243m"
const _resetColors = "\x1b[0m"

func (p *Position) Unicode() string {
	result := "  "
	for col := 0; col < NumCols; col++ {
		result += _hintForeground + " " + fileLabel(col) + " " + _resetColors
	}
	result += "\n"

	for row := 0; row < NumRows; row++ {
		result += _hintForeground + rankLabel(row) + " " + _resetColors
		for col := 0; col < NumCols; col++ {
			occupant := p.Squares[row][col]

			if (row+col)%2 == 0 {
				result += _lightBackground
			} else {
				result += _darkBackground
			}
			if occupant.IsWhite() {
				result += _whiteForeground
			} else {
				result += _blackForeground
			}

			result += " " + occupant.Unicode() + " " + _resetColors
		}
		result += "\n"
	}

	return result
}
