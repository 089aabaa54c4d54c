package main

import (
	"fmt"

	"github.com/cricklet/chessgrid/internal/board"
	"github.com/cricklet/chessgrid/internal/game"
)

type UpdateToWeb struct {
	FenString     string   `json:"fenString"`
	LastMove      string   `json:"lastMove"`
	Selection     string   `json:"selection"`
	PossibleMoves []string `json:"possibleMoves"`
	Player        string   `json:"player"`
	GameID        string   `json:"gameId,omitempty"`
	Error         string   `json:"error,omitempty"`
}

func (u UpdateToWeb) String() string {
	return fmt.Sprint("UpdateToWeb: ", u.FenString, ", ", u.LastMove, ", ", u.Selection, ", ", u.PossibleMoves)
}

type MessageFromWeb struct {
	NewFen    *string `json:"newFen"`
	Selection *string `json:"selection"`
	Move      *string `json:"move"`
	Rewind    *int    `json:"rewind"`
	Reset     *bool   `json:"reset"`
	Save      *string `json:"save"`
	Load      *string `json:"load"`
}

func (u MessageFromWeb) String() string {
	if u.NewFen != nil {
		return fmt.Sprint("MessageFromWeb NewFen: ", *u.NewFen)
	}
	if u.Selection != nil {
		return fmt.Sprint("MessageFromWeb Selection: ", *u.Selection)
	}
	if u.Move != nil {
		return fmt.Sprint("MessageFromWeb Move: ", *u.Move)
	}
	if u.Rewind != nil {
		return fmt.Sprint("MessageFromWeb Rewind: ", *u.Rewind)
	}
	if u.Reset != nil {
		return fmt.Sprint("MessageFromWeb Reset: ", *u.Reset)
	}
	if u.Save != nil {
		return fmt.Sprint("MessageFromWeb Save: ", *u.Save)
	}
	if u.Load != nil {
		return fmt.Sprint("MessageFromWeb Load: ", *u.Load)
	}
	return "MessageFromWeb unknown"
}

// BoardResponse lays the grid out with row 0 as rank 8, matching the web
// board's own orientation.
type BoardResponse struct {
	Fen        string       `json:"fen"`
	Board      [8][8]string `json:"board"`
	SideToMove string       `json:"sideToMove"`
	Moves      []string     `json:"moves"`
	History    []string     `json:"history"`
}

var _occupantNames = map[board.Occupant]string{
	board.XX: "EMPTY",
	board.WP: "WP", board.WN: "WN", board.WB: "WB", board.WR: "WR", board.WQ: "WQ", board.WK: "WK",
	board.BP: "BP", board.BN: "BN", board.BB: "BB", board.BR: "BR", board.BQ: "BQ", board.BK: "BK",
}

func boardResponse(s *game.Session) BoardResponse {
	p := s.Position()
	response := BoardResponse{
		Fen:        s.FenString(),
		SideToMove: p.SideToMove.String(),
		Moves:      []string{},
		History:    s.MoveHistory(),
	}
	for row := 0; row < board.NumRows; row++ {
		for col := 0; col < board.NumCols; col++ {
			response.Board[row][col] = _occupantNames[p.Squares[row][col]]
		}
	}
	for _, m := range s.AllMoves() {
		response.Moves = append(response.Moves, m.String())
	}
	return response
}
