package game

import (
	"fmt"
	"strings"

	. "github.com/cricklet/chessgrid/internal/board"
	. "github.com/cricklet/chessgrid/internal/helpers"
	"github.com/cricklet/chessgrid/internal/movegen"
)

// Session owns one Position and the moves applied to it since StartFen.
// It is not safe for concurrent use.
type Session struct {
	Logger Logger

	p         *Position
	startFen  string
	startSide Color
	history   []HistoryValue
}

type HistoryValue struct {
	Move     Move
	Captured Occupant
}

type SessionOption func(*Session)

func WithLogger(logger Logger) SessionOption {
	return func(s *Session) {
		s.Logger = logger
	}
}

func WithStartFen(fen string) SessionOption {
	return func(s *Session) {
		s.startFen = fen
	}
}

// NewSession starts from the initial arrangement unless WithStartFen names
// another position. An invalid start FEN is reported by the returned error.
func NewSession(opts ...SessionOption) (*Session, Error) {
	s := &Session{
		Logger:   &SilentLogger,
		startFen: InitialFen,
	}
	for _, opt := range opts {
		opt(s)
	}

	err := s.SetupFen(s.startFen)
	if !IsNil(err) {
		return nil, err
	}
	return s, NilError
}

func (s *Session) Reset() {
	s.p = NewPosition()
	s.startFen = InitialFen
	s.startSide = White
	s.history = []HistoryValue{}
}

func (s *Session) SetupFen(fen string) Error {
	p, err := PositionFromFen(fen)
	if !IsNil(err) {
		return Errorf("couldn't create position from '%v': %w", fen, err)
	}

	s.p = p
	s.startFen = fen
	s.startSide = p.SideToMove
	s.history = []HistoryValue{}
	s.Logger.Println("setup", fen)
	return NilError
}

func (s *Session) Position() *Position {
	return s.p
}

func (s *Session) SideToMove() Color {
	return s.p.SideToMove
}

func (s *Session) StartFen() string {
	return s.startFen
}

func (s *Session) FenString() string {
	return s.p.FenString()
}

func (s *Session) Moves(pieceType PieceType) []Move {
	return movegen.MovesFor(s.p, pieceType)
}

func (s *Session) AllMoves() []Move {
	return movegen.PseudoMoves(s.p)
}

func (s *Session) MovesForSelection(selection string) ([]string, Error) {
	index, err := IndexFromSquareName(selection)
	if !IsNil(err) {
		return nil, Errorf("failed to parse selection: %w", err)
	}

	return MapSlice(movegen.MovesFrom(s.p, index), func(m Move) string {
		return m.String()
	}), NilError
}

// PerformMove only accepts moves the generator offers in the current position.
func (s *Session) PerformMove(move Move) Error {
	found := FindInSlice(movegen.MovesFrom(s.p, move.From), func(m Move) bool {
		return m == move
	})
	if found.IsEmpty() {
		return Errorf("%v is not a pseudo-legal move in '%v'", move, s.FenString())
	}

	captured := s.p.OccupantAtIndex(move.To).Value()
	err := s.p.ApplyMove(move)
	if !IsNil(err) {
		return Errorf("PerformMove: %w", err)
	}

	s.history = append(s.history, HistoryValue{Move: move, Captured: captured})
	s.Logger.Println("performed", move, "captured", captured)
	return NilError
}

func (s *Session) PerformMoveFromString(str string) Error {
	move, err := MoveFromString(str)
	if !IsNil(err) {
		return err
	}
	return s.PerformMove(move)
}

func (s *Session) PerformMoves(moves []string) Error {
	for _, m := range moves {
		err := s.PerformMoveFromString(m)
		if !IsNil(err) {
			return err
		}
	}
	return NilError
}

func (s *Session) Rewind(num int) Error {
	if num < 0 {
		return Errorf("Rewind: negative count %v", num)
	}
	n := MinInt(num, len(s.history))
	for i := 0; i < n; i++ {
		h := s.history[len(s.history)-1]
		s.p.Undo(h.Move, h.Captured)
		s.history = s.history[:len(s.history)-1]
	}
	return NilError
}

func (s *Session) LastMove() Optional[Move] {
	if len(s.history) > 0 {
		return Some(s.history[len(s.history)-1].Move)
	}
	return Empty[Move]()
}

func (s *Session) MoveHistory() []string {
	return MapSlice(s.history, func(h HistoryValue) string {
		return h.Move.String()
	})
}

// MoveListString numbers the history in pairs, "1. e2e4 e7e5 2. g1f3".
// A history starting with black begins "1... ".
func (s *Session) MoveListString() string {
	result := ""
	fullMove := 1
	halfMove := 0
	if s.startSide == Black {
		result += "1... "
		halfMove = 1
	}
	for _, h := range s.history {
		if halfMove == 0 {
			result += fmt.Sprintf("%v. ", fullMove)
		}

		result += fmt.Sprintf("%v ", h.Move.String())

		halfMove += 1
		if halfMove == 2 {
			halfMove = 0
			fullMove += 1
		}
	}
	return strings.TrimSpace(result)
}
