package game

import (
	"time"

	. "github.com/cricklet/chessgrid/internal/helpers"
)

// Record is the serialisable form of a Session: replaying Moves from
// StartFen reproduces the position.
type Record struct {
	ID        string    `json:"id"`
	StartFen  string    `json:"startFen"`
	Moves     []string  `json:"moves"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Session) Record(id string) Record {
	return Record{
		ID:        id,
		StartFen:  s.startFen,
		Moves:     s.MoveHistory(),
		UpdatedAt: time.Now(),
	}
}

func SessionFromRecord(r Record, opts ...SessionOption) (*Session, Error) {
	s, err := NewSession(append(opts, WithStartFen(r.StartFen))...)
	if !IsNil(err) {
		return nil, Errorf("record %v: %w", r.ID, err)
	}

	err = s.PerformMoves(r.Moves)
	if !IsNil(err) {
		return nil, Errorf("record %v: replaying moves: %w", r.ID, err)
	}
	return s, NilError
}
