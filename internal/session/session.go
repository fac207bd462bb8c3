// Package session turns board clicks into picks and moves.
//
// A Session holds at most one picked square. Clicking a destination while
// a piece is picked applies the move if the picked piece can reach it.
// Sessions are not safe for concurrent use; the UI calls them from its
// event loop.
package session

import (
	"fmt"
	"io"
	"log"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Outcome describes what a click did.
type Outcome int

const (
	IgnoredEmpty Outcome = iota // no pick and the square is empty
	Picked                      // a piece was picked
	Unpicked                    // the picked square was clicked again
	Repicked                    // another friendly piece was picked instead
	Moved                       // the picked piece moved to the square
	Rejected                    // the picked piece cannot reach the square
)

var outcomeNames = [...]string{"ignored", "picked", "unpicked", "repicked", "moved", "rejected"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// MoveFilter narrows generated moves, e.g. to legal ones.
type MoveFilter interface {
	Filter(game *chess.Game, moves []chess.Move) ([]chess.Move, error)
}

// Session is a click-driven move selector over one game.
type Session struct {
	game    *chess.Game
	filter  MoveFilter
	logger  *log.Logger
	pick    chess.Position
	hasPick bool
	last    chess.Move
	moved   bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the progress logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFilter sets a filter applied to the picked piece's moves.
func WithFilter(f MoveFilter) Option {
	return func(s *Session) {
		s.filter = f
	}
}

// New creates a session over game.
func New(game *chess.Game, opts ...Option) *Session {
	s := &Session{
		game:   game,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Game returns the game the session plays on.
func (s *Session) Game() *chess.Game {
	return s.game
}

// Pick returns the picked square, if any.
func (s *Session) Pick() (chess.Position, bool) {
	return s.pick, s.hasPick
}

// LastMove returns the most recent move made through the session.
func (s *Session) LastMove() (chess.Move, bool) {
	return s.last, s.moved
}

// Click handles a click on pos. Errors come from move generation or the
// filter; an off-board pos yields errors.ErrInvalidPosition. On a Rejected
// click the pick is kept.
func (s *Session) Click(pos chess.Position) (Outcome, error) {
	if !pos.IsOnBoard() {
		return IgnoredEmpty, errors.Wrapf(errors.ErrInvalidPosition, "click at %s", pos)
	}

	if !s.hasPick {
		if s.game.Get(pos) == chess.Empty {
			s.logger.Printf("Picking empty cell %s?", pos)
			return IgnoredEmpty, nil
		}
		s.pick, s.hasPick = pos, true
		s.logger.Printf("Picking %s", pos)
		return Picked, nil
	}

	if pos == s.pick {
		s.hasPick = false
		s.logger.Printf("Unpicking %s", pos)
		return Unpicked, nil
	}

	s.logger.Printf("Clicked at %s", pos)

	src := s.game.Get(s.pick)
	dst := s.game.Get(pos)
	if dst != chess.Empty && dst.Side() == src.Side() {
		s.pick = pos
		s.logger.Printf("Picking %s", pos)
		return Repicked, nil
	}

	moves, err := s.moves()
	if err != nil {
		return Rejected, err
	}
	for _, m := range moves {
		if m.To != pos {
			continue
		}
		engine.ApplyMove(s.game, m)
		s.game.RecordMove(m)
		s.last, s.moved = m, true
		s.hasPick = false
		s.logger.Printf("Move %s", m)
		return Moved, nil
	}

	s.logger.Printf("No move from %s to %s", s.pick, pos)
	return Rejected, nil
}

// Targets returns the destinations of the picked piece, for highlighting.
// It is empty when nothing is picked.
func (s *Session) Targets() []chess.Position {
	if !s.hasPick {
		return nil
	}
	moves, err := s.moves()
	if err != nil {
		s.logger.Printf("Targets of %s: %v", s.pick, err)
		return nil
	}
	out := make([]chess.Position, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To)
	}
	return out
}

// moves generates the picked piece's moves, filtered when a filter is set.
func (s *Session) moves() ([]chess.Move, error) {
	if err := engine.GenerateMoves(s.game, s.pick); err != nil {
		return nil, err
	}
	moves := s.game.ValidMoves()
	if s.filter == nil {
		return moves, nil
	}
	return s.filter.Filter(s.game, moves)
}
