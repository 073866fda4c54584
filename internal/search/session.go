package search

import (
	"github.com/google/uuid"

	"leapseek/internal/match"
)

// Session is the state of one activation. It is created on Activate
// and destroyed on jump, cancel, or outside click; nothing survives
// across activations.
type Session struct {
	// ID identifies the session in logs.
	ID uuid.UUID

	query   []rune
	matches []match.Match

	// pendingPrefix is nonzero while a two-rune label selection is
	// awaiting its second rune. The match set is narrowed to the
	// labels sharing this prefix for the duration.
	pendingPrefix rune
}

func newSession() *Session {
	return &Session{ID: uuid.New()}
}

// Query returns the search string typed so far.
func (s *Session) Query() string {
	return string(s.query)
}

// Matches returns the current match set, ordered by ascending index.
func (s *Session) Matches() []match.Match {
	return s.matches
}

// narrowTo keeps only matches whose label begins with prefix and
// records the pending prefix.
func (s *Session) narrowTo(prefix rune) {
	narrowed := s.matches[:0]
	for _, m := range s.matches {
		if m.Label != "" && []rune(m.Label)[0] == prefix {
			narrowed = append(narrowed, m)
		}
	}
	s.matches = narrowed
	s.pendingPrefix = prefix
}
