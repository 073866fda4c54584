package hint

import (
	"leapseek/internal/match"
)

// SearchSource adapts the incremental-search detector into a hint
// source for a fixed query, so word-jump modes reuse the same match
// semantics as interactive search.
type SearchSource struct {
	Detector match.Detector
	Query    string
}

func (s SearchSource) Name() string { return "search" }

// Scan returns one candidate per detector match.
func (s SearchSource) Scan(text string, visible match.Ranges) ([]Candidate, error) {
	ms := s.Detector.Find(text, visible, s.Query)
	if len(ms) == 0 {
		return nil, nil
	}
	cands := make([]Candidate, len(ms))
	for i, m := range ms {
		cands[i] = Candidate{Index: m.Index, Length: m.Length, Text: m.Text}
	}
	return cands, nil
}
