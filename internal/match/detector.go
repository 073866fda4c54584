package match

import (
	"unicode"

	"leapseek/internal/label"
)

// Match is one located occurrence of the search string.
type Match struct {
	// Index is the rune offset where the match begins.
	Index int

	// Length is the number of runes consumed.
	Length int

	// Text is the literal matched substring.
	Text string

	// Label is the assigned selection code; empty once labels are
	// exhausted (the match stays visible but cannot be selected).
	Label string

	// Next is the rune immediately following the match. HasNext is
	// false when the match ends at the document end.
	Next    rune
	HasNext bool
}

// End returns the rune offset one past the match.
func (m Match) End() int {
	return m.Index + m.Length
}

// Detector finds labeled matches within visible document regions.
type Detector struct {
	// Alphabet supplies label characters.
	Alphabet label.Alphabet

	// CaseSensitive disables case folding of document and query.
	CaseSensitive bool
}

// NewDetector returns a Detector over the given alphabet with
// case-insensitive matching.
func NewDetector(alphabet label.Alphabet) Detector {
	return Detector{Alphabet: alphabet}
}

// Find locates every non-overlapping occurrence of query whose start
// lies inside a visible range, left to right, and labels the result.
// An empty query yields no matches. Results are ordered by ascending
// Index with no duplicate start offsets.
func (d Detector) Find(text string, visible Ranges, query string) []Match {
	if query == "" {
		return nil
	}

	doc := []rune(text)
	q := []rune(query)
	if !d.CaseSensitive {
		q = foldRunes(q)
	}

	var matches []Match
	for _, r := range visible.Normalize(len(doc)) {
		for i := r.From; i < r.To; {
			if !d.matchesAt(doc, q, i) {
				i++
				continue
			}
			m := Match{
				Index:  i,
				Length: len(q),
				Text:   string(doc[i : i+len(q)]),
			}
			if end := m.End(); end < len(doc) {
				m.Next = doc[end]
				m.HasNext = true
			}
			matches = append(matches, m)
			// Non-overlapping scan; the query is never empty here, so
			// forward progress is guaranteed.
			i += len(q)
		}
	}

	d.assignLabels(matches)
	return matches
}

// matchesAt reports whether q occurs at rune offset i of doc.
func (d Detector) matchesAt(doc, q []rune, i int) bool {
	if i+len(q) > len(doc) {
		return false
	}
	for j, qr := range q {
		dr := doc[i+j]
		if !d.CaseSensitive {
			dr = unicode.ToLower(dr)
		}
		if dr != qr {
			return false
		}
	}
	return true
}

// assignLabels allocates labels for the match set, excluding every
// rune that immediately follows a match so that continued typing of
// document text is never read as a label selection.
func (d Detector) assignLabels(matches []Match) {
	if len(matches) == 0 {
		return
	}
	excluded := make(map[rune]bool)
	for _, m := range matches {
		if m.HasNext {
			excluded[unicode.ToLower(m.Next)] = true
		}
	}
	labels := label.Allocate(d.Alphabet, len(matches), excluded)
	for i := range labels {
		matches[i].Label = labels[i]
	}
}

// foldRunes lowercases a rune slice in place and returns it.
func foldRunes(rs []rune) []rune {
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}
