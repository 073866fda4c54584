package hint

import (
	"sort"
	"unicode"

	"leapseek/internal/label"
	"leapseek/internal/match"
)

// Candidate is a potential jump target found by a Source. Offsets are
// rune offsets into the scanned text.
type Candidate struct {
	Index  int
	Length int
	Text   string
}

// End returns the rune offset one past the candidate.
func (c Candidate) End() int {
	return c.Index + c.Length
}

// Hint is a labeled candidate ready for presentation.
type Hint struct {
	Candidate
	Label string
}

// Source locates jump candidates in visible text. Implementations
// must return candidates ordered by Index; Assign deduplicates and
// sorts defensively regardless.
type Source interface {
	// Name identifies the source in configuration and logs.
	Name() string

	// Scan finds candidates within the visible portions of text.
	Scan(text string, visible match.Ranges) ([]Candidate, error)
}

// Assign labels candidates with the prefix-free scheme. Runes that
// immediately follow a candidate in text are excluded from the label
// alphabet so a label keystroke is never ambiguous with continuing to
// read the underlying text. Candidates beyond the alphabet's capacity
// come back unlabeled at the tail of the slice.
func Assign(cands []Candidate, alphabet label.Alphabet, text string) []Hint {
	if len(cands) == 0 {
		return nil
	}
	sorted := make([]Candidate, len(cands))
	copy(sorted, cands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	// Dedupe identical starts; the earlier (longer-first after sort
	// stability is irrelevant here) candidate wins.
	uniq := sorted[:0]
	for _, c := range sorted {
		if len(uniq) > 0 && uniq[len(uniq)-1].Index == c.Index {
			continue
		}
		uniq = append(uniq, c)
	}

	runes := []rune(text)
	excluded := make(map[rune]bool)
	for _, c := range uniq {
		end := c.End()
		if end >= 0 && end < len(runes) {
			excluded[unicode.ToLower(runes[end])] = true
		}
	}

	labels := label.Allocate(alphabet, len(uniq), excluded)
	hints := make([]Hint, len(uniq))
	for i, c := range uniq {
		hints[i] = Hint{Candidate: c}
		if i < len(labels) {
			hints[i].Label = labels[i]
		}
	}
	return hints
}
