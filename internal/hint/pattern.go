package hint

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"leapseek/internal/match"
)

// PatternSource finds jump candidates with a compiled regular
// expression. Regexp offsets are bytes; candidates are reported in
// rune offsets like everything else.
type PatternSource struct {
	name string
	re   *regexp.Regexp
}

// NewPatternSource compiles pattern. The name identifies the source
// in configuration and logs.
func NewPatternSource(name, pattern string) (*PatternSource, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("hint: pattern %q: %w", name, err)
	}
	return &PatternSource{name: name, re: re}, nil
}

func (p *PatternSource) Name() string { return p.name }

// Scan matches the pattern against each visible range independently,
// so a match never spans hidden text.
func (p *PatternSource) Scan(text string, visible match.Ranges) ([]Candidate, error) {
	runes := []rune(text)
	ranges := visible.Normalize(len(runes))

	var cands []Candidate
	for _, r := range ranges {
		seg := string(runes[r.From:r.To])
		for _, loc := range p.re.FindAllStringIndex(seg, -1) {
			start := r.From + utf8.RuneCountInString(seg[:loc[0]])
			length := utf8.RuneCountInString(seg[loc[0]:loc[1]])
			cands = append(cands, Candidate{
				Index:  start,
				Length: length,
				Text:   seg[loc[0]:loc[1]],
			})
		}
	}
	return cands, nil
}

// LinkSource is a PatternSource preconfigured for http and https
// URLs.
func LinkSource() *PatternSource {
	return &PatternSource{
		name: "links",
		re:   regexp.MustCompile(`https?://[^\s<>"']+`),
	}
}

// WordSource is a PatternSource preconfigured for word starts, the
// classic jump-anywhere mode.
func WordSource() *PatternSource {
	return &PatternSource{
		name: "words",
		re:   regexp.MustCompile(`[\p{L}\p{N}_]+`),
	}
}
