package label

import "unicode"

// DefaultAlphabet is the label alphabet used when configuration does
// not supply one. Ordered by preference: earlier runes are assigned
// before later ones.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Alphabet is an ordered sequence of distinct lowercase runes.
// The zero value is empty; use ParseAlphabet to build one.
type Alphabet []rune

// ParseAlphabet builds an Alphabet from a configuration string.
// Runes are case-folded to lowercase and deduplicated while
// preserving first-occurrence order. Whitespace is ignored.
// An empty result falls back to DefaultAlphabet.
func ParseAlphabet(s string) Alphabet {
	seen := make(map[rune]bool)
	var a Alphabet
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		r = unicode.ToLower(r)
		if seen[r] {
			continue
		}
		seen[r] = true
		a = append(a, r)
	}
	if len(a) == 0 {
		return Alphabet(DefaultAlphabet)
	}
	return a
}

// Contains reports whether the alphabet includes r (case-folded).
func (a Alphabet) Contains(r rune) bool {
	r = unicode.ToLower(r)
	for _, c := range a {
		if c == r {
			return true
		}
	}
	return false
}

// Without returns the runes of a that are not in the excluded set.
// Order is preserved. Exclusion keys are expected to be lowercase.
func (a Alphabet) Without(excluded map[rune]bool) Alphabet {
	if len(excluded) == 0 {
		return a
	}
	usable := make(Alphabet, 0, len(a))
	for _, r := range a {
		if !excluded[r] {
			usable = append(usable, r)
		}
	}
	return usable
}

// String returns the alphabet as a string, in order.
func (a Alphabet) String() string {
	return string([]rune(a))
}
