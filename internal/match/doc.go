// Package match locates occurrences of a search string inside the
// visible portion of a document and assigns selection labels to them.
//
// All offsets in this package are rune offsets, not byte offsets, so
// positions are stable across Latin, Cyrillic and CJK text. Visible
// regions are half-open [From, To) intervals; a match counts as
// visible when its start offset lies inside some interval, even if it
// extends past the interval's end.
package match
