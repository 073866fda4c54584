package match

import "sort"

// Range is a half-open [From, To) interval of rune offsets.
type Range struct {
	From int
	To   int
}

// IsEmpty reports whether the range contains no offsets.
func (r Range) IsEmpty() bool {
	return r.From >= r.To
}

// Contains reports whether offset lies inside the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.From && offset < r.To
}

// Ranges is an ordered set of visible intervals.
type Ranges []Range

// Normalize returns a cleaned copy of rs suitable for scanning:
// ranges are clamped to [0, docLen), empty and inverted ranges are
// dropped, the rest are sorted by From and overlapping or adjacent
// ranges are merged. Host editors that hand us malformed input get a
// best-effort interpretation instead of a panic.
func (rs Ranges) Normalize(docLen int) Ranges {
	out := make(Ranges, 0, len(rs))
	for _, r := range rs {
		if r.From < 0 {
			r.From = 0
		}
		if r.To > docLen {
			r.To = docLen
		}
		if r.IsEmpty() {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].From < out[j].From })

	merged := out[:0]
	for _, r := range out {
		if n := len(merged); n > 0 && r.From <= merged[n-1].To {
			if r.To > merged[n-1].To {
				merged[n-1].To = r.To
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Contains reports whether offset lies inside any range.
func (rs Ranges) Contains(offset int) bool {
	for _, r := range rs {
		if r.Contains(offset) {
			return true
		}
	}
	return false
}
