package editor

import (
	"errors"

	"leapseek/internal/key"
	"leapseek/internal/match"
)

// ErrOffsetOutOfRange is returned by SetCursor for offsets outside
// the document.
var ErrOffsetOutOfRange = errors.New("editor: cursor offset out of range")

// View is an in-memory read-only document with a line-based viewport.
// Offsets are rune offsets throughout.
type View struct {
	doc        []rune
	lineStarts []int // rune offset of each line's first rune
	top        int   // first visible line
	height     int   // number of visible lines
	cursor     int
	dimmed     bool

	keyFn   KeyListener
	clickFn ClickListener
}

// NewView creates a view over text showing height lines at a time.
func NewView(text string, height int) *View {
	if height < 1 {
		height = 1
	}
	v := &View{
		doc:    []rune(text),
		height: height,
	}
	v.lineStarts = append(v.lineStarts, 0)
	for i, r := range v.doc {
		if r == '\n' {
			v.lineStarts = append(v.lineStarts, i+1)
		}
	}
	return v
}

// Len returns the document length in runes.
func (v *View) Len() int {
	return len(v.doc)
}

// LineCount returns the number of lines in the document.
func (v *View) LineCount() int {
	return len(v.lineStarts)
}

// Top returns the first visible line.
func (v *View) Top() int {
	return v.top
}

// Height returns the viewport height in lines.
func (v *View) Height() int {
	return v.height
}

// lineEnd returns the rune offset one past line's content, excluding
// the trailing newline.
func (v *View) lineEnd(line int) int {
	if line+1 < len(v.lineStarts) {
		return v.lineStarts[line+1] - 1
	}
	return len(v.doc)
}

// Line returns the text of line, without its newline.
func (v *View) Line(line int) string {
	if line < 0 || line >= len(v.lineStarts) {
		return ""
	}
	return string(v.doc[v.lineStarts[line]:v.lineEnd(line)])
}

// VisibleText implements Editor. The visible region is reported as
// one range per rendered line, excluding line terminators, mirroring
// how the screen actually renders sub-ranges of the document.
func (v *View) VisibleText() (string, match.Ranges) {
	var ranges match.Ranges
	last := v.top + v.height
	if last > len(v.lineStarts) {
		last = len(v.lineStarts)
	}
	for line := v.top; line < last; line++ {
		ranges = append(ranges, match.Range{From: v.lineStarts[line], To: v.lineEnd(line)})
	}
	return string(v.doc), ranges
}

// SetCursor implements Editor. The viewport scrolls as needed to keep
// the cursor visible.
func (v *View) SetCursor(offset int) error {
	if offset < 0 || offset > len(v.doc) {
		return ErrOffsetOutOfRange
	}
	v.cursor = offset
	v.scrollIntoView(v.lineOf(offset))
	return nil
}

// Cursor returns the current cursor offset.
func (v *View) Cursor() int {
	return v.cursor
}

// CursorPosition returns the cursor as (line, column) in runes.
func (v *View) CursorPosition() (int, int) {
	line := v.lineOf(v.cursor)
	return line, v.cursor - v.lineStarts[line]
}

// lineOf returns the line containing the rune offset.
func (v *View) lineOf(offset int) int {
	lo, hi := 0, len(v.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if v.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// OffsetAt maps a viewport position (row within the visible window,
// column in runes) to a document offset, or -1 when the position is
// past the document. Columns beyond a line's end clamp to line end.
func (v *View) OffsetAt(row, col int) int {
	line := v.top + row
	if row < 0 || col < 0 || line >= len(v.lineStarts) {
		return -1
	}
	start := v.lineStarts[line]
	end := v.lineEnd(line)
	if start+col > end {
		return end
	}
	return start + col
}

// ScrollBy moves the viewport by delta lines, clamped to the document.
func (v *View) ScrollBy(delta int) {
	v.top += delta
	if max := len(v.lineStarts) - 1; v.top > max {
		v.top = max
	}
	if v.top < 0 {
		v.top = 0
	}
}

// SetHeight resizes the viewport, keeping the cursor visible.
func (v *View) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	v.height = height
	v.scrollIntoView(v.lineOf(v.cursor))
}

// scrollIntoView adjusts the viewport so line is visible.
func (v *View) scrollIntoView(line int) {
	if line < v.top {
		v.top = line
	} else if line >= v.top+v.height {
		v.top = line - v.height + 1
	}
}

// SetDimmed implements Editor.
func (v *View) SetDimmed(dimmed bool) {
	v.dimmed = dimmed
}

// Dimmed reports the dim-presentation flag.
func (v *View) Dimmed() bool {
	return v.dimmed
}

// AddKeyListener implements Editor.
func (v *View) AddKeyListener(fn KeyListener) {
	v.keyFn = fn
}

// RemoveKeyListener implements Editor.
func (v *View) RemoveKeyListener() {
	v.keyFn = nil
}

// AddClickListener implements Editor.
func (v *View) AddClickListener(fn ClickListener) {
	v.clickFn = fn
}

// RemoveClickListener implements Editor.
func (v *View) RemoveClickListener() {
	v.clickFn = nil
}

// HasListeners reports whether any listener slot is occupied.
func (v *View) HasListeners() bool {
	return v.keyFn != nil || v.clickFn != nil
}

// DispatchKey forwards a key event to the registered listener.
// It reports whether a listener consumed the event.
func (v *View) DispatchKey(ev key.Event) (bool, error) {
	if v.keyFn == nil {
		return false, nil
	}
	return true, v.keyFn(ev)
}

// DispatchClick forwards a click at a document offset to the
// registered listener.
func (v *View) DispatchClick(offset int) bool {
	if v.clickFn == nil {
		return false
	}
	v.clickFn(offset)
	return true
}

// String returns the document text.
func (v *View) String() string {
	return string(v.doc)
}
