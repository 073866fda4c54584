package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleText  = tcell.StyleDefault
	styleDim   = tcell.StyleDefault.Dim(true)
	styleMatch = tcell.StyleDefault.Bold(true).Underline(true)
	styleLabel = tcell.StyleDefault.
			Foreground(tcell.ColorBlack).
			Background(tcell.ColorYellow).
			Bold(true)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

// render draws the visible document, any active match labels, the
// hint overlay, and the status line.
func (a *Application) render() {
	a.screen.Clear()
	width, height := a.screen.Size()
	rows := height - 1

	base := styleText
	if a.view.Dimmed() {
		base = styleDim
	}

	// Label cells override text cells; collect them first keyed by
	// document offset.
	overlay := a.labelOverlay()

	top := a.view.Top()
	for row := 0; row < rows; row++ {
		line := top + row
		if line >= a.view.LineCount() {
			break
		}
		a.renderLine(row, line, width, base, overlay)
	}

	a.renderStatus(width, height-1)

	curLine, curCol := a.view.CursorPosition()
	if curLine >= top && curLine < top+rows {
		a.screen.ShowCursor(cellColumn(a.view.Line(curLine), curCol), curLine-top)
	}
	a.screen.Show()
}

// cell carries one overlay rune and its style.
type cell struct {
	r     rune
	style tcell.Style
}

// labelOverlay maps document rune offsets to overlay cells: label
// runes over match starts, and highlight styling over the matched
// text itself.
func (a *Application) labelOverlay() map[int]cell {
	overlay := make(map[int]cell)

	for _, m := range a.controller().Matches() {
		for off := m.Index; off < m.End(); off++ {
			overlay[off] = cell{style: styleMatch}
		}
		for i, r := range []rune(m.Label) {
			overlay[m.Index+i] = cell{r: r, style: styleLabel}
		}
	}
	for _, h := range a.currentHints() {
		if h.Label == "" {
			continue
		}
		for i, r := range []rune(h.Label) {
			overlay[h.Index+i] = cell{r: r, style: styleLabel}
		}
	}
	return overlay
}

// renderLine draws one document line at screen row, applying overlay
// cells by document offset.
func (a *Application) renderLine(row, line, width int, base tcell.Style, overlay map[int]cell) {
	text := a.view.Line(line)
	offset := a.view.OffsetAt(line-a.view.Top(), 0)

	x := 0
	for i, r := range []rune(text) {
		if x >= width {
			break
		}
		style := base
		if c, ok := overlay[offset+i]; ok {
			style = c.style
			if c.r != 0 {
				r = c.r
			}
		}
		a.screen.SetCell(x, row, r, style)
		x += runewidth.RuneWidth(r)
	}
}

// renderStatus draws the mode and query line.
func (a *Application) renderStatus(width, row int) {
	status := a.statusText()
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		a.screen.SetCell(x, row, r, styleStatus)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		a.screen.SetCell(x, row, ' ', styleStatus)
	}
}

func (a *Application) statusText() string {
	switch {
	case a.hintActive():
		return " hints: " + a.hintSourceName()
	case a.controller().IsActive():
		return " jump: " + a.controller().Query()
	default:
		return " " + a.opts.File
	}
}

// runeColumn converts a screen cell column to a rune column within
// line, accounting for wide runes.
func runeColumn(line string, x int) int {
	w := 0
	for i, r := range []rune(line) {
		rw := runewidth.RuneWidth(r)
		if w+rw > x {
			return i
		}
		w += rw
	}
	return len([]rune(line))
}

// cellColumn converts a rune column to a screen cell column.
func cellColumn(line string, col int) int {
	w := 0
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}
