package editor

import (
	"leapseek/internal/key"
	"leapseek/internal/match"
)

// KeyListener receives key events while a jump session is active.
type KeyListener func(ev key.Event) error

// ClickListener receives pointer clicks, reported as a rune offset,
// or -1 for clicks outside the document area.
type ClickListener func(offset int)

// Editor is the host document surface the jump controller drives.
// One controller owns an editor's listener slots at a time;
// Add/Remove calls must be exactly paired.
type Editor interface {
	// VisibleText returns the document text together with the rune
	// ranges currently rendered on screen. Matching is restricted to
	// these ranges.
	VisibleText() (string, match.Ranges)

	// SetCursor moves the cursor to a rune offset. It reports an
	// error when the offset lies outside the document.
	SetCursor(offset int) error

	// SetDimmed toggles the "dim non-matched text" presentation used
	// while a session is active.
	SetDimmed(dimmed bool)

	// AddKeyListener and RemoveKeyListener manage the single key
	// listener slot.
	AddKeyListener(fn KeyListener)
	RemoveKeyListener()

	// AddClickListener and RemoveClickListener manage the single
	// click listener slot.
	AddClickListener(fn ClickListener)
	RemoveClickListener()
}
