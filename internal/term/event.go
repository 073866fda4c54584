package term

import (
	"github.com/gdamore/tcell/v2"

	"leapseek/internal/key"
)

// KeyEvent translates a tcell key event into the editor's key type.
// ok is false for tcell keys the editor has no use for.
func KeyEvent(ev *tcell.EventKey) (key.Event, bool) {
	mods := key.ModNone
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return key.RuneEvent(ev.Rune(), mods), true
	case tcell.KeyEscape:
		return key.NamedEvent(key.KeyEscape, mods), true
	case tcell.KeyEnter:
		return key.NamedEvent(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NamedEvent(key.KeyTab, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NamedEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NamedEvent(key.KeyDelete, mods), true
	case tcell.KeyHome:
		return key.NamedEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NamedEvent(key.KeyEnd, mods), true
	case tcell.KeyPgUp:
		return key.NamedEvent(key.KeyPageUp, mods), true
	case tcell.KeyPgDn:
		return key.NamedEvent(key.KeyPageDown, mods), true
	case tcell.KeyUp:
		return key.NamedEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NamedEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NamedEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NamedEvent(key.KeyRight, mods), true
	}

	// tcell folds Ctrl+letter into control characters below 0x20.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + (k - tcell.KeyCtrlA))
		return key.RuneEvent(r, mods.With(key.ModCtrl)), true
	}

	return key.Event{}, false
}

// Click reports the cell position of a primary-button press, if ev is
// one.
func Click(ev *tcell.EventMouse) (x, y int, ok bool) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return 0, 0, false
	}
	x, y = ev.Position()
	return x, y, true
}
