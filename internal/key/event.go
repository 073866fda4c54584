package key

import "unicode"

// Event is a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// RuneEvent creates an event for a character key.
func RuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NamedEvent creates an event for a named key.
func NamedEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPrintable returns true if the event carries a printable character
// with no Ctrl/Alt modifier. Shift alone does not count: it changes
// the character, not the key's meaning.
func (e Event) IsPrintable() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) &&
		e.Modifiers&(ModCtrl|ModAlt) == 0
}

// Equals returns true if the two events describe the same key press.
// Rune comparison ignores the Shift bit, since shifted characters
// already differ in the rune itself.
func (e Event) Equals(other Event) bool {
	if e.Key != other.Key {
		return false
	}
	if e.Key == KeyRune {
		return e.Rune == other.Rune &&
			e.Modifiers&(ModCtrl|ModAlt) == other.Modifiers&(ModCtrl|ModAlt)
	}
	return e.Modifiers == other.Modifiers
}

// String returns a canonical representation such as "g", "Escape" or
// "Ctrl+G".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
		if e.Rune == ' ' {
			name = "Space"
		}
	}
	mods := e.Modifiers
	if e.Key == KeyRune {
		mods &^= ModShift
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}
