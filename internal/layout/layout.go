package layout

import (
	"unicode"

	"leapseek/internal/key"
)

// qwertyByRussian maps lowercase ЙЦУКЕН runes to the lowercase QWERTY
// rune on the same physical key, row by row, including the
// punctuation keys those rows share.
var qwertyByRussian = map[rune]rune{
	// Top row: йцукенгшщзхъ -> qwertyuiop[]
	'й': 'q', 'ц': 'w', 'у': 'e', 'к': 'r', 'е': 't', 'н': 'y',
	'г': 'u', 'ш': 'i', 'щ': 'o', 'з': 'p', 'х': '[', 'ъ': ']',
	// Home row: фывапролджэ -> asdfghjkl;'
	'ф': 'a', 'ы': 's', 'в': 'd', 'а': 'f', 'п': 'g', 'р': 'h',
	'о': 'j', 'л': 'k', 'д': 'l', 'ж': ';', 'э': '\'',
	// Bottom row: ячсмитьбю -> zxcvbnm,.
	'я': 'z', 'ч': 'x', 'с': 'c', 'м': 'v', 'и': 'b', 'т': 'n',
	'ь': 'm', 'б': ',', 'ю': '.',
	// The key left of 1.
	'ё': '`',
}

// Normalizer rewrites keystrokes from a physical layout into their
// QWERTY-position equivalents. The zero value passes everything
// through unchanged.
type Normalizer struct {
	table map[rune]rune
}

// Russian returns a Normalizer for the ЙЦУКЕН layout.
func Russian() *Normalizer {
	return &Normalizer{table: qwertyByRussian}
}

// ForName returns the Normalizer for a configured layout name.
// Unknown names (and "qwerty") yield the pass-through Normalizer.
func ForName(name string) *Normalizer {
	switch name {
	case "russian", "ru":
		return Russian()
	default:
		return &Normalizer{}
	}
}

// Rune maps r to the rune on the same physical key, preserving case.
// Runes without a table entry pass through unchanged.
func (n *Normalizer) Rune(r rune) rune {
	if n == nil || n.table == nil {
		return r
	}
	lower := unicode.ToLower(r)
	mapped, ok := n.table[lower]
	if !ok {
		return r
	}
	if lower != r && unicode.IsLetter(mapped) {
		return unicode.ToUpper(mapped)
	}
	return mapped
}

// Event normalizes a key event. Named keys are never altered.
func (n *Normalizer) Event(ev key.Event) key.Event {
	if ev.Key != key.KeyRune {
		return ev
	}
	ev.Rune = n.Rune(ev.Rune)
	return ev
}

// IsControl reports whether the event is a control key: any named key
// or a rune carrying a Ctrl/Alt modifier. Printable characters of any
// script are content, never control.
func IsControl(ev key.Event) bool {
	if ev.Key != key.KeyRune {
		return true
	}
	return ev.Modifiers&(key.ModCtrl|key.ModAlt) != 0
}

// Script classifies the writing system of a string.
type Script int

const (
	// ScriptNone means the string has no letters at all.
	ScriptNone Script = iota
	// ScriptLatin means all letters are Latin.
	ScriptLatin
	// ScriptCyrillic means all letters are Cyrillic.
	ScriptCyrillic
	// ScriptMixed means both Latin and Cyrillic letters occur.
	ScriptMixed
	// ScriptOther means letters of some other system occur.
	ScriptOther
)

// String returns the classification name.
func (s Script) String() string {
	switch s {
	case ScriptNone:
		return "none"
	case ScriptLatin:
		return "latin"
	case ScriptCyrillic:
		return "cyrillic"
	case ScriptMixed:
		return "mixed"
	case ScriptOther:
		return "other"
	default:
		return "unknown"
	}
}

// ScriptOf classifies text by the letters it contains. Digits,
// punctuation and whitespace are ignored.
func ScriptOf(text string) Script {
	var latin, cyrillic, other bool
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		switch {
		case unicode.Is(unicode.Latin, r):
			latin = true
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic = true
		default:
			other = true
		}
	}
	switch {
	case other:
		return ScriptOther
	case latin && cyrillic:
		return ScriptMixed
	case cyrillic:
		return ScriptCyrillic
	case latin:
		return ScriptLatin
	default:
		return ScriptNone
	}
}

// HasCyrillic reports whether text contains any Cyrillic letter.
func HasCyrillic(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}
