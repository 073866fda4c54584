package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key binding specification into an Event.
//
// Supported forms:
//   - single character: "g", "G", "/"
//   - named key: "Escape", "Enter", "Backspace"
//   - with modifiers: "Ctrl+G", "Alt+Enter"
//   - Vim-style: "<C-g>", "<Esc>", "<BS>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVim(spec[1 : len(spec)-1])
	}
	if strings.Contains(spec, "+") && len([]rune(spec)) > 1 {
		return parseModified(spec)
	}
	return parseBare(spec)
}

// MustParse parses spec and panics on error. For known-valid specs in
// defaults and tests.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic("key: invalid specification " + spec + ": " + err.Error())
	}
	return ev
}

// parseVim handles the inside of <...> notation: "C-g", "Esc", "BS".
func parseVim(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := modifierFromName(strings.ToLower(strings.TrimSpace(p)))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return finishSpec(keyPart, mods)
}

// parseModified handles "Ctrl+G" style notation.
func parseModified(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Event{}, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := modifierFromName(strings.ToLower(strings.TrimSpace(p)))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return finishSpec(strings.TrimSpace(parts[len(parts)-1]), mods)
}

// parseBare handles a plain key name or single character.
func parseBare(spec string) (Event, error) {
	if k := FromName(spec); k != KeyNone {
		return NamedEvent(k, ModNone), nil
	}
	runes := []rune(spec)
	if len(runes) == 1 {
		var mods Modifier
		if unicode.IsUpper(runes[0]) {
			mods = ModShift
		}
		return RuneEvent(runes[0], mods), nil
	}
	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// finishSpec resolves a key part once its modifiers are known.
func finishSpec(keyPart string, mods Modifier) (Event, error) {
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}
	switch strings.ToLower(keyPart) {
	case "space":
		return RuneEvent(' ', mods), nil
	case "lt":
		return RuneEvent('<', mods), nil
	case "gt":
		return RuneEvent('>', mods), nil
	}
	if k := FromName(keyPart); k != KeyNone {
		return NamedEvent(k, mods), nil
	}
	runes := []rune(keyPart)
	if len(runes) == 1 {
		r := runes[0]
		if mods.Has(ModCtrl) {
			r = unicode.ToLower(r)
		}
		return RuneEvent(r, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}
