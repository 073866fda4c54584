package app

import (
	"unicode"

	"leapseek/internal/hint"
	"leapseek/internal/key"
	"leapseek/internal/label"
)

// hintSession holds an active hint overlay: labeled candidates from
// one source, plus the pending first rune of a two-rune label.
type hintSession struct {
	source  int
	hints   []hint.Hint
	pending rune
}

func (a *Application) hintActive() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.hintSess != nil
}

func (a *Application) currentHints() []hint.Hint {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.hints
}

func (a *Application) hintSourceName() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.hintSess == nil || a.hintSess.source >= len(a.sources) {
		return ""
	}
	return a.sources[a.hintSess.source].Name()
}

// activateHints starts hint mode with the first configured source, or
// cycles to the next source when already active.
func (a *Application) activateHints() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.sources) == 0 {
		a.log.Debug("no hint sources configured")
		return nil
	}

	next := 0
	if a.hintSess != nil {
		next = (a.hintSess.source + 1) % len(a.sources)
	}
	return a.scanSourceLocked(next)
}

// scanSourceLocked runs one source over the visible text and installs
// its hints. Caller holds a.mu.
func (a *Application) scanSourceLocked(idx int) error {
	src := a.sources[idx]
	text, visible := a.view.VisibleText()

	cands, err := src.Scan(text, visible)
	if err != nil {
		a.log.Warn("hint source %s: %v", src.Name(), err)
		return err
	}

	hints := hint.Assign(cands, label.ParseAlphabet(a.cfg.Alphabet), text)
	a.hintSess = &hintSession{source: idx, hints: hints}
	a.hints = hints
	a.view.SetDimmed(true)
	a.log.Debug("hint source %s: %d hints", src.Name(), len(hints))
	return nil
}

// cancelHints dismisses the overlay without moving the cursor.
func (a *Application) cancelHints() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clearHintsLocked()
}

func (a *Application) clearHintsLocked() {
	a.hintSess = nil
	a.hints = nil
	a.view.SetDimmed(false)
}

// handleHintKey interprets a keystroke during hint mode: escape
// dismisses, the cycle key moves to the next source, label runes
// narrow or jump.
func (a *Application) handleHintKey(ev key.Event) {
	if ev.Equals(key.NamedEvent(key.KeyEscape, key.ModNone)) {
		a.cancelHints()
		return
	}
	if ev.Equals(hintKey) {
		if err := a.activateHints(); err != nil {
			a.cancelHints()
		}
		return
	}
	if !ev.IsPrintable() {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	sess := a.hintSess
	if sess == nil {
		return
	}
	r := unicode.ToLower(a.normalizeRuneLocked(ev.Rune))

	var target *hint.Hint
	if sess.pending != 0 {
		want := string(sess.pending) + string(r)
		for i := range sess.hints {
			if sess.hints[i].Label == want {
				target = &sess.hints[i]
				break
			}
		}
		if target == nil {
			return
		}
	} else {
		hasPrefix := false
		for i := range sess.hints {
			lab := []rune(sess.hints[i].Label)
			if len(lab) == 0 || lab[0] != r {
				continue
			}
			if len(lab) == 1 {
				target = &sess.hints[i]
				break
			}
			hasPrefix = true
		}
		if target == nil {
			if hasPrefix {
				sess.pending = r
				a.narrowHintsLocked(r)
			}
			return
		}
	}

	offset := target.Index
	a.clearHintsLocked()
	if err := a.view.SetCursor(offset); err != nil {
		a.log.Warn("hint jump: %v", err)
	}
}

// narrowHintsLocked keeps only hints whose label starts with prefix.
func (a *Application) narrowHintsLocked(prefix rune) {
	kept := a.hintSess.hints[:0]
	for _, h := range a.hintSess.hints {
		lab := []rune(h.Label)
		if len(lab) > 0 && lab[0] == prefix {
			kept = append(kept, h)
		}
	}
	a.hintSess.hints = kept
	a.hints = kept
}

// normalizeRuneLocked applies the configured layout to a label rune.
func (a *Application) normalizeRuneLocked(r rune) rune {
	return a.norm.Rune(r)
}
