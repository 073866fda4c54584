package search

import (
	"fmt"
	"unicode"

	"leapseek/internal/editor"
	"leapseek/internal/key"
	"leapseek/internal/layout"
	"leapseek/internal/logging"
	"leapseek/internal/match"
)

// Config holds the controller's tunables.
type Config struct {
	// MinQueryLen is the query length below which matches are not
	// computed and labels are not active. Minimum 1.
	MinQueryLen int

	// CancelKey ends the session without moving the cursor.
	// Defaults to Escape.
	CancelKey key.Event

	// DeleteKey removes the last query character. Defaults to
	// Backspace.
	DeleteKey key.Event
}

// normalized fills in defaults.
func (c Config) normalized() Config {
	if c.MinQueryLen < 1 {
		c.MinQueryLen = 1
	}
	if c.CancelKey == (key.Event{}) {
		c.CancelKey = key.NamedEvent(key.KeyEscape, key.ModNone)
	}
	if c.DeleteKey == (key.Event{}) {
		c.DeleteKey = key.NamedEvent(key.KeyBackspace, key.ModNone)
	}
	return c
}

// Controller drives one jump-search session at a time over a host
// editor. It is not safe for concurrent use; the host delivers one
// event at a time.
type Controller struct {
	ed   editor.Editor
	det  match.Detector
	norm *layout.Normalizer
	cfg  Config
	log  *logging.Logger

	sess     *Session
	attached bool
}

// New creates a controller. norm may be nil for a pass-through
// normalizer and log may be nil to disable logging.
func New(ed editor.Editor, det match.Detector, norm *layout.Normalizer, cfg Config, log *logging.Logger) *Controller {
	if norm == nil {
		norm = &layout.Normalizer{}
	}
	if log == nil {
		log = logging.Null
	}
	return &Controller{
		ed:   ed,
		det:  det,
		norm: norm,
		cfg:  cfg.normalized(),
		log:  log.WithComponent("search"),
	}
}

// IsActive reports whether a session is in progress.
func (c *Controller) IsActive() bool {
	return c.sess != nil
}

// Query returns the current search string, or "" when inactive.
func (c *Controller) Query() string {
	if c.sess == nil {
		return ""
	}
	return c.sess.Query()
}

// Matches returns the current match set, or nil when inactive.
func (c *Controller) Matches() []match.Match {
	if c.sess == nil {
		return nil
	}
	return c.sess.Matches()
}

// Activate starts a session: empty query, no matches, listeners
// attached, dim presentation on. Activating while already active
// resets the session in place rather than layering a second one.
func (c *Controller) Activate() {
	if c.sess != nil {
		c.sess = newSession()
		c.log.Debug("session reset: %s", c.sess.ID)
		return
	}
	c.sess = newSession()
	c.ed.AddKeyListener(c.HandleKey)
	c.ed.AddClickListener(c.handleClick)
	c.attached = true
	c.ed.SetDimmed(true)
	c.log.Debug("session started: %s", c.sess.ID)
}

// HandleKey processes one keystroke. The event is first normalized
// for the configured keyboard layout, then interpreted as a control
// action, a label selection, or a search-string extension.
func (c *Controller) HandleKey(ev key.Event) error {
	if c.sess == nil {
		return nil
	}
	ev = c.norm.Event(ev)

	switch {
	case ev.Equals(c.cfg.CancelKey):
		c.cancel("cancel key")
		return nil
	case ev.Equals(c.cfg.DeleteKey):
		return c.deleteLast()
	}
	if layout.IsControl(ev) || !ev.IsPrintable() {
		// Navigation and other named keys never contribute to the
		// query or labels.
		return nil
	}
	return c.handleRune(ev.Rune)
}

// HandleOutsideClick cancels the session exactly like the cancel key.
func (c *Controller) HandleOutsideClick() {
	if c.sess == nil {
		return
	}
	c.cancel("outside click")
}

func (c *Controller) handleClick(int) {
	c.HandleOutsideClick()
}

// handleRune decides between label selection and query extension.
func (c *Controller) handleRune(r rune) error {
	lr := unicode.ToLower(r)

	if c.sess.pendingPrefix != 0 {
		want := string(c.sess.pendingPrefix) + string(lr)
		for _, m := range c.sess.matches {
			if m.Label == want {
				return c.jump(m)
			}
		}
		// Not a completion of any narrowed label; keep waiting.
		return nil
	}

	if len(c.sess.query) >= c.cfg.MinQueryLen {
		if target, consumed := c.selectLabel(lr); consumed {
			if target != nil {
				return c.jump(*target)
			}
			return nil
		}
	}

	c.sess.query = append(c.sess.query, r)
	return c.recompute(true)
}

// selectLabel interprets lr as a label character. consumed is true
// when the keystroke was taken as a label selection: either a
// completed single-rune label (target non-nil) or a narrowing to the
// two-rune labels sharing lr (target nil, session stays active).
// Labels are prefix-free, so a single-rune label never shares its
// rune with a two-rune prefix.
func (c *Controller) selectLabel(lr rune) (target *match.Match, consumed bool) {
	hasPrefix := false
	for i := range c.sess.matches {
		m := &c.sess.matches[i]
		if m.Label == "" {
			continue
		}
		lab := []rune(m.Label)
		if lab[0] != lr {
			continue
		}
		if len(lab) == 1 {
			return m, true
		}
		hasPrefix = true
	}
	if hasPrefix {
		c.sess.narrowTo(lr)
		return nil, true
	}
	return nil, false
}

// deleteLast removes the last query character, or abandons an
// in-progress label narrowing, then recomputes. Deleting from an
// empty query is a no-op recompute.
func (c *Controller) deleteLast() error {
	if c.sess.pendingPrefix != 0 {
		c.sess.pendingPrefix = 0
		return c.recompute(false)
	}
	if len(c.sess.query) > 0 {
		c.sess.query = c.sess.query[:len(c.sess.query)-1]
	}
	return c.recompute(false)
}

// recompute rebuilds the match set for the current query. Below the
// minimum query length the match set is forced empty. When growth is
// true and exactly one match remains, the controller auto-jumps.
func (c *Controller) recompute(growth bool) error {
	c.sess.pendingPrefix = 0
	if len(c.sess.query) < c.cfg.MinQueryLen {
		c.sess.matches = nil
		return nil
	}
	text, visible := c.ed.VisibleText()
	c.sess.matches = c.det.Find(text, visible, string(c.sess.query))
	c.log.Debug("query %q: %d matches", c.sess.Query(), len(c.sess.matches))

	if growth && len(c.sess.matches) == 1 {
		return c.jump(c.sess.matches[0])
	}
	return nil
}

// jump commits the session to a match. State is torn down before the
// cursor moves so that a failing host leaves the controller inactive
// with listeners detached.
func (c *Controller) jump(m match.Match) error {
	id := c.sess.ID
	c.teardown()
	if err := c.ed.SetCursor(m.Index); err != nil {
		c.log.Error("session %s: jump to %d failed: %v", id, m.Index, err)
		return fmt.Errorf("search: jump to offset %d: %w", m.Index, err)
	}
	c.log.Debug("session %s: jumped to %d (%q)", id, m.Index, m.Text)
	return nil
}

// cancel ends the session without moving the cursor.
func (c *Controller) cancel(reason string) {
	id := c.sess.ID
	c.teardown()
	c.log.Debug("session %s: canceled (%s)", id, reason)
}

// teardown clears all session state and detaches listeners. Safe to
// reach from every exit path exactly once per session.
func (c *Controller) teardown() {
	if c.attached {
		c.ed.RemoveKeyListener()
		c.ed.RemoveClickListener()
		c.attached = false
	}
	c.ed.SetDimmed(false)
	c.sess = nil
}
