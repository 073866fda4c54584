package search

import (
	"errors"
	"strings"
	"testing"

	"leapseek/internal/editor"
	"leapseek/internal/key"
	"leapseek/internal/label"
	"leapseek/internal/layout"
	"leapseek/internal/match"
)

// fakeEditor records interactions for assertions. The whole document
// is visible unless ranges is set.
type fakeEditor struct {
	text   string
	ranges match.Ranges

	cursor     int
	cursorSets int
	cursorErr  error

	dimmed bool

	keyFn    editor.KeyListener
	clickFn  editor.ClickListener
	keyAdds  int
	keyRems  int
	clkAdds  int
	clkRems  int
}

func newFakeEditor(text string) *fakeEditor {
	return &fakeEditor{text: text, cursor: -1}
}

func (f *fakeEditor) VisibleText() (string, match.Ranges) {
	if f.ranges != nil {
		return f.text, f.ranges
	}
	return f.text, match.Ranges{{From: 0, To: len([]rune(f.text))}}
}

func (f *fakeEditor) SetCursor(offset int) error {
	f.cursorSets++
	if f.cursorErr != nil {
		return f.cursorErr
	}
	f.cursor = offset
	return nil
}

func (f *fakeEditor) SetDimmed(d bool) { f.dimmed = d }

func (f *fakeEditor) AddKeyListener(fn editor.KeyListener) { f.keyFn = fn; f.keyAdds++ }
func (f *fakeEditor) RemoveKeyListener()                   { f.keyFn = nil; f.keyRems++ }

func (f *fakeEditor) AddClickListener(fn editor.ClickListener) { f.clickFn = fn; f.clkAdds++ }
func (f *fakeEditor) RemoveClickListener()                     { f.clickFn = nil; f.clkRems++ }

func (f *fakeEditor) balanced() bool {
	return f.keyAdds == f.keyRems && f.clkAdds == f.clkRems
}

func newController(ed editor.Editor, minLen int) *Controller {
	det := match.NewDetector(label.ParseAlphabet(label.DefaultAlphabet))
	return New(ed, det, nil, Config{MinQueryLen: minLen}, nil)
}

func typeString(t *testing.T, c *Controller, s string) {
	t.Helper()
	for _, r := range s {
		if err := c.HandleKey(key.RuneEvent(r, key.ModNone)); err != nil {
			t.Fatalf("HandleKey(%q) error: %v", r, err)
		}
	}
}

func escape() key.Event    { return key.NamedEvent(key.KeyEscape, key.ModNone) }
func backspace() key.Event { return key.NamedEvent(key.KeyBackspace, key.ModNone) }

func TestInactiveControllerIgnoresKeys(t *testing.T) {
	ed := newFakeEditor("hello world")
	c := newController(ed, 1)

	if err := c.HandleKey(key.RuneEvent('h', key.ModNone)); err != nil {
		t.Fatalf("HandleKey error: %v", err)
	}
	if c.Query() != "" || c.Matches() != nil {
		t.Error("inactive controller accumulated state")
	}
}

func TestActivateAttachesAndDims(t *testing.T) {
	ed := newFakeEditor("hello world")
	c := newController(ed, 1)

	c.Activate()
	if !c.IsActive() {
		t.Fatal("controller not active after Activate")
	}
	if ed.keyAdds != 1 || ed.clkAdds != 1 {
		t.Errorf("listener adds = (%d, %d), want (1, 1)", ed.keyAdds, ed.clkAdds)
	}
	if !ed.dimmed {
		t.Error("editor not dimmed on activation")
	}
}

func TestReentrantActivateResets(t *testing.T) {
	ed := newFakeEditor("hello hello")
	c := newController(ed, 1)

	c.Activate()
	typeString(t, c, "hel")
	if c.Query() != "hel" {
		t.Fatalf("Query() = %q", c.Query())
	}

	c.Activate()
	if c.Query() != "" || len(c.Matches()) != 0 {
		t.Error("re-entrant Activate did not reset session")
	}
	if ed.keyAdds != 1 {
		t.Errorf("re-entrant Activate attached again: %d adds", ed.keyAdds)
	}
	if !c.IsActive() {
		t.Error("controller inactive after re-entrant Activate")
	}
}

func TestQueryAccumulatesAndMatches(t *testing.T) {
	ed := newFakeEditor("test team telex")
	c := newController(ed, 1)

	c.Activate()
	typeString(t, c, "te")
	if c.Query() != "te" {
		t.Errorf("Query() = %q, want %q", c.Query(), "te")
	}
	if len(c.Matches()) != 3 {
		t.Errorf("got %d matches, want 3", len(c.Matches()))
	}
}

func TestMinQueryLenGatesMatches(t *testing.T) {
	ed := newFakeEditor("aaa aaa aaa")
	c := newController(ed, 2)

	c.Activate()
	typeString(t, c, "a")
	if len(c.Matches()) != 0 {
		t.Errorf("matches computed below threshold: %d", len(c.Matches()))
	}
	typeString(t, c, "a")
	if len(c.Matches()) == 0 {
		t.Error("no matches at threshold")
	}
}

func TestAutoJumpOnUniqueMatch(t *testing.T) {
	ed := newFakeEditor("apple banana cherry")
	c := newController(ed, 2)

	c.Activate()
	typeString(t, c, "ch")

	if c.IsActive() {
		t.Error("session still active after auto-jump")
	}
	if ed.cursor != 13 {
		t.Errorf("cursor = %d, want 13 (start of cherry)", ed.cursor)
	}
	if ed.cursorSets != 1 {
		t.Errorf("SetCursor called %d times, want 1", ed.cursorSets)
	}
	if !ed.balanced() {
		t.Error("listeners not detached after auto-jump")
	}
	if ed.dimmed {
		t.Error("dim flag still set after auto-jump")
	}
}

func TestDeleteRecomputesWithoutJump(t *testing.T) {
	ed := newFakeEditor("gamma garden")
	c := newController(ed, 1)

	c.Activate()
	typeString(t, c, "ga")
	if !c.IsActive() || len(c.Matches()) != 2 {
		t.Fatalf("setup: want 2 matches, got %d", len(c.Matches()))
	}
	if err := c.HandleKey(backspace()); err != nil {
		t.Fatalf("backspace error: %v", err)
	}
	if c.Query() != "g" {
		t.Errorf("Query() = %q after delete, want %q", c.Query(), "g")
	}
	if !c.IsActive() {
		t.Error("delete ended the session")
	}
	if ed.cursorSets != 0 {
		t.Error("delete moved the cursor")
	}

	// Deleting past empty is a no-op.
	if err := c.HandleKey(backspace()); err != nil {
		t.Fatalf("backspace error: %v", err)
	}
	if err := c.HandleKey(backspace()); err != nil {
		t.Fatalf("backspace on empty query error: %v", err)
	}
	if c.Query() != "" || !c.IsActive() {
		t.Error("empty-query delete misbehaved")
	}
}

func TestSingleRuneLabelSelection(t *testing.T) {
	ed := newFakeEditor("echo echo echo")
	c := newController(ed, 1)

	c.Activate()
	typeString(t, c, "e")
	ms := c.Matches()
	if len(ms) != 3 {
		t.Fatalf("got %d matches, want 3", len(ms))
	}
	// All labels are single runes here; select the second match.
	target := ms[1]
	if len([]rune(target.Label)) != 1 {
		t.Fatalf("expected single-rune label, got %q", target.Label)
	}
	if err := c.HandleKey(key.RuneEvent([]rune(target.Label)[0], key.ModNone)); err != nil {
		t.Fatalf("label keystroke error: %v", err)
	}
	if c.IsActive() {
		t.Error("session active after label jump")
	}
	if ed.cursor != target.Index {
		t.Errorf("cursor = %d, want %d", ed.cursor, target.Index)
	}
	if !ed.balanced() {
		t.Error("listeners not detached after label jump")
	}
}

func TestLabelSelectionIsCaseInsensitive(t *testing.T) {
	ed := newFakeEditor("echo echo echo")
	c := newController(ed, 1)

	c.Activate()
	typeString(t, c, "e")
	target := c.Matches()[0]
	upper := []rune(strings.ToUpper(target.Label))[0]

	if err := c.HandleKey(key.RuneEvent(upper, key.ModShift)); err != nil {
		t.Fatalf("HandleKey error: %v", err)
	}
	if c.IsActive() || ed.cursor != target.Index {
		t.Errorf("uppercase label entry: active=%v cursor=%d want %d",
			c.IsActive(), ed.cursor, target.Index)
	}
}

func TestTwoRuneLabelNarrowing(t *testing.T) {
	// Force two-rune labels with a tiny alphabet: "te" appears three
	// times with following runes s, a, l, so the usable alphabet
	// shrinks below the match count.
	ed := newFakeEditor("test team telex")
	det := match.Detector{Alphabet: label.ParseAlphabet("abc")}
	c := New(ed, det, nil, Config{MinQueryLen: 1}, nil)

	c.Activate()
	typeString(t, c, "te")
	ms := c.Matches()
	if len(ms) != 3 {
		t.Fatalf("got %d matches, want 3", len(ms))
	}
	// Exclusions {s, a, l} leave usable = {b, c}: labels b, cb, cc.
	if ms[0].Label != "b" || ms[1].Label != "cb" || ms[2].Label != "cc" {
		t.Fatalf("labels = [%s %s %s], want [b cb cc]", ms[0].Label, ms[1].Label, ms[2].Label)
	}

	// First rune of the two-rune labels narrows without jumping.
	if err := c.HandleKey(key.RuneEvent('c', key.ModNone)); err != nil {
		t.Fatalf("prefix keystroke error: %v", err)
	}
	if !c.IsActive() {
		t.Fatal("session ended on label prefix")
	}
	narrowed := c.Matches()
	if len(narrowed) != 2 {
		t.Fatalf("narrowed to %d matches, want 2", len(narrowed))
	}
	for _, m := range narrowed {
		if !strings.HasPrefix(m.Label, "c") {
			t.Errorf("match with label %q survived narrowing", m.Label)
		}
	}
	if ed.cursorSets != 0 {
		t.Error("cursor moved during narrowing")
	}

	// Completing rune jumps to the "cc" match (telex).
	if err := c.HandleKey(key.RuneEvent('c', key.ModNone)); err != nil {
		t.Fatalf("completion keystroke error: %v", err)
	}
	if c.IsActive() {
		t.Error("session active after completed two-rune label")
	}
	if ed.cursor != 10 {
		t.Errorf("cursor = %d, want 10 (telex)", ed.cursor)
	}
}

func TestNarrowingIgnoresUnrelatedKey(t *testing.T) {
	ed := newFakeEditor("test team telex")
	det := match.Detector{Alphabet: label.ParseAlphabet("abc")}
	c := New(ed, det, nil, Config{MinQueryLen: 1}, nil)

	c.Activate()
	typeString(t, c, "te")
	if err := c.HandleKey(key.RuneEvent('c', key.ModNone)); err != nil {
		t.Fatal(err)
	}
	// 'z' completes nothing; the session keeps waiting.
	if err := c.HandleKey(key.RuneEvent('z', key.ModNone)); err != nil {
		t.Fatal(err)
	}
	if !c.IsActive() || len(c.Matches()) != 2 {
		t.Error("unrelated key during narrowing changed state")
	}
	if c.Query() != "te" {
		t.Errorf("query changed during narrowing: %q", c.Query())
	}
}

func TestBackspaceAbandonsNarrowing(t *testing.T) {
	ed := newFakeEditor("test team telex")
	det := match.Detector{Alphabet: label.ParseAlphabet("abc")}
	c := New(ed, det, nil, Config{MinQueryLen: 1}, nil)

	c.Activate()
	typeString(t, c, "te")
	if err := c.HandleKey(key.RuneEvent('c', key.ModNone)); err != nil {
		t.Fatal(err)
	}
	if err := c.HandleKey(backspace()); err != nil {
		t.Fatal(err)
	}
	// Query is untouched; the full match set is restored.
	if c.Query() != "te" {
		t.Errorf("query = %q after abandoning narrowing, want %q", c.Query(), "te")
	}
	if len(c.Matches()) != 3 {
		t.Errorf("got %d matches after abandoning narrowing, want 3", len(c.Matches()))
	}
}

func TestEscapeCancels(t *testing.T) {
	ed := newFakeEditor("test team telex")
	c := newController(ed, 1)

	c.Activate()
	typeString(t, c, "te")
	if err := c.HandleKey(escape()); err != nil {
		t.Fatalf("escape error: %v", err)
	}
	if c.IsActive() {
		t.Error("session active after escape")
	}
	if c.Query() != "" || c.Matches() != nil {
		t.Error("state not cleared on cancel")
	}
	if ed.cursorSets != 0 {
		t.Error("cancel moved the cursor")
	}
	if !ed.balanced() {
		t.Error("listeners not detached on cancel")
	}
	if ed.dimmed {
		t.Error("dim flag survives cancel")
	}
}

func TestOutsideClickCancels(t *testing.T) {
	ed := newFakeEditor("test team telex")
	c := newController(ed, 1)

	c.Activate()
	typeString(t, c, "te")
	ed.clickFn(5) // host reports a click

	if c.IsActive() {
		t.Error("session active after outside click")
	}
	if ed.cursorSets != 0 {
		t.Error("outside click moved the cursor")
	}
	if !ed.balanced() {
		t.Error("listeners not detached on outside click")
	}
}

func TestNavigationKeysIgnored(t *testing.T) {
	ed := newFakeEditor("test team telex")
	c := newController(ed, 1)

	c.Activate()
	typeString(t, c, "te")
	before := len(c.Matches())

	for _, k := range []key.Key{key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight, key.KeyHome, key.KeyPageDown} {
		if err := c.HandleKey(key.NamedEvent(k, key.ModNone)); err != nil {
			t.Fatalf("HandleKey(%v) error: %v", k, err)
		}
	}
	if !c.IsActive() || len(c.Matches()) != before || c.Query() != "te" {
		t.Error("control keys altered session state")
	}
}

func TestSetCursorFailureStillCleansUp(t *testing.T) {
	ed := newFakeEditor("apple banana cherry")
	ed.cursorErr = errors.New("host editor exploded")
	c := newController(ed, 2)

	c.Activate()
	typeString(t, c, "c")
	err := c.HandleKey(key.RuneEvent('h', key.ModNone)) // auto-jump -> SetCursor fails
	if err == nil {
		t.Fatal("expected error from failing SetCursor")
	}
	if !errors.Is(err, ed.cursorErr) {
		t.Errorf("error %v does not wrap host error", err)
	}
	if c.IsActive() {
		t.Error("session active after SetCursor failure")
	}
	if !ed.balanced() {
		t.Error("listeners not detached after SetCursor failure")
	}
	if ed.dimmed {
		t.Error("dim flag survives SetCursor failure")
	}
}

func TestCyrillicKeystrokeSelectsLatinLabel(t *testing.T) {
	ed := newFakeEditor("echo echo echo")
	det := match.NewDetector(label.ParseAlphabet(label.DefaultAlphabet))
	c := New(ed, det, layout.Russian(), Config{MinQueryLen: 1}, nil)

	c.Activate()
	typeString(t, c, "e")
	target := c.Matches()[0] // label "a"
	if target.Label != "a" {
		t.Fatalf("first label = %q, want %q", target.Label, "a")
	}
	// The Cyrillic ф sits on the physical key of Latin a.
	if err := c.HandleKey(key.RuneEvent('ф', key.ModNone)); err != nil {
		t.Fatalf("HandleKey error: %v", err)
	}
	if c.IsActive() || ed.cursor != target.Index {
		t.Errorf("cyrillic label entry: active=%v cursor=%d want %d",
			c.IsActive(), ed.cursor, target.Index)
	}
}

func TestCyrillicQueryExtension(t *testing.T) {
	// Without a normalizer, Cyrillic keystrokes extend the query and
	// match Cyrillic text.
	ed := newFakeEditor("привет мир привет")
	c := newController(ed, 1)

	c.Activate()
	typeString(t, c, "мир")
	if c.IsActive() {
		// Unique match triggers auto-jump.
		t.Fatal("expected auto-jump on unique Cyrillic match")
	}
	if ed.cursor != 7 {
		t.Errorf("cursor = %d, want 7", ed.cursor)
	}
}

func TestVisibleRangeRestriction(t *testing.T) {
	ed := newFakeEditor("foo bar foo bar foo")
	ed.ranges = match.Ranges{{From: 6, To: 14}}
	c := newController(ed, 1)

	c.Activate()
	typeString(t, c, "fo") // only the occurrence at 8 is visible -> auto-jump
	if c.IsActive() {
		t.Fatal("expected auto-jump for single visible match")
	}
	if ed.cursor != 8 {
		t.Errorf("cursor = %d, want 8", ed.cursor)
	}
}
