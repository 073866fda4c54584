package key

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"g", RuneEvent('g', ModNone)},
		{"G", RuneEvent('G', ModShift)},
		{"/", RuneEvent('/', ModNone)},
		{"ж", RuneEvent('ж', ModNone)},
		{"Escape", NamedEvent(KeyEscape, ModNone)},
		{"esc", NamedEvent(KeyEscape, ModNone)},
		{"Backspace", NamedEvent(KeyBackspace, ModNone)},
		{"Ctrl+G", RuneEvent('g', ModCtrl)},
		{"Ctrl+Shift+g", RuneEvent('g', ModCtrl | ModShift)},
		{"Alt+Enter", NamedEvent(KeyEnter, ModAlt)},
		{"<C-g>", RuneEvent('g', ModCtrl)},
		{"<Esc>", NamedEvent(KeyEscape, ModNone)},
		{"<BS>", NamedEvent(KeyBackspace, ModNone)},
		{"<C-Space>", RuneEvent(' ', ModCtrl)},
		{"<lt>", RuneEvent('<', ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, spec := range []string{"", "  ", "<>", "<X-g>", "Bogus+g", "notakey", "<C->"} {
		t.Run(spec, func(t *testing.T) {
			if _, err := Parse(spec); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", spec)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid spec")
		}
	}()
	MustParse("no such key")
}

func TestEventEquals(t *testing.T) {
	// Shift is folded into the rune for character events.
	if !RuneEvent('G', ModShift).Equals(RuneEvent('G', ModNone)) {
		t.Error("shifted rune events should compare equal")
	}
	if RuneEvent('g', ModCtrl).Equals(RuneEvent('g', ModNone)) {
		t.Error("Ctrl-modified rune should not equal the bare rune")
	}
	if NamedEvent(KeyEscape, ModNone).Equals(NamedEvent(KeyEnter, ModNone)) {
		t.Error("different named keys should not compare equal")
	}
}

func TestEventIsPrintable(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"letter", RuneEvent('a', ModNone), true},
		{"cyrillic", RuneEvent('ж', ModNone), true},
		{"cjk", RuneEvent('語', ModNone), true},
		{"shifted letter", RuneEvent('A', ModShift), true},
		{"ctrl letter", RuneEvent('a', ModCtrl), false},
		{"alt letter", RuneEvent('a', ModAlt), false},
		{"named key", NamedEvent(KeyEscape, ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.IsPrintable(); got != tt.want {
				t.Errorf("IsPrintable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{RuneEvent('g', ModNone), "g"},
		{RuneEvent(' ', ModNone), "Space"},
		{RuneEvent('g', ModCtrl), "Ctrl+g"},
		{NamedEvent(KeyEscape, ModNone), "Escape"},
		{NamedEvent(KeyEnter, ModAlt), "Alt+Enter"},
	}

	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
