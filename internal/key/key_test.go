package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyBackspace, "Backspace"},
		{KeyDelete, "Delete"},
		{KeyUp, "Up"},
		{KeyPageDown, "PageDown"},
		{KeyRune, "Rune"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyIsNamed(t *testing.T) {
	if KeyRune.IsNamed() {
		t.Error("KeyRune.IsNamed() = true, want false")
	}
	if KeyNone.IsNamed() {
		t.Error("KeyNone.IsNamed() = true, want false")
	}
	if !KeyEscape.IsNamed() {
		t.Error("KeyEscape.IsNamed() = false, want true")
	}
}

func TestKeyIsNavigation(t *testing.T) {
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd, KeyPageUp, KeyPageDown} {
		if !k.IsNavigation() {
			t.Errorf("%s.IsNavigation() = false, want true", k)
		}
	}
	for _, k := range []Key{KeyEscape, KeyEnter, KeyRune, KeyBackspace} {
		if k.IsNavigation() {
			t.Errorf("%s.IsNavigation() = true, want false", k)
		}
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"escape", KeyEscape},
		{"Esc", KeyEscape},
		{"ESCAPE", KeyEscape},
		{"enter", KeyEnter},
		{"return", KeyEnter},
		{"bs", KeyBackspace},
		{" backspace ", KeyBackspace},
		{"bogus", KeyNone},
		{"", KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromName(tt.name); got != tt.want {
				t.Errorf("FromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
