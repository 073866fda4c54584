package config

import (
	"errors"
	"fmt"
	"unicode"

	"leapseek/internal/key"
	"leapseek/internal/label"
)

// Validation errors.
var (
	ErrEmptyAlphabet  = errors.New("config: label alphabet is empty")
	ErrBadMinQueryLen = errors.New("config: min_query_len must be at least 1")
	ErrUnknownLayout  = errors.New("config: unknown keyboard layout")
	ErrBadKeySpec     = errors.New("config: invalid key binding")
)

// Config is the resolved leapseek configuration.
type Config struct {
	// Alphabet lists the runes labels are drawn from, in preference
	// order.
	Alphabet string `toml:"alphabet" yaml:"alphabet"`

	// CaseSensitive disables query case folding.
	CaseSensitive bool `toml:"case_sensitive" yaml:"case_sensitive"`

	// MinQueryLen gates match computation; minimum 1.
	MinQueryLen int `toml:"min_query_len" yaml:"min_query_len"`

	// Layout names the physical keyboard layout for label
	// normalization: "" (pass-through), "russian", or "ru".
	Layout string `toml:"layout" yaml:"layout"`

	// Key bindings in the parser's spec syntax ("Escape", "Ctrl+G",
	// "<BS>").
	ActivateKey string `toml:"activate_key" yaml:"activate_key"`
	CancelKey   string `toml:"cancel_key" yaml:"cancel_key"`
	DeleteKey   string `toml:"delete_key" yaml:"delete_key"`

	Hints Hints `toml:"hints" yaml:"hints"`
	Log   Log   `toml:"log" yaml:"log"`
}

// Hints configures the non-search jump sources.
type Hints struct {
	// Links enables the URL hint source.
	Links bool `toml:"links" yaml:"links"`

	// Words enables the word-start hint source.
	Words bool `toml:"words" yaml:"words"`

	// Patterns maps source names to regular expressions.
	Patterns map[string]string `toml:"patterns" yaml:"patterns"`

	// Scripts maps source names to Lua script paths.
	Scripts map[string]string `toml:"scripts" yaml:"scripts"`
}

// Log configures diagnostic output.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// File receives log output; empty disables logging.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Alphabet:    label.DefaultAlphabet,
		MinQueryLen: 1,
		ActivateKey: "Ctrl+J",
		CancelKey:   "Escape",
		DeleteKey:   "Backspace",
		Hints: Hints{
			Links: true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// knownLayouts are the names ForName understands.
var knownLayouts = map[string]bool{
	"": true, "qwerty": true, "russian": true, "ru": true,
}

// Validate checks the configuration for values that cannot be used.
func (c Config) Validate() error {
	if c.Alphabet != "" && !hasLabelRune(c.Alphabet) {
		return fmt.Errorf("%w: %q", ErrEmptyAlphabet, c.Alphabet)
	}
	if c.MinQueryLen < 1 {
		return fmt.Errorf("%w: got %d", ErrBadMinQueryLen, c.MinQueryLen)
	}
	if !knownLayouts[c.Layout] {
		return fmt.Errorf("%w: %q", ErrUnknownLayout, c.Layout)
	}
	for name, spec := range map[string]string{
		"activate_key": c.ActivateKey,
		"cancel_key":   c.CancelKey,
		"delete_key":   c.DeleteKey,
	} {
		if _, err := key.Parse(spec); err != nil {
			return fmt.Errorf("%w: %s = %q: %v", ErrBadKeySpec, name, spec, err)
		}
	}
	return nil
}

// hasLabelRune reports whether s contains at least one rune an
// alphabet could keep.
func hasLabelRune(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
