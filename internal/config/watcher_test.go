package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "leapseek.toml")
	if err := os.WriteFile(path, []byte(`alphabet = "abc"`), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Config, 4)
	w, err := Watch(path, func(c Config) { reloaded <- c }, nil)
	if err != nil {
		t.Fatalf("Watch error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`alphabet = "xyz"`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Alphabet != "xyz" {
			t.Errorf("reloaded alphabet = %q, want %q", cfg.Alphabet, "xyz")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within deadline")
	}
}

func TestWatchKeepsOldConfigOnBadReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "leapseek.toml")
	if err := os.WriteFile(path, []byte(`alphabet = "abc"`), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Config, 4)
	w, err := Watch(path, func(c Config) { reloaded <- c }, nil)
	if err != nil {
		t.Fatalf("Watch error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`min_query_len = [`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		t.Errorf("malformed file triggered reload: %+v", cfg)
	case <-time.After(time.Second):
		// Expected: no callback for an unloadable file.
	}
}

func TestWatchCloseSuppressesPendingReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "leapseek.toml")
	if err := os.WriteFile(path, []byte(`alphabet = "abc"`), 0o644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan Config, 1)
	w, err := Watch(path, func(c Config) { calls <- c }, nil)
	if err != nil {
		t.Fatalf("Watch error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	// A debounce timer that fired just before Close still runs
	// reload; the callback must stay silent once Close has returned.
	w.reload()
	select {
	case cfg := <-calls:
		t.Errorf("reload after Close invoked the callback: %+v", cfg)
	default:
	}
}

func TestWatchCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "leapseek.toml")
	if err := os.WriteFile(path, []byte(``), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, func(Config) {}, nil)
	if err != nil {
		t.Fatalf("Watch error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
