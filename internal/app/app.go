package app

import (
	"fmt"
	"io"
	"os"
	"sync"

	"leapseek/internal/config"
	"leapseek/internal/editor"
	"leapseek/internal/hint"
	"leapseek/internal/key"
	"leapseek/internal/label"
	"leapseek/internal/layout"
	"leapseek/internal/logging"
	"leapseek/internal/match"
	"leapseek/internal/script"
	"leapseek/internal/search"
	"leapseek/internal/term"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file; empty uses defaults.
	ConfigPath string

	// File is the document to open.
	File string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// Watch enables live config reload.
	Watch bool
}

// Application coordinates the screen, the view, and the jump engine.
type Application struct {
	opts Options

	mu  sync.RWMutex
	cfg config.Config

	log     *logging.Logger
	logFile io.Closer

	screen *term.Screen
	view   *editor.View
	ctrl   *search.Controller
	norm   *layout.Normalizer

	sources  []hint.Source
	hints    []hint.Hint
	hintSess *hintSession

	activateKey key.Event

	watcher *config.Watcher

	// reloads carries configurations from the watcher goroutine to
	// the event loop; only the loop applies them.
	reloads chan config.Config
	done    chan struct{}
}

// New loads configuration, opens the document, and wires the
// components. The screen is not initialized until Run.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	a := &Application{
		opts:    opts,
		cfg:     cfg,
		reloads: make(chan config.Config, 1),
		done:    make(chan struct{}),
	}
	if err := a.openLog(cfg.Log); err != nil {
		return nil, err
	}

	doc, err := os.ReadFile(opts.File)
	if err != nil {
		a.closeLog()
		return nil, fmt.Errorf("app: open %s: %w", opts.File, err)
	}
	// Height is provisional until the screen reports its size.
	a.view = editor.NewView(string(doc), 24)

	screen, err := term.NewScreen()
	if err != nil {
		a.closeLog()
		return nil, fmt.Errorf("app: screen: %w", err)
	}
	a.screen = screen

	if err := a.applyConfig(cfg); err != nil {
		a.closeLog()
		return nil, err
	}

	if opts.Watch && opts.ConfigPath != "" {
		w, err := config.Watch(opts.ConfigPath, a.onReload, a.log)
		if err != nil {
			a.closeLog()
			return nil, err
		}
		a.watcher = w
	}
	return a, nil
}

// applyConfig rebuilds the pieces derived from configuration. It must
// run on the event-loop goroutine: cancelling a jump session mutates
// view listener state the loop reads without further locking. The
// caller holds no locks.
func (a *Application) applyConfig(cfg config.Config) error {
	alphabet := label.ParseAlphabet(cfg.Alphabet)
	det := match.Detector{Alphabet: alphabet, CaseSensitive: cfg.CaseSensitive}
	norm := layout.ForName(cfg.Layout)

	activate, err := key.Parse(cfg.ActivateKey)
	if err != nil {
		return err
	}
	cancel, err := key.Parse(cfg.CancelKey)
	if err != nil {
		return err
	}
	del, err := key.Parse(cfg.DeleteKey)
	if err != nil {
		return err
	}

	sources, err := buildSources(cfg.Hints)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ctrl != nil && a.ctrl.IsActive() {
		a.ctrl.HandleOutsideClick()
	}
	a.cfg = cfg
	a.norm = norm
	a.activateKey = activate
	a.ctrl = search.New(a.view, det, norm, search.Config{
		MinQueryLen: cfg.MinQueryLen,
		CancelKey:   cancel,
		DeleteKey:   del,
	}, a.log)
	a.sources = sources
	if a.hintSess != nil {
		a.clearHintsLocked()
	}
	return nil
}

// controller returns the current jump controller. Config reload swaps
// it on the event loop.
func (a *Application) controller() *search.Controller {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ctrl
}

// onReload is invoked by the config watcher. It runs on the watcher
// goroutine, so it only queues the configuration and wakes the event
// loop; handleReload applies it there.
func (a *Application) onReload(cfg config.Config) {
	for {
		select {
		case a.reloads <- cfg:
			a.wake()
			return
		case <-a.reloads:
			// A reload the loop never picked up; the newer one wins.
		}
	}
}

// handleReload applies a queued configuration, if any. Event-loop
// goroutine only.
func (a *Application) handleReload() {
	select {
	case cfg := <-a.reloads:
		if err := a.applyConfig(cfg); err != nil {
			a.log.Warn("config reload rejected: %v", err)
		}
	default:
	}
}

func (a *Application) wake() {
	if a.screen != nil {
		a.screen.Wake()
	}
}

// buildSources instantiates the configured hint sources.
func buildSources(h config.Hints) ([]hint.Source, error) {
	var sources []hint.Source
	if h.Links {
		sources = append(sources, hint.LinkSource())
	}
	if h.Words {
		sources = append(sources, hint.WordSource())
	}
	for name, pattern := range h.Patterns {
		src, err := hint.NewPatternSource(name, pattern)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	for name, path := range h.Scripts {
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("app: script %s: %w", name, err)
		}
		sources = append(sources, script.NewSource(name, string(body)))
	}
	return sources, nil
}

// openLog directs logging to the configured file, or disables it.
func (a *Application) openLog(cfg config.Log) error {
	if cfg.File == "" {
		a.log = logging.Null
		return nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("app: log file %s: %w", cfg.File, err)
	}
	a.log = logging.New(f, logging.ParseLevel(cfg.Level))
	a.logFile = f
	return nil
}

func (a *Application) closeLog() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// Close releases everything Run does not own.
func (a *Application) Close() {
	if a.watcher != nil {
		a.watcher.Close()
	}
	a.closeLog()
}
