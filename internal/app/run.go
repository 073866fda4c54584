package app

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"leapseek/internal/key"
	"leapseek/internal/term"
)

// Run initializes the terminal and drives the event loop until the
// quit key, context cancellation, or Stop.
func (a *Application) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	defer a.screen.Fini()

	_, h := a.screen.Size()
	a.view.SetHeight(h - 1)

	go func() {
		select {
		case <-ctx.Done():
		case <-a.done:
		}
		a.screen.PostQuit()
	}()

	a.log.Info("started: %s", a.opts.File)
	for {
		a.render()

		ev := a.screen.PollEvent()
		if ev == nil {
			return ctx.Err()
		}
		switch tev := ev.(type) {
		case *tcell.EventInterrupt:
			// Interrupts are either a config-reload wakeup or the
			// shutdown post; apply the former, honor the latter.
			a.handleReload()
			if ctx.Err() != nil {
				return ctx.Err()
			}
			select {
			case <-a.done:
				return nil
			default:
			}
		case *tcell.EventResize:
			_, h := tev.Size()
			a.view.SetHeight(h - 1)
			a.screen.Clear()
		case *tcell.EventKey:
			kev, ok := term.KeyEvent(tev)
			if !ok {
				continue
			}
			if kev.Equals(quitKey) {
				a.log.Info("quit")
				return nil
			}
			if err := a.handleKey(kev); err != nil {
				a.log.Error("key handling: %v", err)
			}
		case *tcell.EventMouse:
			x, y, ok := term.Click(tev)
			if !ok {
				continue
			}
			a.handleClick(x, y)
		}
	}
}

// Stop ends Run from another goroutine.
func (a *Application) Stop() {
	select {
	case <-a.done:
	default:
		close(a.done)
	}
}

// handleKey routes a keystroke: an in-progress hint session first,
// then an active jump session, then application bindings, then plain
// navigation.
func (a *Application) handleKey(ev key.Event) error {
	if a.hintActive() {
		a.handleHintKey(ev)
		return nil
	}
	if a.controller().IsActive() {
		consumed, err := a.view.DispatchKey(ev)
		if consumed {
			return err
		}
	}
	switch {
	case ev.Equals(a.activate()):
		a.log.Debug("jump session activated")
		a.controller().Activate()
		return nil
	case ev.Equals(hintKey):
		return a.activateHints()
	}
	a.navigate(ev)
	return nil
}

// Fixed application bindings; session keys come from configuration.
var (
	// hintKey cycles through the configured hint sources.
	hintKey = key.MustParse("Ctrl+K")

	// quitKey exits the application.
	quitKey = key.MustParse("Ctrl+Q")
)

// activate returns the configured session-start key.
func (a *Application) activate() key.Event {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.activateKey
}

// navigate applies plain viewport motion outside any session.
func (a *Application) navigate(ev key.Event) {
	switch ev.Key {
	case key.KeyUp:
		a.view.ScrollBy(-1)
	case key.KeyDown:
		a.view.ScrollBy(1)
	case key.KeyPageUp:
		a.view.ScrollBy(-a.view.Height())
	case key.KeyPageDown:
		a.view.ScrollBy(a.view.Height())
	case key.KeyHome:
		a.view.ScrollBy(-a.view.LineCount())
	case key.KeyEnd:
		a.view.ScrollBy(a.view.LineCount())
	}
}

// handleClick converts a screen click to a document offset. Clicks
// land in the view during a session, which cancels it; otherwise they
// move the cursor.
func (a *Application) handleClick(x, y int) {
	line := a.view.Line(a.view.Top() + y)
	offset := a.view.OffsetAt(y, runeColumn(line, x))
	if a.hintActive() {
		a.cancelHints()
		return
	}
	if a.controller().IsActive() {
		a.view.DispatchClick(offset)
		return
	}
	if offset >= 0 {
		if err := a.view.SetCursor(offset); err != nil {
			a.log.Warn("click: %v", err)
		}
	}
}
