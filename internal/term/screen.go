package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen wraps a tcell.Screen for the application's drawing needs.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewScreen allocates a terminal screen. Init must be called before
// drawing.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{screen: s}, nil
}

// Init takes over the terminal and enables mouse reporting.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableMouse()
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Fini()
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Size()
}

// SetCell writes one rune at a cell position.
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetContent(x, y, r, nil, style)
}

// ShowCursor places the hardware cursor.
func (s *Screen) ShowCursor(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.ShowCursor(x, y)
}

// Clear erases the screen buffer.
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Clear()
}

// Show flushes pending drawing to the terminal.
func (s *Screen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Show()
}

// PollEvent blocks for the next terminal event. It returns nil after
// Fini.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// PostQuit wakes up a blocked PollEvent during shutdown.
func (s *Screen) PostQuit() {
	s.screen.PostEventWait(tcell.NewEventInterrupt(nil))
}

// Wake posts a no-op interrupt so a blocked PollEvent returns and the
// event loop can pick up work queued from another goroutine.
func (s *Screen) Wake() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}
