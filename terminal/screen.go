package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/henshin/core"
)

// Screen wraps a tcell screen and its event poller
type Screen struct {
	tcell.Screen
}

// NewScreen creates and initializes the terminal screen
// The crash handler is wired to restore the terminal before reporting
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	s.EnableFocus()
	s.Clear()

	core.SetCrashCleanup(s.Fini)
	return &Screen{Screen: s}, nil
}

// Poll forwards screen events to ch until the screen is finalized
// Runs on its own goroutine with crash recovery
func (s *Screen) Poll(ch chan<- tcell.Event) {
	core.Go(func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			ch <- ev
		}
	})
}
