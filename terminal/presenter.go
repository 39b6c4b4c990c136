package terminal

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/parameter"
)

// Presenter owns the present mode; the host loop reads the frame interval from it
// Safe for concurrent use
type Presenter struct {
	mode atomic.Uint32
}

// NewPresenter creates a presenter with vsync on or off
func NewPresenter(vsync bool) *Presenter {
	p := &Presenter{}
	if !vsync {
		p.mode.Store(uint32(engine.PresentModeAutoNoVsync))
	}
	return p
}

// PresentMode returns the current mode
func (p *Presenter) PresentMode() engine.PresentMode {
	return engine.PresentMode(p.mode.Load())
}

// TogglePresentMode flips between vsync and no-vsync and returns the new mode
func (p *Presenter) TogglePresentMode() engine.PresentMode {
	for {
		old := p.mode.Load()
		next := uint32(engine.PresentMode(old).Toggled())
		if p.mode.CompareAndSwap(old, next) {
			return engine.PresentMode(next)
		}
	}
}

// FrameInterval returns the frame pacing for the current mode
func (p *Presenter) FrameInterval() time.Duration {
	if p.PresentMode() == engine.PresentModeAutoNoVsync {
		return parameter.FrameUpdateIntervalNoVsync
	}
	return parameter.FrameUpdateInterval
}
