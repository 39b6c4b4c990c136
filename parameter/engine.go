package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame interval with vsync on (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameUpdateIntervalNoVsync is the frame interval with vsync off
	FrameUpdateIntervalNoVsync = 4 * time.Millisecond

	// InputHoldWindow keeps a key held after its last press/repeat event
	// Terminals report no key-up, so held state is inferred from repeats
	InputHoldWindow = 120 * time.Millisecond

	// InputRepeatInterval separates auto-repeat (faster) from a new tap (slower)
	// Terminal repeat rates of 25-40Hz put repeats 25-40ms apart
	InputRepeatInterval = 60 * time.Millisecond

	// EventChannelSize is the buffer between the terminal poller and the loop
	EventChannelSize = 256
)

// Viewport defaults, in world units before zoom
const (
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
)
