package input

import (
	"sync"
	"time"

	"github.com/bits-and-blooms/bitset"
)

// Tracker turns discrete key events into per-tick snapshots
// Terminals deliver presses and auto-repeats but no releases, so an action
// counts as held until holdWindow has passed since its last event.
//
// An event arriving within repeatInterval of the previous one is auto-repeat
// and never an edge; any slower event is a new tap. The first repeat after the
// OS repeat delay cannot be told apart from a second tap and counts as one.
type Tracker struct {
	mu             sync.Mutex
	holdWindow     time.Duration
	repeatInterval time.Duration
	lastPress      [ActionCount]time.Time
	pending        *bitset.BitSet // Edges since the last snapshot
}

// NewTracker creates a tracker with the given hold window and repeat interval
func NewTracker(holdWindow, repeatInterval time.Duration) *Tracker {
	return &Tracker{
		holdWindow:     holdWindow,
		repeatInterval: repeatInterval,
		pending:        bitset.New(uint(ActionCount)),
	}
}

// Press records a press or repeat event for an action
func (t *Tracker) Press(a Action, now time.Time) {
	if a >= ActionCount {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	last := t.lastPress[a]
	if last.IsZero() || now.Sub(last) > t.repeatInterval {
		t.pending.Set(uint(a))
	}
	t.lastPress[a] = now
}

// Snapshot returns the input state at now and consumes pending edges
func (t *Tracker) Snapshot(now time.Time) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		held:    bitset.New(uint(ActionCount)),
		pressed: t.pending.Clone(),
	}
	for a := Action(0); a < ActionCount; a++ {
		if t.heldLocked(a, now) || t.pending.Test(uint(a)) {
			s.held.Set(uint(a))
		}
	}
	t.pending.ClearAll()
	return s
}

// Reset forgets all held keys and pending edges
// Called when the terminal loses focus, since releases there are never seen
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastPress = [ActionCount]time.Time{}
	t.pending.ClearAll()
}

func (t *Tracker) heldLocked(a Action, now time.Time) bool {
	last := t.lastPress[a]
	return !last.IsZero() && now.Sub(last) <= t.holdWindow
}
