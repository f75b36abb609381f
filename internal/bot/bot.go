package bot

import (
	"time"
)

// DefaultThinkDelay is how long the opponent pretends to think.
const DefaultThinkDelay = 80 * time.Millisecond

// Thinker holds back a chosen move until its delay has elapsed.
// It is polled from the frame loop and never blocks.
type Thinker struct {
	delay    time.Duration
	deadline time.Time
	index    int
	armed    bool
}

// NewThinker creates a thinker that releases moves after delay.
func NewThinker(delay time.Duration) *Thinker {
	return &Thinker{delay: delay, index: -1}
}

// Start holds index until delay has passed since now. A pending move is
// replaced.
func (t *Thinker) Start(now time.Time, index int) {
	t.deadline = now.Add(t.delay)
	t.index = index
	t.armed = true
}

// Cancel drops the pending move, if any.
func (t *Thinker) Cancel() {
	t.armed = false
	t.index = -1
}

// Thinking reports whether a move is pending.
func (t *Thinker) Thinking() bool {
	return t.armed
}

// Ready returns the pending move once the deadline is reached and
// disarms the thinker.
func (t *Thinker) Ready(now time.Time) (int, bool) {
	if !t.armed || now.Before(t.deadline) {
		return -1, false
	}

	index := t.index
	t.Cancel()
	return index, true
}

// Delay returns the configured thinking time.
func (t *Thinker) Delay() time.Duration {
	return t.delay
}
