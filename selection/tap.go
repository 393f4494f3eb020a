package selection

import (
	"math"
	"time"
)

const (
	doubleTapWindow   = 300 * time.Millisecond
	doubleTapDistance = 16.0 // screen pixels
)

// TapTracker detects double taps: two taps within a time window and a pixel
// distance threshold. The clock is injected so tests can drive it; callers
// should supply a monotonic source (time.Now qualifies).
type TapTracker struct {
	now func() time.Time

	lastAt time.Time
	lastX  float64
	lastY  float64
	valid  bool
}

// NewTapTracker creates a tracker using the given clock. A nil clock means
// time.Now.
func NewTapTracker(now func() time.Time) *TapTracker {
	if now == nil {
		now = time.Now
	}
	return &TapTracker{now: now}
}

// Tap registers a tap at a screen position and reports whether it completes
// a double tap. A completed double tap resets the tracker so a third tap
// starts a fresh sequence.
func (t *TapTracker) Tap(x, y float64) bool {
	ts := t.now()
	if t.valid && ts.Sub(t.lastAt) <= doubleTapWindow {
		dx := x - t.lastX
		dy := y - t.lastY
		if math.Hypot(dx, dy) <= doubleTapDistance {
			t.valid = false
			return true
		}
	}
	t.lastAt = ts
	t.lastX = x
	t.lastY = y
	t.valid = true
	return false
}
