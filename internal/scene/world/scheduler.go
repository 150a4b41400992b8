package world

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-dino/internal/scene"
)

type timer struct {
	delay     time.Duration
	elapsed   time.Duration
	fn        func()
	cancelled bool
}

func (t *timer) Cancel()      { t.cancelled = true }
func (t *timer) Active() bool { return !t.cancelled }

// Every schedules fn on the world clock. The clock only moves when Tick is
// called, so callbacks never race with the frame update.
func (w *World) Every(delay time.Duration, fn func()) scene.Timer {
	if delay <= 0 {
		delay = time.Nanosecond
	}
	t := &timer{delay: delay, fn: fn}
	w.timers = append(w.timers, t)
	return t
}

// PendingTimers returns the number of timers that are still active.
func (w *World) PendingTimers() int {
	n := 0
	for _, t := range w.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

func (w *World) runTimers(delta time.Duration) {
	// Timers scheduled by a callback start on the next frame.
	due := slices.Clone(w.timers)
	for _, t := range due {
		if t.cancelled {
			continue
		}
		t.elapsed += delta
		if t.elapsed >= t.delay {
			t.elapsed -= t.delay
			t.fn()
		}
	}
	w.timers = slices.DeleteFunc(w.timers, func(t *timer) bool { return t.cancelled })
}
