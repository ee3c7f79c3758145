package controller

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid calls into one: the scheduled function runs only
// after the quiet interval elapses with no further triggers. It exists to cut
// redundant store reads while typing, not for correctness.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
}

// NewDebouncer returns a Debouncer with the given quiet interval.
// A non-positive interval makes Trigger run synchronously.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules fn after the quiet interval, replacing any pending call.
func (d *Debouncer) Trigger(fn func()) {
	if d.interval <= 0 {
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}
