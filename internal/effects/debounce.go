package effects

import (
	"sync"
	"time"
)

// Debouncer runs the most recently scheduled task once the quiet period has
// passed without another Schedule call. Every Schedule gets a new sequence
// number; superseded timers are stopped before they fire.
type Debouncer struct {
	mu    sync.Mutex
	quiet time.Duration
	timer *time.Timer
	seq   uint64
}

// NewDebouncer returns a Debouncer with the given quiet period.
func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Schedule cancels any pending task and arranges for fn to run after the
// quiet period. It returns the sequence number passed to fn.
func (d *Debouncer) Schedule(fn func(seq uint64)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.quiet, func() {
		// Stop cannot recall a timer that already fired; check again.
		if !d.IsLatest(seq) {
			return
		}
		fn(seq)
	})
	return seq
}

// Latest returns the most recently issued sequence number.
func (d *Debouncer) Latest() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seq
}

// IsLatest reports whether seq is the most recently issued sequence number.
func (d *Debouncer) IsLatest(seq uint64) bool {
	return d.Latest() == seq
}

// Stop cancels the pending task, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
