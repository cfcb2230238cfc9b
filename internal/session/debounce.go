package session

import "time"

const (
	windowsDebounce = 200 * time.Millisecond
	defaultDebounce = 50 * time.Millisecond
)

// DefaultDebounce returns the debounce window for the given GOOS. Windows
// consoles deliver noisier key repeats and get a wider window.
func DefaultDebounce(goos string) time.Duration {
	if goos == "windows" {
		return windowsDebounce
	}
	return defaultDebounce
}

// Debouncer drops key events that arrive within threshold of the last
// accepted event. Dropped events do not move the clock.
type Debouncer struct {
	threshold time.Duration
	last      time.Time
	seen      bool
}

func NewDebouncer(threshold time.Duration) *Debouncer {
	return &Debouncer{threshold: threshold}
}

// Accept reports whether an event at now should be routed to Apply.
func (d *Debouncer) Accept(now time.Time) bool {
	if d.threshold <= 0 {
		return true
	}
	if d.seen && now.Sub(d.last) < d.threshold {
		return false
	}
	d.last = now
	d.seen = true
	return true
}

func (d *Debouncer) Threshold() time.Duration { return d.threshold }
