package layout

import (
	"sync"
	"time"
)

// reloadDebounce is the window within which file events coalesce. Editors
// tend to write a save as several events back to back; one reload per save
// is plenty.
const reloadDebounce = 250 * time.Millisecond

// debouncer coalesces rapid triggers into a single callback after the
// window elapses. Re-triggering within the window cancels the earlier
// pending callback.
type debouncer struct {
	window time.Duration
	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
}

func newDebouncer(window time.Duration) *debouncer {
	if window <= 0 {
		window = reloadDebounce
	}
	return &debouncer{window: window}
}

// trigger schedules fn after the window, replacing any pending callback.
func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// A timer that already fired can race Stop; the sequence check
		// makes sure only the most recent schedule runs.
		stale := seq != d.seq
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if stale {
			return
		}
		fn()
	})
}

// cancel drops any pending callback.
func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
