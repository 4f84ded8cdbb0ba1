package watcher

import (
	"cmp"
	"slices"
	"sync"
	"time"
	"unique"

	"go.trai.ch/antscan/internal/core/ports"
)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Debouncer coalesces rapid file system events into batches.
// Within a batch each path appears once, carrying its latest operation, and batches are
// sorted by path.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]ports.WatchOp
	timer    *time.Timer
	window   time.Duration
	callback func(events []ports.WatchEvent)

	// inflight counts armed timers until they are stopped or their callback returns.
	inflight sync.WaitGroup
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(events []ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]ports.WatchOp),
		window:   window,
		callback: callback,
	}
}

// Add records an event and restarts the debounce window.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(event.Path)] = event.Operation

	if d.timer != nil && d.timer.Stop() {
		d.inflight.Done()
	}
	d.inflight.Add(1)
	d.timer = time.AfterFunc(d.window, d.fire)
}

// takePending must be called with mu held.
func (d *Debouncer) takePending() []ports.WatchEvent {
	events := make([]ports.WatchEvent, 0, len(d.pending))
	for handle, op := range d.pending {
		events = append(events, ports.WatchEvent{Path: handle.Value(), Operation: op})
	}
	slices.SortFunc(events, func(a, b ports.WatchEvent) int {
		return cmp.Compare(a.Path, b.Path)
	})
	d.pending = make(map[unique.Handle[string]]ports.WatchOp)
	return events
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	defer d.inflight.Done()

	d.mu.Lock()
	d.timer = nil
	if len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}
	events := d.takePending()
	d.mu.Unlock()

	if d.callback != nil {
		d.callback(events)
	}
}

// Flush immediately hands all pending events to the callback. It returns once every
// callback started by the debounce timer has returned too. Add must not run concurrently
// with Flush.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil && d.timer.Stop() {
		d.inflight.Done()
	}
	d.timer = nil
	events := d.takePending()
	d.mu.Unlock()

	if len(events) > 0 && d.callback != nil {
		d.callback(events)
	}
	d.inflight.Wait()
}
