package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/antscan/internal/adapters/watcher"
	"go.trai.ch/antscan/internal/core/ports"
)

func TestDebouncer_CoalescesBatch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var received []ports.WatchEvent

		d := watcher.NewDebouncer(100*time.Millisecond, func(events []ports.WatchEvent) {
			callCount++
			received = events
		})

		d.Add(ports.WatchEvent{Path: "/ws/lib/build.xml", Operation: ports.OpCreate})
		d.Add(ports.WatchEvent{Path: "/ws/build.xml", Operation: ports.OpWrite})
		d.Add(ports.WatchEvent{Path: "/ws/lib/build.xml", Operation: ports.OpWrite})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []ports.WatchEvent{
			{Path: "/ws/build.xml", Operation: ports.OpWrite},
			{Path: "/ws/lib/build.xml", Operation: ports.OpWrite},
		}, received)
	})
}

func TestDebouncer_WindowRestartsOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]ports.WatchEvent) {
			callCount++
		})

		d.Add(ports.WatchEvent{Path: "/ws/build.xml", Operation: ports.OpWrite})
		time.Sleep(80 * time.Millisecond)
		d.Add(ports.WatchEvent{Path: "/ws/build.xml", Operation: ports.OpWrite})
		time.Sleep(80 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 0, callCount, "window should restart on every event")

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_LastOperationWins(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var received []ports.WatchEvent

		d := watcher.NewDebouncer(10*time.Millisecond, func(events []ports.WatchEvent) {
			received = events
		})

		d.Add(ports.WatchEvent{Path: "/ws/build.xml", Operation: ports.OpWrite})
		d.Add(ports.WatchEvent{Path: "/ws/build.xml", Operation: ports.OpRemove})

		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, []ports.WatchEvent{{Path: "/ws/build.xml", Operation: ports.OpRemove}}, received)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	var mu sync.Mutex
	var received []ports.WatchEvent

	d := watcher.NewDebouncer(time.Hour, func(events []ports.WatchEvent) {
		mu.Lock()
		defer mu.Unlock()
		received = events
	})

	d.Add(ports.WatchEvent{Path: "/ws/build.xml", Operation: ports.OpCreate})
	d.Flush()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []ports.WatchEvent{{Path: "/ws/build.xml", Operation: ports.OpCreate}}, received)
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	called := false
	d := watcher.NewDebouncer(time.Millisecond, func([]ports.WatchEvent) { called = true })
	d.Flush()
	assert.False(t, called)
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add(ports.WatchEvent{Path: "/ws/build.xml", Operation: ports.OpWrite})
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
	})
}

func TestDebouncer_FlushWaitsForFiredCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		release := make(chan struct{})
		var applied []ports.WatchEvent

		d := watcher.NewDebouncer(10*time.Millisecond, func(events []ports.WatchEvent) {
			<-release
			applied = events
		})

		d.Add(ports.WatchEvent{Path: "/ws/build.xml", Operation: ports.OpWrite})
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		// The timer has fired and its callback is blocked.
		flushed := make(chan struct{})
		go func() {
			d.Flush()
			close(flushed)
		}()
		synctest.Wait()

		select {
		case <-flushed:
			t.Fatal("Flush returned while a batch was still being applied")
		default:
		}

		close(release)
		<-flushed
		assert.Equal(t, []ports.WatchEvent{{Path: "/ws/build.xml", Operation: ports.OpWrite}}, applied)
	})
}

func TestDebouncer_FlushAfterReplacedTimer(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var batches int

		d := watcher.NewDebouncer(time.Hour, func([]ports.WatchEvent) {
			batches++
		})

		d.Add(ports.WatchEvent{Path: "/ws/build.xml", Operation: ports.OpWrite})
		d.Add(ports.WatchEvent{Path: "/ws/lib/build.xml", Operation: ports.OpCreate})
		d.Flush()

		assert.Equal(t, 1, batches)
	})
}
