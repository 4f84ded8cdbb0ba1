package app

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/antscan/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/antscan/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configures the Watch method.
type WatchOptions struct {
	Dir string
}

// Watch prints the task list, then keeps it current as buildfiles change until ctx is
// cancelled. Each settled batch of changes invalidates exactly the buildfiles it touched.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	s, err := a.open(opts.Dir)
	if err != nil {
		return err
	}

	tasks, err := s.provider.ProvideTasks(ctx)
	if err != nil {
		return err
	}
	p := newPrinter(a.stdout)
	p.tasks(tasks, s.settings.Root)

	if err := a.watcher.Start(ctx, s.settings.Workspace.Roots()); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %d workspace folder(s) for buildfile changes", len(s.settings.Workspace.Folders)))

	// Batches are applied one at a time so their output does not interleave.
	var applyMu sync.Mutex
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(events []ports.WatchEvent) {
		applyMu.Lock()
		defer applyMu.Unlock()
		a.applyChanges(ctx, s, p, events)
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event)
		}
		debouncer.Flush()
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		if err := a.watcher.Stop(); err != nil {
			return zerr.Wrap(err, "failed to stop file watcher")
		}
		return nil
	})

	return g.Wait()
}

// applyChanges updates the files cache from a batch of events and invalidates every
// buildfile the batch touched.
func (a *App) applyChanges(ctx context.Context, s *session, p *printer, events []ports.WatchEvent) {
	if slices.ContainsFunc(events, func(e ports.WatchEvent) bool { return e.Operation == ports.OpRescan }) {
		a.rescan(ctx, s, p)
		return
	}

	var changed []string
	track := func(path string) {
		if !slices.Contains(changed, path) {
			changed = append(changed, path)
		}
	}
	for _, event := range events {
		switch event.Operation {
		case ports.OpCreate, ports.OpWrite:
			if s.files.Track(event.Path) {
				track(event.Path)
				continue
			}
			for _, path := range a.trackDirectory(s, event.Path) {
				track(path)
			}
		case ports.OpRemove, ports.OpRename:
			for _, path := range s.files.Forget(event.Path) {
				track(path)
			}
			// A rename also fires a create for the new name.
			if s.files.Matches(event.Path) {
				track(event.Path)
			}
		}
	}
	if len(changed) == 0 {
		return
	}

	for _, path := range changed {
		a.logger.Debug(fmt.Sprintf("invalidating %s", path))
		s.provider.Invalidate(ctx, path)
	}

	tasks, err := s.provider.ProvideTasks(ctx)
	if err != nil {
		if ctx.Err() == nil {
			a.logger.Error(err)
		}
		return
	}
	p.changed(changed, s.settings.Root, len(tasks))
}

// trackDirectory records the buildfiles below path when path is a directory that
// appeared in one piece, as after a move. It returns the buildfiles it tracked.
func (a *App) trackDirectory(s *session, path string) []string {
	info, err := a.fs.Stat(path)
	if err != nil || !info.IsDir() {
		return nil
	}

	var tracked []string
	files, walkErr := a.walker.WalkFiles(path)
	for file := range files {
		if s.files.Track(file) {
			tracked = append(tracked, file)
		}
	}
	if err := walkErr(); err != nil {
		a.logger.Warn(fmt.Sprintf("scanning %s: %v", path, err))
	}
	return tracked
}

// rescan drops everything known about the workspace and lists the tasks again.
func (a *App) rescan(ctx context.Context, s *session, p *printer) {
	a.logger.Debug("file events were lost, rescanning the workspace")
	s.provider.Invalidate(ctx, "")

	tasks, err := s.provider.ProvideTasks(ctx)
	if err != nil {
		if ctx.Err() == nil {
			a.logger.Error(err)
		}
		return
	}
	p.tasks(tasks, s.settings.Root)
}
