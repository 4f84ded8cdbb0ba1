// Package provider discovers Ant tasks and keeps them cached across file changes.
package provider

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

const discoveryKey = "discover"

// resettable is implemented by locators that can drop what they know and rescan.
type resettable interface {
	Reset()
}

// Provider serves the task list to the host and patches it when buildfiles change.
type Provider struct {
	locator   ports.FileLocator
	extractor ports.TargetExtractor
	factory   *TaskFactory
	fs        ports.FileSystem
	exclude   ports.PathMatcher
	workspace domain.Workspace
	tracer    ports.Tracer
	logger    ports.Logger

	cache     *Cache
	discovery singleflight.Group
}

// NewProvider creates a Provider around cache.
func NewProvider(
	locator ports.FileLocator,
	extractor ports.TargetExtractor,
	factory *TaskFactory,
	fsys ports.FileSystem,
	exclude ports.PathMatcher,
	workspace domain.Workspace,
	cache *Cache,
	tracer ports.Tracer,
	logger ports.Logger,
) *Provider {
	return &Provider{
		locator:   locator,
		extractor: extractor,
		factory:   factory,
		fs:        fsys,
		exclude:   exclude,
		workspace: workspace,
		tracer:    tracer,
		logger:    logger,
		cache:     cache,
	}
}

// ProvideTasks returns the cached tasks, running a full discovery first when the cache is
// Unpopulated. Concurrent callers share one in-flight discovery.
func (p *Provider) ProvideTasks(ctx context.Context) ([]*domain.Task, error) {
	if tasks, ok := p.cache.Snapshot(); ok {
		return cloneTasks(tasks), nil
	}

	// The shared discovery outlives any single caller; each caller only stops waiting.
	shared := context.WithoutCancel(ctx)
	ch := p.discovery.DoChan(discoveryKey, func() (any, error) {
		// A caller that queued behind a finished discovery finds the cache filled.
		if tasks, ok := p.cache.Snapshot(); ok {
			return tasks, nil
		}

		generation := p.cache.Generation()
		tasks, err := p.discover(shared)
		if err != nil {
			return nil, err
		}
		if !p.cache.Store(generation, tasks) {
			p.logger.Debug("cache changed during discovery, result not stored")
		}
		return tasks, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return cloneTasks(res.Val.([]*domain.Task)), nil
	}
}

// ResolveTask completes a task definition supplied by the host. Ant tasks are always
// fully described by ProvideTasks, so there is nothing to resolve.
func (p *Provider) ResolveTask(_ context.Context, _ *domain.Task) *domain.Task {
	return nil
}

// Invalidate patches the cache for a changed path. An empty path drops the cache, and the
// locator's file list with it, so the next ProvideTasks rescans the workspace.
func (p *Provider) Invalidate(ctx context.Context, path string) {
	ctx, span := p.tracer.Start(ctx, "invalidate")
	defer span.End()

	if path == "" {
		span.SetAttribute("reset", true)
		if r, ok := p.locator.(resettable); ok {
			r.Reset()
		}
		p.cache.Reset()
		p.logger.Debug("task cache reset")
		return
	}

	path = filepath.Clean(path)
	span.SetAttribute("build_file", path)

	files, ok := p.cache.Files()
	if !ok {
		p.cache.Invalidated()
		return
	}

	stale := []string{path}
	for _, f := range files {
		if f != path && !p.exists(f) {
			stale = append(stale, f)
		}
	}
	if !p.cache.Remove(stale...) {
		return
	}
	span.SetAttribute("removed", len(stale))

	if p.exists(path) && !p.exclude.Match(path) {
		tasks := p.readBuildFile(ctx, path)
		if !p.cache.Replace(path, tasks) {
			return
		}
		span.SetAttribute("tasks", len(tasks))
	}

	p.cache.Settle()
}

func (p *Provider) discover(ctx context.Context) ([]*domain.Task, error) {
	ctx, span := p.tracer.Start(ctx, "discover")
	defer span.End()

	candidates, err := p.locator.Get(ctx, domain.AntCategory)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	visited := make(map[string]struct{}, len(candidates))
	var tasks []*domain.Task
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if _, seen := visited[path]; seen {
			continue
		}
		visited[path] = struct{}{}

		if p.exclude.Match(path) {
			p.logger.Debug(fmt.Sprintf("skipping excluded buildfile %s", path))
			continue
		}
		tasks = append(tasks, p.readBuildFile(ctx, path)...)
	}

	span.SetAttribute("buildfiles", len(visited))
	span.SetAttribute("tasks", len(tasks))
	return tasks, nil
}

// readBuildFile extracts the targets of path and turns them into tasks. Files outside
// every workspace folder produce no tasks.
func (p *Provider) readBuildFile(ctx context.Context, path string) []*domain.Task {
	folder, ok := p.workspace.FolderFor(path)
	if !ok {
		p.logger.Debug(fmt.Sprintf("%s: %s", domain.ErrNoWorkspaceFolder.Error(), path))
		return nil
	}

	extraction := p.extractor.Extract(ctx, path)
	return p.factory.NewTasks(extraction.Targets, folder, path)
}

func (p *Provider) exists(path string) bool {
	_, err := p.fs.Stat(path)
	return err == nil
}

func cloneTasks(tasks []*domain.Task) []*domain.Task {
	if tasks == nil {
		return []*domain.Task{}
	}
	out := make([]*domain.Task, len(tasks))
	copy(out, tasks)
	return out
}
