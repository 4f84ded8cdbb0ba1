// Package locator keeps the workspace files cache that buildfile discovery reads from.
package locator

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/antscan/internal/adapters/fs"
	"go.trai.ch/antscan/internal/adapters/pattern"
	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileLocator = (*FilesCache)(nil)

// FilesCache implements ports.FileLocator. It scans the workspace folders once, on first
// use, and is then kept current through Track and Forget.
type FilesCache struct {
	walker    *fs.Walker
	workspace domain.Workspace
	buildfile *pattern.Matcher

	mu     sync.RWMutex
	loaded bool
	files  map[string]struct{}
}

// NewFilesCache creates a files cache for the settings' workspace folders.
func NewFilesCache(walker *fs.Walker, settings *domain.Settings) (*FilesCache, error) {
	matcher, err := pattern.Compile(settings.BuildFilePatterns())
	if err != nil {
		return nil, err
	}
	return &FilesCache{
		walker:    walker,
		workspace: settings.Workspace,
		buildfile: matcher,
		files:     make(map[string]struct{}),
	}, nil
}

// Get returns the buildfiles known for category, sorted. Unknown categories are empty.
func (c *FilesCache) Get(ctx context.Context, category string) ([]string, error) {
	if category != domain.AntCategory {
		return nil, nil
	}

	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	paths := make([]string, 0, len(c.files))
	for p := range c.files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths, nil
}

func (c *FilesCache) ensureLoaded(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	found := make(map[string]struct{})
	for _, folder := range c.workspace.Folders {
		seq, walkErr := c.walker.WalkFiles(folder.Path)
		for path := range seq {
			if err := ctx.Err(); err != nil {
				return err
			}
			if c.buildfile.Match(path) {
				found[filepath.Clean(path)] = struct{}{}
			}
		}
		if err := walkErr(); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLocatorWalkFailed.Error()), "folder", folder.Path)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		// Paths tracked while the scan ran are kept.
		for p := range c.files {
			found[p] = struct{}{}
		}
		c.files = found
		c.loaded = true
	}
	return nil
}

// Matches reports whether path looks like a buildfile inside a workspace folder.
func (c *FilesCache) Matches(path string) bool {
	if _, ok := c.workspace.FolderFor(path); !ok {
		return false
	}
	if inSkippedDirectory(path) {
		return false
	}
	return c.buildfile.Match(path)
}

// Track records a created or changed file. It reports whether the file is a buildfile.
func (c *FilesCache) Track(path string) bool {
	path = filepath.Clean(path)
	if !c.Matches(path) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = struct{}{}
	return true
}

// Forget drops path, and every buildfile below it when path was a directory.
// It returns the buildfiles that were dropped.
func (c *FilesCache) Forget(path string) []string {
	path = filepath.Clean(path)
	prefix := path + string(filepath.Separator)

	c.mu.Lock()
	defer c.mu.Unlock()

	var removed []string
	for p := range c.files {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(c.files, p)
			removed = append(removed, p)
		}
	}
	slices.Sort(removed)
	return removed
}

// Reset drops everything; the next Get scans the workspace again.
func (c *FilesCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files = make(map[string]struct{})
	c.loaded = false
}

func inSkippedDirectory(path string) bool {
	for part := range strings.SplitSeq(filepath.ToSlash(filepath.Dir(path)), "/") {
		if domain.IsSkippedDirectory(part) {
			return true
		}
	}
	return false
}
