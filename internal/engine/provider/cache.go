package provider

import (
	"slices"
	"sync"

	"go.trai.ch/antscan/internal/core/domain"
)

// Cache is the process-wide task list. It is Unpopulated until a discovery stores a
// result and drops back to Unpopulated on Reset or when patching empties it.
//
// Every transition to Unpopulated bumps the generation, so a discovery that started
// before the reset cannot store its stale result.
type Cache struct {
	mu         sync.Mutex
	populated  bool
	generation uint64
	tasks      []*domain.Task
}

// NewCache creates an Unpopulated cache.
func NewCache() *Cache {
	return &Cache{}
}

// Snapshot returns a copy of the task list and whether the cache is Populated.
func (c *Cache) Snapshot() ([]*domain.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.populated {
		return nil, false
	}
	return slices.Clone(c.tasks), true
}

// Populated reports whether the cache currently holds a task list.
func (c *Cache) Populated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.populated
}

// Generation returns the current generation.
func (c *Cache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Store populates the cache with tasks discovered during generation. It reports false,
// leaving the cache untouched, when the generation moved on or the cache is already Populated.
func (c *Cache) Store(generation uint64, tasks []*domain.Task) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != generation || c.populated {
		return false
	}
	c.tasks = slices.Clone(tasks)
	c.populated = true
	return true
}

// Reset drops the task list.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// Invalidated records that something changed while the cache was Unpopulated, so an
// in-flight discovery cannot store what it read before the change.
func (c *Cache) Invalidated() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.populated {
		c.generation++
	}
}

// Files returns the distinct buildfiles of the cached tasks in task order.
// It returns false when the cache is Unpopulated.
func (c *Cache) Files() ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.populated {
		return nil, false
	}
	seen := make(map[string]struct{})
	var files []string
	for _, t := range c.tasks {
		f := t.File()
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		files = append(files, f)
	}
	return files, true
}

// Remove drops every task whose buildfile is in files. It reports false when the cache
// is Unpopulated.
func (c *Cache) Remove(files ...string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.populated {
		return false
	}
	c.removeLocked(files)
	return true
}

// Replace swaps the tasks of file for tasks, appending them at the end. It reports false
// when the cache is Unpopulated.
func (c *Cache) Replace(file string, tasks []*domain.Task) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.populated {
		return false
	}
	c.removeLocked([]string{file})
	c.tasks = append(c.tasks, tasks...)
	return true
}

// Settle resets a Populated cache that holds no tasks.
func (c *Cache) Settle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.populated && len(c.tasks) == 0 {
		c.resetLocked()
	}
}

func (c *Cache) removeLocked(files []string) {
	if len(files) == 0 {
		return
	}
	c.tasks = slices.DeleteFunc(c.tasks, func(t *domain.Task) bool {
		return slices.Contains(files, t.File())
	})
}

func (c *Cache) resetLocked() {
	c.populated = false
	c.tasks = nil
	c.generation++
}
