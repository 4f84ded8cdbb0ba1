package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/engine/provider"
)

func task(file, name string) *domain.Task {
	return &domain.Task{
		Name:       name,
		Definition: domain.TaskDefinition{Script: name, URI: domain.NewInternedString(file)},
	}
}

func TestCache_StartsUnpopulated(t *testing.T) {
	c := provider.NewCache()

	_, ok := c.Snapshot()
	assert.False(t, ok)
	_, ok = c.Files()
	assert.False(t, ok)
	assert.False(t, c.Remove(fileA))
	assert.False(t, c.Replace(fileA, []*domain.Task{task(fileA, "dist")}))
	assert.False(t, c.Populated())
}

func TestCache_StoreChecksGeneration(t *testing.T) {
	c := provider.NewCache()
	gen := c.Generation()

	c.Invalidated()
	assert.False(t, c.Store(gen, []*domain.Task{task(fileA, "dist")}))
	assert.False(t, c.Populated())

	gen = c.Generation()
	require.True(t, c.Store(gen, []*domain.Task{task(fileA, "dist")}))
	assert.True(t, c.Populated())

	// A second store for the same generation does not overwrite.
	assert.False(t, c.Store(gen, nil))
	tasks, _ := c.Snapshot()
	assert.Len(t, tasks, 1)
}

func TestCache_SnapshotIsACopy(t *testing.T) {
	c := provider.NewCache()
	require.True(t, c.Store(c.Generation(), []*domain.Task{task(fileA, "dist")}))

	tasks, _ := c.Snapshot()
	tasks[0] = task(fileB, "other")

	again, _ := c.Snapshot()
	assert.Equal(t, fileA, again[0].File())
}

func TestCache_ReplaceAndFiles(t *testing.T) {
	c := provider.NewCache()
	require.True(t, c.Store(c.Generation(), []*domain.Task{
		task(fileA, "init"),
		task(fileA, "dist"),
		task(fileB, "test"),
	}))

	files, ok := c.Files()
	require.True(t, ok)
	assert.Equal(t, []string{fileA, fileB}, files)

	require.True(t, c.Replace(fileA, []*domain.Task{task(fileA, "clean")}))
	tasks, _ := c.Snapshot()
	assert.Equal(t, []string{fileB + ":test", fileA + ":clean"}, names(tasks))

	require.True(t, c.Remove(fileA, fileB))
	c.Settle()
	assert.False(t, c.Populated())
}

func TestCache_ResetBumpsGeneration(t *testing.T) {
	c := provider.NewCache()
	gen := c.Generation()
	require.True(t, c.Store(gen, []*domain.Task{task(fileA, "dist")}))

	c.Reset()
	assert.False(t, c.Populated())
	assert.NotEqual(t, gen, c.Generation())

	// Invalidated leaves a Populated cache's generation alone.
	require.True(t, c.Store(c.Generation(), []*domain.Task{task(fileA, "dist")}))
	gen = c.Generation()
	c.Invalidated()
	assert.Equal(t, gen, c.Generation())
}
