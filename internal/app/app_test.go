package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/antscan/internal/adapters/fs"
	"go.trai.ch/antscan/internal/adapters/telemetry"
	"go.trai.ch/antscan/internal/app"
	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/core/ports"
	"go.trai.ch/antscan/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	rootBuildFile = `<project name="demo" default="dist">
  <target name="init"/>
  <target name="dist" depends="init"/>
</project>
`
	subBuildFile = `<project name="sub">
  <target name="test"/>
  <target name="init"/>
</project>
`
)

type harness struct {
	dir      string
	stdout   *syncBuffer
	executor *mocks.MockExecutor
	watcher  *mocks.MockWatcher
	app      *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "build.xml"), rootBuildFile)
	writeFile(t, filepath.Join(dir, "sub", "build.xml"), subBuildFile)

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(dir).Return(domain.DefaultSettings(dir), nil).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	h := &harness{
		dir:      dir,
		stdout:   &syncBuffer{},
		executor: mocks.NewMockExecutor(ctrl),
		watcher:  mocks.NewMockWatcher(ctrl),
	}

	osfs := fs.NewOSFS()
	h.app = app.New(
		loader,
		osfs,
		fs.NewWalker(osfs),
		mocks.NewMockToolRunner(ctrl),
		h.executor,
		h.watcher,
		telemetry.NewNoOpTracer(),
		log,
		"linux",
	).WithOutput(h.stdout, &bytes.Buffer{}).WithDebounceWindow(10 * time.Millisecond)

	return h
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestApp_Tasks(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.Tasks(t.Context(), app.TasksOptions{Dir: h.dir}))

	g := goldie.New(t)
	g.Assert(t, "tasks_plain", []byte(h.stdout.String()))
}

func TestApp_Tasks_JSON(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.Tasks(t.Context(), app.TasksOptions{Dir: h.dir, JSON: true}))

	var tasks []struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Source     string `json:"source"`
		Definition struct {
			Script   string `json:"script"`
			Path     string `json:"path"`
			FileName string `json:"fileName"`
		} `json:"definition"`
		Execution struct {
			Command string   `json:"command"`
			Args    []string `json:"args"`
		} `json:"execution"`
	}
	require.NoError(t, json.Unmarshal([]byte(h.stdout.String()), &tasks))
	require.Len(t, tasks, 4)

	assert.Equal(t, "dist - Default", tasks[1].Name)
	assert.Equal(t, "dist", tasks[1].Definition.Script)
	assert.Equal(t, "ant", tasks[1].Source)
	assert.Equal(t, "ant", tasks[1].Execution.Command)
	assert.Equal(t, []string{"dist"}, tasks[1].Execution.Args)

	assert.NotEmpty(t, tasks[0].ID)
	assert.NotEqual(t, tasks[0].ID, tasks[3].ID, "same target name in different buildfiles")

	assert.Equal(t, "test", tasks[2].Name)
	assert.Equal(t, "sub/", tasks[2].Definition.Path)
	assert.Equal(t, "build.xml", tasks[2].Definition.FileName)
}

func TestApp_Tasks_Empty(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.Remove(filepath.Join(h.dir, "build.xml")))
	require.NoError(t, os.RemoveAll(filepath.Join(h.dir, "sub")))

	require.NoError(t, h.app.Tasks(t.Context(), app.TasksOptions{Dir: h.dir}))
	assert.Equal(t, "! no tasks found\n", h.stdout.String())
}

func TestApp_Targets(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.Targets(t.Context(), "build.xml", app.TargetsOptions{Dir: h.dir}))
	assert.Equal(t, "build.xml (markup)\n  init\n  dist - Default → dist\n", h.stdout.String())
}

func TestApp_Targets_JSON(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.Targets(t.Context(), "sub/build.xml", app.TargetsOptions{Dir: h.dir, JSON: true}))

	var doc struct {
		File    string          `json:"file"`
		Source  string          `json:"source"`
		Reason  string          `json:"reason"`
		Targets []domain.Target `json:"targets"`
	}
	require.NoError(t, json.Unmarshal([]byte(h.stdout.String()), &doc))
	assert.Equal(t, filepath.Join(h.dir, "sub", "build.xml"), doc.File)
	assert.Equal(t, "markup", doc.Source)
	assert.Empty(t, doc.Reason)
	assert.Equal(t, []domain.Target{
		{DisplayName: "test", InvocationName: "test"},
		{DisplayName: "init", InvocationName: "init"},
	}, doc.Targets)
}

func TestApp_Targets_Malformed(t *testing.T) {
	h := newHarness(t)
	writeFile(t, filepath.Join(h.dir, "broken.xml"), "<project><target name=")

	require.NoError(t, h.app.Targets(t.Context(), "broken.xml", app.TargetsOptions{Dir: h.dir}))

	out := h.stdout.String()
	assert.True(t, strings.HasPrefix(out, "broken.xml (empty)\n"), out)
	assert.Contains(t, out, domain.ErrMarkupParseFailed.Error())
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name     string
		task     string
		file     string
		wantName string
		wantFile string
	}{
		{name: "display name", task: "dist - Default", wantName: "dist - Default", wantFile: "build.xml"},
		{name: "target name", task: "dist", wantName: "dist - Default", wantFile: "build.xml"},
		{name: "narrowed by file", task: "init", file: "sub/build.xml", wantName: "init", wantFile: "sub/build.xml"},
		{name: "unique in workspace", task: "test", wantName: "test", wantFile: "sub/build.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			var ran *domain.Task
			h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, task *domain.Task, _, _ io.Writer) error {
					ran = task
					return nil
				})

			require.NoError(t, h.app.Run(t.Context(), tt.task, app.RunOptions{Dir: h.dir, File: tt.file}))
			require.NotNil(t, ran)
			assert.Equal(t, tt.wantName, ran.Name)
			assert.Equal(t, filepath.Join(h.dir, filepath.FromSlash(tt.wantFile)), ran.File())
			assert.Equal(t, filepath.Dir(ran.File()), ran.Execution.Options.Cwd)
		})
	}
}

func TestApp_Run_Errors(t *testing.T) {
	tests := []struct {
		name    string
		task    string
		file    string
		wantErr string
	}{
		{name: "no name", task: "", wantErr: domain.ErrNoTaskSpecified.Error()},
		{name: "unknown", task: "deploy", wantErr: domain.ErrTaskNotFound.Error()},
		{name: "wrong file", task: "test", file: "build.xml", wantErr: domain.ErrTaskNotFound.Error()},
		{name: "ambiguous", task: "init", wantErr: domain.ErrAmbiguousTask.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			err := h.app.Run(t.Context(), tt.task, app.RunOptions{Dir: h.dir, File: tt.file})
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestApp_Run_ExecutorError(t *testing.T) {
	h := newHarness(t)
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrTaskExecutionFailed)

	err := h.app.Run(t.Context(), "test", app.RunOptions{Dir: h.dir})
	assert.ErrorIs(t, err, domain.ErrTaskExecutionFailed)
}

func TestApp_Watch(t *testing.T) {
	h := newHarness(t)

	events := make(chan ports.WatchEvent)
	var closeOnce sync.Once
	h.watcher.EXPECT().Start(gomock.Any(), []string{h.dir}).Return(nil)
	h.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		for e := range events {
			if !yield(e) {
				return
			}
		}
	}))
	h.watcher.EXPECT().Stop().DoAndReturn(func() error {
		closeOnce.Do(func() { close(events) })
		return nil
	})

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- h.app.Watch(ctx, app.WatchOptions{Dir: h.dir})
	}()

	assert.Eventually(t, func() bool {
		return strings.Contains(h.stdout.String(), "✓ 4 tasks from 2 buildfiles")
	}, 5*time.Second, 10*time.Millisecond)

	// A new buildfile is picked up.
	added := filepath.Join(h.dir, "lib", "build.xml")
	writeFile(t, added, `<project><target name="compile"/></project>`)
	events <- ports.WatchEvent{Path: added, Operation: ports.OpCreate}

	assert.Eventually(t, func() bool {
		return strings.Contains(h.stdout.String(), "~ lib/build.xml → 5 tasks")
	}, 5*time.Second, 10*time.Millisecond)

	// Unrelated files are ignored; a deleted buildfile drops its tasks.
	notes := filepath.Join(h.dir, "notes.txt")
	writeFile(t, notes, "hello")
	require.NoError(t, os.Remove(filepath.Join(h.dir, "sub", "build.xml")))
	events <- ports.WatchEvent{Path: notes, Operation: ports.OpCreate}
	events <- ports.WatchEvent{Path: filepath.Join(h.dir, "sub", "build.xml"), Operation: ports.OpRemove}

	assert.Eventually(t, func() bool {
		return strings.Contains(h.stdout.String(), "~ sub/build.xml → 3 tasks")
	}, 5*time.Second, 10*time.Millisecond)
	assert.NotContains(t, h.stdout.String(), "notes.txt")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancellation")
	}
}

// startWatch runs Watch against a mocked watcher until the initial task list is printed.
// It returns the event feed and a func that cancels Watch and waits for it to return.
func startWatch(t *testing.T, h *harness) (chan<- ports.WatchEvent, func()) {
	t.Helper()

	events := make(chan ports.WatchEvent)
	var closeOnce sync.Once
	h.watcher.EXPECT().Start(gomock.Any(), []string{h.dir}).Return(nil)
	h.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		for e := range events {
			if !yield(e) {
				return
			}
		}
	}))
	h.watcher.EXPECT().Stop().DoAndReturn(func() error {
		closeOnce.Do(func() { close(events) })
		return nil
	})

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- h.app.Watch(ctx, app.WatchOptions{Dir: h.dir})
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(h.stdout.String(), "✓ 4 tasks from 2 buildfiles")
	}, 5*time.Second, 10*time.Millisecond)

	return events, func() {
		t.Helper()
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("watch did not return after cancellation")
		}
	}
}

func TestApp_Watch_DirectoryMovedIn(t *testing.T) {
	h := newHarness(t)

	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "lib", "build.xml"), `<project><target name="compile"/></project>`)

	events, stop := startWatch(t, h)

	// Only the directory is reported when it is moved in whole.
	moved := filepath.Join(h.dir, "lib")
	require.NoError(t, os.Rename(filepath.Join(outside, "lib"), moved))
	events <- ports.WatchEvent{Path: moved, Operation: ports.OpCreate}

	assert.Eventually(t, func() bool {
		return strings.Contains(h.stdout.String(), "~ lib/build.xml → 5 tasks")
	}, 5*time.Second, 10*time.Millisecond)

	stop()
}

func TestApp_Watch_Rescan(t *testing.T) {
	h := newHarness(t)

	events, stop := startWatch(t, h)

	// A buildfile whose events were lost shows up after a rescan.
	writeFile(t, filepath.Join(h.dir, "lib", "build.xml"), `<project><target name="compile"/></project>`)
	events <- ports.WatchEvent{Operation: ports.OpRescan}

	assert.Eventually(t, func() bool {
		return strings.Contains(h.stdout.String(), "✓ 5 tasks from 3 buildfiles")
	}, 5*time.Second, 10*time.Millisecond)

	stop()
}

func TestApp_Watch_FlushAppliesPendingChanges(t *testing.T) {
	h := newHarness(t)
	h.app.WithDebounceWindow(time.Hour)

	events, stop := startWatch(t, h)

	added := filepath.Join(h.dir, "lib", "build.xml")
	writeFile(t, added, `<project><target name="compile"/></project>`)
	events <- ports.WatchEvent{Path: added, Operation: ports.OpCreate}

	// Stopping flushes the batch, and Watch returns only once it is printed.
	stop()
	assert.Contains(t, h.stdout.String(), "~ lib/build.xml → 5 tasks")
}
