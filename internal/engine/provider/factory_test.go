package provider_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/antscan/internal/adapters/fs"
	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/engine/provider"
)

func TestTaskFactory_NewTask(t *testing.T) {
	folder := domain.WorkspaceFolder{Name: "ws", Path: filepath.FromSlash("/ws")}
	fsys := fs.NewMapFSAdapter("/ws", fstest.MapFS{})

	tests := []struct {
		name     string
		file     string
		wantArgs []string
		wantPath string
		wantName string
	}{
		{
			name:     "default buildfile at root",
			file:     "/ws/build.xml",
			wantArgs: []string{"dist"},
			wantPath: "",
			wantName: "build.xml",
		},
		{
			name:     "default buildfile nested",
			file:     "/ws/app/BUILD.xml",
			wantArgs: []string{"dist"},
			wantPath: "app/",
			wantName: "BUILD.xml",
		},
		{
			name:     "custom buildfile",
			file:     "/ws/ci/deploy.xml",
			wantArgs: []string{"dist", "-f", "deploy.xml"},
			wantPath: "ci/",
			wantName: "deploy.xml",
		},
	}

	factory := provider.NewTaskFactory(domain.DefaultSettings("/ws"), "linux", fsys)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.FromSlash(tt.file)
			task := factory.NewTask("dist", "dist - Default", folder, file)

			assert.Equal(t, "dist - Default", task.Name)
			assert.Equal(t, domain.TaskSource, task.Source)
			assert.Equal(t, domain.GroupBuild, task.Group)
			assert.Equal(t, folder, task.Folder)

			assert.Equal(t, "ant", task.Execution.Command)
			assert.Equal(t, tt.wantArgs, task.Execution.Args)
			assert.Equal(t, filepath.Dir(file), task.Execution.Options.Cwd)
			assert.Empty(t, task.Execution.Options.Executable)

			assert.Equal(t, domain.TaskDefinition{
				Type:     "ant",
				Script:   "dist",
				Path:     tt.wantPath,
				FileName: tt.wantName,
				URI:      domain.NewInternedString(file),
			}, task.Definition)
		})
	}
}

func TestTaskFactory_NameFallbacks(t *testing.T) {
	factory := provider.NewTaskFactory(domain.DefaultSettings("/ws"), "linux", fs.NewMapFSAdapter("/ws", fstest.MapFS{}))
	file := filepath.FromSlash("/ws/build.xml")

	byDisplay := factory.NewTask("", "clean", domain.WorkspaceFolder{}, file)
	assert.Equal(t, "clean", byDisplay.Definition.Script)
	assert.Equal(t, []string{"clean"}, byDisplay.Execution.Args)

	byInvocation := factory.NewTask("clean", "", domain.WorkspaceFolder{}, file)
	assert.Equal(t, "clean", byInvocation.Name)

	// No folder leaves the relative path empty.
	assert.Empty(t, byInvocation.Definition.Path)
}

func TestTaskFactory_WindowsCommand(t *testing.T) {
	settings := domain.DefaultSettings("/ws")
	factory := provider.NewTaskFactory(settings, "windows", fs.NewMapFSAdapter("/ws", fstest.MapFS{}))

	task := factory.NewTask("dist", "dist", domain.WorkspaceFolder{}, filepath.FromSlash("/ws/build.xml"))
	assert.Equal(t, "ant.bat", task.Execution.Command)

	settings.PathToAnt = `C:\ant\bin\ant`
	factory = provider.NewTaskFactory(settings, "windows", fs.NewMapFSAdapter("/ws", fstest.MapFS{}))
	task = factory.NewTask("dist", "dist", domain.WorkspaceFolder{}, filepath.FromSlash("/ws/build.xml"))
	assert.Equal(t, `C:\ant\bin\ant.bat`, task.Execution.Command)
}

func TestTaskFactory_Ansicon(t *testing.T) {
	files := fstest.MapFS{"tools/ansicon/ansicon.exe": {Data: []byte("MZ")}}
	fsys := fs.NewMapFSAdapter("/ws", files)

	settings := domain.DefaultSettings("/ws")
	settings.EnableAnsicon = true

	t.Run("default wrapper", func(t *testing.T) {
		factory := provider.NewTaskFactory(settings, "windows", fsys)
		task := factory.NewTask("dist", "dist", domain.WorkspaceFolder{}, filepath.FromSlash("/ws/ci/deploy.xml"))

		assert.Equal(t, "ant.bat", task.Execution.Command)
		assert.Equal(t, "ansicon.exe", task.Execution.Options.Executable)
		assert.True(t, task.Execution.Options.ANSI)
		assert.Equal(t, filepath.FromSlash("/ws/ci"), task.Execution.Options.Cwd)
		assert.Equal(t, []string{"-logger", domain.AnsiColorLogger, "dist", "-f", "deploy.xml"}, task.Execution.Args)
	})

	t.Run("configured executable", func(t *testing.T) {
		s := *settings
		s.PathToAnsicon = filepath.FromSlash("/ws/tools/ansicon/ansicon.exe")
		factory := provider.NewTaskFactory(&s, "windows", fsys)
		task := factory.NewTask("dist", "dist", domain.WorkspaceFolder{}, filepath.FromSlash("/ws/build.xml"))

		assert.Equal(t, s.PathToAnsicon, task.Execution.Options.Executable)
		assert.Equal(t, []string{"-logger", domain.AnsiColorLogger, "dist"}, task.Execution.Args)
	})

	t.Run("configured path missing", func(t *testing.T) {
		s := *settings
		s.PathToAnsicon = filepath.FromSlash("/ws/tools/nowhere")
		factory := provider.NewTaskFactory(&s, "windows", fsys)
		task := factory.NewTask("dist", "dist", domain.WorkspaceFolder{}, filepath.FromSlash("/ws/build.xml"))

		assert.Equal(t, "ansicon.exe", task.Execution.Options.Executable)
	})

	t.Run("ignored off windows", func(t *testing.T) {
		factory := provider.NewTaskFactory(settings, "linux", fsys)
		task := factory.NewTask("dist", "dist", domain.WorkspaceFolder{}, filepath.FromSlash("/ws/build.xml"))

		assert.Empty(t, task.Execution.Options.Executable)
		assert.False(t, task.Execution.Options.ANSI)
		assert.Equal(t, []string{"dist"}, task.Execution.Args)
	})
}

func TestTaskFactory_NewTasks(t *testing.T) {
	factory := provider.NewTaskFactory(domain.DefaultSettings("/ws"), "linux", fs.NewMapFSAdapter("/ws", fstest.MapFS{}))
	targets := domain.NewTargets()
	targets.Add("init", "build")
	targets.Add("build", "build")

	tasks := factory.NewTasks(targets, domain.WorkspaceFolder{}, filepath.FromSlash("/ws/build.xml"))
	require.Len(t, tasks, 2)
	assert.Equal(t, "init", tasks[0].Name)
	assert.Equal(t, "build - Default", tasks[1].Name)
	assert.Equal(t, []string{"build"}, tasks[1].Execution.Args)

	assert.Empty(t, factory.NewTasks(domain.NewTargets(), domain.WorkspaceFolder{}, "/ws/build.xml"))
}
