package provider

import (
	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/core/ports"
)

// TaskFactory turns extracted targets into task descriptors.
type TaskFactory struct {
	command     string
	useAnsicon  bool
	ansiconPath string
}

// NewTaskFactory creates a TaskFactory for the given settings. goos selects the Ant command
// and whether the ansicon wrapper applies; fsys is used to check a configured ansicon path.
func NewTaskFactory(settings *domain.Settings, goos string, fsys ports.FileSystem) *TaskFactory {
	f := &TaskFactory{
		command:    domain.AntExecutable(settings.PathToAnt, goos),
		useAnsicon: goos == domain.GOOSWindows && settings.EnableAnsicon,
	}
	if f.useAnsicon {
		f.ansiconPath = domain.AnsiconPath(settings.PathToAnsicon, func(p string) bool {
			_, err := fsys.Stat(p)
			return err == nil
		})
	}
	return f
}

// NewTask creates the task that runs one target of file. An empty invocation name falls
// back to the display name and vice versa. A zero folder leaves the relative path empty.
func (f *TaskFactory) NewTask(invocationName, displayName string, folder domain.WorkspaceFolder, file string) *domain.Task {
	target := invocationName
	if target == "" {
		target = displayName
	}
	name := displayName
	if name == "" {
		name = target
	}

	buildFile := domain.NewBuildFile(file, folder)

	execution := domain.ShellExecution{
		Command: f.command,
		Args:    []string{target},
		Options: domain.ExecutionOptions{Cwd: buildFile.Dir()},
	}
	if f.useAnsicon {
		execution.Args = []string{"-logger", domain.AnsiColorLogger, target}
		execution.Options.Executable = f.ansiconPath
		execution.Options.ANSI = true
	}
	if !buildFile.IsDefaultName() {
		execution.Args = append(execution.Args, "-f", buildFile.Base())
	}

	return &domain.Task{
		Name:   name,
		Source: domain.TaskSource,
		Group:  domain.GroupBuild,
		Folder: folder,
		Definition: domain.TaskDefinition{
			Type:     domain.TaskType,
			Script:   target,
			Path:     folder.RelativeDir(buildFile.Path.String()),
			FileName: buildFile.Base(),
			URI:      buildFile.Path,
		},
		Execution: execution,
	}
}

// NewTasks creates one task per target, in target order.
func (f *TaskFactory) NewTasks(targets *domain.Targets, folder domain.WorkspaceFolder, file string) []*domain.Task {
	tasks := make([]*domain.Task, 0, targets.Len())
	for t := range targets.All() {
		tasks = append(tasks, f.NewTask(t.InvocationName, t.DisplayName, folder, file))
	}
	return tasks
}
