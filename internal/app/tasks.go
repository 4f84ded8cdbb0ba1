package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/zerr"
)

// TasksOptions configures the Tasks method.
type TasksOptions struct {
	Dir  string
	JSON bool
}

// Tasks discovers every task in the workspace and prints it.
func (a *App) Tasks(ctx context.Context, opts TasksOptions) error {
	s, err := a.open(opts.Dir)
	if err != nil {
		return err
	}

	tasks, err := s.provider.ProvideTasks(ctx)
	if err != nil {
		return err
	}

	p := newPrinter(a.stdout)
	if opts.JSON {
		return p.json(newTaskDocuments(tasks))
	}
	p.tasks(tasks, s.settings.Root)
	return nil
}

// TargetsOptions configures the Targets method.
type TargetsOptions struct {
	Dir  string
	JSON bool
}

// Targets extracts and prints the targets of a single buildfile, together with the
// extraction path that produced them.
func (a *App) Targets(ctx context.Context, file string, opts TargetsOptions) error {
	s, err := a.open(opts.Dir)
	if err != nil {
		return err
	}

	path := resolvePath(s.cwd, file)
	result := s.extractor.Extract(ctx, path)

	p := newPrinter(a.stdout)
	if opts.JSON {
		return p.json(newTargetsDocument(path, result))
	}
	p.extraction(relativeTo(s.settings.Root, path), result)
	return nil
}

// RunOptions configures the Run method.
type RunOptions struct {
	Dir string
	// File restricts the lookup to tasks of one buildfile.
	File string
}

// Run looks a task up by display or target name and executes it.
func (a *App) Run(ctx context.Context, name string, opts RunOptions) error {
	if name == "" {
		return domain.ErrNoTaskSpecified
	}

	s, err := a.open(opts.Dir)
	if err != nil {
		return err
	}

	tasks, err := s.provider.ProvideTasks(ctx)
	if err != nil {
		return err
	}

	file := ""
	if opts.File != "" {
		file = resolvePath(s.cwd, opts.File)
	}

	task, err := selectTask(tasks, name, file)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("running %s in %s", task.Execution.String(), task.Execution.Options.Cwd))
	return a.executor.Execute(ctx, task, a.stdout, a.stderr)
}

// selectTask finds the task called name, preferring an exact display name over a target
// name. Matches in more than one buildfile are ambiguous unless file narrows them down.
func selectTask(tasks []*domain.Task, name, file string) (*domain.Task, error) {
	var byName, byScript []*domain.Task
	for _, t := range tasks {
		if file != "" && t.File() != file {
			continue
		}
		switch {
		case t.Name == name:
			byName = append(byName, t)
		case t.Definition.Script == name:
			byScript = append(byScript, t)
		}
	}

	matches := byName
	if len(matches) == 0 {
		matches = byScript
	}
	if len(matches) == 0 {
		err := zerr.With(domain.ErrTaskNotFound, "task", name)
		if file != "" {
			err = zerr.With(err, "file", file)
		}
		return nil, err
	}

	var files []string
	for _, t := range matches {
		if !slices.Contains(files, t.File()) {
			files = append(files, t.File())
		}
	}
	if len(files) > 1 {
		return nil, zerr.With(zerr.With(domain.ErrAmbiguousTask, "task", name), "files", files)
	}
	return matches[0], nil
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
