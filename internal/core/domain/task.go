package domain

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// TaskGroup classifies a task for the host's task runner.
type TaskGroup string

// GroupBuild is the group every buildfile target is placed in.
const GroupBuild TaskGroup = "build"

// TaskDefinition is the metadata the host keeps for a task. The invalidation path
// matches tasks to a changed file through URI.
type TaskDefinition struct {
	// Type is always TaskType.
	Type string `json:"type"`
	// Script is the target's invocation name.
	Script string `json:"script"`
	// Path is the buildfile directory relative to the folder root, slash separated with a
	// trailing slash, or empty at the folder root.
	Path string `json:"path"`
	// FileName is the buildfile's base name.
	FileName string `json:"fileName"`
	// URI is the buildfile's absolute path.
	URI InternedString `json:"uri"`
}

// ExecutionOptions are the recognised knobs of a shell execution.
type ExecutionOptions struct {
	// Cwd is the directory the command runs in.
	Cwd string `json:"cwd"`
	// Executable overrides the program that runs Command. Empty means run Command directly.
	Executable string `json:"executable,omitempty"`
	// ANSI is set when the execution goes through the colour translating wrapper.
	ANSI bool `json:"ansi,omitempty"`
}

// ShellExecution is the command line a task runs.
type ShellExecution struct {
	Command string           `json:"command"`
	Args    []string         `json:"args"`
	Options ExecutionOptions `json:"options"`
}

// Argv returns the full argument vector, starting with the program to execute.
func (e ShellExecution) Argv() []string {
	argv := make([]string, 0, len(e.Args)+2)
	if e.Options.Executable != "" {
		argv = append(argv, e.Options.Executable)
	}
	argv = append(argv, e.Command)
	return append(argv, e.Args...)
}

// String renders the command line for display.
func (e ShellExecution) String() string {
	argv := e.Argv()
	for i, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			argv[i] = strconv.Quote(a)
		}
	}
	return strings.Join(argv, " ")
}

// Task is a host-invocable descriptor pairing a target with the command that runs it.
// Tasks are values: two tasks for the same buildfile and target are interchangeable.
type Task struct {
	Name       string          `json:"name"`
	Source     string          `json:"source"`
	Group      TaskGroup       `json:"group"`
	Folder     WorkspaceFolder `json:"folder"`
	Definition TaskDefinition  `json:"definition"`
	Execution  ShellExecution  `json:"execution"`
}

// File returns the absolute path of the buildfile the task was read from.
func (t *Task) File() string {
	return t.Definition.URI.String()
}

// Key returns a stable fingerprint of the task's buildfile and target.
func (t *Task) Key() string {
	d := xxhash.New()
	_, _ = d.WriteString(t.Definition.URI.String())
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(t.Definition.Script)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(t.Name)
	return strconv.FormatUint(d.Sum64(), 16)
}
