package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidPattern is returned when an include or exclude glob does not compile.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrFailedToGetRoot is returned when the workspace root cannot be made absolute.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of workspace root")

	// ErrLocatorWalkFailed is returned when a workspace folder cannot be scanned for buildfiles.
	ErrLocatorWalkFailed = zerr.New("failed to scan workspace folder")

	// ErrToolInvocationFailed is returned when the external build tool exits non-zero or cannot be spawned.
	ErrToolInvocationFailed = zerr.New("build tool invocation failed")

	// ErrToolOutputEmpty is returned when the build tool ran but printed nothing usable.
	ErrToolOutputEmpty = zerr.New("build tool produced no output")

	// ErrBuildFileReadFailed is returned when a buildfile cannot be read.
	ErrBuildFileReadFailed = zerr.New("failed to read buildfile")

	// ErrMarkupParseFailed is returned when a buildfile is not well-formed project markup.
	ErrMarkupParseFailed = zerr.New("failed to parse buildfile markup")

	// ErrNoTargets is returned when a buildfile parses but declares no named targets.
	ErrNoTargets = zerr.New("buildfile declares no targets")

	// ErrNoWorkspaceFolder is returned when a buildfile lies outside every workspace folder.
	ErrNoWorkspaceFolder = zerr.New("buildfile is not inside a workspace folder")

	// ErrNoTaskSpecified is returned when the run command is given no task name.
	ErrNoTaskSpecified = zerr.New("no task specified")

	// ErrTaskNotFound is returned when a requested task is not among the discovered tasks.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrAmbiguousTask is returned when a task name matches tasks in more than one buildfile.
	ErrAmbiguousTask = zerr.New("task name is ambiguous, pass --file to select a buildfile")

	// ErrEmptyCommand is returned when a task to execute has no command line.
	ErrEmptyCommand = zerr.New("task has no command")

	// ErrTaskExecutionFailed is returned when running a task fails.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
