// Package app implements the application layer for antscan.
package app

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/antscan/internal/adapters/ant"     //nolint:depguard // Wired in app layer
	"go.trai.ch/antscan/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/antscan/internal/adapters/locator" //nolint:depguard // Wired in app layer
	"go.trai.ch/antscan/internal/adapters/pattern" //nolint:depguard // Wired in app layer
	"go.trai.ch/antscan/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/core/ports"
	"go.trai.ch/antscan/internal/engine/provider"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	fs           ports.FileSystem
	walker       *fs.Walker
	runner       ports.ToolRunner
	executor     ports.Executor
	watcher      ports.Watcher
	tracer       ports.Tracer
	logger       ports.Logger

	goos           string
	stdout         io.Writer
	stderr         io.Writer
	debounceWindow time.Duration
}

// New creates a new App instance. goos selects the platform specific Ant command.
func New(
	loader ports.ConfigLoader,
	fsys ports.FileSystem,
	walker *fs.Walker,
	runner ports.ToolRunner,
	executor ports.Executor,
	w ports.Watcher,
	tracer ports.Tracer,
	log ports.Logger,
	goos string,
) *App {
	return &App{
		configLoader:   loader,
		fs:             fsys,
		walker:         walker,
		runner:         runner,
		executor:       executor,
		watcher:        w,
		tracer:         tracer,
		logger:         log,
		goos:           goos,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithOutput redirects command output and task output.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithDebounceWindow sets how long watch mode waits for file events to settle.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounceWindow = window
	return a
}

// session is everything built from one settings load.
type session struct {
	cwd       string
	settings  *domain.Settings
	files     *locator.FilesCache
	extractor *ant.Extractor
	provider  *provider.Provider
}

type debugSetter interface {
	SetDebug(enable bool)
}

type jsonSetter interface {
	SetJSON(enable bool)
}

// SetDebug toggles debug logging when the logger supports it.
func (a *App) SetDebug(enable bool) {
	if l, ok := a.logger.(debugSetter); ok {
		l.SetDebug(enable)
	}
}

// SetLogJSON switches log records to JSON when the logger supports it.
func (a *App) SetLogJSON(enable bool) {
	if l, ok := a.logger.(jsonSetter); ok {
		l.SetJSON(enable)
	}
}

func (a *App) open(dir string) (*session, error) {
	if dir == "" {
		dir = "."
	}
	cwd, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "dir", dir)
	}

	settings, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if settings.Debug {
		a.SetDebug(true)
	}

	files, err := locator.NewFilesCache(a.walker, settings)
	if err != nil {
		return nil, err
	}
	exclude, err := pattern.Compile(settings.Exclude)
	if err != nil {
		return nil, err
	}

	extractor := ant.NewExtractor(a.fs, a.runner, a.tracer, a.logger, settings, a.goos)
	return &session{
		cwd:       cwd,
		settings:  settings,
		files:     files,
		extractor: extractor,
		provider: provider.NewProvider(
			files,
			extractor,
			provider.NewTaskFactory(settings, a.goos, a.fs),
			a.fs,
			exclude,
			settings.Workspace,
			provider.NewCache(),
			a.tracer,
			a.logger,
		),
	}, nil
}
