// Package config provides the settings loader for antscan.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"slices"

	"go.trai.ch/antscan/internal/adapters/pattern"
	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     ports.FileSystem
}

// NewLoader creates a new Loader with the given logger and file system.
func NewLoader(logger ports.Logger, fsys ports.FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load finds antscan.yaml from cwd upwards and returns the resolved settings.
// Without a settings file, defaults rooted at cwd are returned.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	root, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "cwd", cwd)
	}

	configPath, found := l.findConfiguration(root)
	if !found {
		l.Logger.Debug(fmt.Sprintf("no %s found above %s, using defaults", domain.ConfigFileName, root))
		return domain.DefaultSettings(root), nil
	}

	var file Settingsfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	return l.resolve(configPath, &file)
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) resolve(configPath string, file *Settingsfile) (*domain.Settings, error) {
	configDir := filepath.Dir(configPath)

	for _, patterns := range [][]string{file.Exclude, file.Include} {
		if _, err := pattern.Compile(patterns); err != nil {
			return nil, zerr.With(err, "config_file", configPath)
		}
	}

	settings := domain.DefaultSettings(configDir)
	settings.ConfigPath = configPath
	settings.UseAnt = file.UseAnt
	settings.PathToAnt = file.PathToAnt
	settings.EnableAnsicon = file.EnableAnsiconForAnt
	settings.PathToAnsicon = file.PathToAnsicon
	settings.Exclude = slices.Clone(file.Exclude)
	settings.Include = slices.Clone(file.Include)
	settings.Debug = file.Debug

	if len(file.Folders) > 0 {
		settings.Workspace.Folders = l.resolveFolders(configDir, file.Folders)
	}

	return settings, nil
}

func (l *Loader) resolveFolders(configDir string, folders []string) []domain.WorkspaceFolder {
	seen := make(map[string]bool, len(folders))
	resolved := make([]domain.WorkspaceFolder, 0, len(folders))

	for _, f := range folders {
		path := f
		if !filepath.IsAbs(path) {
			path = filepath.Join(configDir, path)
		}
		path = filepath.Clean(path)
		if seen[path] {
			continue
		}
		seen[path] = true

		info, err := l.FS.Stat(path)
		if err != nil || !info.IsDir() {
			l.Logger.Warn(fmt.Sprintf("workspace folder %s is not a directory, skipping", path))
			continue
		}
		resolved = append(resolved, domain.WorkspaceFolder{Name: filepath.Base(path), Path: path})
	}

	return resolved
}

// readAndUnmarshalYAML reads a YAML file and strictly decodes it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Settingsfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrConfigReadFailed, "config_file", configPath)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "config_file", configPath)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "config_file", configPath)
	}
	return nil
}
