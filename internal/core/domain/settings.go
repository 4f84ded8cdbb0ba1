package domain

import "path/filepath"

// Settings is the resolved configuration the provider runs with.
type Settings struct {
	// Root is the directory the settings were loaded for.
	Root string
	// ConfigPath is the settings file in use, empty when defaults apply.
	ConfigPath string
	// Workspace holds the folders scanned for buildfiles.
	Workspace Workspace

	// UseAnt enables target extraction through `ant -p`.
	UseAnt bool
	// PathToAnt overrides the build tool executable.
	PathToAnt string
	// EnableAnsicon routes task executions through ansicon on Windows.
	EnableAnsicon bool
	// PathToAnsicon points at ansicon.exe or the directory holding it.
	PathToAnsicon string

	// Exclude lists globs of paths never turned into tasks.
	Exclude []string
	// Include lists extra globs, besides DefaultBuildFilePattern, that identify buildfiles.
	Include []string

	// Debug enables debug-level logging.
	Debug bool
}

// DefaultSettings returns the settings used when no settings file is found.
func DefaultSettings(root string) *Settings {
	return &Settings{
		Root: root,
		Workspace: Workspace{
			Folders: []WorkspaceFolder{{Name: filepath.Base(root), Path: root}},
		},
	}
}

// BuildFilePatterns returns every glob that identifies a buildfile.
func (s *Settings) BuildFilePatterns() []string {
	patterns := make([]string, 0, len(s.Include)+1)
	patterns = append(patterns, DefaultBuildFilePattern)
	return append(patterns, s.Include...)
}
