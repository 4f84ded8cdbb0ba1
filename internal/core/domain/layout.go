package domain

const (
	// ConfigFileName is the name of the settings file looked up from the working directory upwards.
	ConfigFileName = "antscan.yaml"

	// AntCategory is the files-cache category holding Ant buildfiles.
	AntCategory = "ant"

	// TaskType is the definition type tag of every task produced by this provider.
	TaskType = "ant"

	// TaskSource is the source label shown next to task names.
	TaskSource = "ant"

	// DefaultBuildFileName is the buildfile Ant reads when no -f flag is given.
	DefaultBuildFileName = "build.xml"

	// DefaultBuildFilePattern is the glob used to find buildfiles in workspace folders.
	DefaultBuildFilePattern = "**/" + DefaultBuildFileName

	// DefaultTargetSuffix marks the display name of the buildfile's default target.
	DefaultTargetSuffix = " - Default"

	// AntCommand is the build tool executable on POSIX hosts.
	AntCommand = "ant"

	// AntBatchCommand is the build tool executable on Windows hosts.
	AntBatchCommand = "ant.bat"

	// AnsiconExecutable is the ANSI colour translating wrapper used on Windows consoles.
	AnsiconExecutable = "ansicon.exe"

	// AnsiColorLogger is the Ant listener class that emits ANSI colour sequences.
	AnsiColorLogger = "org.apache.tools.ant.listener.AnsiColorLogger"

	// FilePerm is the default permission for files written by tests and tooling (rw-r--r--).
	FilePerm = 0o644

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)

// skippedDirectories are never descended into when scanning or watching a workspace.
var skippedDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

// IsSkippedDirectory reports whether a directory with the given base name is ignored
// by the workspace scan and the file watcher.
func IsSkippedDirectory(name string) bool {
	return skippedDirectories[name]
}
