package domain

import (
	"path/filepath"
	"strings"
)

// WorkspaceFolder is a root directory tasks are discovered under.
type WorkspaceFolder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Contains reports whether path lies inside the folder.
func (f WorkspaceFolder) Contains(path string) bool {
	if f.Path == "" {
		return false
	}
	rel, err := filepath.Rel(f.Path, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// RelativeDir returns the directory of path relative to the folder root, slash separated
// and with a trailing slash. It returns "" for files at the folder root or outside it.
func (f WorkspaceFolder) RelativeDir(path string) string {
	if !f.Contains(path) {
		return ""
	}
	rel, err := filepath.Rel(f.Path, filepath.Dir(path))
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel) + "/"
}

// Workspace is the set of folders the provider scans.
type Workspace struct {
	Folders []WorkspaceFolder
}

// FolderFor returns the innermost folder containing path.
func (w Workspace) FolderFor(path string) (WorkspaceFolder, bool) {
	var best WorkspaceFolder
	found := false
	for _, f := range w.Folders {
		if !f.Contains(path) {
			continue
		}
		if !found || len(f.Path) > len(best.Path) {
			best = f
			found = true
		}
	}
	return best, found
}

// Roots returns the folder paths in declaration order.
func (w Workspace) Roots() []string {
	roots := make([]string, len(w.Folders))
	for i, f := range w.Folders {
		roots[i] = f.Path
	}
	return roots
}

// BuildFile is a discovered buildfile and the folder that owns it.
type BuildFile struct {
	Path   InternedString
	Folder WorkspaceFolder
}

// NewBuildFile creates a BuildFile for an absolute path.
func NewBuildFile(path string, folder WorkspaceFolder) BuildFile {
	return BuildFile{
		Path:   NewInternedString(filepath.Clean(path)),
		Folder: folder,
	}
}

// Dir returns the directory containing the buildfile.
func (b BuildFile) Dir() string {
	return filepath.Dir(b.Path.String())
}

// Base returns the buildfile's base name.
func (b BuildFile) Base() string {
	return filepath.Base(b.Path.String())
}

// IsDefaultName reports whether Ant would pick this file up without -f.
func (b BuildFile) IsDefaultName() bool {
	return strings.EqualFold(b.Base(), DefaultBuildFileName)
}
