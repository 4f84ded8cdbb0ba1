package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/core/ports"
)

// Walker yields the regular files below a workspace folder.
type Walker struct {
	fs ports.FileSystem
}

// NewWalker creates a new Walker over fsys.
func NewWalker(fsys ports.FileSystem) *Walker {
	return &Walker{fs: fsys}
}

// WalkFiles yields the absolute path of every file under root, skipping version control
// and dependency directories. Unreadable subtrees are skipped. The returned error func
// reports a failure to read root itself once the sequence is drained.
func (w *Walker) WalkFiles(root string) (iter.Seq[string], func() error) {
	var walkErr error
	seq := func(yield func(string) bool) {
		walkErr = w.fs.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != root && domain.IsSkippedDirectory(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
	return seq, func() error { return walkErr }
}
