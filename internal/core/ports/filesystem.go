package ports

import "io/fs"

// FileSystem abstracts the file operations the provider performs on buildfiles.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile returns the contents of path.
	ReadFile(path string) ([]byte, error)
	// WalkDir walks the tree rooted at root, calling fn for each entry.
	WalkDir(root string, fn fs.WalkDirFunc) error
}
