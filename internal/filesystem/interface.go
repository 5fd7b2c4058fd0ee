package filesystem

import (
	"io/fs"
)

// FileSystem is the read-only view of the project tree the route scanner
// works against. Relative paths are resolved against the working directory.
type FileSystem interface {
	// Directory operations
	ReadDir(path string) ([]fs.DirEntry, error)

	// Path operations
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool
	Getwd() (string, error)
}
