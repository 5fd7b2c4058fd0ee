package routes

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/next-routes/internal/filesystem"
)

// MaxDepth bounds how many directories deep the collector descends, which
// also stops symbolic link cycles.
const MaxDepth = 64

var sourceExtensions = map[string]bool{
	".ts":  true,
	".tsx": true,
}

// Collector finds route source files below a routing directory.
type Collector struct {
	fs filesystem.FileSystem
}

// NewCollector creates a new Collector
func NewCollector(fs filesystem.FileSystem) *Collector {
	return &Collector{fs: fs}
}

// Collect returns every .ts and .tsx file below dir, in no particular order.
// Paths are dir joined with the file's location inside it. Directories that
// cannot be read are left out.
func (c *Collector) Collect(dir string) ([]string, error) {
	if !c.fs.Exists(dir) {
		return nil, &DirectoryNotFoundError{Path: dir}
	}

	files, err := c.collectDir(dir, 0)
	if err != nil {
		return []string{}, nil
	}

	return files, nil
}

// collectDir lists the source files below dir. The error is only ever the
// ReadDir failure of dir itself; failures further down are dropped here.
func (c *Collector) collectDir(dir string, depth int) ([]string, error) {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := []string{}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := c.fs.Stat(path)
			if err != nil {
				// dangling link
				continue
			}
			isDir = info.IsDir()
		}

		if isDir {
			if depth >= MaxDepth {
				continue
			}
			nested, err := c.collectDir(path, depth+1)
			if err != nil {
				continue
			}
			files = append(files, nested...)
			continue
		}

		if isSourceFile(entry.Name()) {
			files = append(files, path)
		}
	}

	return files, nil
}

// isSourceFile matches on the exact, case-sensitive extension. Dotfiles such
// as ".ts" have no extension.
func isSourceFile(name string) bool {
	ext := filepath.Ext(name)
	return sourceExtensions[ext] && strings.TrimSuffix(name, ext) != ""
}
