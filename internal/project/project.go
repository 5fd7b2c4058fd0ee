package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/next-routes/internal/filesystem"
	"github.com/jakoblorz/next-routes/internal/models"
)

// ErrNoRouterConvention is returned by Detect when neither an app nor a
// pages directory exists under the project root.
var ErrNoRouterConvention = errors.New("Neither Pages Router nor App Router detected. Please check your project structure.")

const srcDirName = "src"

// Project is a web project whose routes are derived from its directory layout.
type Project struct {
	fs         filesystem.FileSystem
	RootPath   string
	Convention models.RouterConvention
	srcDir     bool
}

// Option configures project behavior.
type Option func(*Project)

// WithSrcDir resolves routing directories under src/.
func WithSrcDir(enabled bool) Option {
	return func(p *Project) {
		p.srcDir = enabled
	}
}

// New creates a new Project instance.
func New(fs filesystem.FileSystem, options ...Option) *Project {
	p := &Project{fs: fs}

	for _, option := range options {
		option(p)
	}

	return p
}

// Detect determines the routing convention of the project in the current
// directory. The App Router wins when both directories exist.
func (p *Project) Detect() (models.RouterConvention, error) {
	root, err := p.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	p.RootPath = root

	for _, convention := range []models.RouterConvention{models.ConventionApp, models.ConventionPages} {
		if p.fs.Exists(filepath.Join(p.RootPath, p.Dir(convention))) {
			p.Convention = convention
			return convention, nil
		}
	}

	return "", ErrNoRouterConvention
}

// Dir returns the routing directory of a convention relative to the project
// root, e.g. "pages" or "src/pages".
func (p *Project) Dir(convention models.RouterConvention) string {
	dir := convention.String()
	if p.srcDir {
		// Slash-joined so the result matches the prefixes the deriver strips.
		return srcDirName + "/" + dir
	}
	return dir
}

// RouterDir returns the directory of the detected convention.
func (p *Project) RouterDir() string {
	return p.Dir(p.Convention)
}
