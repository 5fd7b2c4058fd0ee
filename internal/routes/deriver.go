package routes

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/jakoblorz/next-routes/internal/models"
)

// Deriver turns the source files of a routing directory into routes.
type Deriver interface {
	// Derive returns the sorted, de-duplicated routes for files.
	Derive(files []string) []string
}

// ForConvention returns the Deriver for a routing convention whose files
// live in dir.
func ForConvention(convention models.RouterConvention, dir string) (Deriver, error) {
	switch convention {
	case models.ConventionPages:
		return NewPagesDeriver(dir), nil
	case models.ConventionApp:
		return nil, ErrAppRouterUnsupported
	default:
		return nil, fmt.Errorf("no route deriver for router convention %q", convention)
	}
}

var defaultPagesPrefixes = []string{"src/pages/", "pages/"}

var pageExtensions = []string{".tsx", ".ts"}

// PagesDeriver derives Pages Router routes: one route per file, named after
// its path inside the pages directory.
type PagesDeriver struct {
	prefixes []string
}

// NewPagesDeriver creates a PagesDeriver for files collected from dir.
func NewPagesDeriver(dir string) *PagesDeriver {
	d := &PagesDeriver{}

	dir = strings.TrimSuffix(toSlash(dir), "/")
	if dir != "" {
		d.prefixes = append(d.prefixes, dir+"/")
	}
	for _, prefix := range defaultPagesPrefixes {
		if !slices.Contains(d.prefixes, prefix) {
			d.prefixes = append(d.prefixes, prefix)
		}
	}

	return d
}

// Derive maps every file to its route, drops reserved routes, and returns
// the rest sorted and de-duplicated.
func (d *PagesDeriver) Derive(files []string) []string {
	routes := make([]string, 0, len(files))
	for _, file := range files {
		route := d.FileToRoute(file)
		if models.IsReservedRoute(route) {
			continue
		}
		routes = append(routes, route)
	}

	sort.Strings(routes)
	return slices.Compact(routes)
}

// FileToRoute converts a file path to a route.
//
// Examples:
//   - pages/index.tsx       → /
//   - pages/about.tsx       → /about
//   - pages/about/index.tsx → /about
//   - pages/blog/[slug].tsx → /blog/[slug]
func (d *PagesDeriver) FileToRoute(file string) string {
	path := toSlash(file)

	for _, prefix := range d.prefixes {
		if trimmed, ok := strings.CutPrefix(path, prefix); ok {
			path = trimmed
			break
		}
	}

	for _, ext := range pageExtensions {
		if trimmed, ok := strings.CutSuffix(path, ext); ok {
			path = trimmed
			break
		}
	}

	if path == "index" {
		return models.RootRoute
	}

	route := "/" + path
	if trimmed, ok := strings.CutSuffix(route, "/index"); ok {
		return trimmed
	}
	return route
}

// toSlash converts Windows separators regardless of the host OS.
func toSlash(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
