package routes

import (
	"errors"
	"fmt"
)

// ErrAppRouterUnsupported is returned when a deriver is requested for an
// App Router project.
var ErrAppRouterUnsupported = errors.New("App Router detected. This tool currently only supports Pages Router. App Router support is under development.")

// DirectoryNotFoundError reports a routing directory that does not exist.
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("Directory '%s' not found", e.Path)
}
