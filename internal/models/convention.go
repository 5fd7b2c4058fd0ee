package models

import "fmt"

// RouterConvention identifies the file-based routing layout of a project.
type RouterConvention string

const (
	// ConventionPages is the Pages Router: one file per route under pages/.
	ConventionPages RouterConvention = "pages"

	// ConventionApp is the App Router: one directory per segment under app/.
	ConventionApp RouterConvention = "app"
)

// IsValid checks if the convention is known
func (c RouterConvention) IsValid() bool {
	switch c {
	case ConventionPages, ConventionApp:
		return true
	default:
		return false
	}
}

// String returns the string representation of RouterConvention
func (c RouterConvention) String() string {
	return string(c)
}

// DisplayName returns the name users know the convention by.
func (c RouterConvention) DisplayName() string {
	switch c {
	case ConventionPages:
		return "Pages Router"
	case ConventionApp:
		return "App Router"
	default:
		return string(c)
	}
}

// ParseRouterConvention parses a string into a RouterConvention
func ParseRouterConvention(s string) (RouterConvention, error) {
	c := RouterConvention(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid router convention: %s (must be pages or app)", s)
	}
	return c, nil
}
