package models

// RootRoute is the route an index file at the top of the routing directory maps to.
const RootRoute = "/"

// ReservedRoutes are routes with special meaning to the framework (error
// pages, custom document and app wrappers). They are never listed.
var ReservedRoutes = []string{"/404", "/500", "/_app", "/_document", "/_error"}

// IsReservedRoute reports whether route is one of ReservedRoutes.
func IsReservedRoute(route string) bool {
	for _, reserved := range ReservedRoutes {
		if route == reserved {
			return true
		}
	}
	return false
}
