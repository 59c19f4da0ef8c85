package state

// Recognized routes. Anything else renders the not-found view.
const (
	RouteHome      = "/"
	RouteFavorites = "/favorite-contacts"
	RouteAbout     = "/about"
)

// Known reports whether route exactly matches one of the recognized paths.
func Known(route string) bool {
	switch route {
	case RouteHome, RouteFavorites, RouteAbout:
		return true
	default:
		return false
	}
}
