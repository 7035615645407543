package session

import "strings"

// Routes the client navigates between. They mirror the admin UI's pages.
const (
	RouteHome       = "/"
	RouteLogin      = "/login"
	RouteRegister   = "/register"
	RouteJobs       = "/jobs"
	RouteCategories = "/categories"
	RouteFavourites = "/favourites"
	RouteProfile    = "/profile"
)

// IsAuthRoute reports whether route belongs to the login/register flow.
func IsAuthRoute(route string) bool {
	return strings.HasPrefix(route, RouteLogin) || strings.HasPrefix(route, RouteRegister)
}

// Guard is the route guard, evaluated on every navigation. It returns the
// route actually to be shown and whether that differs from the requested
// one:
//
//   - an authenticated session asking for an auth route is sent home;
//   - a session with no stored token asking for anything else is sent to
//     the login page.
//
// This is a best-effort client-side gate. The backend stays the source of
// truth for every mutating endpoint.
func (m *Manager) Guard(route string) (string, bool) {
	if m.state == StateAuthenticated && IsAuthRoute(route) {
		return RouteHome, true
	}
	if m.tokens.Get() == "" && !IsAuthRoute(route) {
		return RouteLogin, true
	}
	return route, false
}
