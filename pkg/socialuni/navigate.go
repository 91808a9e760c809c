package socialuni

import (
	"socialuni/internal/core"
)

// NopNavigator is the default navigator for headless callers.
type NopNavigator struct{}

func (NopNavigator) Current() string { return "" }

func (NopNavigator) Navigate(string) {}

// LandingRoute is the view a fresh login lands on.
func LandingRoute(role core.Role) string {
	if role == core.RoleAdmin {
		return routeAdminHome
	}
	return routeHome
}
