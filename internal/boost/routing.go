package boost

import "github.com/osse101/IdleRates_Go/internal/domain"

// Route describes how one (activity, item category) pair deviates from the
// default additive rules
type Route struct {
	// EquipmentToXP adds tool, cape and outfit boosts to XP instead of time
	EquipmentToXP bool
	// ScrollsAsXPMultiplier drops the scroll time reduction and multiplies XP instead
	ScrollsAsXPMultiplier bool
	// ChiselApplies enables the Guardian's Chisel XP multiplier
	ChiselApplies bool
}

type routeKey struct {
	activity domain.ActivityKey
	category string
}

// Routes maps activity/category pairs to their exception routing.
// Pairs not present use the zero Route.
type Routes map[routeKey]Route

// DefaultRoutes returns the exception table used by the game
func DefaultRoutes() Routes {
	return Routes{
		{activity: domain.ActivityCrafting, category: domain.CategoryRefinement}: {
			EquipmentToXP:         true,
			ScrollsAsXPMultiplier: true,
			ChiselApplies:         true,
		},
	}
}

// For returns the route for an activity and item category
func (r Routes) For(activity domain.ActivityKey, category string) Route {
	return r[routeKey{activity: activity, category: category}]
}
