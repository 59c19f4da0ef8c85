package effects

import (
	"slices"

	"github.com/five82/rolodex/internal/directory"
	"github.com/five82/rolodex/internal/state"
)

// Kind tags an effect intent.
type Kind int

const (
	RouteChanged Kind = iota + 1
	SearchTextChanged
	FavoritesChanged
)

func (k Kind) String() string {
	switch k {
	case RouteChanged:
		return "route-changed"
	case SearchTextChanged:
		return "search-text-changed"
	case FavoritesChanged:
		return "favorites-changed"
	default:
		return "unknown"
	}
}

// Intent describes one side effect derived from a state transition.
type Intent struct {
	Kind       Kind
	Route      string
	SearchText string
	Favorites  []directory.Favorite
}

// Diff compares two snapshots field by field and returns one intent per
// changed field, in route, search text, favorites order. Favorites are
// compared by value.
func Diff(prev, next state.ApplicationState) []Intent {
	var intents []Intent
	if prev.Route != next.Route {
		intents = append(intents, Intent{Kind: RouteChanged, Route: next.Route})
	}
	if prev.SearchText != next.SearchText {
		intents = append(intents, Intent{Kind: SearchTextChanged, SearchText: next.SearchText})
	}
	if !slices.Equal(prev.FavoriteContacts, next.FavoriteContacts) {
		intents = append(intents, Intent{
			Kind:      FavoritesChanged,
			Favorites: slices.Clone(next.FavoriteContacts),
		})
	}
	return intents
}
