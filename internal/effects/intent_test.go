package effects

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/rolodex/internal/directory"
	"github.com/five82/rolodex/internal/state"
)

func TestDiff(t *testing.T) {
	base := state.ApplicationState{
		SearchText:       "ann",
		Route:            state.RouteHome,
		FavoriteContacts: []directory.Favorite{{ID: 1}},
	}
	withFav := base.Clone()
	withFav.FavoriteContacts = append(withFav.FavoriteContacts, directory.Favorite{ID: 2})

	cases := []struct {
		name string
		prev state.ApplicationState
		next state.ApplicationState
		want []Kind
	}{
		{"no change", base, base.Clone(), nil},
		{"loading only", base, func() state.ApplicationState { s := base.Clone(); s.IsLoading = true; return s }(), nil},
		{"contacts only", base, func() state.ApplicationState {
			s := base.Clone()
			s.Contacts = []directory.Contact{{ID: 5}}
			return s
		}(), nil},
		{"route", base, func() state.ApplicationState { s := base.Clone(); s.Route = state.RouteAbout; return s }(), []Kind{RouteChanged}},
		{"text", base, func() state.ApplicationState { s := base.Clone(); s.SearchText = "an"; return s }(), []Kind{SearchTextChanged}},
		{"favorites", base, withFav, []Kind{FavoritesChanged}},
		{"initial mount", state.ApplicationState{}, base, []Kind{RouteChanged, SearchTextChanged, FavoritesChanged}},
		{"initial mount empty seed", state.ApplicationState{}, state.ApplicationState{Route: "/", FavoriteContacts: []directory.Favorite{}}, []Kind{RouteChanged}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got []Kind
			for _, intent := range Diff(tc.prev, tc.next) {
				got = append(got, intent.Kind)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Diff kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffCarriesNewValues(t *testing.T) {
	next := state.ApplicationState{
		Route:            state.RouteFavorites,
		SearchText:       "x",
		FavoriteContacts: []directory.Favorite{{ID: 7}},
	}
	intents := Diff(state.ApplicationState{}, next)
	if len(intents) != 3 {
		t.Fatalf("got %d intents, want 3", len(intents))
	}
	if intents[0].Route != state.RouteFavorites || intents[1].SearchText != "x" || intents[2].Favorites[0].ID != 7 {
		t.Fatalf("intents = %#v", intents)
	}
	next.FavoriteContacts[0].ID = 99
	if intents[2].Favorites[0].ID != 7 {
		t.Fatalf("intent aliases state slice")
	}
}

func TestKindString(t *testing.T) {
	if RouteChanged.String() != "route-changed" || Kind(0).String() != "unknown" {
		t.Fatalf("unexpected Kind strings")
	}
}
