package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/rolodex/internal/directory"
)

func TestStore_UpdateMergesNamedFieldsOnly(t *testing.T) {
	s := NewStore(ApplicationState{
		SearchText: "ann",
		Route:      RouteHome,
		Contacts:   []directory.Contact{{ID: 1}},
		FavoriteContacts: []directory.Favorite{
			{ID: 9, FirstName: "Zed"},
		},
	})

	prev, next := s.Update(NewPatch().WithLoading(true))
	if prev.IsLoading {
		t.Fatalf("prev.IsLoading = true, want false")
	}
	want := prev
	want.IsLoading = true
	if diff := cmp.Diff(want, next); diff != "" {
		t.Fatalf("next state mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(next, s.Snapshot()); diff != "" {
		t.Fatalf("snapshot differs from returned next (-want +got):\n%s", diff)
	}
}

func TestStore_SnapshotClone(t *testing.T) {
	s := NewStore(ApplicationState{Contacts: []directory.Contact{{ID: 1}, {ID: 2}}})

	snap := s.Snapshot()
	snap.Contacts[0].ID = 999

	if got := s.Snapshot().Contacts[0].ID; got != 1 {
		t.Fatalf("Snapshot should clone contacts; got id %d want 1", got)
	}
}

func TestStore_UpdateDoesNotAliasPatchSlices(t *testing.T) {
	var s Store
	favs := []directory.Favorite{{ID: 1}}
	_, next := s.Update(NewPatch().WithFavoriteContacts(favs))
	favs[0].ID = 42

	if next.FavoriteContacts[0].ID != 1 {
		t.Fatalf("returned next aliases caller slice")
	}
	if s.Snapshot().FavoriteContacts[0].ID != 1 {
		t.Fatalf("stored state aliases caller slice")
	}
}

func TestStore_ZeroValueUsable(t *testing.T) {
	var s Store
	if diff := cmp.Diff(ApplicationState{}, s.Snapshot()); diff != "" {
		t.Fatalf("zero store snapshot not empty:\n%s", diff)
	}
	_, next := s.Update(NewPatch().WithRoute(RouteAbout))
	if next.Route != RouteAbout {
		t.Fatalf("Route = %q, want %q", next.Route, RouteAbout)
	}
}

func TestPatch_MergeAndEmpty(t *testing.T) {
	if !NewPatch().Empty() {
		t.Fatalf("NewPatch().Empty() = false")
	}
	p := NewPatch().WithSearchText("a").Merge(NewPatch().WithSearchText("b").WithErrorMessage("x"))
	if p.Empty() {
		t.Fatalf("merged patch reported empty")
	}
	got := p.Apply(ApplicationState{})
	if got.SearchText != "b" || got.ErrorMessage != "x" {
		t.Fatalf("Apply = %#v, want SearchText=b ErrorMessage=x", got)
	}
}

func TestKnownRoutes(t *testing.T) {
	cases := []struct {
		route string
		want  bool
	}{
		{RouteHome, true},
		{RouteFavorites, true},
		{RouteAbout, true},
		{"", false},
		{"/xyz", false},
		{"/about/", false},
		{"/About", false},
	}
	for _, tc := range cases {
		if got := Known(tc.route); got != tc.want {
			t.Errorf("Known(%q) = %v, want %v", tc.route, got, tc.want)
		}
	}
}

func TestFavoritesHelpers(t *testing.T) {
	c7 := directory.Contact{ID: 7, FirstName: "Emily", LastName: "Johnson", Email: "e@x.io", Phone: "+1"}
	c8 := directory.Contact{ID: 8, FirstName: "Michael"}

	favs := AddFavorite(nil, c7)
	favs = AddFavorite(favs, c8)
	favs = AddFavorite(favs, c7)
	if len(favs) != 2 {
		t.Fatalf("AddFavorite allowed duplicate: %#v", favs)
	}
	if favs[0].ID != 7 || favs[1].ID != 8 {
		t.Fatalf("insertion order lost: %#v", favs)
	}
	if !IsFavorite(favs, 8) || IsFavorite(favs, 9) {
		t.Fatalf("IsFavorite mismatch")
	}

	removed := RemoveFavorite(favs, 7)
	if len(removed) != 1 || removed[0].ID != 8 {
		t.Fatalf("RemoveFavorite = %#v", removed)
	}
	if len(favs) != 2 {
		t.Fatalf("RemoveFavorite mutated its input")
	}

	toggled := ToggleFavorite(ToggleFavorite(favs, directory.Contact{ID: 3}), directory.Contact{ID: 3})
	if diff := cmp.Diff(favs, toggled); diff != "" {
		t.Fatalf("toggle twice not idempotent (-want +got):\n%s", diff)
	}
}
