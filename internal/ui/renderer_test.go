package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/rolodex/internal/directory"
	"github.com/five82/rolodex/internal/state"
	"github.com/five82/rolodex/internal/view"
)

func homeWith(contacts ...directory.Contact) *view.Node {
	return view.Build(state.ApplicationState{Route: state.RouteHome, Contacts: contacts})
}

func TestRenderer_FirstMountFocusesSearch(t *testing.T) {
	r := newTreeRenderer(GetTheme(DefaultThemeName))
	r.Mount(homeWith())
	if f := r.Focused(); f == nil || f.ID != view.IDSearch {
		t.Fatalf("Focused() = %+v, want %q", f, view.IDSearch)
	}

	r = newTreeRenderer(GetTheme(DefaultThemeName))
	r.Mount(view.About())
	if f := r.Focused(); f == nil || f.ID != view.IDNavHome {
		t.Fatalf("Focused() = %+v, want first focusable", f)
	}
}

func TestRenderer_RestoresFocusByID(t *testing.T) {
	r := newTreeRenderer(GetTheme(DefaultThemeName))
	r.Mount(homeWith(directory.Contact{ID: 1}, directory.Contact{ID: 2}))
	for r.Focused().ID != view.FavoriteID(2) {
		r.FocusNext()
	}
	// Same ID at a different position.
	r.Mount(homeWith(directory.Contact{ID: 2}, directory.Contact{ID: 3}))
	if got := r.Focused().ID; got != view.FavoriteID(2) {
		t.Fatalf("Focused().ID = %q, want %q", got, view.FavoriteID(2))
	}
}

func TestRenderer_FallsBackToSamePosition(t *testing.T) {
	r := newTreeRenderer(GetTheme(DefaultThemeName))
	r.Mount(homeWith(directory.Contact{ID: 1}, directory.Contact{ID: 2}))
	for r.Focused().ID != view.FavoriteID(1) {
		r.FocusNext()
	}
	r.Mount(homeWith(directory.Contact{ID: 8}, directory.Contact{ID: 9}))
	if got := r.Focused().ID; got != view.FavoriteID(8) {
		t.Fatalf("Focused().ID = %q, want %q", got, view.FavoriteID(8))
	}

	// Shorter tree clamps.
	r.Mount(homeWith())
	if got := r.Focused().ID; got != view.IDReset {
		t.Fatalf("Focused().ID = %q, want %q", got, view.IDReset)
	}

	// No focusables at all.
	r.Mount(view.NotFound())
	if r.Focused() != nil {
		t.Fatalf("Focused() = %+v, want nil", r.Focused())
	}
	if r.Cursor() != -1 {
		t.Fatalf("Cursor() = %d, want -1", r.Cursor())
	}
}

func TestRenderer_CursorClampedToShorterValue(t *testing.T) {
	r := newTreeRenderer(GetTheme(DefaultThemeName))
	r.Mount(view.Build(state.ApplicationState{Route: state.RouteHome, SearchText: "abcdef"}))
	if got := r.Cursor(); got != 6 {
		t.Fatalf("Cursor() = %d, want 6", got)
	}
	r.Mount(view.Build(state.ApplicationState{Route: state.RouteHome, SearchText: "ab"}))
	if got := r.Cursor(); got != 2 {
		t.Fatalf("Cursor() = %d, want 2", got)
	}
}

func TestRenderer_HandleInputEmitsPatchOnlyOnChange(t *testing.T) {
	r := newTreeRenderer(GetTheme(DefaultThemeName))
	r.Mount(homeWith())

	p, _ := r.HandleInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	next := p.Apply(state.ApplicationState{})
	if next.SearchText != "e" {
		t.Fatalf("SearchText = %q, want %q", next.SearchText, "e")
	}
	next.Route = state.RouteHome
	r.Mount(view.Build(next))

	p, _ = r.HandleInput(tea.KeyMsg{Type: tea.KeyHome})
	if !p.Empty() {
		t.Fatalf("cursor movement produced a patch")
	}

	r.FocusNext()
	p, _ = r.HandleInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if !p.Empty() {
		t.Fatalf("input to a button produced a patch")
	}
}

func TestRenderer_ViewDrawsTree(t *testing.T) {
	r := newTreeRenderer(GetTheme(DefaultThemeName))
	r.SetSize(100, 40)
	r.Mount(homeWith(
		directory.Contact{ID: 1, FirstName: "Emily", LastName: "Johnson", Email: "emily@x.io"},
	))
	out := r.View()
	for _, want := range []string{"Welcome to Home Page", "Search a name", "Reset", "1 contact", "1.", "Emily Johnson", "emily@x.io", "add to favorite"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestRenderer_ScrollsToFocus(t *testing.T) {
	r := newTreeRenderer(GetTheme(DefaultThemeName))
	r.SetSize(80, 8)
	var contacts []directory.Contact
	for i := 1; i <= 30; i++ {
		contacts = append(contacts, directory.Contact{ID: i, FirstName: "C", Email: "c@x.io"})
	}
	r.Mount(homeWith(contacts...))
	r.View()
	if r.viewport.YOffset != 0 {
		t.Fatalf("YOffset = %d before moving focus", r.viewport.YOffset)
	}
	for r.Focused().ID != view.FavoriteID(30) {
		r.FocusNext()
	}
	out := r.View()
	if r.viewport.YOffset == 0 {
		t.Fatalf("viewport did not scroll to the focused node")
	}
	if !strings.Contains(out, "30.") {
		t.Fatalf("focused item not visible:\n%s", out)
	}
}

func TestRenderer_MarkdownFallsBackToText(t *testing.T) {
	r := newTreeRenderer(GetTheme(DefaultThemeName))
	r.SetSize(60, 20)
	r.Mount(view.About())
	if out := r.View(); !strings.Contains(out, "about") {
		t.Fatalf("About description missing:\n%s", out)
	}
}
