package view

import (
	"fmt"
	"strconv"

	"github.com/five82/rolodex/internal/directory"
	"github.com/five82/rolodex/internal/state"
)

// Stable IDs of focusable nodes.
const (
	IDNavHome      = "nav-home"
	IDNavFavorites = "nav-favorites"
	IDNavAbout     = "nav-about"
	IDSearch       = "search"
	IDReset        = "reset"
)

const (
	TitleHome      = "Welcome to Home Page"
	TitleFavorites = "Favorite Contacts"
	TitleAbout     = "About Me"
	TitleNotFound  = "Not Found"

	EmptyText   = "No data found"
	LoadingText = "Loading..."

	AddFavoriteLabel    = "add to favorite"
	RemoveFavoriteLabel = "remove from favorite"

	searchPlaceholder = "Search a name"
	aboutDescription  = "This is about page"
)

// FavoriteID returns the ID of the favorite toggle for a contact.
func FavoriteID(id int) string {
	return "favorite-" + strconv.Itoa(id)
}

// Build returns the view for s.Route. Unknown routes get NotFound.
func Build(s state.ApplicationState) *Node {
	switch s.Route {
	case state.RouteHome:
		return Home(s)
	case state.RouteAbout:
		return About()
	case state.RouteFavorites:
		return Favorites(s)
	default:
		return NotFound()
	}
}

// Navigation returns the links to the three known routes.
func Navigation() *Node {
	return container(
		link(IDNavHome, "Home", state.RouteHome),
		link(IDNavFavorites, "Favorite Contacts", state.RouteFavorites),
		link(IDNavAbout, "About", state.RouteAbout),
	)
}

// Home is the search view. Below the input and reset button it shows
// exactly one of: loading, error, empty text, contact list.
func Home(s state.ApplicationState) *Node {
	input := &Node{
		Kind:        KindInput,
		ID:          IDSearch,
		Placeholder: searchPlaceholder,
		Value:       s.SearchText,
		OnInput: func(v string) state.Patch {
			return state.NewPatch().WithSearchText(v)
		},
	}
	reset := &Node{
		Kind: KindButton,
		ID:   IDReset,
		Text: "Reset",
		Action: func(state.ApplicationState) state.Patch {
			return state.NewPatch().WithSearchText("")
		},
	}

	var body *Node
	switch {
	case s.IsLoading:
		body = &Node{Kind: KindLoading, Text: LoadingText}
	case s.ErrorMessage != "":
		body = &Node{Kind: KindError, Text: s.ErrorMessage}
	case len(s.Contacts) == 0:
		body = text(EmptyText)
	default:
		items := make([]*Node, 0, len(s.Contacts))
		for _, c := range s.Contacts {
			items = append(items, ContactItem(s, c))
		}
		body = list(items)
	}

	return container(Navigation(), title(TitleHome), input, reset, body)
}

// Favorites lists the saved favorites in insertion order.
func Favorites(s state.ApplicationState) *Node {
	var body *Node
	if len(s.FavoriteContacts) == 0 {
		body = text(EmptyText)
	} else {
		items := make([]*Node, 0, len(s.FavoriteContacts))
		for _, f := range s.FavoriteContacts {
			items = append(items, ContactItem(s, f.Contact()))
		}
		body = list(items)
	}
	return container(Navigation(), title(TitleFavorites), body)
}

func About() *Node {
	return container(
		Navigation(),
		title(TitleAbout),
		&Node{Kind: KindMarkdown, Text: aboutDescription},
	)
}

// NotFound has no navigation.
func NotFound() *Node {
	return container(title(TitleNotFound))
}

// ContactItem renders one contact with a favorite toggle. The toggle reads
// the favorites from the state passed at activation, not from s.
func ContactItem(s state.ApplicationState, c directory.Contact) *Node {
	label := AddFavoriteLabel
	if state.IsFavorite(s.FavoriteContacts, c.ID) {
		label = RemoveFavoriteLabel
	}
	toggle := &Node{
		Kind: KindButton,
		ID:   FavoriteID(c.ID),
		Text: label,
		Action: func(cur state.ApplicationState) state.Patch {
			if state.IsFavorite(cur.FavoriteContacts, c.ID) {
				return state.NewPatch().WithFavoriteContacts(state.RemoveFavorite(cur.FavoriteContacts, c.ID))
			}
			return state.NewPatch().WithFavoriteContacts(state.AddFavorite(cur.FavoriteContacts, c))
		},
	}
	return &Node{
		Kind:     KindListItem,
		Children: []*Node{text(c.FullName()), text(c.Email), toggle},
	}
}

func container(children ...*Node) *Node {
	return &Node{Kind: KindContainer, Children: children}
}

func title(s string) *Node { return &Node{Kind: KindTitle, Text: s} }

func text(s string) *Node { return &Node{Kind: KindText, Text: s} }

func link(id, label, href string) *Node {
	return &Node{
		Kind: KindLink,
		ID:   id,
		Text: label,
		Href: href,
		Action: func(state.ApplicationState) state.Patch {
			return state.NewPatch().WithRoute(href)
		},
	}
}

// list carries a count summary in Text.
func list(items []*Node) *Node {
	summary := "1 contact"
	if len(items) != 1 {
		summary = fmt.Sprintf("%d contacts", len(items))
	}
	return &Node{Kind: KindList, Text: summary, Children: items}
}
