package state

import "github.com/five82/rolodex/internal/directory"

// Patch names a subset of ApplicationState fields to overwrite. Unset fields
// keep their previous value.
type Patch struct {
	searchText       *string
	route            *string
	contacts         *[]directory.Contact
	favoriteContacts *[]directory.Favorite
	isLoading        *bool
	errorMessage     *string
}

// NewPatch returns an empty patch.
func NewPatch() Patch { return Patch{} }

// WithSearchText sets the search box text.
func (p Patch) WithSearchText(v string) Patch {
	p.searchText = &v
	return p
}

// WithRoute sets the current route path.
func (p Patch) WithRoute(v string) Patch {
	p.route = &v
	return p
}

// WithContacts sets the search results. The slice is copied.
func (p Patch) WithContacts(v []directory.Contact) Patch {
	v = cloneSlice(v)
	p.contacts = &v
	return p
}

// WithFavoriteContacts sets the favorites list. The slice is copied.
func (p Patch) WithFavoriteContacts(v []directory.Favorite) Patch {
	v = cloneSlice(v)
	p.favoriteContacts = &v
	return p
}

// WithLoading sets whether a search is in flight.
func (p Patch) WithLoading(v bool) Patch {
	p.isLoading = &v
	return p
}

// WithErrorMessage sets the last search error; empty clears it.
func (p Patch) WithErrorMessage(v string) Patch {
	p.errorMessage = &v
	return p
}

// Merge overlays other onto p; fields set in other win.
func (p Patch) Merge(other Patch) Patch {
	if other.searchText != nil {
		p.searchText = other.searchText
	}
	if other.route != nil {
		p.route = other.route
	}
	if other.contacts != nil {
		p.contacts = other.contacts
	}
	if other.favoriteContacts != nil {
		p.favoriteContacts = other.favoriteContacts
	}
	if other.isLoading != nil {
		p.isLoading = other.isLoading
	}
	if other.errorMessage != nil {
		p.errorMessage = other.errorMessage
	}
	return p
}

// Empty reports whether the patch names no fields.
func (p Patch) Empty() bool {
	return p.searchText == nil &&
		p.route == nil &&
		p.contacts == nil &&
		p.favoriteContacts == nil &&
		p.isLoading == nil &&
		p.errorMessage == nil
}

// Apply returns s with the named fields overwritten.
func (p Patch) Apply(s ApplicationState) ApplicationState {
	next := s.Clone()
	if p.searchText != nil {
		next.SearchText = *p.searchText
	}
	if p.route != nil {
		next.Route = *p.route
	}
	if p.contacts != nil {
		next.Contacts = cloneSlice(*p.contacts)
	}
	if p.favoriteContacts != nil {
		next.FavoriteContacts = cloneSlice(*p.favoriteContacts)
	}
	if p.isLoading != nil {
		next.IsLoading = *p.isLoading
	}
	if p.errorMessage != nil {
		next.ErrorMessage = *p.errorMessage
	}
	return next
}
