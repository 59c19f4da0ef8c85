package state

import (
	"slices"

	"github.com/five82/rolodex/internal/directory"
)

// IsFavorite reports whether id is present in favs.
func IsFavorite(favs []directory.Favorite, id int) bool {
	return slices.ContainsFunc(favs, func(f directory.Favorite) bool { return f.ID == id })
}

// AddFavorite returns a new list with c appended. The input is returned
// unchanged (as a copy) when c is already present.
func AddFavorite(favs []directory.Favorite, c directory.Contact) []directory.Favorite {
	out := make([]directory.Favorite, 0, len(favs)+1)
	out = append(out, favs...)
	if IsFavorite(favs, c.ID) {
		return out
	}
	return append(out, directory.ToFavorite(c))
}

// RemoveFavorite returns a new list without any entry for id.
func RemoveFavorite(favs []directory.Favorite, id int) []directory.Favorite {
	out := make([]directory.Favorite, 0, len(favs))
	for _, f := range favs {
		if f.ID != id {
			out = append(out, f)
		}
	}
	return out
}

// ToggleFavorite adds c when absent and removes it when present.
func ToggleFavorite(favs []directory.Favorite, c directory.Contact) []directory.Favorite {
	if IsFavorite(favs, c.ID) {
		return RemoveFavorite(favs, c.ID)
	}
	return AddFavorite(favs, c)
}
