package storage

import (
	"encoding/json"
	"fmt"

	"github.com/five82/rolodex/internal/directory"
)

// LoadSearchText returns the saved search text, or "" when missing or
// unreadable.
func LoadSearchText(s Store) string {
	v, ok, err := s.Get(KeySearchText)
	if err != nil || !ok {
		return ""
	}
	return v
}

// SaveSearchText stores text as-is.
func SaveSearchText(s Store, text string) error {
	return s.Set(KeySearchText, text)
}

// LoadFavorites decodes the saved favorites. Missing, unreadable or
// malformed values degrade to an empty list.
func LoadFavorites(s Store) []directory.Favorite {
	v, ok, err := s.Get(KeyFavorites)
	if err != nil || !ok {
		return []directory.Favorite{}
	}
	var favs []directory.Favorite
	if err := json.Unmarshal([]byte(v), &favs); err != nil || favs == nil {
		return []directory.Favorite{}
	}
	return favs
}

// SaveFavorites overwrites the saved favorites with a JSON array.
func SaveFavorites(s Store, favs []directory.Favorite) error {
	if favs == nil {
		favs = []directory.Favorite{}
	}
	data, err := json.Marshal(favs)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	return s.Set(KeyFavorites, string(data))
}

// LoadTheme returns the saved theme name or fallback.
func LoadTheme(s Store, fallback string) string {
	v, ok, err := s.Get(KeyTheme)
	if err != nil || !ok || v == "" {
		return fallback
	}
	return v
}

// SaveTheme stores the theme name.
func SaveTheme(s Store, name string) error {
	return s.Set(KeyTheme, name)
}
