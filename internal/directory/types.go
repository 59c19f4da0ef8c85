package directory

import "strings"

// Contact mirrors a user record returned by the directory search endpoint.
// Only the fields rolodex displays are decoded.
type Contact struct {
	ID         int    `json:"id"`
	FirstName  string `json:"firstName"`
	MaidenName string `json:"maidenName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Username   string `json:"username,omitempty"`
}

// FullName joins first, maiden and last name, skipping blanks.
func (c Contact) FullName() string {
	return joinName(c.FirstName, c.MaidenName, c.LastName)
}

// Favorite is the denormalized copy of a Contact kept in the favorites list.
// It is never linked back to the search result it was copied from.
type Favorite struct {
	ID         int    `json:"id"`
	FirstName  string `json:"firstName"`
	MaidenName string `json:"maidenName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
}

// FullName joins first, maiden and last name, skipping blanks.
func (f Favorite) FullName() string {
	return joinName(f.FirstName, f.MaidenName, f.LastName)
}

// Contact widens a favorite back into a Contact for list rendering.
func (f Favorite) Contact() Contact {
	return Contact{
		ID:         f.ID,
		FirstName:  f.FirstName,
		MaidenName: f.MaidenName,
		LastName:   f.LastName,
		Email:      f.Email,
	}
}

// ToFavorite projects a Contact onto the fields persisted for favorites.
func ToFavorite(c Contact) Favorite {
	return Favorite{
		ID:         c.ID,
		FirstName:  c.FirstName,
		MaidenName: c.MaidenName,
		LastName:   c.LastName,
		Email:      c.Email,
	}
}

// SearchResponse is the envelope returned by the search endpoint.
type SearchResponse struct {
	Users []Contact `json:"users"`
	Total int       `json:"total"`
	Skip  int       `json:"skip"`
	Limit int       `json:"limit"`
}

func joinName(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
