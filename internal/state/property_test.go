package state

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/five82/rolodex/internal/directory"
)

// patchOp is a generated single-field update.
type patchOp struct {
	Field int
	Text  string
	Flag  bool
}

func (op patchOp) patch() Patch {
	switch op.Field % 4 {
	case 0:
		return NewPatch().WithSearchText(op.Text)
	case 1:
		return NewPatch().WithRoute(op.Text)
	case 2:
		return NewPatch().WithLoading(op.Flag)
	default:
		return NewPatch().WithErrorMessage(op.Text)
	}
}

func genPatchOp() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 3),
		gen.AlphaString(),
		gen.Bool(),
	).Map(func(vals []interface{}) patchOp {
		return patchOp{Field: vals[0].(int), Text: vals[1].(string), Flag: vals[2].(bool)}
	})
}

func TestStoreProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: fields no patch in the sequence names keep their starting value.
	properties.Property("untouched fields survive", prop.ForAll(
		func(ops []patchOp) bool {
			start := ApplicationState{
				SearchText:       "seed",
				Route:            RouteAbout,
				Contacts:         []directory.Contact{{ID: 1}},
				FavoriteContacts: []directory.Favorite{{ID: 2}},
				IsLoading:        true,
				ErrorMessage:     "old",
			}
			s := NewStore(start)
			touched := map[int]bool{}
			for _, op := range ops {
				touched[op.Field%4] = true
				s.Update(op.patch())
			}
			got := s.Snapshot()
			if len(got.Contacts) != 1 || len(got.FavoriteContacts) != 1 {
				return false
			}
			if !touched[0] && got.SearchText != start.SearchText {
				return false
			}
			if !touched[1] && got.Route != start.Route {
				return false
			}
			if !touched[2] && got.IsLoading != start.IsLoading {
				return false
			}
			if !touched[3] && got.ErrorMessage != start.ErrorMessage {
				return false
			}
			return true
		},
		gen.SliceOf(genPatchOp()),
	))

	// Property: the last patch naming a field decides its value.
	properties.Property("last write wins", prop.ForAll(
		func(texts []string) bool {
			var s Store
			for _, text := range texts {
				s.Update(NewPatch().WithSearchText(text))
			}
			want := ""
			if len(texts) > 0 {
				want = texts[len(texts)-1]
			}
			return s.Snapshot().SearchText == want
		},
		gen.SliceOf(gen.AlphaString()),
	))

	// Property: add then remove restores the favorites list.
	properties.Property("toggle idempotence", prop.ForAll(
		func(ids []int, id int) bool {
			var favs []directory.Favorite
			for _, existing := range ids {
				if existing == id {
					continue
				}
				favs = AddFavorite(favs, directory.Contact{ID: existing})
			}
			added := AddFavorite(favs, directory.Contact{ID: id, FirstName: "x"})
			restored := RemoveFavorite(added, id)
			if len(restored) != len(favs) {
				return false
			}
			for i := range favs {
				if restored[i] != favs[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(1, 50)),
		gen.IntRange(1, 50),
	))

	// Property: favorites never hold two entries for one id.
	properties.Property("unique ids", prop.ForAll(
		func(ids []int) bool {
			var favs []directory.Favorite
			for _, id := range ids {
				favs = AddFavorite(favs, directory.Contact{ID: id})
			}
			seen := map[int]bool{}
			for _, f := range favs {
				if seen[f.ID] {
					return false
				}
				seen[f.ID] = true
			}
			return true
		},
		gen.SliceOf(gen.IntRange(1, 10)),
	))

	properties.TestingRun(t)
}
