// Package state holds the application state container for rolodex.
//
// # Overview
//
// ApplicationState is the one aggregate the shell renders from: search
// text, current route, fetched contacts, favorites, a loading flag and the
// last search error. Store owns it and exposes a single write entry point,
// Update, which merges a Patch and returns the previous and next snapshots
// so the caller can rebuild the view and then hand both snapshots to the
// effect coordinator.
//
// # Update Semantics
//
//	prev, next := store.Update(state.NewPatch().WithSearchText("ann"))
//	→ next.SearchText = "ann"
//	→ every other field of next equals the same field of prev
//
// A patch only touches the fields it names. Applying patches in sequence
// therefore never resets a field that no patch in the sequence mentioned.
//
// # Defensive Copying
//
// Update and Snapshot clone the contact and favorite slices, and patches
// clone the slices they are given. Nothing outside the store can alter a
// published snapshot.
//
// # Favorites
//
// AddFavorite, RemoveFavorite and ToggleFavorite always return new slices.
// AddFavorite refuses duplicates so a favorites list holds at most one
// entry per contact ID.
//
// # Concurrency
//
// The shell calls Update from a single goroutine, but the store is guarded
// by an RWMutex so background goroutines may read snapshots at any time.
package state
