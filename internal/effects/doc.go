// Package effects derives side effects from state transitions.
//
// # Overview
//
// Diff compares two ApplicationState snapshots and emits tagged intents,
// one per changed field that matters:
//
//   - RouteChanged: push the new route onto the history stack
//   - SearchTextChanged: persist the text, then debounce a directory search
//   - FavoritesChanged: persist the full favorites list
//
// The Coordinator owns one handler per intent. Handlers react to
// transitions, never to levels: an update that leaves a field unchanged
// triggers nothing for it.
//
// # Debounced Search
//
//	text change ─→ save text ─→ cancel pending timer ─→ seq++ ─→ IsLoading = true
//	                                   │
//	                         quiet period (600ms)
//	                                   │
//	                                   ▼
//	                    directory.Search(text) ─→ Dispatch(SearchResult{seq})
//
// ResultPatch applies a result only when its sequence number is still the
// latest one issued, so a slow response can never overwrite a newer one.
// Success replaces the contacts and clears the error; failure empties the
// contacts and records the error text. Both clear IsLoading in the same
// patch.
//
// # Threading
//
// Handle runs on the update loop. The search itself runs on the timer's
// goroutine and re-enters the loop only through Dispatch.
package effects
