// Package directory provides an HTTP client for the remote contact directory.
//
// # Overview
//
// The directory is an external search service: one GET endpoint that takes
// the search text as the q query parameter and answers with a JSON envelope
// holding a list of user records. The default endpoint is the public
// dummyjson users search.
//
// # Client Usage
//
//	client, err := directory.NewClient("https://dummyjson.com/users/search", 0)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	contacts, err := client.Search(ctx, "ann")
//	if err != nil {
//		log.Printf("search failed: %v", err)
//	}
//
// # Error Handling
//
// Every failure is returned as a wrapped error whose message is safe to show
// to the user:
//
//   - "execute request: dial tcp: connection refused"
//   - "search /users/search returned status 500"
//   - "decode response: unexpected EOF"
//
// There are no retries. Callers decide what a failure means for their state.
//
// # Types
//
// Contact mirrors the remote user record. Favorite is the subset persisted
// locally when a contact is starred; it is a copy, so later changes to the
// remote record never reach a saved favorite.
//
// # Thread Safety
//
// The Client is safe for concurrent use.
package directory
