// Package app is the composition root for rolodex.
//
// Run loads configuration, applies command-line overrides, builds the
// logger, opens the key/value store, constructs the directory client and
// seeds the initial state from storage and the start path. It then wires the
// effect coordinator and the Bubble Tea model, and runs two goroutines under
// an errgroup:
//
//   - the program itself, whose Send method is also the coordinator's
//     dispatch for debounced search results
//   - a watcher that turns external writes to the store file into
//     storage.ChangedMsg, restarting with backoff when watching fails
//
// Errors before the program starts (bad config, unknown backend, store that
// cannot be opened) are returned wrapped; failures afterwards are logged.
package app
