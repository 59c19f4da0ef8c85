// Package storage is rolodex's local key/value store.
//
// It plays the part a browser's local storage plays for a web page: string
// values under a handful of well-known keys, read once at startup and
// rewritten whenever the matching state changes.
//
// Two backends are available. FileStore keeps a small JSON object on disk
// and is the default. SQLiteStore keeps a kv table through modernc.org/sqlite
// (pure Go, no cgo). MemoryStore serves tests.
//
// Typed helpers encode the two persisted values of the shell: the raw
// search text and the favorites list as a JSON array. Reads never fail: a
// missing or malformed value degrades to "" or an empty list.
//
// Watch follows the backing file with fsnotify so favorites written by a
// second instance show up in the first.
package storage
