package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Keys used by rolodex. Values are plain strings, like a browser's local storage.
const (
	KeySearchText = "inputValue"
	KeyFavorites  = "favoriteContacts"
	KeyTheme      = "theme"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrClosed is returned by stores used after Close.
var ErrClosed = errors.New("store is closed")

// Store is a string-valued key/value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set overwrites the value for key.
	Set(key, value string) error
	// Path is the file backing the store, or "" for in-memory stores.
	Path() string
	Close() error
}

// Open creates the store for the named backend at path.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
