// Package history keeps the push-state navigation stack for the shell.
//
// Push appends a route and discards any forward entries, as a browser does.
// Back and Forward move the cursor without altering the stack; the caller
// then updates its route, and because Current already equals that route the
// route-change handler does not push it again.
package history

import "sync"

// History is a bounded stack of visited routes with a cursor.
type History struct {
	mu      sync.Mutex
	entries []string
	cursor  int
	limit   int
}

const defaultLimit = 100

// New returns a history seeded with the start route.
func New(start string) *History {
	return &History{entries: []string{start}, limit: defaultLimit}
}

// Current returns the route under the cursor.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[h.cursor]
}

// Push records route as the new current entry. It reports false, and does
// nothing, when route is already current.
func (h *History) Push(route string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) > 0 && h.entries[h.cursor] == route {
		return false
	}
	if len(h.entries) > 0 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, route)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	h.cursor = len(h.entries) - 1
	return true
}

// Back moves one entry back and returns it.
func (h *History) Back() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor == 0 || len(h.entries) == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Forward moves one entry forward and returns it.
func (h *History) Forward() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor >= len(h.entries)-1 {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns a copy of the stack, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
