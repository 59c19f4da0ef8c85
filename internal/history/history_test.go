package history

import (
	"reflect"
	"testing"
)

func TestPushSkipsCurrent(t *testing.T) {
	h := New("/")
	if h.Push("/") {
		t.Fatalf("Push of current route returned true")
	}
	if !h.Push("/about") {
		t.Fatalf("Push of new route returned false")
	}
	if got := h.Entries(); !reflect.DeepEqual(got, []string{"/", "/about"}) {
		t.Fatalf("Entries = %v", got)
	}
}

func TestBackForward(t *testing.T) {
	h := New("/")
	h.Push("/favorite-contacts")
	h.Push("/about")

	if r, ok := h.Back(); !ok || r != "/favorite-contacts" {
		t.Fatalf("Back = %q, %v", r, ok)
	}
	if r, ok := h.Back(); !ok || r != "/" {
		t.Fatalf("Back = %q, %v", r, ok)
	}
	if _, ok := h.Back(); ok {
		t.Fatalf("Back at start returned ok")
	}
	if r, ok := h.Forward(); !ok || r != "/favorite-contacts" {
		t.Fatalf("Forward = %q, %v", r, ok)
	}
	if h.Current() != "/favorite-contacts" {
		t.Fatalf("Current = %q", h.Current())
	}
	// A back-navigated route does not push itself again.
	if h.Push("/favorite-contacts") {
		t.Fatalf("Push after Forward duplicated the entry")
	}
}

func TestPushDiscardsForwardEntries(t *testing.T) {
	h := New("/")
	h.Push("/about")
	h.Push("/favorite-contacts")
	h.Back()
	h.Back()
	h.Push("/xyz")

	if got := h.Entries(); !reflect.DeepEqual(got, []string{"/", "/xyz"}) {
		t.Fatalf("Entries = %v", got)
	}
	if _, ok := h.Forward(); ok {
		t.Fatalf("Forward after Push returned ok")
	}
}

func TestLimitTrimsOldest(t *testing.T) {
	h := New("/")
	h.limit = 3
	h.Push("/a")
	h.Push("/b")
	h.Push("/c")
	if got := h.Entries(); !reflect.DeepEqual(got, []string{"/a", "/b", "/c"}) {
		t.Fatalf("Entries = %v", got)
	}
	if h.Current() != "/c" {
		t.Fatalf("Current = %q", h.Current())
	}
}
