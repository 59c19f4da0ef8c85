package view

import (
	"github.com/five82/rolodex/internal/state"
)

// Kind identifies what a Node represents.
type Kind int

const (
	KindContainer Kind = iota
	KindTitle
	KindText
	KindMarkdown
	KindLink
	KindInput
	KindButton
	KindList
	KindListItem
	KindLoading
	KindError
)

var kindNames = [...]string{
	KindContainer: "container",
	KindTitle:     "title",
	KindText:      "text",
	KindMarkdown:  "markdown",
	KindLink:      "link",
	KindInput:     "input",
	KindButton:    "button",
	KindList:      "list",
	KindListItem:  "item",
	KindLoading:   "loading",
	KindError:     "error",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Node is one element of a view tree. Trees are rebuilt from scratch on
// every state change and never mutated after Build returns.
type Node struct {
	Kind Kind
	// ID is stable across rebuilds for every focusable node.
	ID          string
	Text        string
	Placeholder string
	// Value is the current content of an input.
	Value string
	// Href is the route a link navigates to.
	Href string

	// Action runs when a link or button is activated. It receives the
	// state current at activation time.
	Action func(state.ApplicationState) state.Patch
	// OnInput runs with the new value whenever an input is edited.
	OnInput func(string) state.Patch

	Children []*Node
}

// Focusable reports whether the node takes keyboard focus.
func (n *Node) Focusable() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case KindLink, KindButton, KindInput:
		return n.ID != ""
	}
	return false
}

// Walk visits n and its descendants depth first, in document order.
// Returning false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Focusable returns the focusable nodes under root in document order.
func Focusable(root *Node) []*Node {
	var out []*Node
	Walk(root, func(n *Node) bool {
		if n.Focusable() {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindByID returns the first node with the given ID, or nil.
func FindByID(root *Node, id string) *Node {
	if id == "" {
		return nil
	}
	var found *Node
	Walk(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindText returns the first node whose Text equals text, or nil.
func FindText(root *Node, text string) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.Text == text {
			found = n
			return false
		}
		return true
	})
	return found
}
