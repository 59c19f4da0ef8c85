// Package ui provides the terminal shell for rolodex.
//
// # Architecture Overview
//
// The shell follows the Elm architecture provided by Bubble Tea. The Model
// owns no application data of its own; it holds the state.Store, the
// effects.Coordinator and a Renderer, and drives one loop:
//
//	key press → state.Patch → Store.Update → view.Build → Renderer.Mount
//	          → Coordinator.Handle → follow-up Patch (applied immediately)
//
// Asynchronous work (debounced searches, storage change notifications)
// re-enters the loop only as messages delivered through the program, so all
// state changes happen on the Update goroutine in message order.
//
// # Package Structure
//
//   - app.go: Model, message handling, key dispatch and the transition loop
//   - renderer.go: Renderer interface and the tree renderer with focus and
//     cursor preservation, spinner, markdown and scrolling
//   - header.go: status bar and footer
//   - help.go: help overlay built from the key map
//   - keys.go: key bindings
//   - theme.go: color palettes and Lipgloss styles
//   - style_helpers.go, strings.go, layout.go: drawing helpers and sizes
//
// # Focus
//
// Every remount replaces the whole tree. The renderer remembers the focused
// node's ID and the input cursor, and restores both on the new tree. When
// the ID no longer exists focus falls back to the same position in the
// focus order, clamped to the new length.
package ui
