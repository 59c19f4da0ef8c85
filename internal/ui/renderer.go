package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/rolodex/internal/state"
	"github.com/five82/rolodex/internal/view"
)

// Renderer mounts view trees and draws the mounted tree. Mount replaces the
// previous tree entirely; implementations must carry keyboard focus and the
// text cursor across the replacement.
type Renderer interface {
	Mount(root *view.Node)
	Root() *view.Node
	Focused() *view.Node
	FocusNext()
	FocusPrev()
	SetTheme(Theme)
	SetSize(width, height int)
	// HandleInput forwards a key to the focused input. The returned patch
	// is empty unless the input's value changed.
	HandleInput(msg tea.KeyMsg) (state.Patch, tea.Cmd)
	// Update handles renderer-owned messages such as spinner ticks.
	Update(msg tea.Msg) tea.Cmd
	// Tick starts the loading spinner.
	Tick() tea.Msg
	ScrollPageUp()
	ScrollPageDown()
	View() string
}

// treeRenderer redraws the whole tree on every Mount.
type treeRenderer struct {
	root      *view.Node
	focusable []*view.Node
	focus     int
	inputs    map[string]*textinput.Model

	theme  Theme
	styles Styles
	width  int
	height int

	viewport      viewport.Model
	scrollToFocus bool
	spinner       spinner.Model

	markdown      *glamour.TermRenderer
	markdownWidth int
	markdownCache map[string]string
}

var _ Renderer = (*treeRenderer)(nil)

// NewRenderer returns the default Renderer.
func NewRenderer(theme Theme) Renderer {
	return newTreeRenderer(theme)
}

func newTreeRenderer(theme Theme) *treeRenderer {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	r := &treeRenderer{
		focus:         -1,
		inputs:        map[string]*textinput.Model{},
		spinner:       sp,
		viewport:      viewport.New(80, 20),
		markdownCache: map[string]string{},
	}
	r.SetTheme(theme)
	return r
}

// Mount replaces the tree. Focus goes back to the node with the same ID;
// failing that, to the focusable at the same position; on the first mount,
// to the search input or the first focusable.
func (r *treeRenderer) Mount(root *view.Node) {
	prevID := ""
	prevIndex := r.focus
	cursorPos := -1
	if f := r.Focused(); f != nil {
		prevID = f.ID
		if in, ok := r.inputs[f.ID]; ok {
			cursorPos = in.Position()
		}
	}

	r.root = root
	r.focusable = view.Focusable(root)
	r.inputs = r.buildInputs()
	r.focus = -1

	switch {
	case len(r.focusable) == 0:
	case prevID != "":
		if idx := r.indexOf(prevID); idx >= 0 {
			r.focus = idx
		} else {
			r.focus = min(max(prevIndex, 0), len(r.focusable)-1)
		}
	default:
		r.focus = r.initialFocus()
	}

	if f := r.Focused(); f != nil {
		if in, ok := r.inputs[f.ID]; ok {
			in.Focus()
			if f.ID == prevID && cursorPos >= 0 {
				in.SetCursor(cursorPos)
			}
		}
	}
	r.scrollToFocus = true
}

// Root returns the mounted tree.
func (r *treeRenderer) Root() *view.Node { return r.root }

// Focused returns the focused node, or nil when nothing can take focus.
func (r *treeRenderer) Focused() *view.Node {
	if r.focus < 0 || r.focus >= len(r.focusable) {
		return nil
	}
	return r.focusable[r.focus]
}

// FocusNext moves focus forward, wrapping at the end.
func (r *treeRenderer) FocusNext() { r.moveFocus(1) }

// FocusPrev moves focus backward, wrapping at the start.
func (r *treeRenderer) FocusPrev() { r.moveFocus(-1) }

// Cursor returns the cursor position of the focused input, or -1.
func (r *treeRenderer) Cursor() int {
	f := r.Focused()
	if f == nil {
		return -1
	}
	if in, ok := r.inputs[f.ID]; ok {
		return in.Position()
	}
	return -1
}

func (r *treeRenderer) moveFocus(delta int) {
	n := len(r.focusable)
	if n == 0 {
		return
	}
	if f := r.Focused(); f != nil {
		if in, ok := r.inputs[f.ID]; ok {
			in.Blur()
		}
	}
	if r.focus < 0 {
		r.focus = 0
	} else {
		r.focus = ((r.focus+delta)%n + n) % n
	}
	if in, ok := r.inputs[r.focusable[r.focus].ID]; ok {
		in.Focus()
	}
	r.scrollToFocus = true
}

func (r *treeRenderer) initialFocus() int {
	if idx := r.indexOf(view.IDSearch); idx >= 0 {
		return idx
	}
	return 0
}

func (r *treeRenderer) indexOf(id string) int {
	for i, n := range r.focusable {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (r *treeRenderer) buildInputs() map[string]*textinput.Model {
	inputs := map[string]*textinput.Model{}
	for _, n := range r.focusable {
		if n.Kind != view.KindInput {
			continue
		}
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = n.Placeholder
		ti.Width = r.inputWidth()
		ti.PromptStyle = r.styles.AccentText
		ti.TextStyle = r.styles.Text
		ti.PlaceholderStyle = r.styles.FaintText
		ti.Cursor.SetMode(cursor.CursorStatic)
		ti.SetValue(n.Value)
		inputs[n.ID] = &ti
	}
	return inputs
}

func (r *treeRenderer) inputWidth() int {
	return max(min(r.width-16, 40), 10)
}

// SetTheme restyles the renderer and its live inputs.
func (r *treeRenderer) SetTheme(theme Theme) {
	r.theme = theme
	r.styles = theme.Styles()
	r.spinner.Style = r.styles.AccentText
	for _, in := range r.inputs {
		in.PromptStyle = r.styles.AccentText
		in.TextStyle = r.styles.Text
		in.PlaceholderStyle = r.styles.FaintText
	}
}

// SetSize resizes the content viewport.
func (r *treeRenderer) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.Width = width
	r.viewport.Height = max(height, minContentHeight)
	for _, in := range r.inputs {
		in.Width = r.inputWidth()
	}
	r.scrollToFocus = true
}

// HandleInput feeds a key to the focused input and returns its OnInput
// patch when the value changed.
func (r *treeRenderer) HandleInput(msg tea.KeyMsg) (state.Patch, tea.Cmd) {
	f := r.Focused()
	if f == nil || f.Kind != view.KindInput {
		return state.NewPatch(), nil
	}
	in, ok := r.inputs[f.ID]
	if !ok {
		return state.NewPatch(), nil
	}
	updated, cmd := in.Update(msg)
	*in = updated
	if in.Value() == f.Value || f.OnInput == nil {
		return state.NewPatch(), cmd
	}
	return f.OnInput(in.Value()), cmd
}

// Update advances the loading spinner.
func (r *treeRenderer) Update(msg tea.Msg) tea.Cmd {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(tick)
		return cmd
	}
	return nil
}

// Tick starts the spinner animation.
func (r *treeRenderer) Tick() tea.Msg {
	return r.spinner.Tick()
}

// ScrollPageUp scrolls the content one page up.
func (r *treeRenderer) ScrollPageUp() { r.viewport.PageUp() }

// ScrollPageDown scrolls the content one page down.
func (r *treeRenderer) ScrollPageDown() { r.viewport.PageDown() }

// View draws the mounted tree, scrolled so the focused node is visible.
func (r *treeRenderer) View() string {
	b := r.render(r.root)
	r.viewport.SetContent(b.text)
	if r.scrollToFocus && b.focusLine >= 0 {
		r.ensureVisible(b.focusLine)
	}
	r.scrollToFocus = false
	return r.viewport.View()
}

func (r *treeRenderer) ensureVisible(line int) {
	top := r.viewport.YOffset
	bottom := top + r.viewport.Height - 1
	switch {
	case line < top:
		r.viewport.SetYOffset(line)
	case line > bottom:
		r.viewport.SetYOffset(line - r.viewport.Height + 1)
	}
}

// block is a rendered fragment and the row of the focused node within it,
// or -1 when the focused node is not inside.
type block struct {
	text      string
	focusLine int
}

func (r *treeRenderer) render(n *view.Node) block {
	if n == nil {
		return block{focusLine: -1}
	}
	switch n.Kind {
	case view.KindContainer:
		return r.stack(r.rows(n.Children))
	case view.KindTitle:
		return plain(r.styles.Title.Render(n.Text))
	case view.KindText:
		return plain(r.styles.Text.Render(n.Text))
	case view.KindMarkdown:
		return plain(r.renderMarkdown(n.Text))
	case view.KindLoading:
		return plain(r.spinner.View() + " " + r.styles.MutedText.Render(n.Text))
	case view.KindError:
		return plain(r.styles.DangerText.Render(n.Text))
	case view.KindList:
		return r.renderList(n)
	case view.KindListItem:
		return r.renderItem(n)
	case view.KindLink, view.KindButton, view.KindInput:
		return r.renderControl(n)
	}
	return block{focusLine: -1}
}

// rows groups runs of consecutive controls onto one line.
func (r *treeRenderer) rows(children []*view.Node) []block {
	var out []block
	var run []*view.Node
	flush := func() {
		if len(run) == 0 {
			return
		}
		parts := make([]string, 0, len(run))
		focus := -1
		for _, c := range run {
			b := r.renderControl(c)
			parts = append(parts, b.text)
			if b.focusLine >= 0 {
				focus = b.focusLine
			}
		}
		out = append(out, block{
			text:      lipgloss.JoinHorizontal(lipgloss.Center, parts...),
			focusLine: focus,
		})
		run = run[:0]
	}
	for _, c := range children {
		if c.Focusable() {
			run = append(run, c)
			continue
		}
		flush()
		out = append(out, r.render(c))
	}
	flush()
	return out
}

func (r *treeRenderer) stack(blocks []block) block {
	parts := make([]string, 0, len(blocks))
	focus := -1
	offset := 0
	for _, b := range blocks {
		if b.focusLine >= 0 {
			focus = offset + b.focusLine
		}
		parts = append(parts, b.text)
		offset += lipgloss.Height(b.text)
	}
	return block{text: strings.Join(parts, "\n"), focusLine: focus}
}

func (r *treeRenderer) renderControl(n *view.Node) block {
	focused := r.Focused() == n
	var text string
	switch n.Kind {
	case view.KindInput:
		style := r.styles.Input
		if focused {
			style = r.styles.InputFocused
		}
		if in, ok := r.inputs[n.ID]; ok {
			text = style.Render(in.View())
		} else {
			text = style.Render(n.Value)
		}
	case view.KindLink:
		style := r.styles.Link
		if focused {
			style = r.styles.Selected.Padding(0, 1)
		}
		text = style.Render(n.Text)
	default:
		style := r.styles.Button
		if focused {
			style = r.styles.Selected.Padding(0, 1)
		}
		text = style.Render(n.Text)
	}
	line := -1
	if focused {
		line = lipgloss.Height(text) / 2
	}
	return block{text: text, focusLine: line}
}

func (r *treeRenderer) renderList(n *view.Node) block {
	blocks := []block{plain(r.styles.MutedText.Render(n.Text))}
	width := len(strconv.Itoa(len(n.Children))) + 2
	for i, item := range n.Children {
		b := r.render(item)
		prefix := r.styles.FaintText.Render(padRight(strconv.Itoa(i+1)+".", width))
		blocks = append(blocks, block{
			text:      lipgloss.JoinHorizontal(lipgloss.Top, prefix, b.text),
			focusLine: b.focusLine,
		})
	}
	return r.stack(blocks)
}

func (r *treeRenderer) renderItem(n *view.Node) block {
	blocks := make([]block, 0, len(n.Children))
	for i, c := range n.Children {
		switch {
		case c.Focusable():
			blocks = append(blocks, r.renderControl(c))
		case i == 0:
			blocks = append(blocks, plain(r.styles.Text.Bold(true).Render(truncate(c.Text, r.textWidth()))))
		default:
			blocks = append(blocks, plain(r.styles.MutedText.Render(truncate(c.Text, r.textWidth()))))
		}
	}
	return r.stack(blocks)
}

func (r *treeRenderer) textWidth() int {
	if r.width <= 0 {
		return 0
	}
	return max(r.width-6, 10)
}

func (r *treeRenderer) renderMarkdown(src string) string {
	width := markdownMaxWidth
	if r.width > 0 {
		width = min(r.width-4, markdownMaxWidth)
	}
	width = max(width, 20)
	if r.markdown == nil || r.markdownWidth != width {
		md, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return r.styles.Text.Render(src)
		}
		r.markdown = md
		r.markdownWidth = width
		r.markdownCache = map[string]string{}
	}
	if out, ok := r.markdownCache[src]; ok {
		return out
	}
	out, err := r.markdown.Render(src)
	if err != nil {
		return r.styles.Text.Render(src)
	}
	out = strings.Trim(out, "\n")
	r.markdownCache[src] = out
	return out
}

func plain(s string) block {
	return block{text: s, focusLine: -1}
}
