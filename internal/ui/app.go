package ui

import (
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/rolodex/internal/effects"
	"github.com/five82/rolodex/internal/state"
	"github.com/five82/rolodex/internal/storage"
	"github.com/five82/rolodex/internal/view"
)

// Options configures the UI.
type Options struct {
	Store       *state.Store
	Coordinator *effects.Coordinator
	KV          storage.Store
	Logger      *zap.Logger
	ThemeName   string
	// Renderer defaults to the tree renderer.
	Renderer Renderer
}

// Model is the root application state for Bubble Tea.
type Model struct {
	store    *state.Store
	coord    *effects.Coordinator
	kv       storage.Store
	logger   *zap.Logger
	renderer Renderer

	keys  keyMap
	help  help.Model
	theme Theme

	width    int
	height   int
	ready    bool
	started  bool
	showHelp bool
}

// New creates a new Bubble Tea model and mounts the view for the store's
// current state. Effects for the initial state run once the program starts.
func New(opts Options) Model {
	store := opts.Store
	if store == nil {
		store = state.NewStore(state.ApplicationState{Route: state.RouteHome})
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	kv := opts.KV
	if kv == nil {
		kv = storage.NewMemory()
	}
	coord := opts.Coordinator
	if coord == nil {
		coord = effects.New(effects.Options{Store: kv, Logger: logger})
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = DefaultThemeName
	}
	theme := GetTheme(themeName)

	renderer := opts.Renderer
	if renderer == nil {
		renderer = NewRenderer(theme)
	} else {
		renderer.SetTheme(theme)
	}
	renderer.Mount(view.Build(store.Snapshot()))

	return Model{
		store:    store,
		coord:    coord,
		kv:       kv,
		logger:   logger,
		renderer: renderer,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		theme:    theme,
	}
}

// startMsg runs the effects of the initial state inside the update loop.
type startMsg struct{}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return startMsg{} },
		m.renderer.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.renderer.SetSize(msg.Width, msg.Height-chromeHeight)
		m.ready = true
		return m, nil

	case startMsg:
		if m.started {
			return m, nil
		}
		m.started = true
		m.apply(m.coord.Handle(state.ApplicationState{}, m.store.Snapshot()))
		return m, nil

	case effects.SearchResult:
		if p, ok := m.coord.ResultPatch(msg); ok {
			m.apply(p)
		}
		return m, nil

	case storage.ChangedMsg:
		m.reloadStorage()
		return m, nil

	case spinner.TickMsg:
		return m, m.renderer.Update(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderer.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// apply runs one state transition and every synchronous follow-up: update
// the store, remount the view, then hand the transition to the coordinator.
func (m *Model) apply(p state.Patch) {
	for !p.Empty() {
		prev, next := m.store.Update(p)
		m.renderer.Mount(view.Build(next))
		p = m.coord.Handle(prev, next)
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.apply(state.NewPatch().WithSearchText(""))
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if route, ok := m.coord.History().Back(); ok {
			m.apply(state.NewPatch().WithRoute(route))
		}
		return m, nil

	case key.Matches(msg, m.keys.Forward):
		if route, ok := m.coord.History().Forward(); ok {
			m.apply(state.NewPatch().WithRoute(route))
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.renderer.FocusNext()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.renderer.FocusPrev()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.renderer.ScrollPageUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.renderer.ScrollPageDown()
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		m.activate()
		return m, nil
	}

	focused := m.renderer.Focused()
	if focused != nil && focused.Kind == view.KindInput {
		p, cmd := m.renderer.HandleInput(msg)
		m.apply(p)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.renderer.FocusNext()
	case key.Matches(msg, m.keys.Up):
		m.renderer.FocusPrev()
	}
	return m, nil
}

// activate follows the focused link or presses the focused button.
func (m *Model) activate() {
	f := m.renderer.Focused()
	if f == nil || f.Action == nil {
		return
	}
	m.logger.Debug("activate", zap.String("id", f.ID), zap.String("kind", f.Kind.String()))
	m.apply(f.Action(m.store.Snapshot()))
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.renderer.SetTheme(m.theme)
	if err := storage.SaveTheme(m.kv, m.theme.Name); err != nil {
		m.logger.Warn("persist theme failed", zap.Error(err))
	}
}

// reloadStorage picks up favorites and theme written by another process.
func (m *Model) reloadStorage() {
	cur := m.store.Snapshot()
	favs := storage.LoadFavorites(m.kv)
	if !slices.Equal(favs, cur.FavoriteContacts) {
		m.logger.Info("favorites changed on disk", zap.Int("count", len(favs)))
		m.apply(state.NewPatch().WithFavoriteContacts(favs))
	}
	if name := storage.LoadTheme(m.kv, m.theme.Name); name != m.theme.Name {
		m.theme = GetTheme(name)
		m.renderer.SetTheme(m.theme)
	}
}

// NewProgram wraps m in a full-screen Bubble Tea program bound to ctx.
func NewProgram(ctx context.Context, m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
}
