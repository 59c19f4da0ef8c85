package ui

import (
	"github.com/five82/rolodex/internal/state"
)

// routeLabels names the known routes in the header.
var routeLabels = map[string]string{
	state.RouteHome:      "Home",
	state.RouteFavorites: "Favorites",
	state.RouteAbout:     "About",
}

// renderHeader renders the one-line status bar above the content.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	s := m.store.Snapshot()

	route := routeLabels[s.Route]
	if route == "" {
		route = "Not Found"
	}

	parts := []string{
		bg.Render("rolodex", styles.WarningText.Bold(true)),
		bg.Render(route, styles.AccentText.Bold(true)),
		bg.Render(truncate(s.Route, 32), styles.FaintText),
		bg.Render("♥ "+plural(len(s.FavoriteContacts), "favorite", "favorites"), styles.MutedText),
	}
	if s.IsLoading {
		parts = append(parts, bg.Render("searching", styles.InfoText))
	}
	parts = append(parts, bg.Render(m.theme.Name, styles.FaintText))

	return bg.FillLine(bg.Join(parts, "  "), m.width)
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	bg := NewBgStyle(m.theme.Surface)
	return bg.FillLine(m.help.ShortHelpView(m.keys.ShortHelp()), m.width)
}
