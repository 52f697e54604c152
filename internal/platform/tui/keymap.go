package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the scoreboard.
type KeyMap struct {
	HomeUp     key.Binding
	AwayUp     key.Binding
	HomeDown   key.Binding
	AwayDown   key.Binding
	GameUp     key.Binding
	GameDown   key.Binding
	ResetHome  key.Binding
	ResetAway  key.Binding
	ResetAll   key.Binding
	ClearAll   key.Binding
	Theme      key.Binding
	GameToggle key.Binding
	HideHome   key.Binding
	HideAway   key.Binding
	EditHome   key.Binding
	EditAway   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.HomeUp, k.AwayUp, k.HomeDown, k.AwayDown, k.GameUp, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.HomeUp, k.AwayUp, k.HomeDown, k.AwayDown},
		{k.GameUp, k.GameDown, k.GameToggle, k.Theme},
		{k.ResetHome, k.ResetAway, k.ResetAll, k.ClearAll},
		{k.HideHome, k.HideAway, k.EditHome, k.EditAway},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
// q and w adjust scores, so quitting lives on esc and ctrl+c.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		HomeUp: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home +1"),
		),
		AwayUp: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "away +1"),
		),
		HomeDown: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "home -1"),
		),
		AwayDown: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "away -1"),
		),
		GameUp: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "game +1"),
		),
		GameDown: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "game -1"),
		),
		ResetHome: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "reset home"),
		),
		ResetAway: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset away"),
		),
		ResetAll: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "reset scores"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "clear all data"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		GameToggle: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "show/hide game"),
		),
		HideHome: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "hide home name"),
		),
		HideAway: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "hide away name"),
		),
		EditHome: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rename home"),
		),
		EditAway: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "rename away"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}
