package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-scoreboard/internal/scoreboard"
)

// Styles contains all visual styles for one scoreboard theme.
type Styles struct {
	// Block digit glyph
	Glyph rune

	// Team panels
	Panel     lipgloss.Style
	HomeScore lipgloss.Style
	AwayScore lipgloss.Style
	TeamName  lipgloss.Style
	Flash     lipgloss.Style // Recently changed score

	// Header
	Title lipgloss.Style
	Game  lipgloss.Style

	// Overlays and status
	Alert  lipgloss.Style
	Prompt lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles returns the default visual theme.
func DefaultStyles() Styles {
	return Styles{
		Glyph: '█',

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3).
			Align(lipgloss.Center),
		HomeScore: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		AwayScore: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		TeamName:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Flash:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")),

		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Game:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Alert: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("28")). // Green
			Bold(true).
			Padding(0, 2),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// BrightStyles returns a high-contrast theme.
func BrightStyles() Styles {
	s := DefaultStyles()
	s.Panel = s.Panel.BorderForeground(lipgloss.Color("226")).Border(lipgloss.ThickBorder())
	s.HomeScore = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true) // Bright yellow
	s.AwayScore = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)  // Bright cyan
	s.TeamName = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)
	s.Flash = lipgloss.NewStyle().Foreground(lipgloss.Color("201"))
	s.Title = s.Title.Foreground(lipgloss.Color("231"))
	return s
}

// LEDStyles returns a dot-matrix green-on-black theme.
func LEDStyles() Styles {
	s := DefaultStyles()
	s.Glyph = '●'
	s.Panel = s.Panel.BorderForeground(lipgloss.Color("22")).Border(lipgloss.DoubleBorder())
	s.HomeScore = lipgloss.NewStyle().Foreground(lipgloss.Color("46")) // Lime green
	s.AwayScore = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	s.TeamName = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	s.Flash = lipgloss.NewStyle().Foreground(lipgloss.Color("154"))
	s.Title = s.Title.Foreground(lipgloss.Color("46"))
	s.Game = s.Game.Foreground(lipgloss.Color("34"))
	return s
}

// RedBlueStyles returns a theme with a red home side and a blue away side.
func RedBlueStyles() Styles {
	s := DefaultStyles()
	s.HomeScore = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // Red
	s.AwayScore = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)  // Blue
	s.TeamName = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	s.Flash = lipgloss.NewStyle().Foreground(lipgloss.Color("231"))
	return s
}

// StylesFor returns the styles for a scoreboard theme.
func StylesFor(theme scoreboard.Theme) Styles {
	switch theme {
	case scoreboard.ThemeBright:
		return BrightStyles()
	case scoreboard.ThemeLED:
		return LEDStyles()
	case scoreboard.ThemeRedBlue:
		return RedBlueStyles()
	default:
		return DefaultStyles()
	}
}

// ScoreStyle returns the digit style for team.
func (s Styles) ScoreStyle(team scoreboard.Team) lipgloss.Style {
	if team == scoreboard.Away {
		return s.AwayScore
	}
	return s.HomeScore
}
