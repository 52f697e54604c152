package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-scoreboard/internal/scoreboard"
)

// panelMinWidth keeps both panels the same width for one- and two-digit scores.
const panelMinWidth = 2*digitW + digitGap

// renderPanel renders one team's name and score.
func renderPanel(s scoreboard.MatchState, team scoreboard.Team, styles Styles, flashing bool, width int) string {
	name := s.TeamNames.Get(team)
	if s.NameHidden(team) {
		name = ""
	}

	scoreStyle := styles.ScoreStyle(team)
	if flashing {
		scoreStyle = styles.Flash
	}

	digits := scoreStyle.Render(BigNumber(s.Score(team), styles.Glyph))
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.TeamName.Render(name),
		"",
		digits,
	)
	return styles.Panel.Width(width + styles.Panel.GetHorizontalPadding()).Render(body)
}

// renderBoard renders the header and both team panels side by side.
func renderBoard(s scoreboard.MatchState, styles Styles, flash *scoreboard.Team) string {
	var header string
	if s.GameVisible() {
		header = styles.Game.Render(fmt.Sprintf("GAME %d", s.GameNumber))
	}

	// Both panels share the width of the widest name or score
	width := panelMinWidth
	for _, team := range scoreboard.Teams {
		width = max(width,
			lipgloss.Width(BigNumber(s.Score(team), styles.Glyph)),
			lipgloss.Width(s.TeamNames.Get(team)))
	}

	home := renderPanel(s, scoreboard.Home, styles, flash != nil && *flash == scoreboard.Home, width)
	away := renderPanel(s, scoreboard.Away, styles, flash != nil && *flash == scoreboard.Away, width)

	return lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render("SCOREBOARD"),
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, home, "  ", away),
	)
}

// centerText centers text horizontally within the given width.
func centerText(text string, width int) string {
	if text == "" || width <= 0 {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// joinLines drops empty lines and joins the rest.
func joinLines(lines ...string) string {
	kept := lines[:0]
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}
