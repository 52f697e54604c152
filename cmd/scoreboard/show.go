package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scoreboard/internal/scoreboard"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current scoreboard",
	Long: `Print the stored scores, game number and display preferences.

Examples:
  scoreboard show
  scoreboard show --db ./match.db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSession(cmd, func(sess *session) error {
			printState(cmd.OutOrStdout(), sess.manager.Snapshot(), sess.manager.Rules())
			return nil
		})
	},
}

// printState writes a plain-text summary of s.
func printState(w io.Writer, s scoreboard.MatchState, rules scoreboard.Rules) {
	if s.GameVisible() {
		fmt.Fprintf(w, "Game %d\n", s.GameNumber)
	} else {
		fmt.Fprintln(w, "Game (hidden)")
	}
	fmt.Fprintln(w)

	for _, team := range scoreboard.Teams {
		name := s.TeamNames.Get(team)
		if s.NameHidden(team) {
			name += " (hidden)"
		}
		fmt.Fprintf(w, "  %-5s %-24s %3d\n", team, name, s.Score(team))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Theme: %s  Game display: %s  Rules: first to %d, win by %d\n",
		s.CurrentTheme, s.GameDisplayMode, rules.WinScore, rules.WinMargin)
	if !s.Timestamp.IsZero() {
		fmt.Fprintf(w, "Last saved: %s\n", s.Timestamp.Local().Format("2006-01-02 15:04:05"))
	}
}

// winMessage formats a win event with the team's current name.
func winMessage(s scoreboard.MatchState, e scoreboard.WinEvent) string {
	return fmt.Sprintf("Congratulations! %s wins game %d!", strings.TrimSpace(s.TeamNames.Get(e.Team)), e.GameNumber)
}
