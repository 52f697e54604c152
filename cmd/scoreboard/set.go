package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scoreboard/internal/scoreboard"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Change display preferences and team names",
	Long: `Change how the scoreboard looks.

Examples:
  scoreboard set theme led
  scoreboard set display hide
  scoreboard set name home "Red Dragons"
  scoreboard set hide away`,
}

var setThemeCmd = &cobra.Command{
	Use:   "theme <default|bright|led|red-blue>",
	Short: "Set the theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := scoreboard.ParseTheme(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(sess *session) error {
			s, err := sess.manager.SetTheme(theme)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", s.CurrentTheme)
			return nil
		})
	},
}

var setDisplayCmd = &cobra.Command{
	Use:   "display <show|hide>",
	Short: "Show or hide the game number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := scoreboard.ParseDisplayMode(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(sess *session) error {
			s, err := sess.manager.SetGameDisplayMode(mode)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Game display: %s\n", s.GameDisplayMode)
			return nil
		})
	},
}

var setNameCmd = &cobra.Command{
	Use:   "name <home|away> <label>",
	Short: "Rename a team (an empty label restores the default)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		team, err := scoreboard.ParseTeam(args[0])
		if err != nil {
			return err
		}
		label := strings.Join(args[1:], " ")
		return withSession(cmd, func(sess *session) error {
			s, err := sess.manager.SetTeamName(team, label)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", team, s.TeamNames.Get(team))
			return nil
		})
	},
}

var setHideCmd = &cobra.Command{
	Use:   "hide <home|away>",
	Short: "Toggle whether a team's name is shown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		team, err := scoreboard.ParseTeam(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(sess *session) error {
			s, err := sess.manager.ToggleTeamNameHidden(team)
			if err != nil {
				return err
			}
			state := "shown"
			if s.NameHidden(team) {
				state = "hidden"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s name %s\n", team, state)
			return nil
		})
	},
}

func init() {
	setCmd.AddCommand(setThemeCmd)
	setCmd.AddCommand(setDisplayCmd)
	setCmd.AddCommand(setNameCmd)
	setCmd.AddCommand(setHideCmd)
}
