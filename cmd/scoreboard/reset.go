package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scoreboard/internal/scoreboard"
)

var (
	flagResetTeam string
	flagResetYes  bool
	flagClearYes  bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset scores",
	Long: `Reset both scores and the game number, or one team's score with --team.
Names, theme and display settings are kept.

Examples:
  scoreboard reset --yes
  scoreboard reset --team away --yes`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase all stored data",
	Long: `Delete the stored scoreboard and start over from the configured defaults.
This cannot be undone.

Examples:
  scoreboard clear --yes`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	resetCmd.Flags().StringVar(&flagResetTeam, "team", "", "Reset only this team: home or away")
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Confirm the reset")
	clearCmd.Flags().BoolVarP(&flagClearYes, "yes", "y", false, "Confirm erasing all data")
}

func runReset(cmd *cobra.Command, _ []string) error {
	var team scoreboard.Team
	if flagResetTeam != "" {
		t, err := scoreboard.ParseTeam(flagResetTeam)
		if err != nil {
			return err
		}
		team = t
	}

	return withSession(cmd, func(sess *session) error {
		var err error
		if team != "" {
			_, err = sess.manager.ResetTeamScore(team, flagResetYes)
		} else {
			_, err = sess.manager.ResetAll(flagResetYes)
		}
		if err != nil {
			return needsConfirmation(err)
		}

		if team != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s score\n", team)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Reset all scores")
		}
		return nil
	})
}

func runClear(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(sess *session) error {
		if _, err := sess.manager.ClearAll(flagClearYes); err != nil {
			return needsConfirmation(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cleared all data")
		return nil
	})
}
