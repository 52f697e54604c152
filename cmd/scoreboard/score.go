package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scoreboard/internal/scoreboard"
)

var scoreCmd = &cobra.Command{
	Use:   "score <home|away> <delta>",
	Short: "Adjust a team's score",
	Long: `Add delta to a team's score. Scores never go below zero.
Announces the winner when the change wins the game.

Examples:
  scoreboard score home 1
  scoreboard score away -1
  scoreboard score home -- -2`,
	Args: cobra.ExactArgs(2),
	RunE: runScore,
}

var gameCmd = &cobra.Command{
	Use:   "game <delta>",
	Short: "Adjust the game number",
	Long: `Add delta to the game number. The game number never goes below 1.

Examples:
  scoreboard game 1
  scoreboard game -- -1`,
	Args: cobra.ExactArgs(1),
	RunE: runGame,
}

func runScore(cmd *cobra.Command, args []string) error {
	team, err := scoreboard.ParseTeam(args[0])
	if err != nil {
		return err
	}
	delta, err := parseDelta(args[1])
	if err != nil {
		return err
	}

	return withSession(cmd, func(sess *session) error {
		s, win, err := sess.manager.AdjustScore(team, delta)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %d : %d %s\n", s.TeamNames.Home, s.Scores.Home, s.Scores.Away, s.TeamNames.Away)
		if win != nil {
			fmt.Fprintln(out, winMessage(s, *win))
		}
		return nil
	})
}

func runGame(cmd *cobra.Command, args []string) error {
	delta, err := parseDelta(args[0])
	if err != nil {
		return err
	}

	return withSession(cmd, func(sess *session) error {
		s, err := sess.manager.AdjustGame(delta)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Game %d\n", s.GameNumber)
		return nil
	})
}

// parseDelta parses a signed integer argument.
func parseDelta(arg string) (int, error) {
	delta, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: delta must be an integer, got %q", scoreboard.ErrInvalidArgument, arg)
	}
	return delta, nil
}
