// scoreboard is a terminal scoreboard for two-team games such as table tennis.
//
// Usage:
//
//	scoreboard run                         - Interactive scoreboard
//	scoreboard show                        - Print the current state
//	scoreboard score <home|away> <delta>   - Adjust a score
//	scoreboard game <delta>                - Adjust the game number
//	scoreboard reset [--team t] --yes      - Reset one team or all scores
//	scoreboard clear --yes                 - Erase all stored data
//	scoreboard set <what> ...              - Change theme, display, names
//	scoreboard config                      - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.scoreboard/config.yaml)
//	--db <path>      - Database path (default from config)
//	--rules <preset> - Rules preset: tabletennis, badminton, volleyball
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagRules    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Scoreboard - Keep score for two teams in your terminal",
	Long: `Scoreboard keeps score for a two-team match, tracks the game number
and remembers everything between runs.

Available commands:
  run      - Interactive scoreboard
  show     - Print the current state
  score    - Adjust a team's score
  game     - Adjust the game number
  reset    - Reset scores
  clear    - Erase all stored data
  set      - Change theme, game display and team names
  config   - Print the effective configuration

Examples:
  scoreboard run
  scoreboard run --rules badminton
  scoreboard score home 1
  scoreboard reset --yes
  scoreboard set name away "Tigers"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scoreboard database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "Rules preset: tabletennis, badminton, volleyball")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(gameCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(configCmd)
}
