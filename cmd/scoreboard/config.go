package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scoreboard/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after applying the config file, --rules, --db
and --log-level. The output is valid YAML and can be saved as
~/.scoreboard/config.yaml.

Examples:
  scoreboard config
  scoreboard config --rules badminton > ~/.scoreboard/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
