package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-scoreboard/internal/scoreboard"
	"github.com/vovakirdan/tui-scoreboard/internal/storage"
)

//go:embed defaults/scoreboard.yaml
var defaultScoreboardYAML []byte

// DefaultConfig returns the default scoreboard configuration.
func DefaultConfig() ScoreboardConfig {
	return ScoreboardConfig{
		Rules: RulesConfig{
			WinScore:  11,
			WinMargin: 2,
		},
		Display: DisplayConfig{
			Theme:       "default",
			GameDisplay: "show",
			HomeName:    "HOME",
			AwayName:    "AWAY",
		},
		Autosave: AutosaveConfig{
			IntervalSeconds: 30,
		},
		Alert: AlertConfig{
			DurationMs: 3000,
		},
		Storage: StorageConfig{
			DBPath: storage.DefaultPath,
			Key:    scoreboard.DefaultKey,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.scoreboard/scoreboard.log",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultScoreboardYAML
}
