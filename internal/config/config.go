// Package config provides YAML-based scoreboard configuration loading and
// rules presets.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-scoreboard/internal/scoreboard"
)

// ScoreboardConfig contains all configuration for the scoreboard.
type ScoreboardConfig struct {
	Rules    RulesConfig    `yaml:"rules"`
	Display  DisplayConfig  `yaml:"display"`
	Autosave AutosaveConfig `yaml:"autosave"`
	Alert    AlertConfig    `yaml:"alert"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
}

// RulesConfig defines the win condition.
type RulesConfig struct {
	WinScore  int `yaml:"win_score"`
	WinMargin int `yaml:"win_margin"`
}

// DisplayConfig defines first-run display preferences.
type DisplayConfig struct {
	Theme       string `yaml:"theme"`
	GameDisplay string `yaml:"game_display"` // "show" or "hide"
	HomeName    string `yaml:"home_name"`
	AwayName    string `yaml:"away_name"`
}

// AutosaveConfig defines the periodic save timer.
type AutosaveConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
}

// AlertConfig defines how long the win alert stays up.
type AlertConfig struct {
	DurationMs int `yaml:"duration_ms"`
}

// StorageConfig defines where the scoreboard is persisted.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
	Key    string `yaml:"key"`
}

// LogConfig defines log output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// RulesPreset represents a named set of win rules.
type RulesPreset string

const (
	RulesTableTennis RulesPreset = "tabletennis"
	RulesBadminton   RulesPreset = "badminton"
	RulesVolleyball  RulesPreset = "volleyball"
)

// RulesPresets lists every preset name.
var RulesPresets = []RulesPreset{RulesTableTennis, RulesBadminton, RulesVolleyball}

// RulesForPreset returns the win rules for a preset.
func RulesForPreset(preset RulesPreset) (RulesConfig, error) {
	switch RulesPreset(strings.ToLower(string(preset))) {
	case RulesTableTennis:
		return RulesConfig{WinScore: 11, WinMargin: 2}, nil
	case RulesBadminton:
		return RulesConfig{WinScore: 21, WinMargin: 2}, nil
	case RulesVolleyball:
		return RulesConfig{WinScore: 25, WinMargin: 2}, nil
	default:
		return RulesConfig{}, fmt.Errorf("unknown rules preset %q (want one of %v)", preset, RulesPresets)
	}
}

// ApplyRulesPreset modifies the config based on a rules preset.
// An empty preset leaves the config unchanged.
func ApplyRulesPreset(cfg *ScoreboardConfig, preset RulesPreset) error {
	if preset == "" {
		return nil
	}
	rules, err := RulesForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Rules = rules
	return nil
}

// Validate reports the first unusable value in the config.
func (c ScoreboardConfig) Validate() error {
	if err := c.ScoreboardRules().Validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	if _, err := scoreboard.ParseTheme(c.Display.Theme); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	if _, err := scoreboard.ParseDisplayMode(c.Display.GameDisplay); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	if strings.TrimSpace(c.Display.HomeName) == "" || strings.TrimSpace(c.Display.AwayName) == "" {
		return fmt.Errorf("display: team names must not be empty")
	}
	if c.Autosave.IntervalSeconds <= 0 {
		return fmt.Errorf("autosave: interval_seconds must be positive, got %d", c.Autosave.IntervalSeconds)
	}
	if c.Alert.DurationMs <= 0 {
		return fmt.Errorf("alert: duration_ms must be positive, got %d", c.Alert.DurationMs)
	}
	return nil
}

// ScoreboardRules converts the rules section.
func (c ScoreboardConfig) ScoreboardRules() scoreboard.Rules {
	return scoreboard.Rules{WinScore: c.Rules.WinScore, WinMargin: c.Rules.WinMargin}
}

// ScoreboardDefaults converts the display section into first-run defaults.
// Invalid values fall back to the built-in ones; call Validate to reject them instead.
func (c ScoreboardConfig) ScoreboardDefaults() scoreboard.Defaults {
	d := scoreboard.DefaultDefaults()
	if theme, err := scoreboard.ParseTheme(c.Display.Theme); err == nil {
		d.Theme = theme
	}
	if mode, err := scoreboard.ParseDisplayMode(c.Display.GameDisplay); err == nil {
		d.DisplayMode = mode
	}
	if name := strings.TrimSpace(c.Display.HomeName); name != "" {
		d.HomeName = name
	}
	if name := strings.TrimSpace(c.Display.AwayName); name != "" {
		d.AwayName = name
	}
	return d
}

// AutosaveInterval returns the autosave period.
func (c ScoreboardConfig) AutosaveInterval() time.Duration {
	return time.Duration(c.Autosave.IntervalSeconds) * time.Second
}

// AlertDuration returns how long the win alert is shown.
func (c ScoreboardConfig) AlertDuration() time.Duration {
	return time.Duration(c.Alert.DurationMs) * time.Millisecond
}
