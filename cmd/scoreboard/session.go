package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scoreboard/internal/config"
	"github.com/vovakirdan/tui-scoreboard/internal/scoreboard"
	"github.com/vovakirdan/tui-scoreboard/internal/storage"
)

// kvStore is a key-value slot that holds a connection.
type kvStore interface {
	scoreboard.KV
	Close() error
}

// session bundles everything a command needs.
type session struct {
	cfg     config.ScoreboardConfig
	store   kvStore
	manager *scoreboard.Manager
	logger  *log.Logger
}

// loadConfig resolves the config from the global flags.
func loadConfig() (config.ScoreboardConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := config.ApplyRulesPreset(&cfg, config.RulesPreset(flagRules)); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// newLogger creates the structured logger used everywhere.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "scoreboard",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", level)
	}
	return logger
}

// openSession opens storage and restores the scoreboard. Logs go to logw.
func openSession(cfg config.ScoreboardConfig, logw io.Writer) *session {
	logger := newLogger(logw, cfg.Log.Level)

	var store kvStore
	db, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		// Continue without persistence
		logger.Warn("could not open scoreboard database, changes will not be kept", "error", err)
		store = storage.NewMemory()
	} else {
		logger.Debug("opened database", "path", db.Path())
		store = db
	}

	adapter := scoreboard.NewAdapter(store, cfg.Storage.Key, logger)
	logger.Debug("restoring scoreboard", "key", adapter.Key())
	manager := scoreboard.NewManager(adapter,
		scoreboard.WithRules(cfg.ScoreboardRules()),
		scoreboard.WithDefaults(cfg.ScoreboardDefaults()),
		scoreboard.WithLogger(logger),
		scoreboard.WithWinHandler(func(e scoreboard.WinEvent) {
			logger.Info("game won", "team", e.Team, "game", e.GameNumber)
		}),
	)

	return &session{cfg: cfg, store: store, manager: manager, logger: logger}
}

// withSession runs fn against a session that logs to the command's stderr.
func withSession(cmd *cobra.Command, fn func(*session) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess := openSession(cfg, cmd.ErrOrStderr())
	defer sess.Close()
	return fn(sess)
}

// Close releases the storage connection.
func (s *session) Close() error {
	return s.store.Close()
}

// openLogFile opens the configured log file for appending.
func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// needsConfirmation turns ErrNotConfirmed into a hint about --yes.
func needsConfirmation(err error) error {
	if errors.Is(err, scoreboard.ErrNotConfirmed) {
		return fmt.Errorf("%w: pass --yes to confirm", err)
	}
	return err
}
