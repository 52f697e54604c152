package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-scoreboard/internal/platform/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive scoreboard",
	Long: `Start the full-screen scoreboard.

Controls:
  1 / 2        - Home / away +1
  q / w        - Home / away -1
  g / f        - Game +1 / -1
  z / x        - Reset home / away score (asks first)
  Ctrl+R       - Reset all scores (asks first)
  Ctrl+X       - Clear all data (asks first)
  t            - Next theme
  m            - Show/hide game number
  [ / ]        - Hide/show home / away name
  e / E        - Rename home / away
  ?            - All keys
  Esc/Ctrl+C   - Quit

Logs are written to the file configured under log.file.

Examples:
  scoreboard run
  scoreboard run --rules volleyball
  scoreboard run --config ./scoreboard.yaml`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs go to a file
	var logw io.Writer = io.Discard
	if logFile, err := openLogFile(cfg.Log.File); err == nil {
		defer logFile.Close()
		logw = logFile
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: cannot open log file: %v\n", err)
	}

	sess := openSession(cfg, logw)
	defer sess.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sess.logger.Info("scoreboard started", "rules", fmt.Sprintf("%d/%d", sess.cfg.Rules.WinScore, sess.cfg.Rules.WinMargin))
	if err := tui.Run(sess.manager, sess.cfg, width, height); err != nil {
		sess.logger.Error("scoreboard stopped", "error", err)
		return err
	}
	sess.logger.Info("scoreboard stopped")
	return nil
}
