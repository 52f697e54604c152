// Package tui provides the Bubble Tea front end for the scoreboard.
// It maps keys to manager operations and owns the timers: autosave,
// win alert dismissal and the score flash.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long a changed score stays highlighted.
const flashDuration = 300 * time.Millisecond

// autosaveMsg is sent to trigger a periodic save.
type autosaveMsg time.Time

// alertExpiredMsg dismisses the win alert it was scheduled for.
type alertExpiredMsg struct{ seq int }

// flashExpiredMsg clears the score highlight it was scheduled for.
type flashExpiredMsg struct{ seq int }

// autosaveCmd returns a Bubble Tea command that fires once after interval.
// The model re-arms it on every autosaveMsg.
func autosaveCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return autosaveMsg(t)
	})
}

func alertCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return alertExpiredMsg{seq: seq}
	})
}

func flashCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}
