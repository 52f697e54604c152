package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-scoreboard/internal/config"
	"github.com/vovakirdan/tui-scoreboard/internal/scoreboard"
)

// inputMode selects how key presses are interpreted.
type inputMode int

const (
	modeNormal inputMode = iota
	modeConfirm
	modeEditName
)

// pendingConfirm is a destructive operation waiting for y/n.
type pendingConfirm struct {
	prompt string
	run    func(confirmed bool) (scoreboard.MatchState, error)
}

// Model is the Bubble Tea model for the scoreboard.
type Model struct {
	manager *scoreboard.Manager
	state   scoreboard.MatchState
	keys    KeyMap
	help    help.Model
	input   textinput.Model

	autosaveEvery time.Duration
	alertFor      time.Duration

	mode    inputMode
	confirm *pendingConfirm
	editing scoreboard.Team

	alert    string
	alertSeq int
	flash    *scoreboard.Team
	flashSeq int

	lastErr  error // Rejected operation, shown until the next key
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model over manager.
func NewModel(manager *scoreboard.Manager, cfg config.ScoreboardConfig, width, height int) Model {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	ti := textinput.New()
	ti.CharLimit = 24
	ti.Width = 24

	return Model{
		manager:       manager,
		state:         manager.Snapshot(),
		keys:          DefaultKeyMap(),
		help:          h,
		input:         ti,
		autosaveEvery: cfg.AutosaveInterval(),
		alertFor:      cfg.AlertDuration(),
		width:         width,
		height:        height,
	}
}

// Init starts the autosave timer.
func (m Model) Init() tea.Cmd {
	return autosaveCmd(m.autosaveEvery)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeConfirm:
			return m.handleConfirmKey(msg)
		case modeEditName:
			return m.handleEditKey(msg)
		default:
			return m.handleKey(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case autosaveMsg:
		//nolint:errcheck // Failure is kept by the manager and shown in the status line
		m.manager.Save()
		return m, autosaveCmd(m.autosaveEvery)

	case alertExpiredMsg:
		if msg.seq == m.alertSeq {
			m.alert = ""
		}
		return m, nil

	case flashExpiredMsg:
		if msg.seq == m.flashSeq {
			m.flash = nil
		}
		return m, nil
	}

	if m.mode == modeEditName {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input in normal mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.lastErr = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.HomeUp):
		return m.adjustScore(scoreboard.Home, 1)
	case key.Matches(msg, m.keys.AwayUp):
		return m.adjustScore(scoreboard.Away, 1)
	case key.Matches(msg, m.keys.HomeDown):
		return m.adjustScore(scoreboard.Home, -1)
	case key.Matches(msg, m.keys.AwayDown):
		return m.adjustScore(scoreboard.Away, -1)

	case key.Matches(msg, m.keys.GameUp):
		_, err := m.manager.AdjustGame(1)
		m.refresh(err)
	case key.Matches(msg, m.keys.GameDown):
		_, err := m.manager.AdjustGame(-1)
		m.refresh(err)

	case key.Matches(msg, m.keys.ResetHome):
		m.askConfirm(fmt.Sprintf("Reset %s score to 0?", m.state.TeamNames.Home), func(ok bool) (scoreboard.MatchState, error) {
			return m.manager.ResetTeamScore(scoreboard.Home, ok)
		})
	case key.Matches(msg, m.keys.ResetAway):
		m.askConfirm(fmt.Sprintf("Reset %s score to 0?", m.state.TeamNames.Away), func(ok bool) (scoreboard.MatchState, error) {
			return m.manager.ResetTeamScore(scoreboard.Away, ok)
		})
	case key.Matches(msg, m.keys.ResetAll):
		m.askConfirm("Reset all scores and the game number?", m.manager.ResetAll)
	case key.Matches(msg, m.keys.ClearAll):
		m.askConfirm("Clear all data? This cannot be undone!", m.manager.ClearAll)

	case key.Matches(msg, m.keys.Theme):
		_, err := m.manager.SetTheme(m.state.CurrentTheme.Next())
		m.refresh(err)
	case key.Matches(msg, m.keys.GameToggle):
		_, err := m.manager.SetGameDisplayMode(m.state.GameDisplayMode.Toggle())
		m.refresh(err)
	case key.Matches(msg, m.keys.HideHome):
		_, err := m.manager.ToggleTeamNameHidden(scoreboard.Home)
		m.refresh(err)
	case key.Matches(msg, m.keys.HideAway):
		_, err := m.manager.ToggleTeamNameHidden(scoreboard.Away)
		m.refresh(err)

	case key.Matches(msg, m.keys.EditHome):
		return m.startEdit(scoreboard.Home)
	case key.Matches(msg, m.keys.EditAway):
		return m.startEdit(scoreboard.Away)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// adjustScore applies a score change and schedules the flash and win alert.
func (m Model) adjustScore(team scoreboard.Team, delta int) (tea.Model, tea.Cmd) {
	_, win, err := m.manager.AdjustScore(team, delta)
	m.refresh(err)
	if err != nil {
		return m, nil
	}

	m.flashSeq++
	t := team
	m.flash = &t
	cmds := []tea.Cmd{flashCmd(m.flashSeq)}

	if win != nil {
		m.alertSeq++
		m.alert = fmt.Sprintf("Congratulations! %s wins game %d!", m.state.TeamNames.Get(win.Team), win.GameNumber)
		cmds = append(cmds, alertCmd(m.alertFor, m.alertSeq))
	}
	return m, tea.Batch(cmds...)
}

// askConfirm switches to the y/n prompt for a destructive operation.
func (m *Model) askConfirm(prompt string, run func(bool) (scoreboard.MatchState, error)) {
	m.mode = modeConfirm
	m.confirm = &pendingConfirm{prompt: prompt, run: run}
}

// handleConfirmKey resolves the pending confirmation.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		_, err := m.confirm.run(true)
		m.refresh(err)
	case "n", "N", "esc":
	case "ctrl+c":
		return m.quit()
	default:
		return m, nil
	}

	m.mode = modeNormal
	m.confirm = nil
	return m, nil
}

// startEdit opens the name editor for team.
func (m Model) startEdit(team scoreboard.Team) (tea.Model, tea.Cmd) {
	m.mode = modeEditName
	m.editing = team
	m.input.Prompt = fmt.Sprintf("%s name: ", team)
	m.input.Placeholder = m.manager.Defaults().Name(team)
	m.input.SetValue(m.state.TeamNames.Get(team))
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// handleEditKey feeds the text input until Enter or Esc.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		_, err := m.manager.SetTeamName(m.editing, m.input.Value())
		m.refresh(err)
	case "esc":
	case "ctrl+c":
		m.input.Blur()
		return m.quit()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	m.input.Blur()
	m.mode = modeNormal
	return m, nil
}

// quit ends the program. Run does the final save.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// refresh re-reads the manager snapshot and records a rejected operation.
func (m *Model) refresh(err error) {
	m.state = m.manager.Snapshot()
	m.lastErr = err
}

// State returns the snapshot the model last rendered.
func (m Model) State() scoreboard.MatchState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	styles := StylesFor(m.state.CurrentTheme)

	var prompt string
	switch m.mode {
	case modeConfirm:
		prompt = styles.Prompt.Render(m.confirm.prompt + " (y/n)")
	case modeEditName:
		prompt = m.input.View()
	}

	var alert string
	if m.alert != "" {
		alert = styles.Alert.Render(m.alert)
	}

	var status string
	switch {
	case m.lastErr != nil:
		status = styles.Error.Render(m.lastErr.Error())
	case m.manager.SaveErr() != nil:
		status = styles.Error.Render("not saved: " + m.manager.SaveErr().Error())
	case !m.state.Timestamp.IsZero():
		status = styles.Status.Render("saved " + m.state.Timestamp.Local().Format(time.TimeOnly))
	}

	return joinLines(
		centerText(renderBoard(m.state, styles, m.flash), m.width),
		centerText(alert, m.width),
		centerText(prompt, m.width),
		centerText(status, m.width),
		styles.Help.Render(m.help.View(m.keys)),
	)
}

// Run starts the Bubble Tea program and saves once more when it exits.
func Run(manager *scoreboard.Manager, cfg config.ScoreboardConfig, width, height int) error {
	model := NewModel(manager, cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return finalSave(manager, err)
}

// finalSave writes the state once more after the program exits, however it
// exited. A run error takes precedence over a save error.
func finalSave(manager *scoreboard.Manager, runErr error) error {
	saveErr := manager.Save()
	if runErr != nil {
		return runErr
	}
	return saveErr
}
