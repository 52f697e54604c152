package scoreboard

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Manager owns the MatchState. Every mutation is applied under one lock,
// persisted, and reported back as a snapshot.
type Manager struct {
	mu       sync.Mutex
	state    MatchState
	adapter  *Adapter
	rules    Rules
	defaults Defaults
	logger   *log.Logger
	saveErr  error

	onChange func(MatchState)
	onWin    func(WinEvent)
}

// Option configures a Manager.
type Option func(*Manager)

// WithRules sets the win condition.
func WithRules(r Rules) Option {
	return func(m *Manager) { m.rules = r }
}

// WithDefaults sets the first-run preferences used at startup and by ClearAll.
func WithDefaults(d Defaults) Option {
	return func(m *Manager) { m.defaults = d }
}

// WithLogger sets the logger for persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithChangeHandler registers a callback invoked with the new snapshot after
// every mutation.
func WithChangeHandler(fn func(MatchState)) Option {
	return func(m *Manager) { m.onChange = fn }
}

// WithWinHandler registers a callback invoked for every win event.
func WithWinHandler(fn func(WinEvent)) Option {
	return func(m *Manager) { m.onWin = fn }
}

// NewManager restores the state from the adapter, falling back to defaults.
func NewManager(adapter *Adapter, opts ...Option) *Manager {
	m := &Manager{
		adapter:  adapter,
		rules:    DefaultRules(),
		defaults: DefaultDefaults(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}

	state, restored := adapter.Load(m.defaults.State())
	m.state = state
	if restored {
		m.logger.Info("restored scoreboard",
			"home", state.Scores.Home,
			"away", state.Scores.Away,
			"game", state.GameNumber,
		)
	}
	return m
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() MatchState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Rules returns the active win condition.
func (m *Manager) Rules() Rules {
	return m.rules
}

// Defaults returns the first-run preferences.
func (m *Manager) Defaults() Defaults {
	return m.defaults
}

// SaveErr returns the error of the most recent failed save, or nil once a
// later save succeeds.
func (m *Manager) SaveErr() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveErr
}

// Save persists the current state unconditionally.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persistLocked()
	return m.saveErr
}

// AdjustScore adds delta to team's score, clamped at zero. A win event is
// returned when the team newly satisfies the win condition; it is not raised
// again while the team stays past the threshold.
func (m *Manager) AdjustScore(team Team, delta int) (MatchState, *WinEvent, error) {
	if !team.Valid() {
		return m.Snapshot(), nil, invalidTeam(team)
	}

	m.mu.Lock()
	alreadyWon := m.rules.HasWon(m.state, team)
	m.state.Scores.Set(team, clampAdd(m.state.Score(team), delta, 0))

	var win *WinEvent
	if !alreadyWon && m.rules.HasWon(m.state, team) {
		win = &WinEvent{Team: team, GameNumber: m.state.GameNumber}
	}
	snap := m.commitLocked()
	m.mu.Unlock()

	m.notify(snap, win)
	return snap, win, nil
}

// AdjustGame adds delta to the game number, clamped at one.
func (m *Manager) AdjustGame(delta int) (MatchState, error) {
	return m.mutate(func(s *MatchState) {
		s.GameNumber = clampAdd(s.GameNumber, delta, 1)
	}), nil
}

// ResetTeamScore zeroes one team's score.
func (m *Manager) ResetTeamScore(team Team, confirmed bool) (MatchState, error) {
	if !team.Valid() {
		return m.Snapshot(), invalidTeam(team)
	}
	if !confirmed {
		return m.Snapshot(), ErrNotConfirmed
	}
	return m.mutate(func(s *MatchState) {
		s.Scores.Set(team, 0)
	}), nil
}

// ResetAll zeroes both scores and restarts at game one. Preferences and
// names are kept.
func (m *Manager) ResetAll(confirmed bool) (MatchState, error) {
	if !confirmed {
		return m.Snapshot(), ErrNotConfirmed
	}
	return m.mutate(func(s *MatchState) {
		s.Scores = PerTeam[int]{}
		s.GameNumber = 1
	}), nil
}

// ToggleTeamNameHidden flips the visibility of team's label.
func (m *Manager) ToggleTeamNameHidden(team Team) (MatchState, error) {
	if !team.Valid() {
		return m.Snapshot(), invalidTeam(team)
	}
	return m.mutate(func(s *MatchState) {
		s.HiddenTeams.Set(team, !s.HiddenTeams.Get(team))
	}), nil
}

// SetTheme replaces the current theme.
func (m *Manager) SetTheme(theme Theme) (MatchState, error) {
	if _, err := ParseTheme(string(theme)); err != nil {
		return m.Snapshot(), err
	}
	return m.mutate(func(s *MatchState) {
		s.CurrentTheme = theme
	}), nil
}

// SetGameDisplayMode replaces the game counter display mode.
func (m *Manager) SetGameDisplayMode(mode DisplayMode) (MatchState, error) {
	if _, err := ParseDisplayMode(string(mode)); err != nil {
		return m.Snapshot(), err
	}
	return m.mutate(func(s *MatchState) {
		s.GameDisplayMode = mode
	}), nil
}

// SetTeamName replaces team's label. A blank name restores the default.
func (m *Manager) SetTeamName(team Team, name string) (MatchState, error) {
	if !team.Valid() {
		return m.Snapshot(), invalidTeam(team)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = m.defaults.Name(team)
	}
	return m.mutate(func(s *MatchState) {
		s.TeamNames.Set(team, name)
	}), nil
}

// ClearAll erases the stored record and returns to the first-run state.
// The slot stays empty until the next save. A storage failure is returned,
// but the in-memory state is reset regardless.
func (m *Manager) ClearAll(confirmed bool) (MatchState, error) {
	if !confirmed {
		return m.Snapshot(), ErrNotConfirmed
	}

	m.mu.Lock()
	err := m.adapter.Clear()
	if err != nil {
		m.saveErr = err
		m.logger.Error("clear failed", "error", err)
	} else {
		m.saveErr = nil
	}
	m.state = m.defaults.State()
	snap := m.state
	m.mu.Unlock()

	m.notify(snap, nil)
	return snap, err
}

// mutate applies fn under the lock, persists and notifies.
func (m *Manager) mutate(fn func(*MatchState)) MatchState {
	m.mu.Lock()
	fn(&m.state)
	snap := m.commitLocked()
	m.mu.Unlock()

	m.notify(snap, nil)
	return snap
}

// commitLocked persists and returns the resulting snapshot.
func (m *Manager) commitLocked() MatchState {
	m.persistLocked()
	return m.state
}

// persistLocked saves the state. Failures leave the in-memory state intact.
func (m *Manager) persistLocked() {
	stamp, err := m.adapter.Save(m.state)
	if err != nil {
		if m.saveErr == nil {
			m.logger.Error("save failed, continuing in memory", "error", err)
		}
		m.saveErr = err
		return
	}
	if m.saveErr != nil {
		m.logger.Info("save recovered")
	}
	m.saveErr = nil
	m.state.Timestamp = stamp
}

// notify runs the callbacks outside the lock so they may call back in.
func (m *Manager) notify(snap MatchState, win *WinEvent) {
	if m.onChange != nil {
		m.onChange(snap)
	}
	if win != nil && m.onWin != nil {
		m.onWin(*win)
	}
}

func invalidTeam(team Team) error {
	return fmt.Errorf("%w: unknown team %q", ErrInvalidArgument, team)
}

// clampAdd returns max(floor, v+delta) without overflowing.
func clampAdd(v, delta, floor int) int {
	if delta > 0 && v > math.MaxInt-delta {
		return math.MaxInt
	}
	if delta < 0 && v < math.MinInt-delta {
		return floor
	}
	return max(floor, v+delta)
}
