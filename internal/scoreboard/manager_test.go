package scoreboard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, opts ...Option) (*Manager, *fakeKV) {
	t.Helper()
	kv := newFakeKV()
	return NewManager(NewAdapter(kv, "", nil), opts...), kv
}

// withScores seeds the scores directly, bypassing win detection.
func withScores(m *Manager, home, away int) {
	m.mu.Lock()
	m.state.Scores = PerTeam[int]{Home: home, Away: away}
	m.mu.Unlock()
}

func TestNewManagerDefaults(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Snapshot()

	assert.Equal(t, PerTeam[int]{}, s.Scores)
	assert.Equal(t, 1, s.GameNumber)
	assert.Equal(t, ThemeDefault, s.CurrentTheme)
	assert.Equal(t, DisplayShow, s.GameDisplayMode)
	assert.Equal(t, PerTeam[bool]{}, s.HiddenTeams)
	assert.Equal(t, PerTeam[string]{Home: "HOME", Away: "AWAY"}, s.TeamNames)
	assert.True(t, s.Timestamp.IsZero())
}

func TestAdjustScoreClamps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"increment", 3, 1, 4},
		{"decrement", 3, -1, 2},
		{"clamp at zero", 0, -1, 0},
		{"large negative", 5, -100, 0},
		{"min int", 5, math.MinInt, 0},
		{"max int saturates", 5, math.MaxInt, math.MaxInt},
		{"zero delta", 7, 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t)
			withScores(m, tt.start, 0)

			s, _, err := m.AdjustScore(Home, tt.delta)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Scores.Home)
			assert.Equal(t, 0, s.Scores.Away)
		})
	}
}

func TestAdjustScoreWinEvent(t *testing.T) {
	tests := []struct {
		name     string
		home     int
		away     int
		team     Team
		delta    int
		wantWin  bool
		wantHome int
		wantAway int
	}{
		{"two point lead at eleven", 10, 9, Home, 1, true, 11, 9},
		{"one point lead at eleven", 10, 10, Home, 1, false, 11, 10},
		{"deuce resolved", 12, 11, Home, 1, true, 13, 11},
		{"below threshold", 9, 0, Home, 1, false, 10, 0},
		{"away wins", 3, 10, Away, 1, true, 3, 11},
		{"already past threshold", 11, 9, Home, 1, false, 12, 9},
		{"decrement never wins", 13, 9, Home, -1, false, 12, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t)
			withScores(m, tt.home, tt.away)

			s, win, err := m.AdjustScore(tt.team, tt.delta)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHome, s.Scores.Home)
			assert.Equal(t, tt.wantAway, s.Scores.Away)
			if tt.wantWin {
				require.NotNil(t, win)
				assert.Equal(t, WinEvent{Team: tt.team, GameNumber: 1}, *win)
			} else {
				assert.Nil(t, win)
			}
		})
	}
}

func TestWinEventFiresOncePerCrossing(t *testing.T) {
	var wins []WinEvent
	m, _ := newTestManager(t, WithWinHandler(func(e WinEvent) { wins = append(wins, e) }))
	withScores(m, 10, 9)

	_, _, _ = m.AdjustScore(Home, 1) // 11:9 crosses
	_, _, _ = m.AdjustScore(Home, 1) // 12:9 stays past
	_, _, _ = m.AdjustScore(Away, 2) // 12:11 drops below margin for home
	_, _, _ = m.AdjustScore(Home, 1) // 13:11 crosses again

	require.Len(t, wins, 2)
	assert.Equal(t, Home, wins[0].Team)
	assert.Equal(t, Home, wins[1].Team)
}

func TestWinEventCarriesGameNumber(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.AdjustGame(2)
	require.NoError(t, err)
	withScores(m, 0, 10)

	_, win, err := m.AdjustScore(Away, 1)
	require.NoError(t, err)
	require.NotNil(t, win)
	assert.Equal(t, 3, win.GameNumber)
	assert.Equal(t, "away wins game 3!", win.String())
	assert.Equal(t, 3, m.Snapshot().GameNumber, "a win must not advance the game")
}

func TestWinEventRespectsRules(t *testing.T) {
	m, _ := newTestManager(t, WithRules(Rules{WinScore: 21, WinMargin: 2}))
	withScores(m, 10, 8)

	_, win, _ := m.AdjustScore(Home, 1)
	assert.Nil(t, win)

	withScores(m, 20, 18)
	_, win, _ = m.AdjustScore(Home, 1)
	assert.NotNil(t, win)
}

func TestNonScoreOperationsNeverWin(t *testing.T) {
	var wins int
	m, _ := newTestManager(t, WithWinHandler(func(WinEvent) { wins++ }))
	withScores(m, 11, 0)

	_, _ = m.AdjustGame(1)
	_, _ = m.ResetTeamScore(Away, true)
	_, _ = m.ToggleTeamNameHidden(Home)
	_, _ = m.SetTheme(ThemeLED)

	assert.Zero(t, wins)
}

func TestAdjustGameClamps(t *testing.T) {
	m, _ := newTestManager(t)

	s, err := m.AdjustGame(-1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.GameNumber)

	s, _ = m.AdjustGame(4)
	assert.Equal(t, 5, s.GameNumber)

	s, _ = m.AdjustGame(-2)
	assert.Equal(t, 3, s.GameNumber)

	s, _ = m.AdjustGame(math.MinInt)
	assert.Equal(t, 1, s.GameNumber)
}

func TestResetTeamScore(t *testing.T) {
	m, _ := newTestManager(t)
	withScores(m, 7, 4)

	s, err := m.ResetTeamScore(Home, false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, 7, s.Scores.Home)

	s, err = m.ResetTeamScore(Home, true)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Scores.Home)
	assert.Equal(t, 4, s.Scores.Away)
}

func TestResetAllKeepsPreferences(t *testing.T) {
	m, _ := newTestManager(t)
	_, _ = m.SetTheme(ThemeRedBlue)
	_, _ = m.SetGameDisplayMode(DisplayHide)
	_, _ = m.ToggleTeamNameHidden(Away)
	_, _ = m.SetTeamName(Home, "Lin")
	_, _ = m.AdjustGame(3)
	withScores(m, 9, 6)

	_, err := m.ResetAll(false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, 9, m.Snapshot().Scores.Home)

	s, err := m.ResetAll(true)
	require.NoError(t, err)
	assert.Equal(t, PerTeam[int]{}, s.Scores)
	assert.Equal(t, 1, s.GameNumber)
	assert.Equal(t, ThemeRedBlue, s.CurrentTheme)
	assert.Equal(t, DisplayHide, s.GameDisplayMode)
	assert.Equal(t, PerTeam[bool]{Away: true}, s.HiddenTeams)
	assert.Equal(t, "Lin", s.TeamNames.Home)
}

func TestToggleTeamNameHidden(t *testing.T) {
	m, _ := newTestManager(t)

	s, err := m.ToggleTeamNameHidden(Away)
	require.NoError(t, err)
	assert.True(t, s.NameHidden(Away))
	assert.False(t, s.NameHidden(Home))

	s, _ = m.ToggleTeamNameHidden(Away)
	assert.False(t, s.NameHidden(Away))
}

func TestSetTeamName(t *testing.T) {
	m, _ := newTestManager(t, WithDefaults(Defaults{
		Theme: ThemeDefault, DisplayMode: DisplayShow, HomeName: "Hosts", AwayName: "Guests",
	}))

	s, err := m.SetTeamName(Away, "  Tigers ")
	require.NoError(t, err)
	assert.Equal(t, "Tigers", s.TeamNames.Away)

	s, err = m.SetTeamName(Away, "   ")
	require.NoError(t, err)
	assert.Equal(t, "Guests", s.TeamNames.Away)
}

func TestInvalidArgumentsRejected(t *testing.T) {
	m, kv := newTestManager(t)
	withScores(m, 2, 3)
	before := m.Snapshot()

	_, _, err := m.AdjustScore(Team("visitors"), 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = m.ResetTeamScore(Team(""), true)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = m.ToggleTeamNameHidden(Team("HOME"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = m.SetTeamName(Team("x"), "name")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = m.SetTheme(Theme("neon"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = m.SetGameDisplayMode(DisplayMode("blink"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, before, m.Snapshot())
	assert.Zero(t, kv.sets, "rejected operations must not persist")
}

func TestMutationsPersist(t *testing.T) {
	m, kv := newTestManager(t)

	_, _, _ = m.AdjustScore(Away, 3)
	_, _ = m.SetTheme(ThemeLED)

	restored := NewManager(NewAdapter(kv, "", nil)).Snapshot()
	assert.Equal(t, 3, restored.Scores.Away)
	assert.Equal(t, ThemeLED, restored.CurrentTheme)
	assert.Equal(t, m.Snapshot(), restored)
}

func TestClearAll(t *testing.T) {
	m, kv := newTestManager(t)
	_, _, _ = m.AdjustScore(Home, 5)
	_, _ = m.SetTheme(ThemeBright)
	_, _ = m.ToggleTeamNameHidden(Home)

	_, err := m.ClearAll(false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Contains(t, kv.data, DefaultKey)

	s, err := m.ClearAll(true)
	require.NoError(t, err)
	assert.NotContains(t, kv.data, DefaultKey)
	assert.Equal(t, DefaultDefaults().State(), s)

	// Restart: nothing stored, so the documented defaults come back.
	restarted := NewManager(NewAdapter(kv, "", nil)).Snapshot()
	assert.Equal(t, PerTeam[int]{}, restarted.Scores)
	assert.Equal(t, 1, restarted.GameNumber)
	assert.Equal(t, ThemeDefault, restarted.CurrentTheme)
	assert.Equal(t, DisplayShow, restarted.GameDisplayMode)
	assert.Equal(t, PerTeam[bool]{}, restarted.HiddenTeams)
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	m, kv := newTestManager(t)
	kv.failSet = true

	s, _, err := m.AdjustScore(Home, 2)
	require.NoError(t, err, "storage failures must not reject the operation")
	assert.Equal(t, 2, s.Scores.Home)
	assert.ErrorIs(t, m.SaveErr(), errUnavailable)
	assert.ErrorIs(t, m.Save(), errUnavailable)

	kv.failSet = false
	require.NoError(t, m.Save())
	assert.NoError(t, m.SaveErr())
	assert.False(t, m.Snapshot().Timestamp.IsZero())
}

func TestClearAllResetsSaveError(t *testing.T) {
	m, kv := newTestManager(t)
	kv.failSet = true
	_, _, _ = m.AdjustScore(Away, 1)
	require.Error(t, m.SaveErr())

	_, err := m.ClearAll(true)
	require.NoError(t, err)
	assert.NoError(t, m.SaveErr(), "a successful clear leaves nothing unsaved")
}

func TestChangeHandlerReceivesSnapshot(t *testing.T) {
	var got []MatchState
	m, _ := newTestManager(t, WithChangeHandler(func(s MatchState) { got = append(got, s) }))

	_, _, _ = m.AdjustScore(Home, 1)
	_, _ = m.AdjustGame(1)
	_, _ = m.SetTheme(Theme("bogus"))

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Scores.Home)
	assert.Equal(t, 2, got[1].GameNumber)
}

func TestCallbacksMayReenterManager(t *testing.T) {
	var m *Manager
	var seen MatchState
	m, _ = newTestManager(t, WithChangeHandler(func(MatchState) { seen = m.Snapshot() }))

	_, _, _ = m.AdjustScore(Away, 1)
	assert.Equal(t, 1, seen.Scores.Away)
}
