package scoreboard

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func sampleState() MatchState {
	return MatchState{
		Scores:          PerTeam[int]{Home: 7, Away: 11},
		GameNumber:      3,
		CurrentTheme:    ThemeLED,
		GameDisplayMode: DisplayHide,
		HiddenTeams:     PerTeam[bool]{Home: true},
		TeamNames:       PerTeam[string]{Home: "Lin", Away: "Ma"},
	}
}

func TestAdapterRoundTrip(t *testing.T) {
	kv := newFakeKV()
	a := NewAdapter(kv, "", nil)
	fixedClock(a, time.Date(2025, 3, 14, 9, 26, 53, 589_793_238, time.UTC))

	state := sampleState()
	stamp, err := a.Save(state)
	require.NoError(t, err)
	state.Timestamp = stamp

	loaded, found := a.Load(DefaultDefaults().State())
	require.True(t, found)
	assert.Equal(t, state, loaded)
	assert.Equal(t, int64(1741944413589), loaded.Timestamp.UnixMilli())
}

func TestEncodeLayout(t *testing.T) {
	s := sampleState()
	s.Timestamp = time.UnixMilli(1700000000000)

	raw, err := Encode(s)
	require.NoError(t, err)

	doc := gjson.Parse(raw)
	assert.Equal(t, int64(7), doc.Get("scores.home").Int())
	assert.Equal(t, int64(11), doc.Get("scores.away").Int())
	assert.Equal(t, int64(3), doc.Get("gameNumber").Int())
	assert.Equal(t, "led", doc.Get("currentTheme").String())
	assert.Equal(t, "hide", doc.Get("gameDisplayMode").String())
	assert.True(t, doc.Get("hiddenTeams.home").Bool())
	assert.False(t, doc.Get("hiddenTeams.away").Bool())
	assert.Equal(t, "Ma", doc.Get("teamNames.away").String())
	assert.Equal(t, int64(1700000000000), doc.Get("timestamp").Int())
}

func TestLoadMissingSlot(t *testing.T) {
	a := NewAdapter(newFakeKV(), "", nil)
	base := DefaultDefaults().State()

	loaded, found := a.Load(base)
	assert.False(t, found)
	assert.Equal(t, base, loaded)
}

func TestLoadMalformedFallsBackToDefaults(t *testing.T) {
	for _, raw := range []string{
		"{not json",
		"",
		"[1,2,3]",
		`"just a string"`,
		"42",
	} {
		t.Run(raw, func(t *testing.T) {
			kv := newFakeKV()
			kv.data[DefaultKey] = raw

			var buf bytes.Buffer
			a := NewAdapter(kv, "", log.New(&buf))
			base := DefaultDefaults().State()

			loaded, found := a.Load(base)
			assert.False(t, found)
			assert.Equal(t, base, loaded)
			assert.Contains(t, buf.String(), "malformed")
		})
	}
}

func TestLoadReadFailureFallsBackToDefaults(t *testing.T) {
	kv := newFakeKV()
	kv.failGet = true
	base := DefaultDefaults().State()

	loaded, found := NewAdapter(kv, "", nil).Load(base)
	assert.False(t, found)
	assert.Equal(t, base, loaded)
}

func TestLoadPartialRecordMergesFieldByField(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T, s MatchState)
	}{
		{
			name: "missing theme keeps default",
			raw:  `{"scores":{"home":4,"away":2},"gameNumber":2}`,
			check: func(t *testing.T, s MatchState) {
				assert.Equal(t, ThemeDefault, s.CurrentTheme)
				assert.Equal(t, 4, s.Scores.Home)
				assert.Equal(t, 2, s.GameNumber)
			},
		},
		{
			name: "partial scores keep the other team",
			raw:  `{"scores":{"away":9}}`,
			check: func(t *testing.T, s MatchState) {
				assert.Equal(t, 0, s.Scores.Home)
				assert.Equal(t, 9, s.Scores.Away)
			},
		},
		{
			name: "partial hidden flags",
			raw:  `{"hiddenTeams":{"away":true}}`,
			check: func(t *testing.T, s MatchState) {
				assert.Equal(t, PerTeam[bool]{Away: true}, s.HiddenTeams)
			},
		},
		{
			name: "partial names",
			raw:  `{"teamNames":{"home":"Dragons"}}`,
			check: func(t *testing.T, s MatchState) {
				assert.Equal(t, "Dragons", s.TeamNames.Home)
				assert.Equal(t, "AWAY", s.TeamNames.Away)
			},
		},
		{
			name: "extra fields ignored",
			raw:  `{"gameNumber":4,"servingTeam":"home","scores":{"home":1,"away":1,"referee":3}}`,
			check: func(t *testing.T, s MatchState) {
				assert.Equal(t, 4, s.GameNumber)
				assert.Equal(t, PerTeam[int]{Home: 1, Away: 1}, s.Scores)
			},
		},
		{
			name: "invalid leaves keep defaults",
			raw: `{"scores":{"home":-3,"away":"5"},"gameNumber":0,"currentTheme":"neon",` +
				`"gameDisplayMode":true,"hiddenTeams":{"home":"yes"},"teamNames":{"away":""},"timestamp":"now"}`,
			check: func(t *testing.T, s MatchState) {
				assert.Equal(t, DefaultDefaults().State(), s)
			},
		},
		{
			name: "fractional numbers rejected",
			raw:  `{"scores":{"home":2.5},"gameNumber":1.5}`,
			check: func(t *testing.T, s MatchState) {
				assert.Equal(t, 0, s.Scores.Home)
				assert.Equal(t, 1, s.GameNumber)
			},
		},
		{
			name: "whole numbers in exponent form accepted",
			raw:  `{"scores":{"home":1e1,"away":4.0},"gameNumber":2E0}`,
			check: func(t *testing.T, s MatchState) {
				assert.Equal(t, PerTeam[int]{Home: 10, Away: 4}, s.Scores)
				assert.Equal(t, 2, s.GameNumber)
			},
		},
		{
			name: "numbers beyond int range rejected",
			raw:  `{"scores":{"home":18446744073709551617,"away":9223372036854775808},"gameNumber":18446744073709551618}`,
			check: func(t *testing.T, s MatchState) {
				assert.Equal(t, PerTeam[int]{}, s.Scores)
				assert.Equal(t, 1, s.GameNumber)
			},
		},
		{
			name: "huge exponent rejected",
			raw:  `{"scores":{"home":1e30},"gameNumber":-1e30}`,
			check: func(t *testing.T, s MatchState) {
				assert.Equal(t, 0, s.Scores.Home)
				assert.Equal(t, 1, s.GameNumber)
			},
		},
		{
			name: "empty object",
			raw:  `{}`,
			check: func(t *testing.T, s MatchState) {
				assert.Equal(t, DefaultDefaults().State(), s)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newFakeKV()
			kv.data[DefaultKey] = tt.raw

			loaded, found := NewAdapter(kv, "", nil).Load(DefaultDefaults().State())
			require.True(t, found)
			tt.check(t, loaded)
		})
	}
}

func TestDecodeReportsSkippedFields(t *testing.T) {
	_, skipped, err := Decode(`{"scores":{"home":-1},"currentTheme":"neon","gameNumber":3}`, DefaultDefaults().State())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"scores.home", "currentTheme"}, skipped)
}

func TestDecodeReportsOverflowingNumbers(t *testing.T) {
	base := DefaultDefaults().State()
	merged, skipped, err := Decode(`{"scores":{"home":18446744073709551617},"gameNumber":18446744073709551618}`, base)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"scores.home", "gameNumber"}, skipped)
	assert.Equal(t, base, merged)
}

func TestLoadLegacyBrowserRecord(t *testing.T) {
	// Shape written by the browser version, including the informational timestamp.
	raw := `{"scores":{"home":10,"away":8},"gameNumber":2,"currentTheme":"red-blue",` +
		`"gameDisplayMode":"show","hiddenTeams":{"home":false,"away":false},` +
		`"teamNames":{"home":"主隊","away":"客隊"},"timestamp":1718000000000}`
	kv := newFakeKV()
	kv.data[DefaultKey] = raw

	s, found := NewAdapter(kv, "", nil).Load(DefaultDefaults().State())
	require.True(t, found)
	assert.Equal(t, PerTeam[int]{Home: 10, Away: 8}, s.Scores)
	assert.Equal(t, ThemeRedBlue, s.CurrentTheme)
	assert.Equal(t, "客隊", s.TeamNames.Away)
	assert.Equal(t, int64(1718000000000), s.Timestamp.UnixMilli())
}

func TestAdapterClear(t *testing.T) {
	kv := newFakeKV()
	a := NewAdapter(kv, "custom", nil)
	assert.Equal(t, "custom", a.Key())
	assert.Equal(t, DefaultKey, NewAdapter(kv, "", nil).Key())

	_, err := a.Save(sampleState())
	require.NoError(t, err)
	assert.Contains(t, kv.data, "custom")

	require.NoError(t, a.Clear())
	assert.NotContains(t, kv.data, "custom")

	_, found := a.Load(DefaultDefaults().State())
	assert.False(t, found)
}

func TestAdapterSaveFailure(t *testing.T) {
	kv := newFakeKV()
	kv.failSet = true

	_, err := NewAdapter(kv, "", nil).Save(sampleState())
	assert.ErrorIs(t, err, errUnavailable)
}
