package scoreboard

import "time"

// MatchState is the whole scoreboard aggregate.
type MatchState struct {
	Scores          PerTeam[int]
	GameNumber      int
	CurrentTheme    Theme
	GameDisplayMode DisplayMode
	HiddenTeams     PerTeam[bool]
	TeamNames       PerTeam[string]
	Timestamp       time.Time // last persisted, informational only
}

// Defaults describes the first-run state. Config may override the preferences.
type Defaults struct {
	Theme       Theme
	DisplayMode DisplayMode
	HomeName    string
	AwayName    string
}

// DefaultDefaults returns the built-in first-run preferences.
func DefaultDefaults() Defaults {
	return Defaults{
		Theme:       ThemeDefault,
		DisplayMode: DisplayShow,
		HomeName:    "HOME",
		AwayName:    "AWAY",
	}
}

// State builds a fresh MatchState from the defaults.
func (d Defaults) State() MatchState {
	return MatchState{
		GameNumber:      1,
		CurrentTheme:    d.Theme,
		GameDisplayMode: d.DisplayMode,
		TeamNames:       PerTeam[string]{Home: d.HomeName, Away: d.AwayName},
	}
}

// Name returns the default label for team.
func (d Defaults) Name(team Team) string {
	if team == Away {
		return d.AwayName
	}
	return d.HomeName
}

// Score returns the score of team.
func (s MatchState) Score(team Team) int {
	return s.Scores.Get(team)
}

// Lead returns team's score minus the opponent's.
func (s MatchState) Lead(team Team) int {
	return s.Scores.Get(team) - s.Scores.Get(team.Opponent())
}

// NameHidden reports whether team's label is suppressed.
func (s MatchState) NameHidden(team Team) bool {
	return s.HiddenTeams.Get(team)
}

// GameVisible reports whether the game counter should be rendered.
func (s MatchState) GameVisible() bool {
	return s.GameDisplayMode != DisplayHide
}
