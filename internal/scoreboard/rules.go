package scoreboard

import "fmt"

// Rules decide when a game is won.
type Rules struct {
	WinScore  int // minimum points to win a game
	WinMargin int // minimum lead over the opponent
}

// DefaultRules returns table tennis rules: 11 points, win by 2.
func DefaultRules() Rules {
	return Rules{WinScore: 11, WinMargin: 2}
}

// Validate checks that the thresholds are usable.
func (r Rules) Validate() error {
	if r.WinScore < 1 {
		return fmt.Errorf("%w: win score must be at least 1, got %d", ErrInvalidArgument, r.WinScore)
	}
	if r.WinMargin < 1 {
		return fmt.Errorf("%w: win margin must be at least 1, got %d", ErrInvalidArgument, r.WinMargin)
	}
	return nil
}

// HasWon reports whether team satisfies the win condition in s.
func (r Rules) HasWon(s MatchState, team Team) bool {
	return s.Score(team) >= r.WinScore && s.Lead(team) >= r.WinMargin
}

// WinEvent is raised when a team crosses the winning threshold.
type WinEvent struct {
	Team       Team
	GameNumber int
}

// String renders the announcement shown to players.
func (e WinEvent) String() string {
	return fmt.Sprintf("%s wins game %d!", e.Team, e.GameNumber)
}
