// Package scoreboard holds the match state of a two-team scoreboard and the
// operations that mutate it. It has no terminal or storage dependencies; the
// platform supplies a KV slot and renders the snapshots it gets back.
package scoreboard

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for unknown teams, themes or display modes.
	ErrInvalidArgument = errors.New("scoreboard: invalid argument")

	// ErrNotConfirmed is returned when a destructive operation is called
	// without a confirmed decision.
	ErrNotConfirmed = errors.New("scoreboard: operation not confirmed")
)

// Team identifies one of the two fixed sides.
type Team string

const (
	Home Team = "home"
	Away Team = "away"
)

// Teams lists both sides in display order.
var Teams = [2]Team{Home, Away}

// ParseTeam validates a team id.
func ParseTeam(s string) (Team, error) {
	switch Team(s) {
	case Home, Away:
		return Team(s), nil
	}
	return "", fmt.Errorf("%w: unknown team %q", ErrInvalidArgument, s)
}

// Opponent returns the other side.
func (t Team) Opponent() Team {
	if t == Home {
		return Away
	}
	return Home
}

// Valid reports whether t is home or away.
func (t Team) Valid() bool {
	return t == Home || t == Away
}

// Theme is a named visual preset applied by the presentation layer.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeBright  Theme = "bright"
	ThemeLED     Theme = "led"
	ThemeRedBlue Theme = "red-blue"
)

// Themes lists every theme in cycling order.
var Themes = []Theme{ThemeDefault, ThemeBright, ThemeLED, ThemeRedBlue}

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown theme %q", ErrInvalidArgument, s)
}

// Next returns the theme after t, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th == t {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeDefault
}

// DisplayMode controls whether the game counter is rendered.
type DisplayMode string

const (
	DisplayShow DisplayMode = "show"
	DisplayHide DisplayMode = "hide"
)

// ParseDisplayMode validates a display mode.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch DisplayMode(s) {
	case DisplayShow, DisplayHide:
		return DisplayMode(s), nil
	}
	return "", fmt.Errorf("%w: unknown display mode %q", ErrInvalidArgument, s)
}

// Toggle flips between show and hide.
func (d DisplayMode) Toggle() DisplayMode {
	if d == DisplayHide {
		return DisplayShow
	}
	return DisplayHide
}

// PerTeam holds one value per side. It is a fixed pair rather than a map so
// the team set can never grow or shrink.
type PerTeam[T any] struct {
	Home T
	Away T
}

// Get returns the value for team. Callers validate team first.
func (p PerTeam[T]) Get(team Team) T {
	if team == Away {
		return p.Away
	}
	return p.Home
}

// Set stores v for team.
func (p *PerTeam[T]) Set(team Team, v T) {
	if team == Away {
		p.Away = v
		return
	}
	p.Home = v
}
