package scoreboard

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DefaultKey is the storage slot the scoreboard record lives under.
const DefaultKey = "pingPongScoreboard"

// KV is the durable key-value slot the adapter writes to.
// storage.Store and storage.Memory implement it.
type KV interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// errMalformed marks a stored record that is not a JSON object.
var errMalformed = errors.New("scoreboard: malformed record")

// Adapter serializes MatchState to a single KV slot and restores it.
type Adapter struct {
	kv     KV
	key    string
	logger *log.Logger
	now    func() time.Time
}

// NewAdapter creates an adapter over kv. An empty key selects DefaultKey and
// a nil logger discards output.
func NewAdapter(kv KV, key string, logger *log.Logger) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Adapter{
		kv:     kv,
		key:    key,
		logger: logger,
		now:    time.Now,
	}
}

// Key returns the slot name.
func (a *Adapter) Key() string {
	return a.key
}

// Save stamps the state with the current time and overwrites the slot.
// It returns the stamp that was written.
func (a *Adapter) Save(s MatchState) (time.Time, error) {
	stamp := time.UnixMilli(a.now().UnixMilli())
	s.Timestamp = stamp

	payload, err := Encode(s)
	if err != nil {
		return time.Time{}, err
	}
	if err := a.kv.Set(a.key, payload); err != nil {
		return time.Time{}, fmt.Errorf("scoreboard: cannot save state: %w", err)
	}
	return stamp, nil
}

// Load reads the slot and merges it over base field by field.
// A missing, unreadable or malformed record yields base and false; the
// failure is logged, never returned.
func (a *Adapter) Load(base MatchState) (MatchState, bool) {
	raw, found, err := a.kv.Get(a.key)
	if err != nil {
		a.logger.Warn("cannot read stored state, using defaults", "key", a.key, "error", err)
		return base, false
	}
	if !found {
		return base, false
	}

	merged, skipped, err := Decode(raw, base)
	if err != nil {
		a.logger.Error("stored state is malformed, using defaults", "key", a.key, "error", err)
		return base, false
	}
	for _, field := range skipped {
		a.logger.Warn("ignoring invalid stored field", "field", field)
	}
	return merged, true
}

// Clear removes the slot entirely.
func (a *Adapter) Clear() error {
	if err := a.kv.Delete(a.key); err != nil {
		return fmt.Errorf("scoreboard: cannot clear state: %w", err)
	}
	return nil
}

// Encode renders the full record as JSON.
func Encode(s MatchState) (string, error) {
	fields := []struct {
		path  string
		value any
	}{
		{"scores.home", s.Scores.Home},
		{"scores.away", s.Scores.Away},
		{"gameNumber", s.GameNumber},
		{"currentTheme", string(s.CurrentTheme)},
		{"gameDisplayMode", string(s.GameDisplayMode)},
		{"hiddenTeams.home", s.HiddenTeams.Home},
		{"hiddenTeams.away", s.HiddenTeams.Away},
		{"teamNames.home", s.TeamNames.Home},
		{"teamNames.away", s.TeamNames.Away},
		{"timestamp", unixMilli(s.Timestamp)},
	}

	out := ""
	for _, f := range fields {
		var err error
		out, err = sjson.Set(out, f.path, f.value)
		if err != nil {
			return "", fmt.Errorf("scoreboard: cannot encode %s: %w", f.path, err)
		}
	}
	return out, nil
}

// Decode merges a stored record over base. Each leaf overrides base only when
// it is present and valid; skipped lists the leaves that were present but
// rejected. Extra fields are ignored.
func Decode(raw string, base MatchState) (merged MatchState, skipped []string, err error) {
	if !gjson.Valid(raw) {
		return base, nil, fmt.Errorf("%w: invalid JSON", errMalformed)
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return base, nil, fmt.Errorf("%w: expected object, got %s", errMalformed, doc.Type)
	}

	merged = base
	skip := func(path string) { skipped = append(skipped, path) }

	for _, team := range Teams {
		path := "scores." + string(team)
		if v := doc.Get(path); v.Exists() {
			if n, ok := wholeNumber(v); ok && n >= 0 {
				merged.Scores.Set(team, n)
			} else {
				skip(path)
			}
		}

		path = "hiddenTeams." + string(team)
		if v := doc.Get(path); v.Exists() {
			if v.IsBool() {
				merged.HiddenTeams.Set(team, v.Bool())
			} else {
				skip(path)
			}
		}

		path = "teamNames." + string(team)
		if v := doc.Get(path); v.Exists() {
			if name := strings.TrimSpace(v.Str); v.Type == gjson.String && name != "" {
				merged.TeamNames.Set(team, name)
			} else {
				skip(path)
			}
		}
	}

	if v := doc.Get("gameNumber"); v.Exists() {
		if n, ok := wholeNumber(v); ok && n >= 1 {
			merged.GameNumber = n
		} else {
			skip("gameNumber")
		}
	}

	if v := doc.Get("currentTheme"); v.Exists() {
		if theme, perr := ParseTheme(v.Str); v.Type == gjson.String && perr == nil {
			merged.CurrentTheme = theme
		} else {
			skip("currentTheme")
		}
	}

	if v := doc.Get("gameDisplayMode"); v.Exists() {
		if mode, perr := ParseDisplayMode(v.Str); v.Type == gjson.String && perr == nil {
			merged.GameDisplayMode = mode
		} else {
			skip("gameDisplayMode")
		}
	}

	if v := doc.Get("timestamp"); v.Exists() {
		if ms, ok := wholeNumber(v); ok {
			merged.Timestamp = fromUnixMilli(int64(ms))
		} else {
			skip("timestamp")
		}
	}

	return merged, skipped, nil
}

// wholeNumber accepts JSON numbers without a fractional part that fit in an
// int. Out of range values are rejected rather than wrapped.
func wholeNumber(v gjson.Result) (int, bool) {
	if v.Type != gjson.Number {
		return 0, false
	}
	if n, err := strconv.ParseInt(v.Raw, 10, strconv.IntSize); err == nil {
		return int(n), true
	}
	// Exponent or trailing-zero forms such as 1e3 or 4.0
	if v.Num != math.Trunc(v.Num) || math.IsInf(v.Num, 0) {
		return 0, false
	}
	if v.Num >= float64(math.MaxInt) || v.Num < float64(math.MinInt) {
		return 0, false
	}
	return int(v.Num), true
}

// unixMilli encodes the zero time as 0 so it survives a round trip.
func unixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromUnixMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
