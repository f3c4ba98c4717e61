package fixture

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// MaxGoals is the largest goal count the fixtures table can store.
const MaxGoals = math.MaxInt32

// Score is a validated result: both sides are in [0, MaxGoals].
type Score struct {
	Home int
	Away int
}

func NewScore(home, away int) (Score, error) {
	if home < 0 || away < 0 {
		return Score{}, errors.Wrapf(ErrInvalidScore, "got %d-%d", home, away)
	}
	if home > MaxGoals || away > MaxGoals {
		return Score{}, errors.Wrapf(ErrInvalidScore, "got %d-%d, max is %d", home, away, MaxGoals)
	}
	return Score{Home: home, Away: away}, nil
}

// ParseScore accepts only base-10 integer text, so "1.5", "-1", "" and "2e1"
// are all rejected.
func ParseScore(home, away string) (Score, error) {
	h, err := parseGoals(home)
	if err != nil {
		return Score{}, errors.Wrap(err, "home goals")
	}
	a, err := parseGoals(away)
	if err != nil {
		return Score{}, errors.Wrap(err, "away goals")
	}
	return NewScore(h, a)
}

func parseGoals(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, errors.Wrap(ErrInvalidScore, "value is missing")
	}
	goals, err := strconv.ParseInt(value, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return 0, errors.Wrapf(ErrInvalidScore, "%q exceeds %d", value, MaxGoals)
	}
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidScore, "%q is not an integer", value)
	}
	if goals < 0 {
		return 0, errors.Wrapf(ErrInvalidScore, "%d is negative", goals)
	}
	return int(goals), nil
}

// ApplyResult returns a copy of f carrying score and the completion time.
// An existing result is overwritten.
func (f Fixture) ApplyResult(score Score, playedAt time.Time) Fixture {
	home, away := score.Home, score.Away
	at := playedAt
	f.HomeGoals = &home
	f.AwayGoals = &away
	f.PlayedAt = &at
	return f
}

// Outcome from the home side's perspective.
type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomeHomeWin
	OutcomeAwayWin
)

func (s Score) Outcome() Outcome {
	switch {
	case s.Home > s.Away:
		return OutcomeHomeWin
	case s.Home < s.Away:
		return OutcomeAwayWin
	default:
		return OutcomeDraw
	}
}
