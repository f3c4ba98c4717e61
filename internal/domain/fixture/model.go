package fixture

import "time"

const (
	RoundFirstLeg  = 1
	RoundSecondLeg = 2
)

// Fixture is one scheduled pairing inside a tournament. The goal pair is
// either fully set (played) or fully nil (pending).
type Fixture struct {
	ID               string
	TournamentID     string
	Round            int
	Sequence         int
	HomeCompetitorID string
	AwayCompetitorID string
	HomeGoals        *int
	AwayGoals        *int
	PlayedAt         *time.Time
}

func (f Fixture) IsPlayed() bool {
	return f.HomeGoals != nil && f.AwayGoals != nil
}

func (f Fixture) Score() (Score, bool) {
	if !f.IsPlayed() {
		return Score{}, false
	}
	return Score{Home: *f.HomeGoals, Away: *f.AwayGoals}, true
}

// Involves reports whether competitorID plays in f.
func (f Fixture) Involves(competitorID string) bool {
	return f.HomeCompetitorID == competitorID || f.AwayCompetitorID == competitorID
}

// CountPending returns how many fixtures still lack a result.
func CountPending(fixtures []Fixture) int {
	pending := 0
	for _, item := range fixtures {
		if !item.IsPlayed() {
			pending++
		}
	}
	return pending
}
