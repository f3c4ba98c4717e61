package tournament

import (
	"time"

	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
)

// ResultRecorded is published after a fixture result is stored.
type ResultRecorded struct {
	TournamentID string
	FixtureID    string
	Score        fixture.Score
	RecordedBy   int64
	RecordedAt   time.Time
}

// Completed is published when a tournament gains or changes its champion.
type Completed struct {
	TournamentID string
	ChampionID   string
	Changed      bool
	CompletedAt  time.Time
}
