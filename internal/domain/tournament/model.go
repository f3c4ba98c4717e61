package tournament

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
	"github.com/riskibarqy/fc-tournament/internal/domain/standing"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusCompleted
}

// Tournament carries a champion exactly when it is completed.
type Tournament struct {
	ID         string
	Name       string
	OwnerID    int64
	Status     Status
	ChampionID string
	CreatedAt  time.Time
}

func (t Tournament) IsCompleted() bool {
	return t.Status == StatusCompleted
}

func (t Tournament) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("tournament id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("tournament name is required")
	}
	if !t.Status.Valid() {
		return errors.Newf("unknown tournament status %q", t.Status)
	}
	if t.IsCompleted() != (t.ChampionID != "") {
		return errors.Newf("tournament %s: champion must be set exactly when completed", t.ID)
	}
	return nil
}

// Competitor is one roster slot: a display name bound to a catalog team.
// AccountID is zero for rosters entered without accounts.
type Competitor struct {
	ID           string
	TournamentID string
	AccountID    int64
	Name         string
	TeamID       string
	EntryIndex   int
}

func (c Competitor) Entrant() standing.Entrant {
	return standing.Entrant{ID: c.ID, Name: c.Name, TeamID: c.TeamID}
}

func Entrants(competitors []Competitor) []standing.Entrant {
	out := make([]standing.Entrant, 0, len(competitors))
	for _, item := range competitors {
		out = append(out, item.Entrant())
	}
	return out
}

// CompetitorIDs returns ids in roster (seed) order.
func CompetitorIDs(competitors []Competitor) []string {
	out := make([]string, 0, len(competitors))
	for _, item := range competitors {
		out = append(out, item.ID)
	}
	return out
}

// FindCompetitor returns the competitor with id, if present.
func FindCompetitor(competitors []Competitor, competitorID string) (Competitor, bool) {
	for _, item := range competitors {
		if item.ID == competitorID {
			return item, true
		}
	}
	return Competitor{}, false
}

// HasParticipant reports whether accountID holds a roster slot.
func HasParticipant(competitors []Competitor, accountID int64) bool {
	if accountID <= 0 {
		return false
	}
	for _, item := range competitors {
		if item.AccountID == accountID {
			return true
		}
	}
	return false
}

// Detail bundles what a tournament page shows.
type Detail struct {
	Tournament  Tournament
	Competitors []Competitor
	Fixtures    []fixture.Fixture
	Standings   []standing.Row
	Summary     standing.Summary
	Champion    *Competitor
}
