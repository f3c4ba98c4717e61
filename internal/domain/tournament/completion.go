package tournament

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
	"github.com/riskibarqy/fc-tournament/internal/domain/standing"
)

// EditPolicy controls result edits once a tournament is completed.
type EditPolicy string

const (
	// EditPolicyRecompute allows edits and re-derives the champion.
	EditPolicyRecompute EditPolicy = "recompute"
	// EditPolicyLocked rejects edits on completed tournaments.
	EditPolicyLocked EditPolicy = "locked"
)

func ParseEditPolicy(raw string) (EditPolicy, error) {
	switch EditPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", EditPolicyRecompute:
		return EditPolicyRecompute, nil
	case EditPolicyLocked:
		return EditPolicyLocked, nil
	default:
		return "", errors.Newf("unknown result edit policy %q", raw)
	}
}

// CheckEditable rejects result writes the policy forbids.
func CheckEditable(t Tournament, policy EditPolicy) error {
	if t.IsCompleted() && policy == EditPolicyLocked {
		return errors.Wrapf(ErrTournamentCompleted, "tournament %s", t.ID)
	}
	return nil
}

type Action int

const (
	// ActionNone leaves the tournament as is.
	ActionNone Action = iota
	// ActionComplete moves an active tournament to completed.
	ActionComplete
	// ActionChangeChampion replaces the champion of a completed tournament.
	ActionChangeChampion
)

type Decision struct {
	Action     Action
	ChampionID string
	Pending    int
	Standings  []standing.Row
}

// Evaluate decides what completion means for t given its current fixtures.
// With pending fixtures nothing happens. With none pending the leader of the
// freshly computed table is the champion: an active tournament completes, and
// a completed one changes champion only when the leader moved.
func Evaluate(t Tournament, competitors []Competitor, fixtures []fixture.Fixture) Decision {
	decision := Decision{Pending: fixture.CountPending(fixtures)}
	if decision.Pending > 0 || len(fixtures) == 0 {
		return decision
	}

	decision.Standings = standing.Compute(Entrants(competitors), fixtures)
	leader, ok := standing.Leader(decision.Standings)
	if !ok {
		return decision
	}
	decision.ChampionID = leader.CompetitorID

	switch {
	case t.Status == StatusActive:
		decision.Action = ActionComplete
	case t.ChampionID != leader.CompetitorID:
		decision.Action = ActionChangeChampion
	}
	return decision
}
