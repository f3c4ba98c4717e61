package fixture

import "github.com/cockroachdb/errors"

// GenerateDoubleRoundRobin pairs every competitor with every other one twice.
// For each i < j in input order the first leg is c[i] at home and the second
// leg is c[j] at home, giving exactly K*(K-1) unscored fixtures. IDs are left
// empty for the caller to assign before persisting.
func GenerateDoubleRoundRobin(tournamentID string, competitorIDs []string) ([]Fixture, error) {
	k := len(competitorIDs)
	if k < 2 {
		return nil, errors.Wrapf(ErrInvalidPairing, "need at least 2 competitors, got %d", k)
	}

	seen := make(map[string]struct{}, k)
	for _, id := range competitorIDs {
		if id == "" {
			return nil, errors.Wrap(ErrInvalidPairing, "competitor id is empty")
		}
		if _, dup := seen[id]; dup {
			return nil, errors.Wrapf(ErrInvalidPairing, "duplicate competitor id %s", id)
		}
		seen[id] = struct{}{}
	}

	out := make([]Fixture, 0, k*(k-1))
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			out = append(out,
				Fixture{
					TournamentID:     tournamentID,
					Round:            RoundFirstLeg,
					Sequence:         len(out) + 1,
					HomeCompetitorID: competitorIDs[i],
					AwayCompetitorID: competitorIDs[j],
				},
				Fixture{
					TournamentID:     tournamentID,
					Round:            RoundSecondLeg,
					Sequence:         len(out) + 2,
					HomeCompetitorID: competitorIDs[j],
					AwayCompetitorID: competitorIDs[i],
				},
			)
		}
	}

	return out, nil
}
