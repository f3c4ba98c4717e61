package fixture

import (
	"context"
	"time"
)

// Repository exposes fixture persistence needed by result recording and standings.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Fixture, error)
	GetByID(ctx context.Context, fixtureID string) (Fixture, bool, error)
	SaveResult(ctx context.Context, fixtureID string, score Score, playedAt time.Time) error
}
