package tournament

import (
	"context"

	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
)

type Repository interface {
	// Create stores the tournament, its roster and all fixtures atomically.
	Create(ctx context.Context, t Tournament, competitors []Competitor, fixtures []fixture.Fixture) error
	GetByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
	ListCompetitors(ctx context.Context, tournamentID string) ([]Competitor, error)
	// ListVisible returns every tournament when includeAll is set, otherwise
	// the ones accountID owns or plays in. Newest first.
	ListVisible(ctx context.Context, accountID int64, includeAll bool) ([]Tournament, error)
	ListIDsByStatus(ctx context.Context, status Status) ([]string, error)
	// Complete moves an active tournament to completed with championID. It
	// reports false when the tournament was not active.
	Complete(ctx context.Context, tournamentID, championID string) (bool, error)
	UpdateChampion(ctx context.Context, tournamentID, championID string) error
	Rename(ctx context.Context, tournamentID, name string) error
	// Delete removes the tournament with its competitors and fixtures.
	Delete(ctx context.Context, tournamentID string) error
}
