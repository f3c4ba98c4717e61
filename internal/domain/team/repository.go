package team

import "context"

// Catalog is the read-only team lookup injected into roster validation.
type Catalog interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
}
