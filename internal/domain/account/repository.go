package account

import "context"

// Directory resolves account ids in one batch.
type Directory interface {
	// ResolveExisting returns the subset of ids that exist, keyed by id.
	ResolveExisting(ctx context.Context, ids []int64) (map[int64]Account, error)
}
