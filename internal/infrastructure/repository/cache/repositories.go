package cache

import (
	"context"

	"github.com/riskibarqy/fc-tournament/internal/domain/team"
	basecache "github.com/riskibarqy/fc-tournament/internal/platform/cache"
)

const (
	teamListKey    = "team:list"
	teamByIDPrefix  = "team:id:"
)

// TeamCatalog caches the read-only team catalog in front of a storage
// backed catalog.
type TeamCatalog struct {
	next  team.Catalog
	cache *basecache.Store
}

func NewTeamCatalog(next team.Catalog, cache *basecache.Store) *TeamCatalog {
	return &TeamCatalog{next: next, cache: cache}
}

func (r *TeamCatalog) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamCatalog) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := teamByIDPrefix + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

// Invalidate drops every cached catalog entry.
func (r *TeamCatalog) Invalidate(ctx context.Context) {
	r.cache.Delete(ctx, teamListKey)
	r.cache.DeletePrefix(ctx, teamByIDPrefix)
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}
