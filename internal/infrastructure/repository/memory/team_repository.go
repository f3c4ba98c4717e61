package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/fc-tournament/internal/domain/team"
)

type TeamCatalog struct {
	mu    sync.RWMutex
	teams []team.Team
	byID  map[string]int
}

func NewTeamCatalog(teams []team.Team) *TeamCatalog {
	catalog := &TeamCatalog{byID: make(map[string]int, len(teams))}
	for _, item := range teams {
		teamID := strings.TrimSpace(item.ID)
		if teamID == "" {
			continue
		}
		if _, exists := catalog.byID[teamID]; exists {
			continue
		}
		item.ID = teamID
		catalog.byID[teamID] = len(catalog.teams)
		catalog.teams = append(catalog.teams, item)
	}

	return catalog
}

func (c *TeamCatalog) List(_ context.Context) ([]team.Team, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]team.Team, 0, len(c.teams))
	out = append(out, c.teams...)
	return out, nil
}

func (c *TeamCatalog) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.byID[teamID]
	if !ok {
		return team.Team{}, false, nil
	}
	return c.teams[idx], true, nil
}
