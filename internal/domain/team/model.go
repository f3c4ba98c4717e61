package team

import "fmt"

// Team is a club from the static catalog competitors pick from.
type Team struct {
	ID      string
	Name    string
	League  string
	LogoURL string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.League == "" {
		return fmt.Errorf("team league is required")
	}

	return nil
}

// LeagueGroup is the catalog slice for one league, in catalog order.
type LeagueGroup struct {
	League string
	Teams  []Team
}

// GroupByLeague keeps the order in which leagues first appear.
func GroupByLeague(teams []Team) []LeagueGroup {
	index := make(map[string]int)
	out := make([]LeagueGroup, 0)
	for _, item := range teams {
		pos, ok := index[item.League]
		if !ok {
			pos = len(out)
			index[item.League] = pos
			out = append(out, LeagueGroup{League: item.League})
		}
		out[pos].Teams = append(out[pos].Teams, item)
	}
	return out
}

// Index is an in-memory lookup over a catalog snapshot.
type Index struct {
	byID map[string]Team
}

func NewIndex(teams []Team) Index {
	byID := make(map[string]Team, len(teams))
	for _, item := range teams {
		byID[item.ID] = item
	}
	return Index{byID: byID}
}

func (i Index) HasTeam(teamID string) bool {
	_, ok := i.byID[teamID]
	return ok
}

func (i Index) Get(teamID string) (Team, bool) {
	item, ok := i.byID[teamID]
	return item, ok
}
