package standing

import (
	"sort"

	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
)

// Compute derives the table from scratch out of the played fixtures. Every
// entrant gets a row even with nothing played. Order is points desc, goal
// difference desc, goals for desc, name asc (byte-wise), then competitor id
// asc. The result does not depend on fixture order.
func Compute(entrants []Entrant, fixtures []fixture.Fixture) []Row {
	rows := make([]Row, 0, len(entrants))
	index := make(map[string]int, len(entrants))
	for _, item := range entrants {
		if _, exists := index[item.ID]; exists {
			continue
		}
		index[item.ID] = len(rows)
		rows = append(rows, Row{
			CompetitorID: item.ID,
			Name:         item.Name,
			TeamID:       item.TeamID,
		})
	}

	for _, item := range fixtures {
		score, played := item.Score()
		if !played {
			continue
		}
		homeIdx, okHome := index[item.HomeCompetitorID]
		awayIdx, okAway := index[item.AwayCompetitorID]
		if !okHome || !okAway {
			continue
		}

		home := &rows[homeIdx]
		away := &rows[awayIdx]
		home.record(score.Home, score.Away)
		away.record(score.Away, score.Home)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return less(rows[i], rows[j])
	})
	for i := range rows {
		rows[i].Position = i + 1
	}

	return rows
}

func (r *Row) record(scored, conceded int) {
	r.Played++
	r.GoalsFor += scored
	r.GoalsAgainst += conceded
	r.GoalDifference = r.GoalsFor - r.GoalsAgainst
	switch {
	case scored > conceded:
		r.Won++
		r.Points += PointsWin
	case scored == conceded:
		r.Drawn++
		r.Points += PointsDraw
	default:
		r.Lost++
	}
}

func less(a, b Row) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.CompetitorID < b.CompetitorID
}

// Leader returns the first row, if any.
func Leader(rows []Row) (Row, bool) {
	if len(rows) == 0 {
		return Row{}, false
	}
	return rows[0], true
}
