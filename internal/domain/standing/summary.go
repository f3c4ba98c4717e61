package standing

import (
	"math"

	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
)

// Summary holds tournament-wide figures shown next to the table.
type Summary struct {
	MatchesPlayed int
	TotalMatches  int
	TotalGoals    int
	AverageGoals  float64
	TopAttack     *Row
	BestDefense   *Row
}

// Summarize reports progress and goal totals. AverageGoals is rounded to two
// decimals. TopAttack is the earliest-ranked row with the most goals scored and
// BestDefense the earliest-ranked row with the fewest conceded; both are nil
// when rows is empty.
func Summarize(rows []Row, fixtures []fixture.Fixture) Summary {
	out := Summary{TotalMatches: len(fixtures)}
	for _, item := range fixtures {
		score, played := item.Score()
		if !played {
			continue
		}
		out.MatchesPlayed++
		out.TotalGoals += score.Home + score.Away
	}
	if out.MatchesPlayed > 0 {
		avg := float64(out.TotalGoals) / float64(out.MatchesPlayed)
		out.AverageGoals = math.Round(avg*100) / 100
	}

	for i := range rows {
		if out.TopAttack == nil || rows[i].GoalsFor > out.TopAttack.GoalsFor {
			attack := rows[i]
			out.TopAttack = &attack
		}
		if out.BestDefense == nil || rows[i].GoalsAgainst < out.BestDefense.GoalsAgainst {
			defense := rows[i]
			out.BestDefense = &defense
		}
	}

	return out
}
