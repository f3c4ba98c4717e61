package httpapi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
	"github.com/riskibarqy/fc-tournament/internal/domain/standing"
	"github.com/riskibarqy/fc-tournament/internal/domain/team"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
	"github.com/riskibarqy/fc-tournament/internal/usecase"
)

type createTournamentRequest struct {
	Name    string                          `json:"name" validate:"required,max=120"`
	Players []createTournamentPlayerRequest `json:"players" validate:"dive"`
}

// createTournamentPlayerRequest accepts account_id in account rosters and
// name in free-text rosters; the roster mode decides which one is read.
type createTournamentPlayerRequest struct {
	AccountID json.Number `json:"account_id"`
	Name      string      `json:"name" validate:"omitempty,max=80"`
	TeamID    string      `json:"team_id"`
}

type renameTournamentRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// recordResultRequest leaves score validation to the result service so a
// missing fixture or a forbidden caller is reported before a bad score.
type recordResultRequest struct {
	HomeGoals json.Number `json:"home_goals"`
	AwayGoals json.Number `json:"away_goals"`
}

type teamDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	League  string `json:"league"`
	LogoURL string `json:"logo_url"`
}

type leagueGroupDTO struct {
	League string    `json:"league"`
	Teams  []teamDTO `json:"teams"`
}

type tournamentDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OwnerID    int64     `json:"owner_id"`
	Status     string    `json:"status"`
	ChampionID string    `json:"champion_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type competitorDTO struct {
	ID         string `json:"id"`
	AccountID  int64  `json:"account_id,omitempty"`
	Name       string `json:"name"`
	TeamID     string `json:"team_id"`
	EntryIndex int    `json:"entry_index"`
}

type fixtureDTO struct {
	ID               string     `json:"id"`
	Round            int        `json:"round"`
	Sequence         int        `json:"sequence"`
	HomeCompetitorID string     `json:"home_competitor_id"`
	AwayCompetitorID string     `json:"away_competitor_id"`
	HomeGoals        *int       `json:"home_goals"`
	AwayGoals        *int       `json:"away_goals"`
	Status           string     `json:"status"`
	PlayedAt         *time.Time `json:"played_at,omitempty"`
}

type standingRowDTO struct {
	Position       int    `json:"position"`
	CompetitorID   string `json:"competitor_id"`
	Name           string `json:"name"`
	TeamID         string `json:"team_id"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

type summaryDTO struct {
	MatchesPlayed int             `json:"matches_played"`
	TotalMatches  int             `json:"total_matches"`
	TotalGoals    int             `json:"total_goals"`
	AverageGoals  float64         `json:"average_goals"`
	TopAttack     *standingRowDTO `json:"top_attack,omitempty"`
	BestDefense   *standingRowDTO `json:"best_defense,omitempty"`
}

type tournamentDetailDTO struct {
	Tournament  tournamentDTO    `json:"tournament"`
	Competitors []competitorDTO  `json:"competitors"`
	Fixtures    []fixtureDTO     `json:"fixtures"`
	Standings   []standingRowDTO `json:"standings"`
	Summary     summaryDTO       `json:"summary"`
	Champion    *competitorDTO   `json:"champion,omitempty"`
}

type recordResultDTO struct {
	Fixture           fixtureDTO    `json:"fixture"`
	Tournament        tournamentDTO `json:"tournament"`
	CompletionPending bool          `json:"completion_pending,omitempty"`
}

type dashboardItemDTO struct {
	Tournament      tournamentDTO `json:"tournament"`
	ChampionName    string        `json:"champion_name,omitempty"`
	CompetitorCount int           `json:"competitor_count"`
	MatchesPlayed   int           `json:"matches_played"`
	TotalMatches    int           `json:"total_matches"`
}

type championCardDTO struct {
	TournamentID   string   `json:"tournament_id"`
	TournamentName string   `json:"tournament_name"`
	ChampionName   string   `json:"champion_name"`
	Team           *teamDTO `json:"team,omitempty"`
}

type dashboardDTO struct {
	Tournaments     []dashboardItemDTO `json:"tournaments"`
	CurrentChampion *championCardDTO   `json:"current_champion,omitempty"`
}

func (r createTournamentRequest) toInput() usecase.CreateTournamentInput {
	entries := make([]tournament.RawEntry, 0, len(r.Players))
	for _, item := range r.Players {
		entries = append(entries, tournament.RawEntry{
			AccountRef: item.AccountID.String(),
			Name:       item.Name,
			TeamID:     item.TeamID,
		})
	}
	return usecase.CreateTournamentInput{Name: r.Name, Entries: entries}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{ID: v.ID, Name: v.Name, League: v.League, LogoURL: v.LogoURL}
}

func tournamentToDTO(v tournament.Tournament) tournamentDTO {
	return tournamentDTO{
		ID:         v.ID,
		Name:       v.Name,
		OwnerID:    v.OwnerID,
		Status:     string(v.Status),
		ChampionID: v.ChampionID,
		CreatedAt:  v.CreatedAt,
	}
}

func competitorToDTO(v tournament.Competitor) competitorDTO {
	return competitorDTO{ID: v.ID, AccountID: v.AccountID, Name: v.Name, TeamID: v.TeamID, EntryIndex: v.EntryIndex}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	out := fixtureDTO{
		ID:               v.ID,
		Round:            v.Round,
		Sequence:         v.Sequence,
		HomeCompetitorID: v.HomeCompetitorID,
		AwayCompetitorID: v.AwayCompetitorID,
		Status:           "pending",
	}
	if score, played := v.Score(); played {
		home, away := score.Home, score.Away
		out.HomeGoals = &home
		out.AwayGoals = &away
		out.Status = "played"
		out.PlayedAt = v.PlayedAt
	}
	return out
}

func standingRowToDTO(v standing.Row) standingRowDTO {
	return standingRowDTO{
		Position:       v.Position,
		CompetitorID:   v.CompetitorID,
		Name:           v.Name,
		TeamID:         v.TeamID,
		Played:         v.Played,
		Won:            v.Won,
		Drawn:          v.Drawn,
		Lost:           v.Lost,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference,
		Points:         v.Points,
	}
}

func standingsToDTO(rows []standing.Row) []standingRowDTO {
	out := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingRowToDTO(row))
	}
	return out
}

func summaryToDTO(v standing.Summary) summaryDTO {
	out := summaryDTO{
		MatchesPlayed: v.MatchesPlayed,
		TotalMatches:  v.TotalMatches,
		TotalGoals:    v.TotalGoals,
		AverageGoals:  v.AverageGoals,
	}
	if v.TopAttack != nil {
		row := standingRowToDTO(*v.TopAttack)
		out.TopAttack = &row
	}
	if v.BestDefense != nil {
		row := standingRowToDTO(*v.BestDefense)
		out.BestDefense = &row
	}
	return out
}

func tournamentDetailToDTO(ctx context.Context, v tournament.Detail) tournamentDetailDTO {
	_, span := startSpan(ctx, "httpapi.tournamentDetailToDTO")
	defer span.End()

	out := tournamentDetailDTO{
		Tournament:  tournamentToDTO(v.Tournament),
		Competitors: make([]competitorDTO, 0, len(v.Competitors)),
		Fixtures:    make([]fixtureDTO, 0, len(v.Fixtures)),
		Standings:   standingsToDTO(v.Standings),
		Summary:     summaryToDTO(v.Summary),
	}
	for _, item := range v.Competitors {
		out.Competitors = append(out.Competitors, competitorToDTO(item))
	}
	for _, item := range v.Fixtures {
		out.Fixtures = append(out.Fixtures, fixtureToDTO(item))
	}
	if v.Champion != nil {
		champion := competitorToDTO(*v.Champion)
		out.Champion = &champion
	}
	return out
}

func dashboardToDTO(v usecase.Dashboard) dashboardDTO {
	out := dashboardDTO{Tournaments: make([]dashboardItemDTO, 0, len(v.Tournaments))}
	for _, item := range v.Tournaments {
		out.Tournaments = append(out.Tournaments, dashboardItemDTO{
			Tournament:      tournamentToDTO(item.Tournament),
			ChampionName:    item.ChampionName,
			CompetitorCount: item.CompetitorCount,
			MatchesPlayed:   item.MatchesPlayed,
			TotalMatches:    item.TotalMatches,
		})
	}
	if v.CurrentChampion != nil {
		card := &championCardDTO{
			TournamentID:   v.CurrentChampion.TournamentID,
			TournamentName: v.CurrentChampion.TournamentName,
			ChampionName:   v.CurrentChampion.ChampionName,
		}
		if v.CurrentChampion.Team != nil {
			championTeam := teamToDTO(*v.CurrentChampion.Team)
			card.Team = &championTeam
		}
		out.CurrentChampion = card
	}
	return out
}
