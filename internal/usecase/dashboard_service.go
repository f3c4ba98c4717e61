package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/iter"

	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
	"github.com/riskibarqy/fc-tournament/internal/domain/team"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
)

const defaultDashboardConcurrency = 8

type DashboardItem struct {
	Tournament      tournament.Tournament
	ChampionName    string
	ChampionTeamID  string
	CompetitorCount int
	MatchesPlayed   int
	TotalMatches    int
}

// ChampionCard shows the newest visible tournament that has a champion.
type ChampionCard struct {
	TournamentID   string
	TournamentName string
	ChampionName   string
	Team           *team.Team
}

type Dashboard struct {
	Tournaments     []DashboardItem
	CurrentChampion *ChampionCard
}

type DashboardService struct {
	tournamentRepo tournament.Repository
	fixtureRepo    fixture.Repository
	catalog        team.Catalog
	concurrency    int
}

func NewDashboardService(
	tournamentRepo tournament.Repository,
	fixtureRepo fixture.Repository,
	catalog team.Catalog,
	concurrency int,
) *DashboardService {
	if concurrency <= 0 {
		concurrency = defaultDashboardConcurrency
	}
	return &DashboardService{
		tournamentRepo: tournamentRepo,
		fixtureRepo:    fixtureRepo,
		catalog:        catalog,
		concurrency:    concurrency,
	}
}

// Get lists the caller's tournaments newest first. Admins see every
// tournament; everyone else sees the ones they own or play in.
func (s *DashboardService) Get(ctx context.Context, principal account.Principal) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	if err := requirePrincipal(principal); err != nil {
		return Dashboard{}, err
	}

	tournaments, err := s.tournamentRepo.ListVisible(ctx, principal.AccountID, principal.IsAdmin())
	if err != nil {
		return Dashboard{}, fmt.Errorf("list visible tournaments: %w", err)
	}

	mapper := iter.Mapper[tournament.Tournament, DashboardItem]{MaxGoroutines: s.concurrency}
	items, err := mapper.MapErr(tournaments, func(item *tournament.Tournament) (DashboardItem, error) {
		return s.summarize(ctx, *item)
	})
	if err != nil {
		return Dashboard{}, err
	}

	out := Dashboard{Tournaments: items}
	for _, item := range items {
		if item.Tournament.ChampionID == "" || item.ChampionName == "" {
			continue
		}
		card := &ChampionCard{
			TournamentID:   item.Tournament.ID,
			TournamentName: item.Tournament.Name,
			ChampionName:   item.ChampionName,
		}
		if item.ChampionTeamID != "" {
			championTeam, exists, err := s.catalog.GetByID(ctx, item.ChampionTeamID)
			if err != nil {
				return Dashboard{}, fmt.Errorf("get champion team: %w", err)
			}
			if exists {
				card.Team = &championTeam
			}
		}
		out.CurrentChampion = card
		break
	}

	return out, nil
}

func (s *DashboardService) summarize(ctx context.Context, item tournament.Tournament) (DashboardItem, error) {
	competitors, err := s.tournamentRepo.ListCompetitors(ctx, item.ID)
	if err != nil {
		return DashboardItem{}, fmt.Errorf("list competitors tournament=%s: %w", item.ID, err)
	}
	fixtures, err := s.fixtureRepo.ListByTournament(ctx, item.ID)
	if err != nil {
		return DashboardItem{}, fmt.Errorf("list fixtures tournament=%s: %w", item.ID, err)
	}

	out := DashboardItem{
		Tournament:      item,
		CompetitorCount: len(competitors),
		TotalMatches:    len(fixtures),
		MatchesPlayed:   len(fixtures) - fixture.CountPending(fixtures),
	}
	if champion, ok := tournament.FindCompetitor(competitors, item.ChampionID); ok && item.ChampionID != "" {
		out.ChampionName = champion.Name
		out.ChampionTeamID = champion.TeamID
	}
	return out, nil
}
