package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fc-tournament/internal/domain/team"
)

type TeamService struct {
	catalog team.Catalog
}

func NewTeamService(catalog team.Catalog) *TeamService {
	return &TeamService{catalog: catalog}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	teams, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *TeamService) ListGroupedByLeague(ctx context.Context) ([]team.LeagueGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListGroupedByLeague")
	defer span.End()

	teams, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return team.GroupByLeague(teams), nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.catalog.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}
