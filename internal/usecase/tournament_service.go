package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
	"github.com/riskibarqy/fc-tournament/internal/domain/standing"
	"github.com/riskibarqy/fc-tournament/internal/domain/team"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
	"github.com/riskibarqy/fc-tournament/internal/platform/id"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
)

const maxTournamentNameLength = 120

type CreateTournamentInput struct {
	Name    string
	Entries []tournament.RawEntry
}

type TournamentService struct {
	tournamentRepo tournament.Repository
	fixtureRepo    fixture.Repository
	catalog        team.Catalog
	accounts       account.Directory
	idGen          id.Generator
	locks          *TournamentLocks
	rules          tournament.RosterRules
	logger         *logging.Logger
	now            func() time.Time
}

func NewTournamentService(
	tournamentRepo tournament.Repository,
	fixtureRepo fixture.Repository,
	catalog team.Catalog,
	accounts account.Directory,
	idGen id.Generator,
	locks *TournamentLocks,
	rules tournament.RosterRules,
	logger *logging.Logger,
) *TournamentService {
	if logger == nil {
		logger = logging.Default()
	}
	if locks == nil {
		locks = NewTournamentLocks()
	}
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		fixtureRepo:    fixtureRepo,
		catalog:        catalog,
		accounts:       accounts,
		idGen:          idGen,
		locks:          locks,
		rules:          rules,
		logger:         logger,
		now:            time.Now,
	}
}

// Create validates the roster, generates the double round-robin schedule and
// stores everything in one step. Nothing is persisted on validation failure.
func (s *TournamentService) Create(ctx context.Context, principal account.Principal, input CreateTournamentInput) (tournament.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Create")
	defer span.End()

	if err := requirePrincipal(principal); err != nil {
		return tournament.Detail{}, err
	}

	name, err := normalizeTournamentName(input.Name)
	if err != nil {
		return tournament.Detail{}, err
	}

	entries := tournament.NormalizeEntries(input.Entries, s.rules.Mode)

	teams, err := s.catalog.List(ctx)
	if err != nil {
		return tournament.Detail{}, fmt.Errorf("list teams: %w", err)
	}

	var resolved tournament.AccountSet
	if s.rules.Mode != tournament.RosterModeNames {
		ids := tournament.AccountIDs(entries)
		if len(ids) > 0 {
			found, err := s.accounts.ResolveExisting(ctx, ids)
			if err != nil {
				return tournament.Detail{}, fmt.Errorf("resolve accounts: %w", err)
			}
			resolved = tournament.AccountSet(found)
		}
	}

	validated, err := tournament.ValidateRoster(entries, team.NewIndex(teams), resolved, s.rules)
	if err != nil {
		return tournament.Detail{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	tournamentID, err := s.idGen.NewID()
	if err != nil {
		return tournament.Detail{}, fmt.Errorf("generate tournament id: %w", err)
	}

	competitors := make([]tournament.Competitor, 0, len(validated))
	for i, entry := range validated {
		competitorID, err := s.idGen.NewID()
		if err != nil {
			return tournament.Detail{}, fmt.Errorf("generate competitor id: %w", err)
		}
		competitors = append(competitors, tournament.Competitor{
			ID:           competitorID,
			TournamentID: tournamentID,
			AccountID:    entry.AccountID,
			Name:         entry.Name,
			TeamID:       entry.TeamID,
			EntryIndex:   i + 1,
		})
	}

	fixtures, err := fixture.GenerateDoubleRoundRobin(tournamentID, tournament.CompetitorIDs(competitors))
	if err != nil {
		return tournament.Detail{}, fmt.Errorf("generate fixtures: %w", err)
	}
	for i := range fixtures {
		fixtureID, err := s.idGen.NewID()
		if err != nil {
			return tournament.Detail{}, fmt.Errorf("generate fixture id: %w", err)
		}
		fixtures[i].ID = fixtureID
	}

	item := tournament.Tournament{
		ID:        tournamentID,
		Name:      name,
		OwnerID:   principal.AccountID,
		Status:    tournament.StatusActive,
		CreatedAt: s.now().UTC(),
	}
	if err := s.tournamentRepo.Create(ctx, item, competitors, fixtures); err != nil {
		return tournament.Detail{}, fmt.Errorf("create tournament: %w", err)
	}

	s.logger.InfoContext(ctx, "tournament created",
		"tournament_id", item.ID,
		"owner_id", item.OwnerID,
		"competitors", len(competitors),
		"fixtures", len(fixtures),
	)

	return buildDetail(item, competitors, fixtures), nil
}

func (s *TournamentService) Get(ctx context.Context, principal account.Principal, tournamentID string) (tournament.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Get")
	defer span.End()

	item, competitors, err := s.loadVisible(ctx, principal, tournamentID)
	if err != nil {
		return tournament.Detail{}, err
	}

	fixtures, err := s.fixtureRepo.ListByTournament(ctx, item.ID)
	if err != nil {
		return tournament.Detail{}, fmt.Errorf("list fixtures: %w", err)
	}

	return buildDetail(item, competitors, fixtures), nil
}

func (s *TournamentService) Standings(ctx context.Context, principal account.Principal, tournamentID string) ([]standing.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Standings")
	defer span.End()

	item, competitors, err := s.loadVisible(ctx, principal, tournamentID)
	if err != nil {
		return nil, err
	}

	fixtures, err := s.fixtureRepo.ListByTournament(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	return standing.Compute(tournament.Entrants(competitors), fixtures), nil
}

func (s *TournamentService) Rename(ctx context.Context, principal account.Principal, tournamentID, name string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Rename")
	defer span.End()

	if err := requirePrincipal(principal); err != nil {
		return tournament.Tournament{}, err
	}
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	unlock, err := s.locks.Acquire(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, err
	}
	defer unlock()

	item, err := s.getManaged(ctx, principal, tournamentID)
	if err != nil {
		return tournament.Tournament{}, err
	}

	normalized, err := normalizeTournamentName(name)
	if err != nil {
		return tournament.Tournament{}, err
	}

	if err := s.tournamentRepo.Rename(ctx, item.ID, normalized); err != nil {
		return tournament.Tournament{}, mapTournamentWriteError(err, "rename tournament")
	}
	item.Name = normalized

	return item, nil
}

func (s *TournamentService) Delete(ctx context.Context, principal account.Principal, tournamentID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Delete")
	defer span.End()

	if err := requirePrincipal(principal); err != nil {
		return err
	}
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	unlock, err := s.locks.Acquire(ctx, tournamentID)
	if err != nil {
		return err
	}
	defer unlock()

	item, err := s.getManaged(ctx, principal, tournamentID)
	if err != nil {
		return err
	}

	if err := s.tournamentRepo.Delete(ctx, item.ID); err != nil {
		return mapTournamentWriteError(err, "delete tournament")
	}

	s.logger.InfoContext(ctx, "tournament deleted",
		"tournament_id", item.ID,
		"account_id", principal.AccountID,
	)
	return nil
}

func (s *TournamentService) loadVisible(ctx context.Context, principal account.Principal, tournamentID string) (tournament.Tournament, []tournament.Competitor, error) {
	if err := requirePrincipal(principal); err != nil {
		return tournament.Tournament{}, nil, err
	}
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, nil, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, nil, fmt.Errorf("%w: %w: tournament=%s", ErrNotFound, tournament.ErrTournamentNotFound, tournamentID)
	}

	competitors, err := s.tournamentRepo.ListCompetitors(ctx, item.ID)
	if err != nil {
		return tournament.Tournament{}, nil, fmt.Errorf("list competitors: %w", err)
	}
	if !canView(principal, item, competitors) {
		return tournament.Tournament{}, nil, fmt.Errorf("%w: %w: tournament=%s", ErrNotFound, tournament.ErrTournamentNotFound, tournamentID)
	}

	return item, competitors, nil
}

func (s *TournamentService) getManaged(ctx context.Context, principal account.Principal, tournamentID string) (tournament.Tournament, error) {
	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: %w: tournament=%s", ErrNotFound, tournament.ErrTournamentNotFound, tournamentID)
	}
	if err := requireManage(principal, item); err != nil {
		return tournament.Tournament{}, err
	}
	return item, nil
}

func normalizeTournamentName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("%w: tournament name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > maxTournamentNameLength {
		return "", fmt.Errorf("%w: tournament name exceeds %d characters", ErrInvalidInput, maxTournamentNameLength)
	}
	return name, nil
}

func mapTournamentWriteError(err error, action string) error {
	if errors.Is(err, tournament.ErrTournamentNotFound) {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, action, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

func buildDetail(item tournament.Tournament, competitors []tournament.Competitor, fixtures []fixture.Fixture) tournament.Detail {
	ordered := append([]fixture.Fixture(nil), fixtures...)
	sortFixtures(ordered)

	rows := standing.Compute(tournament.Entrants(competitors), ordered)
	detail := tournament.Detail{
		Tournament:  item,
		Competitors: competitors,
		Fixtures:    ordered,
		Standings:   rows,
		Summary:     standing.Summarize(rows, ordered),
	}
	if item.ChampionID != "" {
		if champion, ok := tournament.FindCompetitor(competitors, item.ChampionID); ok {
			detail.Champion = &champion
		}
	}
	return detail
}

// sortFixtures orders by round, then generation sequence, then id.
func sortFixtures(items []fixture.Fixture) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Round != items[j].Round {
			return items[i].Round < items[j].Round
		}
		if items[i].Sequence != items[j].Sequence {
			return items[i].Sequence < items[j].Sequence
		}
		return items[i].ID < items[j].ID
	})
}
