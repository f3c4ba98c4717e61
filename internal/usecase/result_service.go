package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
)

type RecordResultInput struct {
	FixtureID string
	HomeGoals string
	AwayGoals string
}

// CompletionPending is set when the score was stored but the tournament could
// not be re-evaluated; the reconcile job settles it later.
type RecordResultOutput struct {
	Fixture           fixture.Fixture
	Tournament        tournament.Tournament
	CompletionPending bool
}

type ResultService struct {
	tournamentRepo tournament.Repository
	fixtureRepo    fixture.Repository
	bus            *EventBus
	locks          *TournamentLocks
	policy         tournament.EditPolicy
	logger         *logging.Logger
	now            func() time.Time
}

func NewResultService(
	tournamentRepo tournament.Repository,
	fixtureRepo fixture.Repository,
	bus *EventBus,
	locks *TournamentLocks,
	policy tournament.EditPolicy,
	logger *logging.Logger,
) *ResultService {
	if logger == nil {
		logger = logging.Default()
	}
	if locks == nil {
		locks = NewTournamentLocks()
	}
	if policy == "" {
		policy = tournament.EditPolicyRecompute
	}
	return &ResultService{
		tournamentRepo: tournamentRepo,
		fixtureRepo:    fixtureRepo,
		bus:            bus,
		locks:          locks,
		policy:         policy,
		logger:         logger,
		now:            time.Now,
	}
}

// RecordResult sets or overwrites the score of one fixture, then publishes
// ResultRecorded so completion is evaluated before the call returns. Writes
// on the same tournament are serialised.
func (s *ResultService) RecordResult(ctx context.Context, principal account.Principal, input RecordResultInput) (RecordResultOutput, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.RecordResult", attrFixtureID.String(input.FixtureID))
	defer span.End()

	if err := requirePrincipal(principal); err != nil {
		return RecordResultOutput{}, err
	}
	fixtureID := strings.TrimSpace(input.FixtureID)
	if fixtureID == "" {
		return RecordResultOutput{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	current, exists, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return RecordResultOutput{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return RecordResultOutput{}, fmt.Errorf("%w: %w: fixture=%s", ErrNotFound, fixture.ErrFixtureNotFound, fixtureID)
	}

	unlock, err := s.locks.Acquire(ctx, current.TournamentID)
	if err != nil {
		return RecordResultOutput{}, err
	}
	defer unlock()

	item, exists, err := s.tournamentRepo.GetByID(ctx, current.TournamentID)
	if err != nil {
		return RecordResultOutput{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return RecordResultOutput{}, fmt.Errorf("%w: %w: fixture=%s", ErrNotFound, fixture.ErrFixtureNotFound, fixtureID)
	}
	if err := requireManage(principal, item); err != nil {
		return RecordResultOutput{}, err
	}

	score, err := fixture.ParseScore(input.HomeGoals, input.AwayGoals)
	if err != nil {
		return RecordResultOutput{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := tournament.CheckEditable(item, s.policy); err != nil {
		return RecordResultOutput{}, fmt.Errorf("%w: %w", ErrConflict, err)
	}

	playedAt := s.now().UTC()
	if err := s.fixtureRepo.SaveResult(ctx, current.ID, score, playedAt); err != nil {
		if errors.Is(err, fixture.ErrFixtureNotFound) {
			return RecordResultOutput{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return RecordResultOutput{}, fmt.Errorf("save fixture result: %w", err)
	}
	updated := current.ApplyResult(score, playedAt)

	s.logger.InfoContext(ctx, "fixture result recorded",
		"tournament_id", item.ID,
		"fixture_id", updated.ID,
		"home_goals", score.Home,
		"away_goals", score.Away,
	)

	event := tournament.ResultRecorded{
		TournamentID: item.ID,
		FixtureID:    updated.ID,
		Score:        score,
		RecordedBy:   principal.AccountID,
		RecordedAt:   playedAt,
	}
	out := RecordResultOutput{Fixture: updated, Tournament: item}
	if err := s.bus.PublishResultRecorded(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "evaluate tournament after result failed",
			"tournament_id", item.ID,
			"fixture_id", updated.ID,
			"error", err,
		)
		out.CompletionPending = true
		return out, nil
	}

	latest, exists, err := s.tournamentRepo.GetByID(ctx, item.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "reload tournament after result failed",
			"tournament_id", item.ID,
			"error", err,
		)
		return out, nil
	}
	if exists {
		out.Tournament = latest
	}

	return out, nil
}
