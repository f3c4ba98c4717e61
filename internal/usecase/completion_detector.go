package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
)

// CompletionDetector re-evaluates a tournament after every recorded result
// and persists status and champion changes.
type CompletionDetector struct {
	tournamentRepo tournament.Repository
	fixtureRepo    fixture.Repository
	bus            *EventBus
	locks          *TournamentLocks
	logger         *logging.Logger
	now            func() time.Time
}

func NewCompletionDetector(
	tournamentRepo tournament.Repository,
	fixtureRepo fixture.Repository,
	bus *EventBus,
	locks *TournamentLocks,
	logger *logging.Logger,
) *CompletionDetector {
	if logger == nil {
		logger = logging.Default()
	}
	if locks == nil {
		locks = NewTournamentLocks()
	}
	return &CompletionDetector{
		tournamentRepo: tournamentRepo,
		fixtureRepo:    fixtureRepo,
		bus:            bus,
		locks:          locks,
		logger:         logger,
		now:            time.Now,
	}
}

// HandleResultRecorded runs inside the recorder's tournament lock.
func (d *CompletionDetector) HandleResultRecorded(ctx context.Context, event tournament.ResultRecorded) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompletionDetector.HandleResultRecorded",
		attrTournamentID.String(event.TournamentID),
		attrFixtureID.String(event.FixtureID),
	)
	defer span.End()

	_, err := d.evaluate(ctx, event.TournamentID)
	return err
}

// Reconcile takes the tournament lock and evaluates it once.
func (d *CompletionDetector) Reconcile(ctx context.Context, tournamentID string) (tournament.Action, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompletionDetector.Reconcile", attrTournamentID.String(tournamentID))
	defer span.End()

	unlock, err := d.locks.Acquire(ctx, tournamentID)
	if err != nil {
		return tournament.ActionNone, err
	}
	defer unlock()

	return d.evaluate(ctx, tournamentID)
}

func (d *CompletionDetector) evaluate(ctx context.Context, tournamentID string) (tournament.Action, error) {
	item, exists, err := d.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.ActionNone, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.ActionNone, fmt.Errorf("%w: %w: tournament=%s", ErrNotFound, tournament.ErrTournamentNotFound, tournamentID)
	}

	competitors, err := d.tournamentRepo.ListCompetitors(ctx, tournamentID)
	if err != nil {
		return tournament.ActionNone, fmt.Errorf("list competitors: %w", err)
	}
	fixtures, err := d.fixtureRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return tournament.ActionNone, fmt.Errorf("list fixtures: %w", err)
	}

	decision := tournament.Evaluate(item, competitors, fixtures)
	trace.SpanFromContext(ctx).SetAttributes(attrAction.Int(int(decision.Action)))
	switch decision.Action {
	case tournament.ActionComplete:
		transitioned, err := d.tournamentRepo.Complete(ctx, tournamentID, decision.ChampionID)
		if err != nil {
			return tournament.ActionNone, fmt.Errorf("complete tournament: %w", err)
		}
		if !transitioned {
			return tournament.ActionNone, nil
		}
		d.logger.InfoContext(ctx, "tournament completed",
			"tournament_id", tournamentID,
			"champion_id", decision.ChampionID,
		)
		d.bus.PublishTournamentCompleted(ctx, tournament.Completed{
			TournamentID: tournamentID,
			ChampionID:   decision.ChampionID,
			CompletedAt:  d.now().UTC(),
		})
	case tournament.ActionChangeChampion:
		if err := d.tournamentRepo.UpdateChampion(ctx, tournamentID, decision.ChampionID); err != nil {
			return tournament.ActionNone, fmt.Errorf("update champion: %w", err)
		}
		d.logger.InfoContext(ctx, "tournament champion changed",
			"tournament_id", tournamentID,
			"previous_champion_id", item.ChampionID,
			"champion_id", decision.ChampionID,
		)
		d.bus.PublishTournamentCompleted(ctx, tournament.Completed{
			TournamentID: tournamentID,
			ChampionID:   decision.ChampionID,
			Changed:      true,
			CompletedAt:  d.now().UTC(),
		})
	}

	return decision.Action, nil
}
