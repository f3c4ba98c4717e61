package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
)

const defaultReconcileWorkers = 4

type tournamentReconciler interface {
	Reconcile(ctx context.Context, tournamentID string) (tournament.Action, error)
}

type ReconcileResult struct {
	Checked         int                   `json:"checked"`
	Completed       int                   `json:"completed"`
	ChampionChanged int                   `json:"champion_changed"`
	Failed          int                   `json:"failed"`
	WorkerCount     int                   `json:"worker_count"`
	Items           []ReconcileItemResult `json:"items"`
}

type ReconcileItemResult struct {
	TournamentID string `json:"tournament_id"`
	Status       string `json:"status"`
	DurationMs   int64  `json:"duration_ms"`
	Message      string `json:"message,omitempty"`
}

const (
	reconcileStatusUnchanged       = "unchanged"
	reconcileStatusCompleted       = "completed"
	reconcileStatusChampionChanged = "champion_changed"
	reconcileStatusFailed          = "failed"
)

// ReconcileService re-derives status and champion for every stored
// tournament. It heals tournaments whose completion step failed after the
// last result was written.
type ReconcileService struct {
	tournamentRepo tournament.Repository
	reconciler     tournamentReconciler
	workers        int
	logger         *logging.Logger
}

func NewReconcileService(tournamentRepo tournament.Repository, reconciler tournamentReconciler, workers int, logger *logging.Logger) *ReconcileService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultReconcileWorkers
	}
	return &ReconcileService{
		tournamentRepo: tournamentRepo,
		reconciler:     reconciler,
		workers:        workers,
		logger:         logger,
	}
}

func (s *ReconcileService) Run(ctx context.Context) (ReconcileResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.Run")
	defer span.End()

	ids := make([]string, 0)
	for _, status := range []tournament.Status{tournament.StatusActive, tournament.StatusCompleted} {
		items, err := s.tournamentRepo.ListIDsByStatus(ctx, status)
		if err != nil {
			return ReconcileResult{}, fmt.Errorf("list %s tournaments: %w", status, err)
		}
		ids = append(ids, items...)
	}

	result := ReconcileResult{Checked: len(ids), WorkerCount: s.workers}
	if len(ids) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	rows := make(chan ReconcileItemResult, len(ids))
	var completed, changed, failed atomic.Int32

	var workers sync.WaitGroup
	for _, tournamentID := range ids {
		tournamentID := tournamentID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := ReconcileItemResult{TournamentID: tournamentID}

			action, err := s.reconciler.Reconcile(ctx, tournamentID)
			switch {
			case err != nil:
				row.Status = reconcileStatusFailed
				row.Message = err.Error()
				failed.Add(1)
				s.logger.WarnContext(ctx, "reconcile tournament failed", "tournament_id", tournamentID, "error", err)
			case action == tournament.ActionComplete:
				row.Status = reconcileStatusCompleted
				completed.Add(1)
			case action == tournament.ActionChangeChampion:
				row.Status = reconcileStatusChampionChanged
				changed.Add(1)
			default:
				row.Status = reconcileStatusUnchanged
			}
			row.DurationMs = time.Since(start).Milliseconds()

			rows <- row
		}); err != nil {
			workers.Done()
			workers.Wait()
			return ReconcileResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Items = append(result.Items, row)
	}
	sort.SliceStable(result.Items, func(i, j int) bool {
		return result.Items[i].TournamentID < result.Items[j].TournamentID
	})

	result.Completed = int(completed.Load())
	result.ChampionChanged = int(changed.Load())
	result.Failed = int(failed.Load())

	s.logger.InfoContext(ctx, "reconcile finished",
		"checked", result.Checked,
		"completed", result.Completed,
		"champion_changed", result.ChampionChanged,
		"failed", result.Failed,
	)
	return result, nil
}
