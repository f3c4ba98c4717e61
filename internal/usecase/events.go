package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
)

type ResultRecordedSubscriber interface {
	HandleResultRecorded(ctx context.Context, event tournament.ResultRecorded) error
}

type TournamentCompletedSubscriber interface {
	HandleTournamentCompleted(ctx context.Context, event tournament.Completed) error
}

// EventBus delivers domain events synchronously to subscribers in
// registration order.
type EventBus struct {
	mu        sync.RWMutex
	results   []ResultRecordedSubscriber
	completed []TournamentCompletedSubscriber
	logger    *logging.Logger
}

func NewEventBus(logger *logging.Logger) *EventBus {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventBus{logger: logger}
}

func (b *EventBus) SubscribeResultRecorded(subscriber ResultRecordedSubscriber) {
	if subscriber == nil {
		return
	}
	b.mu.Lock()
	b.results = append(b.results, subscriber)
	b.mu.Unlock()
}

func (b *EventBus) SubscribeTournamentCompleted(subscriber TournamentCompletedSubscriber) {
	if subscriber == nil {
		return
	}
	b.mu.Lock()
	b.completed = append(b.completed, subscriber)
	b.mu.Unlock()
}

// PublishResultRecorded stops at the first failing subscriber and returns its
// error; later subscribers are not called.
func (b *EventBus) PublishResultRecorded(ctx context.Context, event tournament.ResultRecorded) error {
	if b == nil {
		return nil
	}
	b.mu.RLock()
	subscribers := append([]ResultRecordedSubscriber(nil), b.results...)
	b.mu.RUnlock()

	for _, subscriber := range subscribers {
		if err := subscriber.HandleResultRecorded(ctx, event); err != nil {
			return fmt.Errorf("handle result recorded: %w", err)
		}
	}
	return nil
}

// PublishTournamentCompleted only logs subscriber failures.
func (b *EventBus) PublishTournamentCompleted(ctx context.Context, event tournament.Completed) {
	if b == nil {
		return
	}
	b.mu.RLock()
	subscribers := append([]TournamentCompletedSubscriber(nil), b.completed...)
	b.mu.RUnlock()

	for _, subscriber := range subscribers {
		if err := subscriber.HandleTournamentCompleted(ctx, event); err != nil {
			b.logger.WarnContext(ctx, "tournament completed subscriber failed",
				"tournament_id", event.TournamentID,
				"error", err,
			)
		}
	}
}
