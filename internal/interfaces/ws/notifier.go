package ws

import (
	"context"
	"time"

	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
)

const (
	MessageTypeSnapshot            = "snapshot"
	MessageTypeResultRecorded      = "result_recorded"
	MessageTypeTournamentCompleted = "tournament_completed"
)

type resultRecordedPayload struct {
	FixtureID  string    `json:"fixture_id"`
	HomeGoals  int       `json:"home_goals"`
	AwayGoals  int       `json:"away_goals"`
	RecordedBy int64     `json:"recorded_by"`
	RecordedAt time.Time `json:"recorded_at"`
}

type tournamentCompletedPayload struct {
	ChampionID      string    `json:"champion_id"`
	ChampionChanged bool      `json:"champion_changed"`
	CompletedAt     time.Time `json:"completed_at"`
}

// Notifier pushes domain events to live subscribers of the tournament.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) HandleResultRecorded(ctx context.Context, event tournament.ResultRecorded) error {
	n.hub.BroadcastToRoom(ctx, event.TournamentID, Message{
		Type:         MessageTypeResultRecorded,
		TournamentID: event.TournamentID,
		Payload: resultRecordedPayload{
			FixtureID:  event.FixtureID,
			HomeGoals:  event.Score.Home,
			AwayGoals:  event.Score.Away,
			RecordedBy: event.RecordedBy,
			RecordedAt: event.RecordedAt.UTC(),
		},
	})
	return nil
}

func (n *Notifier) HandleTournamentCompleted(ctx context.Context, event tournament.Completed) error {
	n.hub.BroadcastToRoom(ctx, event.TournamentID, Message{
		Type:         MessageTypeTournamentCompleted,
		TournamentID: event.TournamentID,
		Payload: tournamentCompletedPayload{
			ChampionID:      event.ChampionID,
			ChampionChanged: event.Changed,
			CompletedAt:     event.CompletedAt.UTC(),
		},
	})
	return nil
}
