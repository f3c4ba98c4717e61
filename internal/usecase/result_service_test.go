package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
)

func TestResultService_TwoCompetitorScenario(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, tournament.EditPolicyRecompute, tournament.DefaultRosterRules())
	detail := env.create(t, "Derby", rosterOf("1", "arsenal", "2", "chelsea"))
	ctx := context.Background()

	a, b := detail.Competitors[0], detail.Competitors[1]
	var firstLeg, secondLeg fixture.Fixture
	for _, item := range detail.Fixtures {
		if item.HomeCompetitorID == a.ID {
			firstLeg = item
		} else {
			secondLeg = item
		}
	}

	out := env.record(t, firstLeg.ID, 3, 1)
	if out.Tournament.Status != tournament.StatusActive {
		t.Fatalf("tournament must stay active with a fixture pending")
	}

	out = env.record(t, secondLeg.ID, 2, 2)
	if out.Tournament.Status != tournament.StatusCompleted || out.Tournament.ChampionID != a.ID {
		t.Fatalf("expected completion with champion %s, got %+v", a.ID, out.Tournament)
	}

	rows, err := env.service.Standings(ctx, ownerPrincipal, detail.Tournament.ID)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	top, bottom := rows[0], rows[1]
	if top.CompetitorID != a.ID || top.Played != 2 || top.Won != 1 || top.Drawn != 1 || top.Lost != 0 ||
		top.GoalsFor != 5 || top.GoalsAgainst != 3 || top.GoalDifference != 2 || top.Points != 4 {
		t.Fatalf("unexpected leader row: %+v", top)
	}
	if bottom.CompetitorID != b.ID || bottom.Points != 1 || bottom.GoalDifference != -2 {
		t.Fatalf("unexpected second row: %+v", bottom)
	}

	events := env.completed.snapshot()
	if len(events) != 1 || events[0].ChampionID != a.ID || events[0].Changed {
		t.Fatalf("expected one completion event, got %+v", events)
	}
}

func TestResultService_InvalidScoresLeaveFixtureUntouched(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, tournament.EditPolicyRecompute, tournament.DefaultRosterRules())
	detail := env.create(t, "Derby", rosterOf("1", "arsenal", "2", "chelsea"))
	ctx := context.Background()
	target := detail.Fixtures[0]

	for _, score := range [][2]string{{"-1", "2"}, {"1.5", "0"}, {"", "1"}} {
		_, err := env.results.RecordResult(ctx, ownerPrincipal, RecordResultInput{FixtureID: target.ID, HomeGoals: score[0], AwayGoals: score[1]})
		if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, fixture.ErrInvalidScore) {
			t.Fatalf("score %v: expected invalid score, got %v", score, err)
		}
	}

	stored, _, err := env.fixtures.GetByID(ctx, target.ID)
	if err != nil {
		t.Fatalf("get fixture: %v", err)
	}
	if stored.IsPlayed() || stored.PlayedAt != nil {
		t.Fatalf("fixture must stay pending: %+v", stored)
	}
}

func TestResultService_UnknownFixtureAndForbidden(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, tournament.EditPolicyRecompute, tournament.DefaultRosterRules())
	detail := env.create(t, "Derby", rosterOf("1", "arsenal", "2", "chelsea"))
	ctx := context.Background()

	_, err := env.results.RecordResult(ctx, ownerPrincipal, RecordResultInput{FixtureID: "nope", HomeGoals: "1", AwayGoals: "0"})
	if !errors.Is(err, ErrNotFound) || !errors.Is(err, fixture.ErrFixtureNotFound) {
		t.Fatalf("expected fixture not found, got %v", err)
	}

	_, err = env.results.RecordResult(ctx, playerPrincipal, RecordResultInput{FixtureID: detail.Fixtures[0].ID, HomeGoals: "1", AwayGoals: "0"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if _, err := env.results.RecordResult(ctx, adminPrincipal, RecordResultInput{FixtureID: detail.Fixtures[0].ID, HomeGoals: "1", AwayGoals: "0"}); err != nil {
		t.Fatalf("admin may record results: %v", err)
	}
}

func TestResultService_ThreeCompetitorsCompleteOnLastResult(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, tournament.EditPolicyRecompute, tournament.DefaultRosterRules())
	detail := env.create(t, "Trio", rosterOf("1", "arsenal", "2", "milan", "3", "psg"))
	leader := detail.Competitors[1].ID

	for i, item := range detail.Fixtures {
		home, away := 1, 1
		if item.HomeCompetitorID == leader {
			home, away = 2, 0
		} else if item.AwayCompetitorID == leader {
			home, away = 0, 2
		}

		out := env.record(t, item.ID, home, away)
		last := i == len(detail.Fixtures)-1
		if !last && out.Tournament.Status != tournament.StatusActive {
			t.Fatalf("completed early after %d results", i+1)
		}
		if last && (out.Tournament.Status != tournament.StatusCompleted || out.Tournament.ChampionID != leader) {
			t.Fatalf("expected completion with champion %s, got %+v", leader, out.Tournament)
		}
	}
}

func TestResultService_EditAfterCompletion(t *testing.T) {
	t.Parallel()

	t.Run("recompute moves the champion", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, tournament.EditPolicyRecompute, tournament.DefaultRosterRules())
		detail := env.create(t, "Derby", rosterOf("1", "arsenal", "2", "chelsea"))
		env.record(t, detail.Fixtures[0].ID, 2, 0)
		out := env.record(t, detail.Fixtures[1].ID, 0, 0)
		first := out.Tournament.ChampionID

		out = env.record(t, detail.Fixtures[0].ID, 0, 5)
		if out.Tournament.Status != tournament.StatusCompleted || out.Tournament.ChampionID == first {
			t.Fatalf("expected champion to change from %s, got %+v", first, out.Tournament)
		}
		events := env.completed.snapshot()
		if len(events) != 2 || !events[1].Changed {
			t.Fatalf("expected a champion change event, got %+v", events)
		}
	})

	t.Run("locked rejects edits", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, tournament.EditPolicyLocked, tournament.DefaultRosterRules())
		detail := env.create(t, "Derby", rosterOf("1", "arsenal", "2", "chelsea"))
		env.record(t, detail.Fixtures[0].ID, 2, 0)
		env.record(t, detail.Fixtures[1].ID, 0, 0)

		_, err := env.results.RecordResult(context.Background(), ownerPrincipal, RecordResultInput{FixtureID: detail.Fixtures[0].ID, HomeGoals: "0", AwayGoals: "5"})
		if !errors.Is(err, ErrConflict) || !errors.Is(err, tournament.ErrTournamentCompleted) {
			t.Fatalf("expected completed conflict, got %v", err)
		}
	})
}

func TestResultService_ConcurrentFinalResultsCompleteOnce(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, tournament.EditPolicyRecompute, tournament.DefaultRosterRules())
	detail := env.create(t, "Rush", rosterOf("1", "arsenal", "2", "milan", "3", "psg", "4", "ajax"))
	ctx := context.Background()

	var wg sync.WaitGroup
	errCh := make(chan error, len(detail.Fixtures))
	for _, item := range detail.Fixtures {
		wg.Add(1)
		go func(fixtureID string) {
			defer wg.Done()
			_, err := env.results.RecordResult(ctx, ownerPrincipal, RecordResultInput{FixtureID: fixtureID, HomeGoals: "1", AwayGoals: "0"})
			if err != nil {
				errCh <- err
			}
		}(item.ID)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("record result: %v", err)
	}

	got, _, _ := env.tournaments.GetByID(ctx, detail.Tournament.ID)
	if got.Status != tournament.StatusCompleted || got.ChampionID == "" {
		t.Fatalf("expected completed tournament, got %+v", got)
	}
	if events := env.completed.snapshot(); len(events) != 1 {
		t.Fatalf("expected exactly one completion event, got %d", len(events))
	}
	if env.locks.size() != 0 {
		t.Fatalf("lock entries leaked: %d", env.locks.size())
	}
}

func TestResultService_EvaluationFailureKeepsStoredResult(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, tournament.EditPolicyRecompute, tournament.DefaultRosterRules())
	detail := env.create(t, "Derby", rosterOf("1", "arsenal", "2", "chelsea"))
	ctx := context.Background()

	var calls []string
	failing := NewEventBus(logging.NewNop())
	failing.SubscribeResultRecorded(orderedSubscriber{name: "detector", calls: &calls, err: errors.New("evaluation failed")})
	results := NewResultService(env.tournaments, env.fixtures, failing, env.locks, tournament.EditPolicyRecompute, logging.NewNop())

	for _, item := range detail.Fixtures {
		out, err := results.RecordResult(ctx, ownerPrincipal, RecordResultInput{FixtureID: item.ID, HomeGoals: "2", AwayGoals: "0"})
		if err != nil {
			t.Fatalf("stored result must not report an error: %v", err)
		}
		if !out.CompletionPending {
			t.Fatalf("expected completion pending for %s", item.ID)
		}
		if score, ok := out.Fixture.Score(); !ok || score.Home != 2 || score.Away != 0 {
			t.Fatalf("unexpected returned fixture: %+v", out.Fixture)
		}
		stored, _, err := env.fixtures.GetByID(ctx, item.ID)
		if err != nil || !stored.IsPlayed() {
			t.Fatalf("fixture %s must be stored: %+v err=%v", item.ID, stored, err)
		}
	}

	current, _, err := env.tournaments.GetByID(ctx, detail.Tournament.ID)
	if err != nil {
		t.Fatalf("get tournament: %v", err)
	}
	if current.Status != tournament.StatusActive {
		t.Fatalf("tournament must stay active until reconciled: %+v", current)
	}

	action, err := env.detector.Reconcile(ctx, detail.Tournament.ID)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if action != tournament.ActionComplete {
		t.Fatalf("expected reconcile to complete the tournament, got %v", action)
	}
}

func TestResultService_GuardFailureLeavesFixtureUntouched(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, tournament.EditPolicyRecompute, tournament.DefaultRosterRules())
	detail := env.create(t, "Derby", rosterOf("1", "arsenal", "2", "chelsea"))
	ctx := context.Background()

	guardErr := errors.New("lock timeout")
	locks := NewGuardedTournamentLocks(&recordingGuard{err: guardErr})
	results := NewResultService(env.tournaments, env.fixtures, env.bus, locks, tournament.EditPolicyRecompute, logging.NewNop())

	target := detail.Fixtures[0]
	_, err := results.RecordResult(ctx, ownerPrincipal, RecordResultInput{FixtureID: target.ID, HomeGoals: "1", AwayGoals: "0"})
	if !errors.Is(err, guardErr) {
		t.Fatalf("expected guard error, got %v", err)
	}

	stored, _, err := env.fixtures.GetByID(ctx, target.ID)
	if err != nil {
		t.Fatalf("get fixture: %v", err)
	}
	if stored.IsPlayed() {
		t.Fatalf("fixture must stay pending: %+v", stored)
	}
}
