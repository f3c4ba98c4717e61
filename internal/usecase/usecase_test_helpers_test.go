package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
	"github.com/riskibarqy/fc-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
)

var (
	ownerPrincipal    = account.Principal{AccountID: 1, Role: account.RoleUser}
	playerPrincipal   = account.Principal{AccountID: 2, Role: account.RoleUser}
	outsiderPrincipal = account.Principal{AccountID: 4, Role: account.RoleUser}
	adminPrincipal    = account.Principal{AccountID: 5, Role: account.RoleAdmin}
)

type sequenceIDGenerator struct {
	prefix string
	next   atomic.Int64
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	return fmt.Sprintf("%s-%03d", g.prefix, g.next.Add(1)), nil
}

type completedRecorder struct {
	mu     sync.Mutex
	events []tournament.Completed
}

func (r *completedRecorder) HandleTournamentCompleted(_ context.Context, event tournament.Completed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *completedRecorder) snapshot() []tournament.Completed {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tournament.Completed(nil), r.events...)
}

type testEnv struct {
	tournaments *memory.TournamentRepository
	fixtures    *memory.FixtureRepository
	bus         *EventBus
	locks       *TournamentLocks
	detector    *CompletionDetector
	service     *TournamentService
	results     *ResultService
	completed   *completedRecorder
}

func newTestEnv(t *testing.T, policy tournament.EditPolicy, rules tournament.RosterRules) *testEnv {
	t.Helper()

	logger := logging.NewNop()
	tournaments, fixtures := memory.NewTournamentRepositories()
	catalog := memory.NewTeamCatalog(memory.SeedTeams())
	accounts := memory.NewAccountDirectory(memory.SeedAccounts())

	bus := NewEventBus(logger)
	locks := NewTournamentLocks()
	detector := NewCompletionDetector(tournaments, fixtures, bus, locks, logger)
	recorder := &completedRecorder{}
	bus.SubscribeResultRecorded(detector)
	bus.SubscribeTournamentCompleted(recorder)

	service := NewTournamentService(tournaments, fixtures, catalog, accounts, &sequenceIDGenerator{prefix: "id"}, locks, rules, logger)
	fixedNow := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixedNow }

	results := NewResultService(tournaments, fixtures, bus, locks, policy, logger)
	results.now = func() time.Time { return fixedNow.Add(time.Hour) }

	return &testEnv{
		tournaments: tournaments,
		fixtures:    fixtures,
		bus:         bus,
		locks:       locks,
		detector:    detector,
		service:     service,
		results:     results,
		completed:   recorder,
	}
}

func rosterOf(pairs ...string) []tournament.RawEntry {
	out := make([]tournament.RawEntry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, tournament.RawEntry{AccountRef: pairs[i], TeamID: pairs[i+1]})
	}
	return out
}

func (e *testEnv) create(t *testing.T, name string, entries []tournament.RawEntry) tournament.Detail {
	t.Helper()

	detail, err := e.service.Create(context.Background(), ownerPrincipal, CreateTournamentInput{Name: name, Entries: entries})
	if err != nil {
		t.Fatalf("create tournament: %v", err)
	}
	return detail
}

func (e *testEnv) record(t *testing.T, fixtureID string, home, away int) RecordResultOutput {
	t.Helper()

	out, err := e.results.RecordResult(context.Background(), ownerPrincipal, RecordResultInput{
		FixtureID: fixtureID,
		HomeGoals: fmt.Sprint(home),
		AwayGoals: fmt.Sprint(away),
	})
	if err != nil {
		t.Fatalf("record result %s: %v", fixtureID, err)
	}
	return out
}
