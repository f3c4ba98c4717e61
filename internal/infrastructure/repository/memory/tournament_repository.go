package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
)

// tournamentStore holds tournaments, rosters and fixtures behind one lock so
// multi-entity writes stay atomic.
type tournamentStore struct {
	mu          sync.RWMutex
	tournaments map[string]tournament.Tournament
	competitors map[string][]tournament.Competitor
	fixtures    map[string][]fixture.Fixture
	fixtureRef  map[string]fixtureLocation
}

type fixtureLocation struct {
	tournamentID string
	index        int
}

type TournamentRepository struct {
	store *tournamentStore
}

type FixtureRepository struct {
	store *tournamentStore
}

// NewTournamentRepositories returns both views over one shared store.
func NewTournamentRepositories() (*TournamentRepository, *FixtureRepository) {
	store := &tournamentStore{
		tournaments: make(map[string]tournament.Tournament),
		competitors: make(map[string][]tournament.Competitor),
		fixtures:    make(map[string][]fixture.Fixture),
		fixtureRef:  make(map[string]fixtureLocation),
	}
	return &TournamentRepository{store: store}, &FixtureRepository{store: store}
}

func (r *TournamentRepository) Create(_ context.Context, t tournament.Tournament, competitors []tournament.Competitor, fixtures []fixture.Fixture) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tournaments[t.ID]; exists {
		return fmt.Errorf("tournament %s already exists", t.ID)
	}
	for _, item := range fixtures {
		if item.ID == "" {
			return fmt.Errorf("fixture id is required")
		}
		if _, exists := s.fixtureRef[item.ID]; exists {
			return fmt.Errorf("fixture %s already exists", item.ID)
		}
	}

	s.tournaments[t.ID] = t
	s.competitors[t.ID] = append([]tournament.Competitor(nil), competitors...)
	s.fixtures[t.ID] = append([]fixture.Fixture(nil), fixtures...)
	for idx, item := range fixtures {
		s.fixtureRef[item.ID] = fixtureLocation{tournamentID: t.ID, index: idx}
	}
	return nil
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.tournaments[tournamentID]
	return item, ok, nil
}

func (r *TournamentRepository) ListCompetitors(_ context.Context, tournamentID string) ([]tournament.Competitor, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.competitors[tournamentID]
	out := make([]tournament.Competitor, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *TournamentRepository) ListVisible(_ context.Context, accountID int64, includeAll bool) ([]tournament.Tournament, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(s.tournaments))
	for id, item := range s.tournaments {
		if includeAll || item.OwnerID == accountID || tournament.HasParticipant(s.competitors[id], accountID) {
			out = append(out, item)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *TournamentRepository) ListIDsByStatus(_ context.Context, status tournament.Status) ([]string, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0)
	for id, item := range s.tournaments {
		if item.Status == status {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *TournamentRepository) Complete(_ context.Context, tournamentID, championID string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.tournaments[tournamentID]
	if !ok {
		return false, errors.Wrapf(tournament.ErrTournamentNotFound, "tournament=%s", tournamentID)
	}
	if item.Status != tournament.StatusActive {
		return false, nil
	}
	item.Status = tournament.StatusCompleted
	item.ChampionID = championID
	s.tournaments[tournamentID] = item
	return true, nil
}

func (r *TournamentRepository) UpdateChampion(_ context.Context, tournamentID, championID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.tournaments[tournamentID]
	if !ok {
		return errors.Wrapf(tournament.ErrTournamentNotFound, "tournament=%s", tournamentID)
	}
	if item.Status != tournament.StatusCompleted {
		return errors.Newf("tournament %s is not completed", tournamentID)
	}
	item.ChampionID = championID
	s.tournaments[tournamentID] = item
	return nil
}

func (r *TournamentRepository) Rename(_ context.Context, tournamentID, name string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.tournaments[tournamentID]
	if !ok {
		return errors.Wrapf(tournament.ErrTournamentNotFound, "tournament=%s", tournamentID)
	}
	item.Name = name
	s.tournaments[tournamentID] = item
	return nil
}

func (r *TournamentRepository) Delete(_ context.Context, tournamentID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tournaments[tournamentID]; !ok {
		return errors.Wrapf(tournament.ErrTournamentNotFound, "tournament=%s", tournamentID)
	}
	for _, item := range s.fixtures[tournamentID] {
		delete(s.fixtureRef, item.ID)
	}
	delete(s.fixtures, tournamentID)
	delete(s.competitors, tournamentID)
	delete(s.tournaments, tournamentID)
	return nil
}

func (r *FixtureRepository) ListByTournament(_ context.Context, tournamentID string) ([]fixture.Fixture, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.fixtures[tournamentID]
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		out = append(out, cloneFixture(item))
	}
	return out, nil
}

func (r *FixtureRepository) GetByID(_ context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, ok := s.fixtureRef[fixtureID]
	if !ok {
		return fixture.Fixture{}, false, nil
	}
	return cloneFixture(s.fixtures[ref.tournamentID][ref.index]), true, nil
}

func (r *FixtureRepository) SaveResult(_ context.Context, fixtureID string, score fixture.Score, playedAt time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, ok := s.fixtureRef[fixtureID]
	if !ok {
		return errors.Wrapf(fixture.ErrFixtureNotFound, "fixture=%s", fixtureID)
	}
	items := s.fixtures[ref.tournamentID]
	items[ref.index] = items[ref.index].ApplyResult(score, playedAt)
	return nil
}

// cloneFixture detaches the goal and time pointers from stored state.
func cloneFixture(item fixture.Fixture) fixture.Fixture {
	if score, ok := item.Score(); ok && item.PlayedAt != nil {
		return item.ApplyResult(score, *item.PlayedAt)
	}
	return item
}

func sortNewestFirst(items []tournament.Tournament) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
}
