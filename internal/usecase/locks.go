package usecase

import (
	"context"
	"fmt"
	"sync"
)

// TournamentGuard serialises writes to one tournament across processes.
// The returned release func must be safe to call more than once.
type TournamentGuard interface {
	Acquire(ctx context.Context, tournamentID string) (func(), error)
}

// TournamentLocks serialises writes per tournament id inside one process and,
// when a guard is set, across every process sharing that guard.
// Entries are dropped once no caller holds or waits on them.
type TournamentLocks struct {
	mu    sync.Mutex
	locks map[string]*tournamentLock
	guard TournamentGuard
}

type tournamentLock struct {
	mu   sync.Mutex
	refs int
}

func NewTournamentLocks() *TournamentLocks {
	return &TournamentLocks{locks: make(map[string]*tournamentLock)}
}

// NewGuardedTournamentLocks falls back to process-local locking when guard is nil.
func NewGuardedTournamentLocks(guard TournamentGuard) *TournamentLocks {
	locks := NewTournamentLocks()
	locks.guard = guard
	return locks
}

// Acquire takes the process-local lock first and then the guard, so at most
// one caller per process waits on the shared lock.
func (l *TournamentLocks) Acquire(ctx context.Context, tournamentID string) (func(), error) {
	unlock := l.Lock(tournamentID)
	if l.guard == nil {
		return unlock, nil
	}

	release, err := l.guard.Acquire(ctx, tournamentID)
	if err != nil {
		unlock()
		return nil, fmt.Errorf("lock tournament %s: %w", tournamentID, err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			release()
			unlock()
		})
	}, nil
}

// Lock blocks until tournamentID is free and returns its release func.
func (l *TournamentLocks) Lock(tournamentID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[tournamentID]
	if !ok {
		entry = &tournamentLock{}
		l.locks[tournamentID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			entry.mu.Unlock()
			l.mu.Lock()
			entry.refs--
			if entry.refs == 0 {
				delete(l.locks, tournamentID)
			}
			l.mu.Unlock()
		})
	}
}

func (l *TournamentLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
