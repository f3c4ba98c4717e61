package postgres

import (
	"context"
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
)

const (
	advisoryLockQuery   = `SELECT pg_advisory_lock(hashtextextended($1, 0))`
	advisoryUnlockQuery = `SELECT pg_advisory_unlock(hashtextextended($1, 0))`
)

// TournamentLocker holds a session-level advisory lock per tournament on a
// dedicated connection, so every API process sharing the database serialises
// result writes and completion for the same tournament.
type TournamentLocker struct {
	db *sqlx.DB
}

func NewTournamentLocker(db *sqlx.DB) *TournamentLocker {
	return &TournamentLocker{db: db}
}

func (l *TournamentLocker) Acquire(ctx context.Context, tournamentID string) (func(), error) {
	conn, err := l.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("reserve lock connection: %w", err)
	}

	key := advisoryLockKey(tournamentID)
	if _, err := conn.ExecContext(ctx, advisoryLockQuery, key); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			if _, err := conn.ExecContext(context.Background(), advisoryUnlockQuery, key); err != nil {
				// A session still holding the lock must not go back to the pool.
				_ = conn.Raw(func(any) error { return driver.ErrBadConn })
			}
			_ = conn.Close()
		})
	}, nil
}

func advisoryLockKey(tournamentID string) string {
	return "tournament:" + tournamentID
}
