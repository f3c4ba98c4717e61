package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fc-tournament/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the built-in team catalog and demo accounts into an
// empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (public_id, name, league, logo_url, sort_order)
VALUES (:public_id, :name, :league, :logo_url, :sort_order)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":  t.ID,
			"name":       t.Name,
			"league":     t.League,
			"logo_url":   t.LogoURL,
			"sort_order": i + 1,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	for _, a := range memory.SeedAccounts() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO accounts (id, username, role)
VALUES (:id, :username, :role)
ON CONFLICT DO NOTHING`, map[string]any{
			"id":       a.ID,
			"username": a.Username,
			"role":     a.Role,
		})
		if err != nil {
			return fmt.Errorf("bind seed account %s query: %w", a.Username, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed account %s: %w", a.Username, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `SELECT setval(pg_get_serial_sequence('accounts', 'id'), (SELECT MAX(id) FROM accounts))`); err != nil {
		return fmt.Errorf("advance accounts sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
