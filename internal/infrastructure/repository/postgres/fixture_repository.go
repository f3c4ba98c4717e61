package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
	qb "github.com/riskibarqy/fc-tournament/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListByTournament(ctx context.Context, tournamentID string) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(qb.Eq("tournament_public_id", tournamentID)).
		OrderBy("round_no", "sequence", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by tournament query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures by tournament: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(qb.Eq("public_id", fixtureID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build select fixture by id query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("select fixture by id: %w", err)
	}
	return row.toDomain(), true, nil
}

// SaveResult holds the owning tournament row lock while writing, so result
// writes from other processes on the same tournament are serialised.
func (r *FixtureRepository) SaveResult(ctx context.Context, fixtureID string, score fixture.Score, playedAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save fixture result: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lockQuery, lockArgs, err := qb.Select("public_id").From("tournaments").
		Where(qb.Expr("public_id = (SELECT tournament_public_id FROM fixtures WHERE public_id = ?)", fixtureID)).
		ForUpdate().
		ToSQL()
	if err != nil {
		return fmt.Errorf("build lock tournament query: %w", err)
	}
	var tournamentID string
	if err := tx.GetContext(ctx, &tournamentID, lockQuery, lockArgs...); err != nil {
		if isNotFound(err) {
			return errors.Wrapf(fixture.ErrFixtureNotFound, "fixture=%s", fixtureID)
		}
		return fmt.Errorf("lock tournament for fixture result: %w", err)
	}

	updateQuery, updateArgs, err := qb.Update("fixtures").
		Set("home_goals", score.Home).
		Set("away_goals", score.Away).
		Set("played_at", playedAt.UTC()).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", fixtureID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build save fixture result query: %w", err)
	}
	result, err := tx.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		return fmt.Errorf("save fixture result: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected save fixture result: %w", err)
	}
	if affected == 0 {
		return errors.Wrapf(fixture.ErrFixtureNotFound, "fixture=%s", fixtureID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save fixture result tx: %w", err)
	}
	return nil
}
