package postgres

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
	qb "github.com/riskibarqy/fc-tournament/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) Create(ctx context.Context, t tournament.Tournament, competitors []tournament.Competitor, fixtures []fixture.Fixture) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx create tournament: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insertTournament, args, err := qb.InsertInto("tournaments").
		Columns("public_id", "name", "owner_account_id", "status", "created_at", "updated_at").
		Values(t.ID, t.Name, t.OwnerID, string(t.Status), t.CreatedAt, t.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert tournament query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insertTournament, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert tournament %s: already exists: %w", t.ID, err)
		}
		return fmt.Errorf("insert tournament: %w", err)
	}

	if len(competitors) > 0 {
		builder := qb.InsertInto("competitors").
			Columns("public_id", "tournament_public_id", "account_id", "name", "team_public_id", "entry_index")
		for _, item := range competitors {
			builder.Values(item.ID, t.ID, nullableAccountID(item.AccountID), item.Name, item.TeamID, item.EntryIndex)
		}
		query, args, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert competitors query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert competitors: %w", err)
		}
	}

	if len(fixtures) > 0 {
		builder := qb.InsertInto("fixtures").
			Columns("public_id", "tournament_public_id", "round_no", "sequence", "home_competitor_public_id", "away_competitor_public_id")
		for _, item := range fixtures {
			builder.Values(item.ID, t.ID, item.Round, item.Sequence, item.HomeCompetitorID, item.AwayCompetitorID)
		}
		query, args, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert fixtures query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert fixtures: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create tournament tx: %w", err)
	}
	return nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(qb.Eq("public_id", tournamentID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build select tournament by id query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("select tournament by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TournamentRepository) ListCompetitors(ctx context.Context, tournamentID string) ([]tournament.Competitor, error) {
	query, args, err := qb.Select("*").From("competitors").
		Where(qb.Eq("tournament_public_id", tournamentID)).
		OrderBy("entry_index", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select competitors query: %w", err)
	}

	var rows []competitorTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select competitors: %w", err)
	}

	out := make([]tournament.Competitor, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TournamentRepository) ListVisible(ctx context.Context, accountID int64, includeAll bool) ([]tournament.Tournament, error) {
	builder := qb.Select("*").From("tournaments").
		OrderBy("created_at DESC", "public_id DESC")
	if !includeAll {
		builder.Where(qb.Expr(
			"owner_account_id = ? OR public_id IN (SELECT tournament_public_id FROM competitors WHERE account_id = ?)",
			accountID, accountID,
		))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select visible tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select visible tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TournamentRepository) ListIDsByStatus(ctx context.Context, status tournament.Status) ([]string, error) {
	query, args, err := qb.Select("public_id").From("tournaments").
		Where(qb.Eq("status", string(status))).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournament ids by status query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select tournament ids by status: %w", err)
	}
	return ids, nil
}

// Complete only touches active rows, so a repeated call is a no-op.
func (r *TournamentRepository) Complete(ctx context.Context, tournamentID, championID string) (bool, error) {
	query, args, err := qb.Update("tournaments").
		Set("status", string(tournament.StatusCompleted)).
		Set("champion_competitor_public_id", championID).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", tournamentID),
			qb.Eq("status", string(tournament.StatusActive)),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build complete tournament query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("complete tournament: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected complete tournament: %w", err)
	}
	if affected > 0 {
		return true, nil
	}

	if _, exists, err := r.GetByID(ctx, tournamentID); err != nil {
		return false, err
	} else if !exists {
		return false, errors.Wrapf(tournament.ErrTournamentNotFound, "tournament=%s", tournamentID)
	}
	return false, nil
}

func (r *TournamentRepository) UpdateChampion(ctx context.Context, tournamentID, championID string) error {
	query, args, err := qb.Update("tournaments").
		Set("champion_competitor_public_id", championID).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", tournamentID),
			qb.Eq("status", string(tournament.StatusCompleted)),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update champion query: %w", err)
	}
	return r.execAffectingOne(ctx, "update champion", tournamentID, query, args)
}

func (r *TournamentRepository) Rename(ctx context.Context, tournamentID, name string) error {
	query, args, err := qb.Update("tournaments").
		Set("name", name).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", tournamentID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build rename tournament query: %w", err)
	}
	return r.execAffectingOne(ctx, "rename tournament", tournamentID, query, args)
}

// Delete removes fixtures, competitors and the tournament row in one
// transaction.
func (r *TournamentRepository) Delete(ctx context.Context, tournamentID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete tournament: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"fixtures", "competitors"} {
		query, args, err := qb.DeleteFrom(table).
			Where(qb.Eq("tournament_public_id", tournamentID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build delete %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}

	query, args, err := qb.DeleteFrom("tournaments").
		Where(qb.Eq("public_id", tournamentID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete tournament query: %w", err)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete tournament: %w", err)
	}
	if affected == 0 {
		return errors.Wrapf(tournament.ErrTournamentNotFound, "tournament=%s", tournamentID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete tournament tx: %w", err)
	}
	return nil
}

func (r *TournamentRepository) execAffectingOne(ctx context.Context, action, tournamentID, query string, args []any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected %s: %w", action, err)
	}
	if affected == 0 {
		return errors.Wrapf(tournament.ErrTournamentNotFound, "%s tournament=%s", action, tournamentID)
	}
	return nil
}
