package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	qb "github.com/riskibarqy/fc-tournament/internal/platform/querybuilder"
)

type AccountDirectory struct {
	db *sqlx.DB
}

func NewAccountDirectory(db *sqlx.DB) *AccountDirectory {
	return &AccountDirectory{db: db}
}

func (r *AccountDirectory) ResolveExisting(ctx context.Context, ids []int64) (map[int64]account.Account, error) {
	out := make(map[int64]account.Account, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := qb.Select("*").From("accounts").
		Where(qb.In("id", anySlice(ids))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build resolve accounts query: %w", err)
	}

	var rows []accountTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select accounts: %w", err)
	}

	for _, row := range rows {
		out[row.ID] = row.toDomain()
	}
	return out, nil
}
