package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
	"github.com/riskibarqy/fc-tournament/internal/domain/team"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
)

type accountTableModel struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

func (row accountTableModel) toDomain() account.Account {
	return account.Account{ID: row.ID, Username: row.Username, Role: row.Role}
}

type teamTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	Name      string    `db:"name"`
	League    string    `db:"league"`
	LogoURL   string    `db:"logo_url"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
}

func (row teamTableModel) toDomain() team.Team {
	return team.Team{ID: row.PublicID, Name: row.Name, League: row.League, LogoURL: row.LogoURL}
}

type tournamentTableModel struct {
	ID             int64          `db:"id"`
	PublicID       string         `db:"public_id"`
	Name           string         `db:"name"`
	OwnerAccountID int64          `db:"owner_account_id"`
	Status         string         `db:"status"`
	ChampionID     sql.NullString `db:"champion_competitor_public_id"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (row tournamentTableModel) toDomain() tournament.Tournament {
	return tournament.Tournament{
		ID:         row.PublicID,
		Name:       row.Name,
		OwnerID:    row.OwnerAccountID,
		Status:     tournament.Status(row.Status),
		ChampionID: row.ChampionID.String,
		CreatedAt:  row.CreatedAt.UTC(),
	}
}

type competitorTableModel struct {
	ID           int64         `db:"id"`
	PublicID     string        `db:"public_id"`
	TournamentID string        `db:"tournament_public_id"`
	AccountID    sql.NullInt64 `db:"account_id"`
	Name         string        `db:"name"`
	TeamID       string        `db:"team_public_id"`
	EntryIndex   int           `db:"entry_index"`
	CreatedAt    time.Time     `db:"created_at"`
}

func (row competitorTableModel) toDomain() tournament.Competitor {
	return tournament.Competitor{
		ID:           row.PublicID,
		TournamentID: row.TournamentID,
		AccountID:    row.AccountID.Int64,
		Name:         row.Name,
		TeamID:       row.TeamID,
		EntryIndex:   row.EntryIndex,
	}
}

type fixtureTableModel struct {
	ID               int64         `db:"id"`
	PublicID         string        `db:"public_id"`
	TournamentID     string        `db:"tournament_public_id"`
	Round            int           `db:"round_no"`
	Sequence         int           `db:"sequence"`
	HomeCompetitorID string        `db:"home_competitor_public_id"`
	AwayCompetitorID string        `db:"away_competitor_public_id"`
	HomeGoals        sql.NullInt64 `db:"home_goals"`
	AwayGoals        sql.NullInt64 `db:"away_goals"`
	PlayedAt         sql.NullTime  `db:"played_at"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}

func (row fixtureTableModel) toDomain() fixture.Fixture {
	out := fixture.Fixture{
		ID:               row.PublicID,
		TournamentID:     row.TournamentID,
		Round:            row.Round,
		Sequence:         row.Sequence,
		HomeCompetitorID: row.HomeCompetitorID,
		AwayCompetitorID: row.AwayCompetitorID,
	}
	// A half-set pair is treated as pending; the schema forbids it anyway.
	if row.HomeGoals.Valid && row.AwayGoals.Valid {
		out.HomeGoals = nullInt64ToIntPtr(row.HomeGoals)
		out.AwayGoals = nullInt64ToIntPtr(row.AwayGoals)
		out.PlayedAt = nullTimeToPtr(row.PlayedAt)
	}
	return out
}
