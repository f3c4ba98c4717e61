package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/fc-tournament/internal/config"
	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	"github.com/riskibarqy/fc-tournament/internal/domain/fixture"
	"github.com/riskibarqy/fc-tournament/internal/domain/team"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
	"github.com/riskibarqy/fc-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fc-tournament/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
	"github.com/riskibarqy/fc-tournament/internal/usecase"
)

type storage struct {
	tournaments tournament.Repository
	fixtures    fixture.Repository
	catalog     team.Catalog
	accounts    account.Directory
	guard       usecase.TournamentGuard
	close       func() error
}

func openStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		return openPostgresStorage(ctx, cfg, logger)
	default:
		tournaments, fixtures := memory.NewTournamentRepositories()
		logger.Info("storage ready", "driver", config.StorageMemory)
		return storage{
			tournaments: tournaments,
			fixtures:    fixtures,
			catalog:     memory.NewTeamCatalog(memory.SeedTeams()),
			accounts:    memory.NewAccountDirectory(memory.SeedAccounts()),
			close:       func() error { return nil },
		}, nil
	}
}

func openPostgresStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage, error) {
	dsn := parsePostgresDSN(cfg.DBURL, cfg.DBDisablePreparedBinary)

	if cfg.DBAutoMigrate {
		if err := runMigrations(cfg.MigrationsDir, dsn.String(), logger); err != nil {
			return storage{}, err
		}
	}

	db, err := otelsqlx.Open("postgres", dsn.String(),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dsn.dbName),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	)
	if err != nil {
		return storage{}, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return storage{}, fmt.Errorf("ping postgres: %w", err)
	}
	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		_ = db.Close()
		return storage{}, fmt.Errorf("bootstrap seed: %w", err)
	}

	logger.Info("storage ready", "driver", config.StoragePostgres, "db_name", dsn.dbName)

	return storage{
		tournaments: postgres.NewTournamentRepository(db),
		fixtures:    postgres.NewFixtureRepository(db),
		catalog:     postgres.NewTeamCatalog(db),
		accounts:    postgres.NewAccountDirectory(db),
		guard:       postgres.NewTournamentLocker(db),
		close:       closeDB(db),
	}, nil
}

func closeDB(db *sqlx.DB) func() error {
	return func() error {
		return db.Close()
	}
}

func runMigrations(dir, dbURL string, logger *logging.Logger) error {
	abs, err := filepath.Abs(strings.TrimSpace(dir))
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(abs), dbURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Warn("close migrator failed", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	logger.Info("migrations applied", "dir", abs)
	return nil
}
