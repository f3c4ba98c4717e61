package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("RESULT_EDIT_POLICY", "")
	t.Setenv("ROSTER_MIN_SIZE", "")
	t.Setenv("ROSTER_MAX_SIZE", "")
	t.Setenv("ROSTER_ALLOW_DUPLICATE_TEAMS", "")
	t.Setenv("ROSTER_REQUIRE_ACCOUNTS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected storage driver: %q", cfg.StorageDriver)
	}
	if cfg.AuthJWTSecret == "" {
		t.Fatalf("expected dev jwt secret fallback")
	}
	if cfg.ResultEditPolicy != tournament.EditPolicyRecompute {
		t.Fatalf("unexpected edit policy: %q", cfg.ResultEditPolicy)
	}
	if cfg.RosterRules != tournament.DefaultRosterRules() {
		t.Fatalf("unexpected roster rules: %+v", cfg.RosterRules)
	}
	if cfg.ServiceName != "fc-tournament-api" {
		t.Fatalf("unexpected service name: %q", cfg.ServiceName)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.ShutdownTimeout)
	}
}

func TestLoad_JWTSecretRequiredOutsideDev(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when AUTH_JWT_SECRET is empty in prod")
	}

	t.Setenv("AUTH_JWT_SECRET", "prod-secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AuthJWTSecret != "prod-secret" {
		t.Fatalf("unexpected jwt secret: %q", cfg.AuthJWTSecret)
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "sqlite")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORAGE_DRIVER")
		}
	})

	t.Run("postgres", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", " Postgres ")
		t.Setenv("DB_URL", "postgres://u:p@db:5432/fc?sslmode=disable")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StorageDriver != StoragePostgres {
			t.Fatalf("unexpected storage driver: %q", cfg.StorageDriver)
		}
	})
}

func TestLoad_RosterRules(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("ROSTER_MIN_SIZE", "3")
		t.Setenv("ROSTER_MAX_SIZE", "6")
		t.Setenv("ROSTER_ALLOW_DUPLICATE_TEAMS", "false")
		t.Setenv("ROSTER_REQUIRE_ACCOUNTS", "false")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		want := tournament.RosterRules{MinSize: 3, MaxSize: 6, AllowDuplicateTeams: false, Mode: tournament.RosterModeNames}
		if cfg.RosterRules != want {
			t.Fatalf("unexpected roster rules: %+v", cfg.RosterRules)
		}
	})

	t.Run("min below two", func(t *testing.T) {
		t.Setenv("ROSTER_MIN_SIZE", "1")
		t.Setenv("ROSTER_MAX_SIZE", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for ROSTER_MIN_SIZE=1")
		}
	})

	t.Run("max below min", func(t *testing.T) {
		t.Setenv("ROSTER_MIN_SIZE", "5")
		t.Setenv("ROSTER_MAX_SIZE", "4")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when ROSTER_MAX_SIZE < ROSTER_MIN_SIZE")
		}
	})
}

func TestLoad_ResultEditPolicy(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Setenv("RESULT_EDIT_POLICY", "LOCKED")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ResultEditPolicy != tournament.EditPolicyLocked {
		t.Fatalf("unexpected edit policy: %q", cfg.ResultEditPolicy)
	}

	t.Setenv("RESULT_EDIT_POLICY", "sometimes")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown RESULT_EDIT_POLICY")
	}
}

func TestLoad_WorkerCounts(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Setenv("RECONCILE_WORKERS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for RECONCILE_WORKERS=0")
	}

	t.Setenv("RECONCILE_WORKERS", "8")
	t.Setenv("DASHBOARD_CONCURRENCY", "x")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid DASHBOARD_CONCURRENCY")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "fc-tournament-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "fc-tournament-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		t.Setenv("WS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
		if len(cfg.WSAllowedOrigins) != 1 || cfg.WSAllowedOrigins[0] != "*" {
			t.Fatalf("expected websocket origins to follow CORS, got %+v", cfg.WSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		t.Setenv("WS_ALLOWED_ORIGINS", "https://live.example.com")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
		if len(cfg.WSAllowedOrigins) != 1 || cfg.WSAllowedOrigins[0] != "https://live.example.com" {
			t.Fatalf("unexpected websocket origins: %+v", cfg.WSAllowedOrigins)
		}
	})
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})
}
