package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fc-tournament/internal/config"
	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
	"github.com/riskibarqy/fc-tournament/internal/infrastructure/account/token"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:               config.EnvDev,
		HTTPAddr:             "127.0.0.1:0",
		StorageDriver:        config.StorageMemory,
		CacheEnabled:         true,
		CacheTTL:             time.Minute,
		CORSAllowedOrigins:   []string{"*"},
		AuthJWTSecret:        "app-test-secret",
		AuthJWTIssuer:        "fc-tournament-test",
		RosterRules:          tournament.DefaultRosterRules(),
		ResultEditPolicy:     tournament.EditPolicyRecompute,
		ReconcileWorkers:     2,
		DashboardConcurrency: 2,
		WSEnabled:            true,
	}
}

func TestNewServer_RejectsEmptyAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""

	_, err := NewServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewServer_MemoryStackServesAuthorizedRequests(t *testing.T) {
	cfg := memoryConfig()
	srv, err := NewServer(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.storage.close() })

	issuer := token.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer, nil)
	accessToken, err := issuer.Issue(account.Principal{AccountID: 1, Role: account.RoleUser}, time.Hour)
	require.NoError(t, err)

	body := `{"name":"Office Cup","players":[{"account_id":1,"team_id":"arsenal"},{"account_id":2,"team_id":"chelsea"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/tournaments", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec = httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Office Cup")

	req = httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	srv, err := NewServer(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatalf("run did not return after cancel")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), time.Second)
	defer stop()
	require.NoError(t, srv.Shutdown(shutdownCtx))
}
