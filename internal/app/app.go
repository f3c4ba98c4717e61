package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fc-tournament/internal/config"
	"github.com/riskibarqy/fc-tournament/internal/infrastructure/account/token"
	"github.com/riskibarqy/fc-tournament/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fc-tournament/internal/interfaces/httpapi"
	"github.com/riskibarqy/fc-tournament/internal/interfaces/ws"
	basecache "github.com/riskibarqy/fc-tournament/internal/platform/cache"
	idgen "github.com/riskibarqy/fc-tournament/internal/platform/id"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
	"github.com/riskibarqy/fc-tournament/internal/usecase"
)

// Server owns the HTTP listener plus the resources it depends on.
type Server struct {
	HTTP *http.Server

	hub     *ws.Hub
	storage storage
	logger  *logging.Logger
}

func NewServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	catalog := store.catalog
	if cfg.CacheEnabled {
		catalog = cache.NewTeamCatalog(store.catalog, basecache.NewStore(cfg.CacheTTL))
	}

	bus := usecase.NewEventBus(logger.Named("events"))
	locks := usecase.NewGuardedTournamentLocks(store.guard)
	detector := usecase.NewCompletionDetector(store.tournaments, store.fixtures, bus, locks, logger)
	bus.SubscribeResultRecorded(detector)

	var hub *ws.Hub
	if cfg.WSEnabled {
		hub = ws.NewHub(cfg.WSAllowedOrigins, logger.Named("ws"))
		notifier := ws.NewNotifier(hub)
		bus.SubscribeResultRecorded(notifier)
		bus.SubscribeTournamentCompleted(notifier)
	}

	handler := httpapi.NewHandler(
		usecase.NewTeamService(catalog),
		usecase.NewTournamentService(store.tournaments, store.fixtures, catalog, store.accounts, idgen.NewUUIDGenerator(), locks, cfg.RosterRules, logger),
		usecase.NewResultService(store.tournaments, store.fixtures, bus, locks, cfg.ResultEditPolicy, logger),
		usecase.NewDashboardService(store.tournaments, store.fixtures, catalog, cfg.DashboardConcurrency),
		usecase.NewReconcileService(store.tournaments, detector, cfg.ReconcileWorkers, logger),
		hub,
		logger,
	)
	verifier := token.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		hub:     hub,
		storage: store,
		logger:  logger,
	}, nil
}

// Run serves until ctx is cancelled or the listener fails. Live connections
// are closed when ctx ends.
func (s *Server) Run(ctx context.Context) error {
	if s.hub != nil {
		go s.hub.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server starting", "addr", s.HTTP.Addr)
		if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return nil
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	}
}

// Shutdown drains in-flight requests and then releases storage.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownErr := s.HTTP.Shutdown(ctx)
	if err := s.storage.close(); err != nil {
		s.logger.Warn("close storage failed", "error", err)
	}
	if shutdownErr != nil {
		return fmt.Errorf("graceful shutdown: %w", shutdownErr)
	}

	s.logger.Info("http server stopped")
	return nil
}
