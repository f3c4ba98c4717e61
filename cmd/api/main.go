package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/fc-tournament/internal/app"
	"github.com/riskibarqy/fc-tournament/internal/config"
	"github.com/riskibarqy/fc-tournament/internal/observability"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownObservability, err := observability.Start(cfg, logger)
	if err != nil {
		logger.Error("init observability", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := app.NewServer(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	runErr := srv.Run(ctx)
	if runErr != nil {
		logger.Error("http server failed", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	exitCode := 0
	if runErr != nil {
		exitCode = 1
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		exitCode = 1
	}
	if err := shutdownObservability(shutdownCtx); err != nil {
		logger.Warn("shutdown observability failed", "error", err)
	}
	if exitCode != 0 {
		_ = logger.Sync()
		os.Exit(exitCode)
	}
}
