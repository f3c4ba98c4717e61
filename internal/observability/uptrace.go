package observability

import (
	"context"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/riskibarqy/fc-tournament/internal/config"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
)

func uptraceDisabledReason(cfg config.Config) string {
	switch {
	case !cfg.UptraceEnabled:
		return "UPTRACE_ENABLED=false"
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		return "UPTRACE_DSN empty"
	default:
		return ""
	}
}

// InitUptrace configures global OpenTelemetry providers for Uptrace. Spans
// from otelhttp, otelsql and the usecase tracer are exported once it runs.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if reason := uptraceDisabledReason(cfg); reason != "" {
		logger.Info("uptrace disabled", "reason", reason)
		return func(context.Context) error { return nil }, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)

	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"environment", cfg.AppEnv,
		"logs_enabled", cfg.UptraceLogsEnabled,
	)

	return uptrace.Shutdown, nil
}
