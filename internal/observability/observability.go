package observability

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/fc-tournament/internal/config"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
)

// Start brings up tracing and profiling and returns one function that stops
// both. Profiling stops first so its last upload is not traced.
func Start(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	shutdownTracing, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}

	stopProfiler, err := InitPyroscope(cfg, logger)
	if err != nil {
		_ = shutdownTracing(context.Background())
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}

	return func(ctx context.Context) error {
		var errs error
		if err := stopProfiler(); err != nil {
			errs = errors.CombineErrors(errs, fmt.Errorf("stop pyroscope: %w", err))
		}
		if err := shutdownTracing(ctx); err != nil {
			errs = errors.CombineErrors(errs, fmt.Errorf("shutdown uptrace: %w", err))
		}
		return errs
	}, nil
}
