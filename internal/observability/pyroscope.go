package observability

import (
	"runtime"

	"github.com/grafana/pyroscope-go"

	"github.com/riskibarqy/fc-tournament/internal/config"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
)

var baseProfileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

// Lock contention profiles, collected outside prod only.
var contentionProfileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileMutexCount,
	pyroscope.ProfileMutexDuration,
	pyroscope.ProfileBlockCount,
	pyroscope.ProfileBlockDuration,
}

const contentionSampleRate = 5

func profileTypes(appEnv string) []pyroscope.ProfileType {
	out := append([]pyroscope.ProfileType(nil), baseProfileTypes...)
	if appEnv != config.EnvProd {
		out = append(out, contentionProfileTypes...)
	}
	return out
}

// InitPyroscope starts continuous profiling when enabled.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	types := profileTypes(cfg.AppEnv)
	if len(types) > len(baseProfileTypes) {
		runtime.SetMutexProfileFraction(contentionSampleRate)
		runtime.SetBlockProfileRate(contentionSampleRate)
	}
	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags: map[string]string{
			"env":     cfg.AppEnv,
			"service": cfg.ServiceName,
			"storage": cfg.StorageDriver,
			"version": cfg.ServiceVersion,
		},
		ProfileTypes: types,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("pyroscope enabled",
		"server_address", cfg.PyroscopeServerAddress,
		"application", cfg.PyroscopeAppName,
		"profile_types", len(types),
	)

	return profiler.Stop, nil
}
