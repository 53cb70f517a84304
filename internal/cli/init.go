// Package cli provides the startup steps of cmd/fishledger: environment,
// logging, configuration, signals and backend wiring.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fishledger/internal/backend"
	"fishledger/internal/config"
	applog "fishledger/internal/log"
)

// LoadEnvFile loads a .env file from the working directory if there is one.
// A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the stderr logger for the given LOG_LEVEL value and
// installs it as the slog default. Unknown levels fall back to warn;
// config validation reports them.
func SetupLogger(level string) *applog.Logger {
	cfg := applog.DefaultConfig()
	if lvl, err := applog.ParseLevel(level); err == nil {
		cfg.Level = lvl
	} else {
		cfg.Level = slog.LevelWarn
	}
	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig reads the environment and validates the result.
func LoadAndValidateConfig(logger *applog.Logger) (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithComponent(applog.ComponentConfig).Error("Configuration validation failed",
			applog.NewFields().WithError(err).WithErrorType(applog.ErrorTypeConfiguration).ToSlice()...)
		return nil, err
	}
	return cfg, nil
}

// SignalContext is cancelled on SIGINT or SIGTERM. A pending prompt sees the
// cancellation and reports an interrupt.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// InitBackend opens the configured ledger store and event publisher.
func InitBackend(ctx context.Context, logger *applog.Logger, cfg *config.Config) (*backend.BackendResult, error) {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	result, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		return nil, fmt.Errorf("create %s backend: %w", backendCfg.Type, err)
	}
	return result, nil
}
