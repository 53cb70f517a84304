package main

import (
	"context"
	"fmt"
	"os"

	"fishledger/internal/cli"
	applog "fishledger/internal/log"
	"fishledger/internal/services"
	"fishledger/internal/shell"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.LoadEnvFile()
	// Blank or unknown LOG_LEVEL falls back to warn until config validation runs.
	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))

	cfg, err := cli.LoadAndValidateConfig(logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	result, err := cli.InitBackend(ctx, logger, cfg)
	if err != nil {
		logger.Error("Failed to initialize backend",
			applog.NewFields().WithOperation(applog.OpStartup).WithError(err).
				WithErrorType(applog.ErrorTypeStorage).ToSlice()...)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		if err := result.Cleanup(); err != nil {
			logger.Warn("Backend cleanup failed",
				applog.NewFields().WithOperation(applog.OpShutdown).WithError(err).ToSlice()...)
		}
	}()

	svc := services.NewLedgerService(result.Store, result.Publisher, logger)
	sh := shell.New(svc, os.Stdin, os.Stdout, logger)

	logger.Info("Starting fishledger", applog.FieldBackend, cfg.DataBackend)
	outcome, err := sh.Run(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	logger.Info("Stopped", "outcome", outcome.String())
	return outcome.ExitCode()
}
