package backend

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"fishledger/internal/amqp"
	"fishledger/internal/ledger"
	"fishledger/internal/ledger/jsonfile"
	"fishledger/internal/ledger/memory"
	applog "fishledger/internal/log"
	"fishledger/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// CreateBackend opens the ledger store and, when configured, connects the
// event publisher. Both run concurrently; only a store failure is fatal.
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		store      ledger.Store
		closeStore CleanupFunc
		amqpClient *amqp.Client
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, cleanup, err := f.openStore(config)
		if err != nil {
			return err
		}
		store, closeStore = s, cleanup
		return nil
	})

	if config.AMQPURL != "" {
		g.Go(func() error {
			amqpClient = f.connectAMQP(gctx, config)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if amqpClient != nil {
			amqpClient.Close()
		}
		return nil, err
	}

	result := &BackendResult{Store: store}
	cleanups := []CleanupFunc{}
	if closeStore != nil {
		cleanups = append(cleanups, closeStore)
	}
	if amqpClient != nil {
		result.Publisher = amqpClient
		cleanups = append(cleanups, amqpClient.Close)
	}
	result.Cleanup = func() error {
		var errs []error
		for _, cleanup := range cleanups {
			errs = append(errs, cleanup())
		}
		return errors.Join(errs...)
	}

	f.logger.InfoContext(ctx, "Initialized backend",
		applog.FieldBackend, config.Type,
		"amqp_enabled", amqpClient != nil)

	return result, nil
}

func (f *DefaultFactory) openStore(config Config) (ledger.Store, CleanupFunc, error) {
	switch config.Type {
	case JSONBackend:
		f.logger.Debug("Using JSON ledger file", applog.FieldPath, config.LedgerFile)
		return jsonfile.New(config.LedgerFile), nil, nil

	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath, f.logger)
		if err != nil {
			f.logger.Error("Failed to initialize SQLite repository",
				applog.NewFields().WithOperation(applog.OpStartup).WithError(err).
					WithErrorType(applog.ErrorTypeStorage).ToSlice()...)
			return nil, nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
		}
		f.logger.Debug("Using SQLite ledger", applog.FieldPath, config.SQLiteDBPath)
		return repo, repo.Close, nil

	case MemoryBackend:
		return memory.New(), nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

// connectAMQP returns nil when the broker is unreachable; the ledger works
// without events.
func (f *DefaultFactory) connectAMQP(ctx context.Context, config Config) *amqp.Client {
	client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue, f.logger)
	if err != nil {
		f.logger.WarnContext(ctx, "Failed to initialize AMQP client, continuing without ledger events",
			applog.NewFields().WithOperation(applog.OpStartup).WithError(err).
				WithErrorType(applog.ErrorTypeNetwork).ToSlice()...)
		return nil
	}
	f.logger.InfoContext(ctx, "Initialized AMQP client",
		applog.FieldExchange, config.AMQPExchange,
		applog.FieldQueue, config.AMQPQueue)
	return client
}
