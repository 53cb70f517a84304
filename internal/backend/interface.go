package backend

import (
	"context"

	"fishledger/internal/ledger"
	"fishledger/internal/services"
)

// CleanupFunc releases whatever the backend opened.
type CleanupFunc func() error

// BackendResult contains the ledger store, the optional event publisher and
// a cleanup function. Publisher is nil when events are disabled or the broker
// could not be reached.
type BackendResult struct {
	Store     ledger.Store
	Publisher services.EventPublisher
	Cleanup   CleanupFunc
}

// Factory creates backends based on configuration
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation
type Config struct {
	Type BackendType

	// JSON file specific
	LedgerFile string

	// SQLite specific
	SQLiteDBPath string

	// Ledger events, optional for every backend
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// BackendType represents the type of backend
type BackendType string

const (
	JSONBackend   BackendType = "json"
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case JSONBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
