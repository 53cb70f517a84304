// Package ledger declares the storage port the ledger service talks to.
// Backends live in the jsonfile and memory sub-packages and in internal/storage.
package ledger

import (
	"context"

	"fishledger/internal/core"
)

// Ports for outbound adapters.
type (
	// Loader reads the whole ledger. A missing backing store is an empty
	// ledger, not an error; malformed content is an error.
	Loader interface {
		Load(ctx context.Context) (core.Ledger, error)
	}

	// Saver replaces the persisted ledger with the given one.
	Saver interface {
		Save(ctx context.Context, l core.Ledger) error
	}

	Store interface {
		Loader
		Saver
	}
)
