package storage

import (
	"context"
	"path/filepath"
	"testing"

	"fishledger/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*SQLiteRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "fishledger.db")
	repo, err := NewSQLiteRepository(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func TestSQLiteEmptyLedger(t *testing.T) {
	repo, _ := newTestRepo(t)

	l, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, l)
}

func TestSQLiteRoundTripPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	orig := core.Ledger{
		"April 2025": {
			{Date: "2025-04-18", FishingLocation: "Velia", SellLocation: "Seoul", Profit: 5000},
			{Date: "2025-04-01", FishingLocation: "Epheria", SellLocation: "Velia", Profit: 0},
			{Date: "2025-04-09", FishingLocation: "Altinova", SellLocation: "Seoul", Profit: 1_000_000},
		},
		"May 2025": {},
	}
	require.NoError(t, repo.Save(ctx, orig))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, orig, loaded)
}

func TestSQLiteSaveReplacesEverything(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, core.Ledger{
		"April 2025": {{Date: "2025-04-18", Profit: 1}},
		"May 2025":   {{Date: "2025-05-18", Profit: 2}},
	}))
	require.NoError(t, repo.Save(ctx, core.Ledger{
		"May 2025": {{Date: "2025-05-18", Profit: 2}, {Date: "2025-05-19", Profit: 3}},
	}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"May 2025"}, loaded.Keys())
	total, _ := loaded.MonthTotal("May 2025")
	assert.Equal(t, int64(5), total)
}

func TestSQLiteRejectsNegativeProfit(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, core.Ledger{"April 2025": {{Date: "2025-04-18", Profit: 7}}}))
	err := repo.Save(ctx, core.Ledger{"April 2025": {{Date: "2025-04-18", Profit: -1}}})
	require.Error(t, err)

	// The failed transaction rolled back.
	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	total, found := loaded.MonthTotal("April 2025")
	assert.True(t, found)
	assert.Equal(t, int64(7), total)
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestRepo(t)
	require.NoError(t, repo.Save(ctx, core.Ledger{"June 2025": {{Date: "2025-06-01", Profit: 9}}}))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), loaded.LifetimeTotal())
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.db")
	v1, err := RunMigrations(path)
	require.NoError(t, err)
	v2, err := RunMigrations(path)
	require.NoError(t, err)
	assert.Equal(t, uint(1), v1)
	assert.Equal(t, v1, v2)
}
