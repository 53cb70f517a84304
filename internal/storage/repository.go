package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"fishledger/internal/core"
	applog "fishledger/internal/log"

	_ "modernc.org/sqlite"
)

// SQLiteRepository stores the ledger in two tables, months and sessions.
// It satisfies ledger.Store with the same whole-ledger semantics as the JSON
// file: Save replaces everything inside one transaction.
type SQLiteRepository struct {
	db     *sql.DB
	logger *applog.Logger
}

func NewSQLiteRepository(dbPath string, logger *applog.Logger) (*SQLiteRepository, error) {
	if logger == nil {
		logger = applog.Discard()
	}
	logger = logger.WithComponent(applog.ComponentStorage)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One writer; the ledger is never accessed concurrently.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	version, err := RunMigrations(dbPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	logger.Debug("SQLite ledger ready",
		applog.FieldPath, dbPath,
		applog.FieldOperation, applog.OpMigrate,
		"schema_version", version)

	return &SQLiteRepository{db: db, logger: logger}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load implements ledger.Loader
func (r *SQLiteRepository) Load(ctx context.Context) (core.Ledger, error) {
	l := core.Ledger{}

	rows, err := r.db.QueryContext(ctx, `SELECT month_key FROM months`)
	if err != nil {
		return nil, fmt.Errorf("query months: %w", err)
	}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan month: %w", err)
		}
		l[key] = []core.Session{}
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("close months: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate months: %w", err)
	}

	rows, err = r.db.QueryContext(ctx, `
		SELECT month_key, date, fishing_location, sell_location, profit
		FROM sessions
		ORDER BY month_key, position`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key string
			s   core.Session
		)
		if err := rows.Scan(&key, &s.Date, &s.FishingLocation, &s.SellLocation, &s.Profit); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		l[key] = append(l[key], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	r.logger.DebugContext(ctx, "Ledger loaded from SQLite",
		applog.FieldMonths, len(l),
		applog.FieldSessions, l.SessionCount())

	return l, nil
}

// Save implements ledger.Saver
func (r *SQLiteRepository) Save(ctx context.Context, l core.Ledger) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM months`); err != nil {
		return fmt.Errorf("clear months: %w", err)
	}

	insertMonth, err := tx.PrepareContext(ctx, `INSERT INTO months (month_key) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("prepare month insert: %w", err)
	}
	defer insertMonth.Close()

	insertSession, err := tx.PrepareContext(ctx, `
		INSERT INTO sessions (month_key, position, date, fishing_location, sell_location, profit)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare session insert: %w", err)
	}
	defer insertSession.Close()

	for _, key := range l.Keys() {
		if _, err := insertMonth.ExecContext(ctx, key); err != nil {
			return fmt.Errorf("insert month %q: %w", key, err)
		}
		for i, s := range l[key] {
			if _, err := insertSession.ExecContext(ctx, key, i, s.Date, s.FishingLocation, s.SellLocation, s.Profit); err != nil {
				return fmt.Errorf("insert session %d of %q: %w", i, key, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ledger: %w", err)
	}

	r.logger.DebugContext(ctx, "Ledger saved to SQLite",
		applog.FieldMonths, len(l),
		applog.FieldSessions, l.SessionCount())

	return nil
}
