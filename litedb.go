package litedb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nerrad567/litedb/config"
	"github.com/nerrad567/litedb/logging"
)

// Database configuration constants.
const (
	// dirPermissions is the permission mode for the database directory.
	dirPermissions = 0750

	// filePermissions is the permission mode for the database file.
	filePermissions = 0600

	// msPerSecond converts seconds to milliseconds.
	msPerSecond = 1000

	// connectionTimeout is the timeout for verifying database connectivity.
	connectionTimeout = 5 * time.Second

	// defaultBusyTimeout is the busy-timeout (seconds) used by OpenPath.
	defaultBusyTimeout = 5
)

// memoryPath is the engine's special path for an in-memory database.
const memoryPath = ":memory:"

// Database is a handle on one open connection to one file-backed store.
// All operations in this package are issued through it.
//
// It embeds *sql.DB, so the full database/sql API remains available for
// anything the convenience methods don't cover.
type Database struct {
	*sql.DB
	path string
	log  *logging.Logger
}

// Config contains database handle options.
type Config struct {
	// Path is the filesystem path to the SQLite database file, or
	// ":memory:" for a throwaway in-memory database. The parent directory
	// is created if it doesn't exist. By convention the file carries a
	// .sqlite, .db, or .sql extension; this is documentation guidance, not
	// an enforced constraint.
	Path string

	// WALMode enables Write-Ahead Logging for better concurrent access.
	// Recommended: true (allows concurrent reads during writes).
	WALMode bool

	// BusyTimeout is the maximum time to wait for a database lock (seconds).
	// Prevents "database is locked" errors under contention.
	BusyTimeout int

	// Logger receives open/close/migration events. Nil means silent
	// operation, which is the library default.
	Logger *logging.Logger
}

// Open creates a new database handle with the specified configuration.
//
// It performs the following setup:
//  1. Creates the database directory if it doesn't exist
//  2. Opens the database file (creates if not present)
//  3. Configures WAL mode and busy timeout via driver pragmas
//  4. Sets appropriate file permissions (0600)
//  5. Verifies the connection with a ping
//
// Failure at any step surfaces the engine's error to the caller; this is
// the only failure mode at construction.
func Open(cfg Config) (*Database, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	// Ensure directory exists (not meaningful for in-memory databases)
	if cfg.Path != memoryPath {
		dir := filepath.Dir(cfg.Path)
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open(driverName, buildDSN(cfg.Path, cfg.WALMode, cfg.BusyTimeout*msPerSecond))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite serialises writers at the file level; a single connection
	// makes the handle the serialisation point and matches the engine.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db := &Database{
		DB:   sqlDB,
		path: cfg.Path,
		log:  cfg.Logger,
	}

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		sqlDB.Close() //nolint:errcheck // Best effort cleanup on error path
		return nil, fmt.Errorf("verifying database connection: %w", err)
	}

	// Set file permissions (owner read/write only)
	// Ignore error - file might not exist yet on first run, will be set after first write
	if cfg.Path != memoryPath {
		_ = os.Chmod(cfg.Path, filePermissions) //nolint:errcheck // Intentional: first run creates file later
	}

	if db.log != nil {
		db.log.Debug("database opened", "path", cfg.Path, "wal_mode", cfg.WALMode)
	}

	return db, nil
}

// OpenPath opens (or creates) a database at path with default options:
// WAL mode on, five-second busy timeout, no logging.
func OpenPath(path string) (*Database, error) {
	return Open(Config{
		Path:        path,
		WALMode:     true,
		BusyTimeout: defaultBusyTimeout,
	})
}

// OpenFromConfig opens a database from a loaded configuration, wiring the
// configured logger into the handle. version is stamped onto log entries.
func OpenFromConfig(cfg *config.Config, version string) (*Database, error) {
	return Open(Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
		Logger:      logging.New(cfg.Logging, version),
	})
}

// Close closes the database connection gracefully. It should be called
// when the handle is no longer needed; the engine flushes and releases the
// file on close.
func (db *Database) Close() error {
	if db.DB == nil {
		return nil
	}
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	if db.log != nil {
		db.log.Debug("database closed", "path", db.path)
	}
	return nil
}

// Path returns the filesystem path to the database file.
func (db *Database) Path() string {
	return db.path
}

// HealthCheck verifies the database is accessible and functioning.
// It performs a simple query to ensure the connection is alive.
func (db *Database) HealthCheck(ctx context.Context) error {
	var result int
	err := db.QueryRowContext(ctx, "SELECT 1").Scan(&result)
	if err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}

// Stats returns database connection pool statistics.
// Useful for monitoring and debugging connection issues.
func (db *Database) Stats() sql.DBStats {
	return db.DB.Stats()
}

// BeginTx starts a new transaction with the given options.
// Use transactions for operations that modify multiple rows/tables.
//
// Example:
//
//	tx, err := db.BeginTx(ctx, nil)
//	if err != nil {
//	    return err
//	}
//	defer tx.Rollback() // No-op if committed
//
//	// ... execute queries on tx ...
//
//	return tx.Commit()
func (db *Database) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	tx, err := db.DB.BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	return tx, nil
}
