package litedb

import (
	"context"
	"embed"
	"testing"
	"testing/fstest"
)

//go:embed testdata/migrations
var migrationsFS embed.FS

const migrationsDir = "testdata/migrations"

// TestMigrate verifies migrations apply in order and re-running is a no-op.
func TestMigrate(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	defer db.Close() //nolint:errcheck // Test cleanup

	if err := db.Migrate(ctx, migrationsFS, migrationsDir); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	// Both migrations applied: notes table exists with the done column.
	if err := db.ExecuteRaw(ctx,
		`INSERT INTO notes (body, done) VALUES ('hello', 1)`); err != nil {
		t.Fatalf("insert into migrated table failed: %v", err)
	}

	applied, pending, err := db.MigrationStatus(ctx, migrationsFS, migrationsDir)
	if err != nil {
		t.Fatalf("MigrationStatus() error = %v", err)
	}
	if len(applied) != 2 {
		t.Errorf("applied = %d migrations, want 2", len(applied))
	}
	if len(pending) != 0 {
		t.Errorf("pending = %d migrations, want 0", len(pending))
	}
	if len(applied) == 2 {
		if applied[0].Version != "20260105_120000" || applied[1].Version != "20260110_090000" {
			t.Errorf("applied versions = [%s, %s], want chronological order",
				applied[0].Version, applied[1].Version)
		}
	}

	// Re-running must be a no-op.
	if err := db.Migrate(ctx, migrationsFS, migrationsDir); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}

	rows, err := db.FetchAll(ctx, `SELECT body FROM notes`)
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("notes has %d rows after re-migrate, want 1", len(rows))
	}
}

// TestMigrateDown verifies rollback of the most recent migration.
func TestMigrateDown(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	defer db.Close() //nolint:errcheck // Test cleanup

	if err := db.Migrate(ctx, migrationsFS, migrationsDir); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if err := db.MigrateDown(ctx, migrationsFS, migrationsDir); err != nil {
		t.Fatalf("MigrateDown() error = %v", err)
	}

	// The done column is gone, the notes table remains.
	if err := db.ExecuteRaw(ctx, `INSERT INTO notes (body) VALUES ('x')`); err != nil {
		t.Fatalf("insert after rollback failed: %v", err)
	}
	if err := db.ExecuteRaw(ctx,
		`INSERT INTO notes (body, done) VALUES ('y', 1)`); err == nil {
		t.Error("insert into rolled-back column succeeded, want error")
	}

	applied, pending, err := db.MigrationStatus(ctx, migrationsFS, migrationsDir)
	if err != nil {
		t.Fatalf("MigrationStatus() error = %v", err)
	}
	if len(applied) != 1 || len(pending) != 1 {
		t.Errorf("after rollback applied=%d pending=%d, want 1 and 1", len(applied), len(pending))
	}

	// Roll back the remaining migration, then confirm an empty ledger is a
	// no-op.
	if err := db.MigrateDown(ctx, migrationsFS, migrationsDir); err != nil {
		t.Fatalf("second MigrateDown() error = %v", err)
	}
	if err := db.MigrateDown(ctx, migrationsFS, migrationsDir); err != nil {
		t.Fatalf("MigrateDown() with nothing applied error = %v", err)
	}
}

// TestMigrateEmpty verifies behaviour with no migration files.
func TestMigrateEmpty(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	defer db.Close() //nolint:errcheck // Test cleanup

	if err := db.Migrate(ctx, fstest.MapFS{}, "missing"); err != nil {
		t.Errorf("Migrate() with no migrations error = %v", err)
	}
}

// TestMigrateFailureRollsBack verifies a failing migration leaves no
// partial state and earlier migrations stay committed.
func TestMigrateFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	defer db.Close() //nolint:errcheck // Test cleanup

	fsys := fstest.MapFS{
		"m/20260101_000000_ok.up.sql": &fstest.MapFile{
			Data: []byte(`CREATE TABLE ok (n INTEGER);`),
		},
		"m/20260102_000000_broken.up.sql": &fstest.MapFile{
			Data: []byte(`CREATE TABLE broken (n INTEGER); THIS IS NOT SQL;`),
		},
	}

	if err := db.Migrate(ctx, fsys, "m"); err == nil {
		t.Fatal("Migrate() with broken SQL succeeded, want error")
	}

	// First migration committed.
	if err := db.ExecuteRaw(ctx, `INSERT INTO ok (n) VALUES (1)`); err != nil {
		t.Errorf("first migration not committed: %v", err)
	}
	// Broken migration fully rolled back.
	row, err := db.FetchOne(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`,
		Text("broken"))
	if err != nil {
		t.Fatalf("FetchOne(sqlite_master) error = %v", err)
	}
	if row != nil {
		t.Error("table broken exists after failed migration")
	}

	applied, _, err := db.MigrationStatus(ctx, fsys, "m")
	if err != nil {
		t.Fatalf("MigrationStatus() error = %v", err)
	}
	if len(applied) != 1 {
		t.Errorf("applied = %d, want only the first migration", len(applied))
	}
}

// TestParseMigrationFilename verifies version and name extraction.
func TestParseMigrationFilename(t *testing.T) {
	t.Run("valid filename", func(t *testing.T) {
		version, name, err := parseMigrationFilename("20260105_120000_create_notes.up.sql", upSuffix)
		if err != nil {
			t.Fatalf("parseMigrationFilename() error = %v", err)
		}
		if version != "20260105_120000" {
			t.Errorf("version = %q, want 20260105_120000", version)
		}
		if name != "create_notes" {
			t.Errorf("name = %q, want create_notes", name)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		if _, _, err := parseMigrationFilename("20260105_120000.up.sql", upSuffix); err == nil {
			t.Error("parseMigrationFilename() succeeded on malformed name, want error")
		}
	})
}
