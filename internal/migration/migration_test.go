package migration

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"
)

func openTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte(`CREATE TABLE notes (id TEXT PRIMARY KEY, body TEXT);`),
		},
		"002_add_tags.sql": &fstest.MapFile{
			Data: []byte(`CREATE TABLE tags (id TEXT PRIMARY KEY, name TEXT);`),
		},
	}
}

func TestReadMigrationFiles(t *testing.T) {
	t.Run("sorted by version", func(t *testing.T) {
		runner := NewRunner(openTestDB(t), testFS())
		migrations, err := runner.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles() error: %v", err)
		}
		if len(migrations) != 2 {
			t.Fatalf("got %d migrations, want 2", len(migrations))
		}
		if migrations[0].Version != 1 || migrations[0].Name != "init" {
			t.Errorf("migrations[0] = %d %q, want 1 init", migrations[0].Version, migrations[0].Name)
		}
		if migrations[1].Version != 2 || migrations[1].Name != "add_tags" {
			t.Errorf("migrations[1] = %d %q, want 2 add_tags", migrations[1].Version, migrations[1].Name)
		}
	})

	t.Run("invalid filename rejected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"nounderscore.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
		}
		runner := NewRunner(openTestDB(t), fsys)
		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() succeeded on bad filename, want error")
		}
	})

	t.Run("duplicate version rejected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"001_a.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
			"001_b.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
		}
		runner := NewRunner(openTestDB(t), fsys)
		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() succeeded on duplicate version, want error")
		}
	})

	t.Run("non-sql files ignored", func(t *testing.T) {
		fsys := testFS()
		fsys["README.md"] = &fstest.MapFile{Data: []byte(`notes`)}
		runner := NewRunner(openTestDB(t), fsys)
		migrations, err := runner.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles() error: %v", err)
		}
		if len(migrations) != 2 {
			t.Errorf("got %d migrations, want 2", len(migrations))
		}
	})
}

func TestApplyMigrations(t *testing.T) {
	t.Run("fresh database applies all", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, testFS())

		applied, err := runner.ApplyMigrations(nil)
		if err != nil {
			t.Fatalf("ApplyMigrations() error: %v", err)
		}
		if applied != 2 {
			t.Errorf("applied = %d, want 2", applied)
		}

		version, err := runner.CurrentVersion()
		if err != nil {
			t.Fatalf("CurrentVersion() error: %v", err)
		}
		if version != 2 {
			t.Errorf("CurrentVersion() = %d, want 2", version)
		}

		// Both tables exist
		for _, table := range []string{"notes", "tags"} {
			var name string
			err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
			if err != nil {
				t.Errorf("table %s missing after migration: %v", table, err)
			}
		}
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, testFS())

		if _, err := runner.ApplyMigrations(nil); err != nil {
			t.Fatalf("first ApplyMigrations() error: %v", err)
		}
		applied, err := runner.ApplyMigrations(nil)
		if err != nil {
			t.Fatalf("second ApplyMigrations() error: %v", err)
		}
		if applied != 0 {
			t.Errorf("second run applied = %d, want 0", applied)
		}
	})

	t.Run("partial upgrade applies only pending", func(t *testing.T) {
		db := openTestDB(t)

		first := fstest.MapFS{"001_init.sql": testFS()["001_init.sql"]}
		if _, err := NewRunner(db, first).ApplyMigrations(nil); err != nil {
			t.Fatalf("ApplyMigrations(first) error: %v", err)
		}

		runner := NewRunner(db, testFS())
		applied, err := runner.ApplyMigrations(nil)
		if err != nil {
			t.Fatalf("ApplyMigrations(full) error: %v", err)
		}
		if applied != 1 {
			t.Errorf("applied = %d, want 1", applied)
		}
	})

	t.Run("failed step does not advance version", func(t *testing.T) {
		db := openTestDB(t)
		fsys := fstest.MapFS{
			"001_init.sql": testFS()["001_init.sql"],
			"002_bad.sql":  &fstest.MapFile{Data: []byte(`THIS IS NOT SQL;`)},
		}
		runner := NewRunner(db, fsys)

		applied, err := runner.ApplyMigrations(nil)
		if err == nil {
			t.Fatal("ApplyMigrations() with bad SQL succeeded, want error")
		}
		if applied != 1 {
			t.Errorf("applied = %d, want 1 (only the good step)", applied)
		}

		version, verr := runner.CurrentVersion()
		if verr != nil {
			t.Fatalf("CurrentVersion() error: %v", verr)
		}
		if version != 1 {
			t.Errorf("CurrentVersion() = %d, want 1", version)
		}
	})
}

func TestApplyMigrationsBlockedByOpenSession(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	holder, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open holder database: %v", err)
	}
	defer holder.Close()
	if _, err := holder.Exec("CREATE TABLE holder (id INTEGER)"); err != nil {
		t.Fatalf("failed to create holder table: %v", err)
	}

	// An open write transaction in another session holds the lock for the
	// duration of the migration attempt
	tx, err := holder.Begin()
	if err != nil {
		t.Fatalf("failed to begin holder transaction: %v", err)
	}
	defer tx.Rollback()
	if _, err := tx.Exec("INSERT INTO holder (id) VALUES (1)"); err != nil {
		t.Fatalf("failed to take write lock: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open migration database: %v", err)
	}
	defer db.Close()
	// One pooled connection so the busy_timeout pragma governs every
	// statement the runner issues
	db.SetMaxOpenConns(1)

	runner := NewRunner(db, testFS())

	start := time.Now()
	_, err = runner.ApplyMigrations(nil)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrBlocked) {
		t.Fatalf("ApplyMigrations() error = %v, want ErrBlocked", err)
	}
	if elapsed > 10*time.Second {
		t.Errorf("blocked migration returned after %v, want a bounded wait near the busy timeout", elapsed)
	}
}

func TestWrapBusy(t *testing.T) {
	if wrapBusy(nil) != nil {
		t.Error("wrapBusy(nil) != nil")
	}

	for _, msg := range []string{
		"database is locked (5) (SQLITE_BUSY)",
		"SQLITE_BUSY: database is locked",
		"table is locked (6) (SQLITE_LOCKED)",
	} {
		if !errors.Is(wrapBusy(errors.New(msg)), ErrBlocked) {
			t.Errorf("wrapBusy(%q) does not match ErrBlocked", msg)
		}
	}

	// Unrelated failures pass through unmapped
	plain := errors.New("no such table: notes")
	if got := wrapBusy(plain); got != plain {
		t.Errorf("wrapBusy(plain) = %v, want the original error", got)
	}
}

func TestValidateVersion(t *testing.T) {
	t.Run("up to date passes", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, testFS())
		if _, err := runner.ApplyMigrations(nil); err != nil {
			t.Fatal(err)
		}
		if err := runner.ValidateVersion(); err != nil {
			t.Errorf("ValidateVersion() error: %v", err)
		}
	})

	t.Run("newer database rejected", func(t *testing.T) {
		db := openTestDB(t)
		full := NewRunner(db, testFS())
		if _, err := full.ApplyMigrations(nil); err != nil {
			t.Fatal(err)
		}

		// A binary shipping only migration 1 sees a version-2 database
		old := NewRunner(db, fstest.MapFS{"001_init.sql": testFS()["001_init.sql"]})
		if err := old.ValidateVersion(); err == nil {
			t.Error("ValidateVersion() with newer database succeeded, want error")
		}
	})
}
