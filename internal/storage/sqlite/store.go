package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/untwistapp/untwist/internal/migration"
	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/storage"
	"github.com/untwistapp/untwist/migrations"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: failed to create config directory: %v", storage.ErrStorageUnavailable, err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("%w: failed to open database: %v", storage.ErrStorageUnavailable, err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return err
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(models.Settings{}); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'untwist init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("%w: failed to open database: %v", storage.ErrStorageUnavailable, err)
	}
	s.db = db

	// Validate schema version using embedded migrations
	if err := s.validateSchemaVersion(); err != nil {
		return err
	}

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)

	_, err = runner.ApplyMigrations(nil)
	if err != nil {
		if errors.Is(err, migration.ErrBlocked) {
			return fmt.Errorf("%w: %v", storage.ErrMigrationBlocked, err)
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	if err := runner.ValidateVersion(); err != nil {
		if errors.Is(err, migration.ErrBlocked) {
			return fmt.Errorf("%w: %v", storage.ErrMigrationBlocked, err)
		}
		return err
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection, or nil before
// Init/Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}

// mapWriteErr translates driver failures into the store's typed errors.
func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", storage.ErrDuplicateKey, err)
	}
	if strings.Contains(msg, "database or disk is full") || strings.Contains(msg, "attempt to write a readonly database") {
		return fmt.Errorf("%w: %v", storage.ErrStorageUnavailable, err)
	}
	return err
}
