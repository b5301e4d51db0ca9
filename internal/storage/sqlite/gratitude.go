package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/storage"
)

func (s *Store) AddGratitudeEntry(entry models.GratitudeEntry) error {
	items, err := json.Marshal(entry.Entries)
	if err != nil {
		return fmt.Errorf("failed to marshal gratitude items: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO gratitude_entries (id, created_at, date, entries)
		VALUES (?, ?, ?, ?)`,
		entry.ID, entry.CreatedAt, entry.Date, string(items))
	return mapWriteErr(err)
}

func (s *Store) UpdateGratitudeEntry(entry models.GratitudeEntry) error {
	items, err := json.Marshal(entry.Entries)
	if err != nil {
		return fmt.Errorf("failed to marshal gratitude items: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO gratitude_entries (id, created_at, date, entries)
		VALUES (?, ?, ?, ?)`,
		entry.ID, entry.CreatedAt, entry.Date, string(items))
	return mapWriteErr(err)
}

func (s *Store) GetGratitudeEntry(id string) (models.GratitudeEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, created_at, date, entries
		FROM gratitude_entries WHERE id = ?`, id)

	entry, err := scanGratitudeEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.GratitudeEntry{}, fmt.Errorf("%w: gratitude entry %s", storage.ErrNotFound, id)
		}
		return models.GratitudeEntry{}, err
	}
	return entry, nil
}

func (s *Store) GetAllGratitudeEntries() ([]models.GratitudeEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, created_at, date, entries
		FROM gratitude_entries ORDER BY date DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.GratitudeEntry
	for rows.Next() {
		entry, err := scanGratitudeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *Store) DeleteGratitudeEntry(id string) error {
	_, err := s.db.Exec("DELETE FROM gratitude_entries WHERE id = ?", id)
	return mapWriteErr(err)
}

func scanGratitudeEntry(row rowScanner) (models.GratitudeEntry, error) {
	var e models.GratitudeEntry
	var items string

	if err := row.Scan(&e.ID, &e.CreatedAt, &e.Date, &items); err != nil {
		return models.GratitudeEntry{}, err
	}

	if err := json.Unmarshal([]byte(items), &e.Entries); err != nil {
		return models.GratitudeEntry{}, fmt.Errorf("failed to unmarshal gratitude items for %s: %w", e.ID, err)
	}

	return e, nil
}
