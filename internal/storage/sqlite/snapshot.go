package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/untwistapp/untwist/internal/snapshot"
	"github.com/untwistapp/untwist/internal/storage"
)

func (s *Store) GetStats() (storage.Stats, error) {
	var stats storage.Stats
	counts := []struct {
		table string
		dest  *int
	}{
		{"thought_records", &stats.ThoughtRecords},
		{"depression_checklists", &stats.DepressionChecklists},
		{"gratitude_entries", &stats.GratitudeEntries},
	}
	for _, c := range counts {
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + c.table).Scan(c.dest); err != nil {
			return storage.Stats{}, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}
	return stats, nil
}

// ExportAll returns the complete contents of all three collections, each
// in its getAll ordering so exports of equal stores are byte-identical.
func (s *Store) ExportAll() (snapshot.Document, error) {
	records, err := s.GetAllThoughtRecords()
	if err != nil {
		return snapshot.Document{}, err
	}
	checklists, err := s.GetAllDepressionChecklists()
	if err != nil {
		return snapshot.Document{}, err
	}
	gratitude, err := s.GetAllGratitudeEntries()
	if err != nil {
		return snapshot.Document{}, err
	}

	return snapshot.Document{
		ThoughtRecords:       records,
		DepressionChecklists: checklists,
		GratitudeEntries:     gratitude,
	}, nil
}

// ImportAll reconciles a snapshot into the store. The whole operation runs
// in one transaction: a replace that fails mid-way rolls back instead of
// leaving the store cleared.
func (s *Store) ImportAll(doc snapshot.Document, mode snapshot.Mode) (snapshot.Counts, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return snapshot.Counts{}, mapWriteErr(err)
	}
	defer tx.Rollback()

	if mode == snapshot.ModeReplace {
		for _, table := range []string{"thought_records", "depression_checklists", "gratitude_entries"} {
			if _, err := tx.Exec("DELETE FROM " + table); err != nil {
				return snapshot.Counts{}, mapWriteErr(err)
			}
		}
	}

	var counts snapshot.Counts

	for _, record := range doc.ThoughtRecords {
		args, err := thoughtRecordArgs(record)
		if err != nil {
			return snapshot.Counts{}, err
		}
		if _, err := tx.Exec(`
			INSERT OR REPLACE INTO thought_records (`+thoughtRecordColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...); err != nil {
			return snapshot.Counts{}, mapWriteErr(err)
		}
		counts.ThoughtRecords++
	}

	for _, entry := range doc.DepressionChecklists {
		scores, err := json.Marshal(entry.Scores)
		if err != nil {
			return snapshot.Counts{}, fmt.Errorf("failed to marshal scores: %w", err)
		}
		if _, err := tx.Exec(`
			INSERT OR REPLACE INTO depression_checklists (id, date, scores, total)
			VALUES (?, ?, ?, ?)`,
			entry.ID, entry.Date, string(scores), entry.Total); err != nil {
			return snapshot.Counts{}, mapWriteErr(err)
		}
		counts.DepressionChecklists++
	}

	for _, entry := range doc.GratitudeEntries {
		items, err := json.Marshal(entry.Entries)
		if err != nil {
			return snapshot.Counts{}, fmt.Errorf("failed to marshal gratitude items: %w", err)
		}
		if _, err := tx.Exec(`
			INSERT OR REPLACE INTO gratitude_entries (id, created_at, date, entries)
			VALUES (?, ?, ?, ?)`,
			entry.ID, entry.CreatedAt, entry.Date, string(items)); err != nil {
			return snapshot.Counts{}, mapWriteErr(err)
		}
		counts.GratitudeEntries++
	}

	if err := tx.Commit(); err != nil {
		return snapshot.Counts{}, mapWriteErr(err)
	}

	return counts, nil
}

// ClearAll empties all three collections in a single transaction.
func (s *Store) ClearAll() error {
	tx, err := s.db.Begin()
	if err != nil {
		return mapWriteErr(err)
	}
	defer tx.Rollback()

	for _, table := range []string{"thought_records", "depression_checklists", "gratitude_entries"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return mapWriteErr(err)
		}
	}

	return mapWriteErr(tx.Commit())
}
