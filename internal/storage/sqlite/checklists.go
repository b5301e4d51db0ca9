package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/storage"
)

func (s *Store) AddDepressionChecklist(entry models.DepressionChecklistEntry) error {
	scores, err := json.Marshal(entry.Scores)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO depression_checklists (id, date, scores, total)
		VALUES (?, ?, ?, ?)`,
		entry.ID, entry.Date, string(scores), entry.Total)
	return mapWriteErr(err)
}

func (s *Store) UpdateDepressionChecklist(entry models.DepressionChecklistEntry) error {
	scores, err := json.Marshal(entry.Scores)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO depression_checklists (id, date, scores, total)
		VALUES (?, ?, ?, ?)`,
		entry.ID, entry.Date, string(scores), entry.Total)
	return mapWriteErr(err)
}

func (s *Store) GetDepressionChecklist(id string) (models.DepressionChecklistEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, date, scores, total
		FROM depression_checklists WHERE id = ?`, id)

	entry, err := scanChecklist(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DepressionChecklistEntry{}, fmt.Errorf("%w: depression checklist %s", storage.ErrNotFound, id)
		}
		return models.DepressionChecklistEntry{}, err
	}
	return entry, nil
}

func (s *Store) GetAllDepressionChecklists() ([]models.DepressionChecklistEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, scores, total
		FROM depression_checklists ORDER BY date DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DepressionChecklistEntry
	for rows.Next() {
		entry, err := scanChecklist(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *Store) DeleteDepressionChecklist(id string) error {
	_, err := s.db.Exec("DELETE FROM depression_checklists WHERE id = ?", id)
	return mapWriteErr(err)
}

func scanChecklist(row rowScanner) (models.DepressionChecklistEntry, error) {
	var e models.DepressionChecklistEntry
	var scores string

	if err := row.Scan(&e.ID, &e.Date, &scores, &e.Total); err != nil {
		return models.DepressionChecklistEntry{}, err
	}

	if err := json.Unmarshal([]byte(scores), &e.Scores); err != nil {
		return models.DepressionChecklistEntry{}, fmt.Errorf("failed to unmarshal scores for %s: %w", e.ID, err)
	}

	return e, nil
}
