package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/storage"
)

const thoughtRecordColumns = `id, created_at, date, situation, emotions, automatic_thoughts, distortions, rational_response, outcome_emotions`

func (s *Store) AddThoughtRecord(record models.ThoughtRecord) error {
	args, err := thoughtRecordArgs(record)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO thought_records (`+thoughtRecordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	return mapWriteErr(err)
}

func (s *Store) UpdateThoughtRecord(record models.ThoughtRecord) error {
	args, err := thoughtRecordArgs(record)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO thought_records (`+thoughtRecordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	return mapWriteErr(err)
}

func (s *Store) GetThoughtRecord(id string) (models.ThoughtRecord, error) {
	row := s.db.QueryRow(`
		SELECT `+thoughtRecordColumns+`
		FROM thought_records WHERE id = ?`, id)

	record, err := scanThoughtRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ThoughtRecord{}, fmt.Errorf("%w: thought record %s", storage.ErrNotFound, id)
		}
		return models.ThoughtRecord{}, err
	}
	return record, nil
}

func (s *Store) GetAllThoughtRecords() ([]models.ThoughtRecord, error) {
	return s.queryThoughtRecords(`
		SELECT ` + thoughtRecordColumns + `
		FROM thought_records ORDER BY created_at DESC, id`)
}

func (s *Store) GetThoughtRecordsByDateRange(start, end string) ([]models.ThoughtRecord, error) {
	return s.queryThoughtRecords(`
		SELECT `+thoughtRecordColumns+`
		FROM thought_records WHERE date BETWEEN ? AND ?
		ORDER BY created_at DESC, id`, start, end)
}

func (s *Store) DeleteThoughtRecord(id string) error {
	// Idempotent: deleting an absent id is not an error
	_, err := s.db.Exec("DELETE FROM thought_records WHERE id = ?", id)
	return mapWriteErr(err)
}

func (s *Store) queryThoughtRecords(query string, args ...any) ([]models.ThoughtRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ThoughtRecord
	for rows.Next() {
		record, err := scanThoughtRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func thoughtRecordArgs(record models.ThoughtRecord) ([]any, error) {
	emotions, err := json.Marshal(record.Emotions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal emotions: %w", err)
	}
	distortions, err := json.Marshal(record.Distortions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal distortions: %w", err)
	}
	outcome, err := json.Marshal(record.OutcomeEmotions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal outcome emotions: %w", err)
	}
	return []any{
		record.ID, record.CreatedAt, record.Date, record.Situation, string(emotions),
		record.AutomaticThoughts, string(distortions), record.RationalResponse, string(outcome),
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanThoughtRecord(row rowScanner) (models.ThoughtRecord, error) {
	var t models.ThoughtRecord
	var emotions, distortions, outcome string

	err := row.Scan(
		&t.ID, &t.CreatedAt, &t.Date, &t.Situation, &emotions,
		&t.AutomaticThoughts, &distortions, &t.RationalResponse, &outcome,
	)
	if err != nil {
		return models.ThoughtRecord{}, err
	}

	if err := json.Unmarshal([]byte(emotions), &t.Emotions); err != nil {
		return models.ThoughtRecord{}, fmt.Errorf("failed to unmarshal emotions for %s: %w", t.ID, err)
	}
	if err := json.Unmarshal([]byte(distortions), &t.Distortions); err != nil {
		return models.ThoughtRecord{}, fmt.Errorf("failed to unmarshal distortions for %s: %w", t.ID, err)
	}
	if err := json.Unmarshal([]byte(outcome), &t.OutcomeEmotions); err != nil {
		return models.ThoughtRecord{}, fmt.Errorf("failed to unmarshal outcome emotions for %s: %w", t.ID, err)
	}

	return t, nil
}
