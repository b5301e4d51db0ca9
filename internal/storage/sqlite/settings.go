package sqlite

import (
	"fmt"

	"github.com/untwistapp/untwist/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "auto_save_enabled":
			settings.AutoSaveEnabled = value == "true"
		case "last_backup_date":
			settings.LastBackupDate = value
		case "entries_at_last_backup":
			if _, err := fmt.Sscanf(value, "%d", &settings.EntriesAtLastBackup); err != nil {
				return models.Settings{}, fmt.Errorf("parsing entries_at_last_backup: %w", err)
			}
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return mapWriteErr(err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("auto_save_enabled", fmt.Sprintf("%t", settings.AutoSaveEnabled)); err != nil {
		return err
	}
	if _, err := stmt.Exec("last_backup_date", settings.LastBackupDate); err != nil {
		return err
	}
	if _, err := stmt.Exec("entries_at_last_backup", fmt.Sprintf("%d", settings.EntriesAtLastBackup)); err != nil {
		return err
	}

	return mapWriteErr(tx.Commit())
}
