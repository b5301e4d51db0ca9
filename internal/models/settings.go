package models

// Settings represents application-wide settings persisted by the store.
type Settings struct {
	AutoSaveEnabled     bool   `json:"auto_save_enabled"`      // whether the auto-save mirror is enabled
	LastBackupDate      string `json:"last_backup_date"`       // RFC3339 timestamp of the last backup, empty if never
	EntriesAtLastBackup int    `json:"entries_at_last_backup"` // total entry count when the last backup was taken
}
