package storage

import (
	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/snapshot"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Thought records
	AddThoughtRecord(models.ThoughtRecord) error
	GetThoughtRecord(id string) (models.ThoughtRecord, error)
	// GetAllThoughtRecords returns every record ordered by descending
	// creation timestamp, identifier as tie-break.
	GetAllThoughtRecords() ([]models.ThoughtRecord, error)
	// GetThoughtRecordsByDateRange returns records whose user-assigned
	// date falls within [start, end] inclusive, via the date index.
	GetThoughtRecordsByDateRange(start, end string) ([]models.ThoughtRecord, error)
	UpdateThoughtRecord(models.ThoughtRecord) error
	DeleteThoughtRecord(id string) error

	// Depression checklists
	AddDepressionChecklist(models.DepressionChecklistEntry) error
	GetDepressionChecklist(id string) (models.DepressionChecklistEntry, error)
	GetAllDepressionChecklists() ([]models.DepressionChecklistEntry, error)
	UpdateDepressionChecklist(models.DepressionChecklistEntry) error
	DeleteDepressionChecklist(id string) error

	// Gratitude entries
	AddGratitudeEntry(models.GratitudeEntry) error
	GetGratitudeEntry(id string) (models.GratitudeEntry, error)
	GetAllGratitudeEntries() ([]models.GratitudeEntry, error)
	UpdateGratitudeEntry(models.GratitudeEntry) error
	DeleteGratitudeEntry(id string) error

	// Snapshot surface
	GetStats() (Stats, error)
	ExportAll() (snapshot.Document, error)
	// ImportAll reconciles a parsed snapshot under the given mode.
	// Replace clears all collections first; both modes upsert, so
	// incoming identifiers always win. The whole import is atomic.
	ImportAll(doc snapshot.Document, mode snapshot.Mode) (snapshot.Counts, error)
	// ClearAll empties all three collections atomically with respect to
	// each other.
	ClearAll() error

	// Utils
	GetConfigPath() string
}
