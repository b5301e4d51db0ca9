package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/snapshot"
)

// jsonStore is the serialized shape of the JSON file backend.
type jsonStore struct {
	Version              int                                         `json:"version"`
	Settings             models.Settings                             `json:"settings"`
	ThoughtRecords       map[string]models.ThoughtRecord             `json:"thoughtRecords"`
	DepressionChecklists map[string]models.DepressionChecklistEntry  `json:"depressionChecklists"`
	GratitudeEntries     map[string]models.GratitudeEntry            `json:"gratitudeEntries"`
}

// JSONStore is a Provider backed by a single JSON file. Every mutation
// rewrites the whole file, which makes each operation (including
// ImportAll's clear+insert) a single atomic state change. It is also the
// injectable store for façade tests.
type JSONStore struct {
	path  string
	store *jsonStore
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: failed to create config directory: %v", ErrStorageUnavailable, err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = newEmptyJSONStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	if s.store != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'untwist init' first")
		}
		return fmt.Errorf("%w: failed to read storage: %v", ErrStorageUnavailable, err)
	}

	store := newEmptyJSONStore()
	if err := json.Unmarshal(data, store); err != nil {
		return fmt.Errorf("%w: failed to parse storage: %v", ErrStorageUnavailable, err)
	}

	// Ensure maps survive older files that omitted a collection
	if store.ThoughtRecords == nil {
		store.ThoughtRecords = make(map[string]models.ThoughtRecord)
	}
	if store.DepressionChecklists == nil {
		store.DepressionChecklists = make(map[string]models.DepressionChecklistEntry)
	}
	if store.GratitudeEntries == nil {
		store.GratitudeEntries = make(map[string]models.GratitudeEntry)
	}

	s.store = store
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func newEmptyJSONStore() *jsonStore {
	return &jsonStore{
		Version:              1,
		ThoughtRecords:       make(map[string]models.ThoughtRecord),
		DepressionChecklists: make(map[string]models.DepressionChecklistEntry),
		GratitudeEntries:     make(map[string]models.GratitudeEntry),
	}
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: failed to write storage: %v", ErrStorageUnavailable, err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddThoughtRecord(record models.ThoughtRecord) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.store.ThoughtRecords[record.ID]; ok {
		return fmt.Errorf("%w: thought record %s", ErrDuplicateKey, record.ID)
	}
	s.store.ThoughtRecords[record.ID] = record
	return s.save()
}

func (s *JSONStore) UpdateThoughtRecord(record models.ThoughtRecord) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.ThoughtRecords[record.ID] = record
	return s.save()
}

func (s *JSONStore) GetThoughtRecord(id string) (models.ThoughtRecord, error) {
	if err := s.loaded(); err != nil {
		return models.ThoughtRecord{}, err
	}
	record, ok := s.store.ThoughtRecords[id]
	if !ok {
		return models.ThoughtRecord{}, fmt.Errorf("%w: thought record %s", ErrNotFound, id)
	}
	return record, nil
}

func (s *JSONStore) GetAllThoughtRecords() ([]models.ThoughtRecord, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var records []models.ThoughtRecord
	for _, record := range s.store.ThoughtRecords {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt != records[j].CreatedAt {
			return records[i].CreatedAt > records[j].CreatedAt
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

func (s *JSONStore) GetThoughtRecordsByDateRange(start, end string) ([]models.ThoughtRecord, error) {
	records, err := s.GetAllThoughtRecords()
	if err != nil {
		return nil, err
	}
	var out []models.ThoughtRecord
	for _, record := range records {
		if record.Date >= start && record.Date <= end {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *JSONStore) DeleteThoughtRecord(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	delete(s.store.ThoughtRecords, id)
	return s.save()
}

func (s *JSONStore) AddDepressionChecklist(entry models.DepressionChecklistEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.store.DepressionChecklists[entry.ID]; ok {
		return fmt.Errorf("%w: depression checklist %s", ErrDuplicateKey, entry.ID)
	}
	s.store.DepressionChecklists[entry.ID] = entry
	return s.save()
}

func (s *JSONStore) UpdateDepressionChecklist(entry models.DepressionChecklistEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.DepressionChecklists[entry.ID] = entry
	return s.save()
}

func (s *JSONStore) GetDepressionChecklist(id string) (models.DepressionChecklistEntry, error) {
	if err := s.loaded(); err != nil {
		return models.DepressionChecklistEntry{}, err
	}
	entry, ok := s.store.DepressionChecklists[id]
	if !ok {
		return models.DepressionChecklistEntry{}, fmt.Errorf("%w: depression checklist %s", ErrNotFound, id)
	}
	return entry, nil
}

func (s *JSONStore) GetAllDepressionChecklists() ([]models.DepressionChecklistEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var entries []models.DepressionChecklistEntry
	for _, entry := range s.store.DepressionChecklists {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func (s *JSONStore) DeleteDepressionChecklist(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	delete(s.store.DepressionChecklists, id)
	return s.save()
}

func (s *JSONStore) AddGratitudeEntry(entry models.GratitudeEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.store.GratitudeEntries[entry.ID]; ok {
		return fmt.Errorf("%w: gratitude entry %s", ErrDuplicateKey, entry.ID)
	}
	s.store.GratitudeEntries[entry.ID] = entry
	return s.save()
}

func (s *JSONStore) UpdateGratitudeEntry(entry models.GratitudeEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.GratitudeEntries[entry.ID] = entry
	return s.save()
}

func (s *JSONStore) GetGratitudeEntry(id string) (models.GratitudeEntry, error) {
	if err := s.loaded(); err != nil {
		return models.GratitudeEntry{}, err
	}
	entry, ok := s.store.GratitudeEntries[id]
	if !ok {
		return models.GratitudeEntry{}, fmt.Errorf("%w: gratitude entry %s", ErrNotFound, id)
	}
	return entry, nil
}

func (s *JSONStore) GetAllGratitudeEntries() ([]models.GratitudeEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var entries []models.GratitudeEntry
	for _, entry := range s.store.GratitudeEntries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func (s *JSONStore) DeleteGratitudeEntry(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	delete(s.store.GratitudeEntries, id)
	return s.save()
}

func (s *JSONStore) GetStats() (Stats, error) {
	if err := s.loaded(); err != nil {
		return Stats{}, err
	}
	return Stats{
		ThoughtRecords:       len(s.store.ThoughtRecords),
		DepressionChecklists: len(s.store.DepressionChecklists),
		GratitudeEntries:     len(s.store.GratitudeEntries),
	}, nil
}

func (s *JSONStore) ExportAll() (snapshot.Document, error) {
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

// ImportAll applies the whole import in memory and persists with a single
// file write, so a failed import never leaves a partially written store.
func (s *JSONStore) ImportAll(doc snapshot.Document, mode snapshot.Mode) (snapshot.Counts, error) {
	if err := s.loaded(); err != nil {
		return snapshot.Counts{}, err
	}

	if mode == snapshot.ModeReplace {
		s.store.ThoughtRecords = make(map[string]models.ThoughtRecord)
		s.store.DepressionChecklists = make(map[string]models.DepressionChecklistEntry)
		s.store.GratitudeEntries = make(map[string]models.GratitudeEntry)
	}

	var counts snapshot.Counts
	for _, record := range doc.ThoughtRecords {
		s.store.ThoughtRecords[record.ID] = record
		counts.ThoughtRecords++
	}
	for _, entry := range doc.DepressionChecklists {
		s.store.DepressionChecklists[entry.ID] = entry
		counts.DepressionChecklists++
	}
	for _, entry := range doc.GratitudeEntries {
		s.store.GratitudeEntries[entry.ID] = entry
		counts.GratitudeEntries++
	}

	if err := s.save(); err != nil {
		return snapshot.Counts{}, err
	}
	return counts, nil
}

func (s *JSONStore) ClearAll() error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.ThoughtRecords = make(map[string]models.ThoughtRecord)
	s.store.DepressionChecklists = make(map[string]models.DepressionChecklistEntry)
	s.store.GratitudeEntries = make(map[string]models.GratitudeEntry)
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple untwist processes against the same storage path at
//     the same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
