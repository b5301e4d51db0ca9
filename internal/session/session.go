// Package session is the in-memory façade over a storage provider. It
// holds cached copies of all three collections for interactive surfaces
// (the TUI and list commands), patches the caches after each durable
// write instead of re-reading the store, and fires the auto-save sidecar
// after every successful mutation.
package session

import (
	"fmt"
	"sync"

	"github.com/untwistapp/untwist/internal/autosave"
	"github.com/untwistapp/untwist/internal/logger"
	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/snapshot"
	"github.com/untwistapp/untwist/internal/storage"
)

// State tracks the load lifecycle of the session caches.
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
)

// Session caches the store contents for one program run. Mutations write
// to the provider first; the cache is only patched after the write
// succeeds, so a storage error leaves the cache untouched.
type Session struct {
	provider storage.Provider
	sidecar  *autosave.Sidecar

	mu             sync.RWMutex
	state          State
	thoughtRecords []models.ThoughtRecord
	checklists     []models.DepressionChecklistEntry
	gratitude      []models.GratitudeEntry
	settings       models.Settings
}

// New creates a session over the given provider. The sidecar may be nil
// when auto-save is not wired (e.g. in tests).
func New(provider storage.Provider, sidecar *autosave.Sidecar) *Session {
	return &Session{
		provider: provider,
		sidecar:  sidecar,
	}
}

// Load populates all caches from the provider. The three collections are
// fetched concurrently; the first error wins and leaves the session
// unloaded.
func (s *Session) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateLoading

	var (
		wg         sync.WaitGroup
		thoughts   []models.ThoughtRecord
		checklists []models.DepressionChecklistEntry
		gratitude  []models.GratitudeEntry
		errs       [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		thoughts, errs[0] = s.provider.GetAllThoughtRecords()
	}()
	go func() {
		defer wg.Done()
		checklists, errs[1] = s.provider.GetAllDepressionChecklists()
	}()
	go func() {
		defer wg.Done()
		gratitude, errs[2] = s.provider.GetAllGratitudeEntries()
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.state = StateUnloaded
			return fmt.Errorf("failed to load session data: %w", err)
		}
	}

	settings, err := s.provider.GetSettings()
	if err != nil {
		s.state = StateUnloaded
		return fmt.Errorf("failed to load settings: %w", err)
	}

	s.thoughtRecords = thoughts
	s.checklists = checklists
	s.gratitude = gratitude
	s.settings = settings
	s.state = StateLoaded

	if s.sidecar != nil {
		s.sidecar.SetEnabled(settings.AutoSaveEnabled)
	}

	return nil
}

// State returns the current load state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Settings returns the cached settings.
func (s *Session) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ThoughtRecords returns the cached thought records, newest first.
func (s *Session) ThoughtRecords() []models.ThoughtRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ThoughtRecord, len(s.thoughtRecords))
	copy(out, s.thoughtRecords)
	return out
}

// DepressionChecklists returns the cached checklist entries, newest first.
func (s *Session) DepressionChecklists() []models.DepressionChecklistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DepressionChecklistEntry, len(s.checklists))
	copy(out, s.checklists)
	return out
}

// GratitudeEntries returns the cached gratitude entries, newest first.
func (s *Session) GratitudeEntries() []models.GratitudeEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GratitudeEntry, len(s.gratitude))
	copy(out, s.gratitude)
	return out
}

// Stats reports cached collection sizes.
func (s *Session) Stats() storage.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return storage.Stats{
		ThoughtRecords:       len(s.thoughtRecords),
		DepressionChecklists: len(s.checklists),
		GratitudeEntries:     len(s.gratitude),
	}
}

// AddThoughtRecord stores a new record and prepends it to the cache.
func (s *Session) AddThoughtRecord(rec models.ThoughtRecord) error {
	if err := s.provider.AddThoughtRecord(rec); err != nil {
		return err
	}
	s.mu.Lock()
	s.thoughtRecords = append([]models.ThoughtRecord{rec}, s.thoughtRecords...)
	s.mu.Unlock()
	s.triggerAutoSave()
	return nil
}

// UpdateThoughtRecord stores the record and replaces it in the cache.
func (s *Session) UpdateThoughtRecord(rec models.ThoughtRecord) error {
	if err := s.provider.UpdateThoughtRecord(rec); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.thoughtRecords {
		if s.thoughtRecords[i].ID == rec.ID {
			s.thoughtRecords[i] = rec
			break
		}
	}
	s.mu.Unlock()
	s.triggerAutoSave()
	return nil
}

// DeleteThoughtRecord removes the record from the store and the cache.
func (s *Session) DeleteThoughtRecord(id string) error {
	if err := s.provider.DeleteThoughtRecord(id); err != nil {
		return err
	}
	s.mu.Lock()
	s.thoughtRecords = filterThoughtRecords(s.thoughtRecords, id)
	s.mu.Unlock()
	s.triggerAutoSave()
	return nil
}

// AddDepressionChecklist stores a new entry and prepends it to the cache.
func (s *Session) AddDepressionChecklist(entry models.DepressionChecklistEntry) error {
	if err := s.provider.AddDepressionChecklist(entry); err != nil {
		return err
	}
	s.mu.Lock()
	s.checklists = append([]models.DepressionChecklistEntry{entry}, s.checklists...)
	s.mu.Unlock()
	s.triggerAutoSave()
	return nil
}

// UpdateDepressionChecklist stores the entry and replaces it in the cache.
func (s *Session) UpdateDepressionChecklist(entry models.DepressionChecklistEntry) error {
	if err := s.provider.UpdateDepressionChecklist(entry); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.checklists {
		if s.checklists[i].ID == entry.ID {
			s.checklists[i] = entry
			break
		}
	}
	s.mu.Unlock()
	s.triggerAutoSave()
	return nil
}

// DeleteDepressionChecklist removes the entry from the store and the cache.
func (s *Session) DeleteDepressionChecklist(id string) error {
	if err := s.provider.DeleteDepressionChecklist(id); err != nil {
		return err
	}
	s.mu.Lock()
	s.checklists = filterChecklists(s.checklists, id)
	s.mu.Unlock()
	s.triggerAutoSave()
	return nil
}

// AddGratitudeEntry stores a new entry and prepends it to the cache.
func (s *Session) AddGratitudeEntry(entry models.GratitudeEntry) error {
	if err := s.provider.AddGratitudeEntry(entry); err != nil {
		return err
	}
	s.mu.Lock()
	s.gratitude = append([]models.GratitudeEntry{entry}, s.gratitude...)
	s.mu.Unlock()
	s.triggerAutoSave()
	return nil
}

// UpdateGratitudeEntry stores the entry and replaces it in the cache.
func (s *Session) UpdateGratitudeEntry(entry models.GratitudeEntry) error {
	if err := s.provider.UpdateGratitudeEntry(entry); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.gratitude {
		if s.gratitude[i].ID == entry.ID {
			s.gratitude[i] = entry
			break
		}
	}
	s.mu.Unlock()
	s.triggerAutoSave()
	return nil
}

// DeleteGratitudeEntry removes the entry from the store and the cache.
func (s *Session) DeleteGratitudeEntry(id string) error {
	if err := s.provider.DeleteGratitudeEntry(id); err != nil {
		return err
	}
	s.mu.Lock()
	s.gratitude = filterGratitude(s.gratitude, id)
	s.mu.Unlock()
	s.triggerAutoSave()
	return nil
}

// SaveSettings persists settings and updates the cache and sidecar.
func (s *Session) SaveSettings(settings models.Settings) error {
	if err := s.provider.SaveSettings(settings); err != nil {
		return err
	}
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	if s.sidecar != nil {
		s.sidecar.SetEnabled(settings.AutoSaveEnabled)
	}
	return nil
}

// SetAutoSaveEnabled toggles the persisted auto-save flag.
func (s *Session) SetAutoSaveEnabled(enabled bool) error {
	settings := s.Settings()
	settings.AutoSaveEnabled = enabled
	return s.SaveSettings(settings)
}

// ExportSnapshot returns the full store contents as a snapshot document.
// It reads from the provider, not the cache, so it reflects exactly what
// is durable.
func (s *Session) ExportSnapshot() (snapshot.Document, error) {
	return s.provider.ExportAll()
}

// ImportSnapshot applies a document under the given mode and reloads the
// caches from the store afterwards.
func (s *Session) ImportSnapshot(doc snapshot.Document, mode snapshot.Mode) (snapshot.Counts, error) {
	counts, err := s.provider.ImportAll(doc, mode)
	if err != nil {
		return counts, err
	}
	if err := s.Load(); err != nil {
		return counts, err
	}
	s.triggerAutoSave()
	return counts, nil
}

// triggerAutoSave mirrors the durable contents to the sidecar destination.
// Export failures are swallowed here for the same reason sidecar write
// failures are: a mutation that already succeeded must not fail late.
func (s *Session) triggerAutoSave() {
	if s.sidecar == nil || !s.sidecar.Active() {
		return
	}
	doc, err := s.provider.ExportAll()
	if err != nil {
		logger.Warn("Auto-save skipped: export failed", "error", err)
		return
	}
	s.sidecar.Trigger(doc)
}

func filterThoughtRecords(recs []models.ThoughtRecord, id string) []models.ThoughtRecord {
	out := recs[:0]
	for _, r := range recs {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

func filterChecklists(entries []models.DepressionChecklistEntry, id string) []models.DepressionChecklistEntry {
	out := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

func filterGratitude(entries []models.GratitudeEntry, id string) []models.GratitudeEntry {
	out := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
