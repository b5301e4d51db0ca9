package autosave

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/snapshot"
)

func testDoc() snapshot.Document {
	return snapshot.Document{
		GratitudeEntries: []models.GratitudeEntry{
			{ID: "g1", Date: "2024-03-01", Entries: []string{"sun"}},
		},
	}
}

func TestActive(t *testing.T) {
	s := New()
	if s.Active() {
		t.Error("fresh sidecar is active")
	}

	s.SetEnabled(true)
	if s.Active() {
		t.Error("enabled without destination is active")
	}

	s.SetDestination("/tmp/somewhere.json")
	if !s.Active() {
		t.Error("enabled with destination is not active")
	}

	s.SetEnabled(false)
	if s.Active() {
		t.Error("disabled sidecar is active")
	}
}

func TestTriggerWritesSnapshot(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "mirror.json")
	s := New()
	s.SetEnabled(true)
	s.SetDestination(dest)

	s.Trigger(testDoc())

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("mirror file not written: %v", err)
	}
	doc, err := snapshot.Parse(data)
	if err != nil {
		t.Fatalf("mirror is not a valid snapshot: %v", err)
	}
	if len(doc.GratitudeEntries) != 1 || doc.GratitudeEntries[0].ID != "g1" {
		t.Errorf("mirror contents = %+v", doc.GratitudeEntries)
	}
}

func TestTriggerOverwrites(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "mirror.json")
	s := New()
	s.SetEnabled(true)
	s.SetDestination(dest)

	s.Trigger(testDoc())

	second := testDoc()
	second.GratitudeEntries[0].Entries = []string{"coffee"}
	s.Trigger(second)

	data, _ := os.ReadFile(dest)
	doc, err := snapshot.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if doc.GratitudeEntries[0].Entries[0] != "coffee" {
		t.Errorf("mirror not overwritten: %v", doc.GratitudeEntries[0].Entries)
	}
}

func TestTriggerInactiveWritesNothing(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "mirror.json")
	s := New()
	s.SetDestination(dest)

	s.Trigger(testDoc())

	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("inactive sidecar wrote the mirror file")
	}
}

func TestTriggerSwallowsWriteFailure(t *testing.T) {
	s := New()
	s.SetEnabled(true)
	s.SetDestination(filepath.Join(t.TempDir(), "missing", "nested", "mirror.json"))

	// Must not panic or surface an error
	s.Trigger(testDoc())
}
