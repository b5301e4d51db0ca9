package snapshot

import (
	"errors"
	"testing"

	"github.com/untwistapp/untwist/internal/models"
)

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("merge"); err != nil || m != ModeMerge {
		t.Errorf("ParseMode(merge) = %v, %v", m, err)
	}
	if m, err := ParseMode("replace"); err != nil || m != ModeReplace {
		t.Errorf("ParseMode(replace) = %v, %v", m, err)
	}
	if _, err := ParseMode("upsert"); err == nil {
		t.Error("ParseMode(upsert) succeeded, want error")
	}
}

func TestParse(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		doc := Document{
			ThoughtRecords: []models.ThoughtRecord{
				{ID: "t1", Date: "2024-03-01", Situation: "meeting"},
			},
			GratitudeEntries: []models.GratitudeEntry{
				{ID: "g1", Date: "2024-03-01", Entries: []string{"sun"}},
			},
		}

		data, err := doc.Marshal()
		if err != nil {
			t.Fatalf("Marshal() error: %v", err)
		}

		got, err := Parse(data)
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		if len(got.ThoughtRecords) != 1 || got.ThoughtRecords[0].ID != "t1" {
			t.Errorf("thought records not preserved: %+v", got.ThoughtRecords)
		}
		if len(got.GratitudeEntries) != 1 || got.GratitudeEntries[0].Entries[0] != "sun" {
			t.Errorf("gratitude entries not preserved: %+v", got.GratitudeEntries)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		doc, err := Parse([]byte(`{}`))
		if err != nil {
			t.Fatalf("Parse({}) error: %v", err)
		}
		if len(doc.ThoughtRecords) != 0 {
			t.Errorf("expected empty document")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := Parse([]byte(`{"thoughtRecords": [`)); !errors.Is(err, ErrInvalidDocument) {
			t.Errorf("Parse() error = %v, want ErrInvalidDocument", err)
		}
	})

	t.Run("unknown top-level key", func(t *testing.T) {
		if _, err := Parse([]byte(`{"thoughtRecords": [], "extra": 1}`)); !errors.Is(err, ErrInvalidDocument) {
			t.Errorf("Parse() error = %v, want ErrInvalidDocument", err)
		}
	})

	t.Run("non-object top level", func(t *testing.T) {
		if _, err := Parse([]byte(`[1, 2, 3]`)); !errors.Is(err, ErrInvalidDocument) {
			t.Errorf("Parse() error = %v, want ErrInvalidDocument", err)
		}
	})

	t.Run("trailing data", func(t *testing.T) {
		if _, err := Parse([]byte(`{} {}`)); !errors.Is(err, ErrInvalidDocument) {
			t.Errorf("Parse() error = %v, want ErrInvalidDocument", err)
		}
	})

	t.Run("entity without id", func(t *testing.T) {
		payload := []byte(`{"thoughtRecords": [{"date": "2024-03-01"}]}`)
		if _, err := Parse(payload); !errors.Is(err, ErrInvalidDocument) {
			t.Errorf("Parse() error = %v, want ErrInvalidDocument", err)
		}
	})
}

func TestMerge(t *testing.T) {
	t.Run("later document wins on collision", func(t *testing.T) {
		fileA := Document{
			GratitudeEntries: []models.GratitudeEntry{
				{ID: "g1", Date: "2024-03-01", Entries: []string{"sun"}},
				{ID: "g2", Date: "2024-03-02", Entries: []string{"rain"}},
			},
		}
		fileB := Document{
			GratitudeEntries: []models.GratitudeEntry{
				{ID: "g1", Date: "2024-03-01", Entries: []string{"coffee"}},
			},
		}

		merged := Merge(fileA, fileB)
		if len(merged.GratitudeEntries) != 2 {
			t.Fatalf("merged has %d gratitude entries, want 2", len(merged.GratitudeEntries))
		}
		// g1 keeps its first-appearance position but carries fileB's data
		if merged.GratitudeEntries[0].ID != "g1" || merged.GratitudeEntries[0].Entries[0] != "coffee" {
			t.Errorf("merged[0] = %+v, want g1 with coffee", merged.GratitudeEntries[0])
		}
		if merged.GratitudeEntries[1].ID != "g2" {
			t.Errorf("merged[1].ID = %s, want g2", merged.GratitudeEntries[1].ID)
		}
	})

	t.Run("disjoint documents union", func(t *testing.T) {
		a := Document{ThoughtRecords: []models.ThoughtRecord{{ID: "t1"}}}
		b := Document{ThoughtRecords: []models.ThoughtRecord{{ID: "t2"}}}
		merged := Merge(a, b)
		if len(merged.ThoughtRecords) != 2 {
			t.Errorf("merged has %d thought records, want 2", len(merged.ThoughtRecords))
		}
	})

	t.Run("no documents", func(t *testing.T) {
		merged := Merge()
		if len(merged.ThoughtRecords)+len(merged.DepressionChecklists)+len(merged.GratitudeEntries) != 0 {
			t.Errorf("Merge() of nothing is not empty: %+v", merged)
		}
	})
}

func TestCountsTotal(t *testing.T) {
	c := Counts{ThoughtRecords: 2, DepressionChecklists: 3, GratitudeEntries: 4}
	if got := c.Total(); got != 9 {
		t.Errorf("Total() = %d, want 9", got)
	}
}
