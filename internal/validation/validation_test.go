package validation

import (
	"testing"

	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/snapshot"
)

func validThought() models.ThoughtRecord {
	return models.ThoughtRecord{
		ID:                "t1",
		Date:              "2024-03-01",
		Situation:         "late to work",
		Emotions:          []models.Emotion{{Name: "guilt", Intensity: 60}},
		AutomaticThoughts: "I always mess up",
		Distortions:       []int{2},
		RationalResponse:  "one late morning is not a pattern",
		OutcomeEmotions:   []models.Emotion{{Name: "guilt", Intensity: 25}},
	}
}

func hasIssue(r Result, typ IssueType) bool {
	for _, issue := range r.Issues {
		if issue.Type == typ {
			return true
		}
	}
	return false
}

func TestValidateThoughtRecord(t *testing.T) {
	v := New()

	t.Run("valid record passes", func(t *testing.T) {
		if r := v.ValidateThoughtRecord(validThought()); r.HasIssues() {
			t.Errorf("unexpected issues: %s", r.FormatReport())
		}
	})

	t.Run("missing id", func(t *testing.T) {
		rec := validThought()
		rec.ID = ""
		if r := v.ValidateThoughtRecord(rec); !hasIssue(r, IssueMissingID) {
			t.Error("missing ID not reported")
		}
	})

	t.Run("bad date", func(t *testing.T) {
		rec := validThought()
		rec.Date = "03/01/2024"
		if r := v.ValidateThoughtRecord(rec); !hasIssue(r, IssueInvalidDate) {
			t.Error("invalid date not reported")
		}
	})

	t.Run("intensity out of range", func(t *testing.T) {
		rec := validThought()
		rec.Emotions[0].Intensity = 101
		if r := v.ValidateThoughtRecord(rec); !hasIssue(r, IssueInvalidIntensity) {
			t.Error("over-range intensity not reported")
		}

		rec = validThought()
		rec.OutcomeEmotions[0].Intensity = -1
		if r := v.ValidateThoughtRecord(rec); !hasIssue(r, IssueInvalidIntensity) {
			t.Error("negative outcome intensity not reported")
		}
	})

	t.Run("unknown distortion", func(t *testing.T) {
		rec := validThought()
		rec.Distortions = []int{11}
		if r := v.ValidateThoughtRecord(rec); !hasIssue(r, IssueUnknownDistorton) {
			t.Error("unknown distortion not reported")
		}
	})
}

func TestValidateChecklistEntry(t *testing.T) {
	v := New()

	valid := func() models.DepressionChecklistEntry {
		var scores models.DepressionScores
		scores.FeelingSad = 2
		scores.Fatigue = 3
		return models.DepressionChecklistEntry{
			ID:     "c1",
			Date:   "2024-03-01",
			Scores: scores,
			Total:  scores.Total(),
		}
	}

	t.Run("valid entry passes", func(t *testing.T) {
		if r := v.ValidateChecklistEntry(valid()); r.HasIssues() {
			t.Errorf("unexpected issues: %s", r.FormatReport())
		}
	})

	t.Run("score out of range", func(t *testing.T) {
		entry := valid()
		entry.Scores.FeelingSad = 5
		entry.Total = entry.Scores.Total()
		if r := v.ValidateChecklistEntry(entry); !hasIssue(r, IssueInvalidScore) {
			t.Error("over-range score not reported")
		}
	})

	t.Run("total mismatch", func(t *testing.T) {
		entry := valid()
		entry.Total = entry.Total + 1
		if r := v.ValidateChecklistEntry(entry); !hasIssue(r, IssueTotalMismatch) {
			t.Error("total mismatch not reported")
		}
	})
}

func TestValidateGratitudeEntry(t *testing.T) {
	v := New()

	t.Run("valid entry passes", func(t *testing.T) {
		entry := models.GratitudeEntry{ID: "g1", Date: "2024-03-01", Entries: []string{"sun"}}
		if r := v.ValidateGratitudeEntry(entry); r.HasIssues() {
			t.Errorf("unexpected issues: %s", r.FormatReport())
		}
	})

	t.Run("whitespace-only items", func(t *testing.T) {
		entry := models.GratitudeEntry{ID: "g1", Date: "2024-03-01", Entries: []string{"  ", "\t"}}
		if r := v.ValidateGratitudeEntry(entry); !hasIssue(r, IssueEmptyGratitude) {
			t.Error("empty gratitude not reported")
		}
	})
}

func TestValidateDocument(t *testing.T) {
	v := New()

	doc := snapshot.Document{
		ThoughtRecords: []models.ThoughtRecord{validThought()},
		GratitudeEntries: []models.GratitudeEntry{
			{ID: "", Date: "2024-03-01", Entries: []string{"sun"}},
		},
	}

	r := v.ValidateDocument(doc)
	if !r.HasIssues() {
		t.Fatal("document with bad entry passed validation")
	}
	if !hasIssue(r, IssueMissingID) {
		t.Error("missing ID in document not reported")
	}
	if len(r.Issues) != 1 {
		t.Errorf("got %d issues, want 1: %s", len(r.Issues), r.FormatReport())
	}
}
