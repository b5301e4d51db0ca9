package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/snapshot"
)

// IssueType represents the type of validation issue
type IssueType string

const (
	IssueMissingID        IssueType = "missing_id"
	IssueInvalidDate      IssueType = "invalid_date"
	IssueInvalidIntensity IssueType = "invalid_intensity"
	IssueUnknownDistorton IssueType = "unknown_distortion"
	IssueInvalidScore     IssueType = "invalid_score"
	IssueTotalMismatch    IssueType = "total_mismatch"
	IssueEmptyGratitude   IssueType = "empty_gratitude"
)

// Issue represents a detected problem with a record
type Issue struct {
	Type        IssueType
	Description string
	RecordID    string
}

// Result contains all detected issues
type Result struct {
	Issues []Issue
}

// HasIssues returns true if there are any issues
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport returns a human-readable report of all issues
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}

	report := "Issues detected:\n"
	for _, issue := range r.Issues {
		report += fmt.Sprintf("- %s\n", issue.Description)
	}
	return report
}

// Validator checks records for structural problems before they are stored
// or after they arrive in an imported document.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateThoughtRecord checks a single thought record.
func (v *Validator) ValidateThoughtRecord(rec models.ThoughtRecord) Result {
	result := Result{Issues: []Issue{}}

	if rec.ID == "" {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueMissingID,
			Description: "Thought record has an empty ID",
		})
	}
	if !isValidDate(rec.Date) {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidDate,
			Description: fmt.Sprintf("Thought record %q has invalid date: %s", rec.ID, rec.Date),
			RecordID:    rec.ID,
		})
	}

	for _, e := range rec.Emotions {
		if e.Intensity < 0 || e.Intensity > 100 {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueInvalidIntensity,
				Description: fmt.Sprintf("Thought record %q: emotion %q intensity %d outside 0-100", rec.ID, e.Name, e.Intensity),
				RecordID:    rec.ID,
			})
		}
	}
	for _, e := range rec.OutcomeEmotions {
		if e.Intensity < 0 || e.Intensity > 100 {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueInvalidIntensity,
				Description: fmt.Sprintf("Thought record %q: outcome emotion %q intensity %d outside 0-100", rec.ID, e.Name, e.Intensity),
				RecordID:    rec.ID,
			})
		}
	}

	for _, d := range rec.Distortions {
		if _, ok := models.DistortionByID(d); !ok {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueUnknownDistorton,
				Description: fmt.Sprintf("Thought record %q references unknown distortion %d", rec.ID, d),
				RecordID:    rec.ID,
			})
		}
	}

	return result
}

// ValidateChecklistEntry checks a single depression checklist entry.
func (v *Validator) ValidateChecklistEntry(entry models.DepressionChecklistEntry) Result {
	result := Result{Issues: []Issue{}}

	if entry.ID == "" {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueMissingID,
			Description: "Checklist entry has an empty ID",
		})
	}
	if !isValidDate(entry.Date) {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidDate,
			Description: fmt.Sprintf("Checklist entry %q has invalid date: %s", entry.ID, entry.Date),
			RecordID:    entry.ID,
		})
	}

	for name, score := range entry.Scores.Items() {
		if score < 0 || score > 4 {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueInvalidScore,
				Description: fmt.Sprintf("Checklist entry %q: item %q score %d outside 0-4", entry.ID, name, score),
				RecordID:    entry.ID,
			})
		}
	}

	if entry.Total != entry.Scores.Total() {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueTotalMismatch,
			Description: fmt.Sprintf("Checklist entry %q: stored total %d does not match score sum %d", entry.ID, entry.Total, entry.Scores.Total()),
			RecordID:    entry.ID,
		})
	}

	return result
}

// ValidateGratitudeEntry checks a single gratitude entry.
func (v *Validator) ValidateGratitudeEntry(entry models.GratitudeEntry) Result {
	result := Result{Issues: []Issue{}}

	if entry.ID == "" {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueMissingID,
			Description: "Gratitude entry has an empty ID",
		})
	}
	if !isValidDate(entry.Date) {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidDate,
			Description: fmt.Sprintf("Gratitude entry %q has invalid date: %s", entry.ID, entry.Date),
			RecordID:    entry.ID,
		})
	}

	nonEmpty := 0
	for _, item := range entry.Entries {
		if strings.TrimSpace(item) != "" {
			nonEmpty++
		}
	}
	if nonEmpty == 0 {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueEmptyGratitude,
			Description: fmt.Sprintf("Gratitude entry %q has no non-empty items", entry.ID),
			RecordID:    entry.ID,
		})
	}

	return result
}

// ValidateDocument checks every record in a snapshot document, e.g. before
// an import is applied.
func (v *Validator) ValidateDocument(doc snapshot.Document) Result {
	result := Result{Issues: []Issue{}}

	for _, rec := range doc.ThoughtRecords {
		sub := v.ValidateThoughtRecord(rec)
		result.Issues = append(result.Issues, sub.Issues...)
	}
	for _, entry := range doc.DepressionChecklists {
		sub := v.ValidateChecklistEntry(entry)
		result.Issues = append(result.Issues, sub.Issues...)
	}
	for _, entry := range doc.GratitudeEntries {
		sub := v.ValidateGratitudeEntry(entry)
		result.Issues = append(result.Issues, sub.Issues...)
	}

	return result
}

func isValidDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}
