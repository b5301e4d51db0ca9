// Package snapshot defines the portable backup document: a JSON object
// holding the complete contents of all three collections. The format
// carries no version tag (it predates versioning); Parse rejects unknown
// top-level keys so a future tagged format fails closed instead of
// half-importing.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/untwistapp/untwist/internal/models"
)

// ErrInvalidDocument marks an import payload that does not parse or does
// not match the expected shape. The store is never touched in that case.
var ErrInvalidDocument = errors.New("invalid snapshot document")

// Mode selects how an import reconciles with existing data.
type Mode string

const (
	// ModeMerge upserts incoming entities by identifier, leaving
	// everything else untouched.
	ModeMerge Mode = "merge"
	// ModeReplace clears all collections before inserting.
	ModeReplace Mode = "replace"
)

// ParseMode validates a user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMerge:
		return ModeMerge, nil
	case ModeReplace:
		return ModeReplace, nil
	default:
		return "", fmt.Errorf("invalid import mode %q (expected merge or replace)", s)
	}
}

// Document is the portable snapshot. All collections are present on
// export; any may be absent on import.
type Document struct {
	ThoughtRecords       []models.ThoughtRecord           `json:"thoughtRecords"`
	DepressionChecklists []models.DepressionChecklistEntry `json:"depressionChecklists"`
	GratitudeEntries     []models.GratitudeEntry          `json:"gratitudeEntries"`
}

// Counts reports how many entities of each kind an import wrote.
type Counts struct {
	ThoughtRecords       int `json:"thoughtRecords"`
	DepressionChecklists int `json:"depressionChecklists"`
	GratitudeEntries     int `json:"gratitudeEntries"`
}

// Total returns the sum across all collections.
func (c Counts) Total() int {
	return c.ThoughtRecords + c.DepressionChecklists + c.GratitudeEntries
}

// Marshal serializes the document for export, indented the way the
// original backup files were written so they stay diffable.
func (d Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return data, nil
}

// Parse decodes and shape-checks a snapshot payload. It fails closed:
// malformed JSON, a non-object top level, unknown top-level keys, or an
// entity without an identifier all reject the whole document.
func Parse(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	// Trailing garbage after the object is a malformed backup too.
	if dec.More() {
		return Document{}, fmt.Errorf("%w: trailing data after document", ErrInvalidDocument)
	}

	for i, r := range doc.ThoughtRecords {
		if r.ID == "" {
			return Document{}, fmt.Errorf("%w: thoughtRecords[%d] has no id", ErrInvalidDocument, i)
		}
	}
	for i, e := range doc.DepressionChecklists {
		if e.ID == "" {
			return Document{}, fmt.Errorf("%w: depressionChecklists[%d] has no id", ErrInvalidDocument, i)
		}
	}
	for i, e := range doc.GratitudeEntries {
		if e.ID == "" {
			return Document{}, fmt.Errorf("%w: gratitudeEntries[%d] has no id", ErrInvalidDocument, i)
		}
	}

	return doc, nil
}

// Merge unions several documents into one, de-duplicating by identifier
// within each collection. On collision the later document wins, so callers
// pass backups in load order. Entities keep the position of their first
// appearance, which keeps the result deterministic.
func Merge(docs ...Document) Document {
	var out Document
	out.ThoughtRecords = mergeByID(docs, func(d Document) []models.ThoughtRecord { return d.ThoughtRecords },
		func(r models.ThoughtRecord) string { return r.ID })
	out.DepressionChecklists = mergeByID(docs, func(d Document) []models.DepressionChecklistEntry { return d.DepressionChecklists },
		func(e models.DepressionChecklistEntry) string { return e.ID })
	out.GratitudeEntries = mergeByID(docs, func(d Document) []models.GratitudeEntry { return d.GratitudeEntries },
		func(e models.GratitudeEntry) string { return e.ID })
	return out
}

func mergeByID[T any](docs []Document, items func(Document) []T, id func(T) string) []T {
	var order []string
	byID := make(map[string]T)
	for _, doc := range docs {
		for _, item := range items(doc) {
			key := id(item)
			if _, seen := byID[key]; !seen {
				order = append(order, key)
			}
			byID[key] = item
		}
	}
	if len(order) == 0 {
		return nil
	}
	out := make([]T, 0, len(order))
	for _, key := range order {
		out = append(out, byID[key])
	}
	return out
}
