package storage

import "errors"

// Typed store failures. Implementations wrap these with fmt.Errorf("%w")
// and callers test with errors.Is; the store never silently swallows a
// failed operation.
var (
	// ErrDuplicateKey: Add was called with an identifier already present
	// in that collection. Update (upsert) never returns this.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound: Get was called with an identifier that is not present.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable: the underlying medium cannot be opened or
	// written (quota, permissions, corruption).
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMigrationBlocked: a schema upgrade cannot proceed because another
	// session holds the database open. Reported instead of hanging so the
	// caller can prompt the user.
	ErrMigrationBlocked = errors.New("migration blocked by another session")
)

// Stats holds per-collection record counts, computed without
// materializing the records.
type Stats struct {
	ThoughtRecords       int
	DepressionChecklists int
	GratitudeEntries     int
}

// Total returns the combined entry count across all collections.
func (s Stats) Total() int {
	return s.ThoughtRecords + s.DepressionChecklists + s.GratitudeEntries
}
