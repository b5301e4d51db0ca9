package backup

import (
	"time"

	"github.com/untwistapp/untwist/internal/models"
)

const (
	// minEntriesForFirstReminder is how many entries must exist before the
	// first backup is ever suggested.
	minEntriesForFirstReminder = 10
	// maxDaysBetweenBackups triggers a reminder on age alone.
	maxDaysBetweenBackups = 30
	// staleDays and staleMinEntries trigger together: a week old and
	// meaningful growth since.
	staleDays       = 7
	staleMinEntries = 5
	// newEntriesThreshold triggers on growth alone.
	newEntriesThreshold = 10
)

// ShouldRemind reports whether the user should be nudged to back up,
// given their settings and the current total entry count.
func ShouldRemind(settings models.Settings, totalEntries int, now time.Time) bool {
	if settings.LastBackupDate == "" {
		return totalEntries >= minEntriesForFirstReminder
	}

	last, err := time.Parse(time.RFC3339, settings.LastBackupDate)
	if err != nil {
		// An unreadable timestamp is treated as never backed up
		return totalEntries >= minEntriesForFirstReminder
	}

	daysSince := int(now.Sub(last).Hours() / 24)
	newEntries := totalEntries - settings.EntriesAtLastBackup

	if daysSince >= maxDaysBetweenBackups {
		return true
	}
	if daysSince >= staleDays && newEntries >= staleMinEntries {
		return true
	}
	return newEntries >= newEntriesThreshold
}

// MarkBackedUp returns settings updated to record a backup taken now with
// the given total entry count.
func MarkBackedUp(settings models.Settings, totalEntries int, now time.Time) models.Settings {
	settings.LastBackupDate = now.UTC().Format(time.RFC3339)
	settings.EntriesAtLastBackup = totalEntries
	return settings
}
