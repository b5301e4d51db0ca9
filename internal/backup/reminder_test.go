package backup

import (
	"testing"
	"time"

	"github.com/untwistapp/untwist/internal/models"
)

func TestShouldRemind(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	backupAt := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format(time.RFC3339)
	}

	tests := []struct {
		name     string
		settings models.Settings
		total    int
		want     bool
	}{
		{
			name:     "never backed up, few entries",
			settings: models.Settings{},
			total:    9,
			want:     false,
		},
		{
			name:     "never backed up, enough entries",
			settings: models.Settings{},
			total:    10,
			want:     true,
		},
		{
			name:     "recent backup, little growth",
			settings: models.Settings{LastBackupDate: backupAt(2), EntriesAtLastBackup: 20},
			total:    22,
			want:     false,
		},
		{
			name:     "thirty days old regardless of growth",
			settings: models.Settings{LastBackupDate: backupAt(30), EntriesAtLastBackup: 20},
			total:    20,
			want:     true,
		},
		{
			name:     "week old with meaningful growth",
			settings: models.Settings{LastBackupDate: backupAt(8), EntriesAtLastBackup: 20},
			total:    25,
			want:     true,
		},
		{
			name:     "week old without growth",
			settings: models.Settings{LastBackupDate: backupAt(8), EntriesAtLastBackup: 20},
			total:    23,
			want:     false,
		},
		{
			name:     "heavy growth alone triggers",
			settings: models.Settings{LastBackupDate: backupAt(1), EntriesAtLastBackup: 20},
			total:    30,
			want:     true,
		},
		{
			name:     "unparseable timestamp treated as never",
			settings: models.Settings{LastBackupDate: "yesterday", EntriesAtLastBackup: 20},
			total:    15,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldRemind(tt.settings, tt.total, now); got != tt.want {
				t.Errorf("ShouldRemind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMarkBackedUp(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	settings := models.Settings{AutoSaveEnabled: true}

	got := MarkBackedUp(settings, 42, now)
	if got.LastBackupDate != now.Format(time.RFC3339) {
		t.Errorf("LastBackupDate = %q", got.LastBackupDate)
	}
	if got.EntriesAtLastBackup != 42 {
		t.Errorf("EntriesAtLastBackup = %d, want 42", got.EntriesAtLastBackup)
	}
	// Unrelated fields survive
	if !got.AutoSaveEnabled {
		t.Error("AutoSaveEnabled was reset")
	}

	// Marking resets the reminder
	if ShouldRemind(got, 42, now) {
		t.Error("ShouldRemind() immediately after MarkBackedUp() = true")
	}
}
