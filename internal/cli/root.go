package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/untwistapp/untwist/internal/autosave"
	"github.com/untwistapp/untwist/internal/backup"
	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/session"
	"github.com/untwistapp/untwist/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Session *session.Session
	Sidecar *autosave.Sidecar
}

// LoadSession fills the session caches, loading lazily so commands that
// never touch records skip the read.
func (c *Context) LoadSession() error {
	if c.Session.State() == session.StateLoaded {
		return nil
	}
	return c.Session.Load()
}

// CheckBackupReminder prints a nudge when the backup policy says the user
// is overdue. Failures are ignored: a reminder must never break a command.
func (c *Context) CheckBackupReminder() {
	stats, err := c.Store.GetStats()
	if err != nil {
		return
	}
	settings, err := c.Store.GetSettings()
	if err != nil {
		return
	}
	if backup.ShouldRemind(settings, stats.Total(), time.Now()) {
		fmt.Println("Tip: it has been a while since your last backup. Run 'untwist backup create'.")
	}
}

// MarkBackupDone records a completed backup in settings.
func (c *Context) MarkBackupDone() error {
	stats, err := c.Store.GetStats()
	if err != nil {
		return err
	}
	settings, err := c.Store.GetSettings()
	if err != nil {
		return err
	}
	return c.Store.SaveSettings(backup.MarkBackedUp(settings, stats.Total(), time.Now()))
}

// ShortID abbreviates a UUID for list output.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatEmotions renders an emotion list as "name (nn)" pairs.
func FormatEmotions(emotions []models.Emotion) string {
	if len(emotions) == 0 {
		return "-"
	}
	var parts []string
	for _, e := range emotions {
		parts = append(parts, fmt.Sprintf("%s (%d)", e.Name, e.Intensity))
	}
	return strings.Join(parts, ", ")
}

// FormatDistortions renders distortion IDs as their names.
func FormatDistortions(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	var parts []string
	for _, id := range ids {
		if d, ok := models.DistortionByID(id); ok {
			parts = append(parts, d.Name)
		} else {
			parts = append(parts, fmt.Sprintf("#%d", id))
		}
	}
	return strings.Join(parts, ", ")
}

// Truncate shortens a string for single-line display.
func Truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
