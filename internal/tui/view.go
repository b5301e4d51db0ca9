package tui

import (
	"fmt"
	"strings"

	"github.com/untwistapp/untwist/internal/models"
)

var tabNames = []string{"Thoughts", "Checklists", "Gratitude", "Stats"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.backupReminder != "" {
		b.WriteString(warningStyle.Render(m.backupReminder))
		b.WriteString("\n\n")
	}

	switch m.state {
	case StateConfirmDelete:
		b.WriteString(m.renderConfirmDelete())
	case StateDetail:
		b.WriteString(m.renderDetail())
	case StateThoughts:
		b.WriteString(m.renderThoughts())
	case StateChecklists:
		b.WriteString(m.renderChecklists())
	case StateGratitude:
		b.WriteString(m.renderGratitude())
	case StateStats:
		b.WriteString(m.renderStats())
	}

	if m.statusMessage != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.statusMessage))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderTabs() string {
	var tabs []string
	current := m.tabIndex()
	for i, name := range tabNames {
		if i == current {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderThoughts() string {
	records := m.session.ThoughtRecords()
	if len(records) == 0 {
		return dimStyle.Render("No thought records yet. Add one with 'untwist thought add'.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Thought records"))
	b.WriteString("\n\n")
	for i, rec := range records {
		line := fmt.Sprintf("%s  %s", rec.Date, truncate(rec.Situation, 60))
		b.WriteString(m.renderRow(i, line))
	}
	return b.String()
}

func (m Model) renderChecklists() string {
	entries := m.session.DepressionChecklists()
	if len(entries) == 0 {
		return dimStyle.Render("No checklists yet. Add one with 'untwist checklist add'.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Depression checklists"))
	b.WriteString("\n\n")
	for i, entry := range entries {
		line := fmt.Sprintf("%s  %3d/100  %s", entry.Date, entry.Total, models.DepressionLevel(entry.Total))
		b.WriteString(m.renderRow(i, line))
	}
	return b.String()
}

func (m Model) renderGratitude() string {
	entries := m.session.GratitudeEntries()
	if len(entries) == 0 {
		return dimStyle.Render("No gratitude entries yet. Add one with 'untwist gratitude add'.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Gratitude entries"))
	b.WriteString("\n\n")
	for i, entry := range entries {
		line := fmt.Sprintf("%s  %s", entry.Date, truncate(strings.Join(entry.Entries, "; "), 60))
		b.WriteString(m.renderRow(i, line))
	}
	return b.String()
}

func (m Model) renderStats() string {
	stats := m.session.Stats()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Journal statistics"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Thought records:       %d\n", stats.ThoughtRecords))
	b.WriteString(fmt.Sprintf("  Depression checklists: %d\n", stats.DepressionChecklists))
	b.WriteString(fmt.Sprintf("  Gratitude entries:     %d\n", stats.GratitudeEntries))
	b.WriteString(fmt.Sprintf("  Total:                 %d\n", stats.Total()))

	checklists := m.session.DepressionChecklists()
	if len(checklists) > 0 {
		latest := checklists[0]
		b.WriteString(fmt.Sprintf("\n  Latest checklist (%s): %d/100 - %s\n",
			latest.Date, latest.Total, models.DepressionLevel(latest.Total)))
	}

	return b.String()
}

func (m Model) renderDetail() string {
	switch m.previousState {
	case StateThoughts:
		records := m.session.ThoughtRecords()
		if m.cursor >= len(records) {
			return ""
		}
		rec := records[m.cursor]
		var b strings.Builder
		b.WriteString(titleStyle.Render("Thought record - " + rec.Date))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Situation:   %s\n", rec.Situation))
		b.WriteString(fmt.Sprintf("Thoughts:    %s\n", rec.AutomaticThoughts))
		b.WriteString(fmt.Sprintf("Emotions:    %s\n", formatEmotions(rec.Emotions)))
		b.WriteString(fmt.Sprintf("Distortions: %s\n", formatDistortions(rec.Distortions)))
		b.WriteString(fmt.Sprintf("Response:    %s\n", rec.RationalResponse))
		b.WriteString(fmt.Sprintf("Outcome:     %s\n", formatEmotions(rec.OutcomeEmotions)))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("esc to go back, d to delete"))
		return b.String()

	case StateChecklists:
		entries := m.session.DepressionChecklists()
		if m.cursor >= len(entries) {
			return ""
		}
		entry := entries[m.cursor]
		var b strings.Builder
		b.WriteString(titleStyle.Render("Checklist - " + entry.Date))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Total: %d/100 - %s\n\n", entry.Total, models.DepressionLevel(entry.Total)))
		items := entry.Scores.Items()
		currentCategory := ""
		for _, item := range models.ChecklistItems {
			if item.Category != currentCategory {
				currentCategory = item.Category
				b.WriteString(fmt.Sprintf("%s:\n", currentCategory))
			}
			b.WriteString(fmt.Sprintf("  %d  %s\n", items[item.Key], item.Label))
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("esc to go back, d to delete"))
		return b.String()

	case StateGratitude:
		entries := m.session.GratitudeEntries()
		if m.cursor >= len(entries) {
			return ""
		}
		entry := entries[m.cursor]
		var b strings.Builder
		b.WriteString(titleStyle.Render("Gratitude - " + entry.Date))
		b.WriteString("\n\n")
		for _, item := range entry.Entries {
			b.WriteString(fmt.Sprintf("  - %s\n", item))
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("esc to go back, d to delete"))
		return b.String()
	}
	return ""
}

func (m Model) renderConfirmDelete() string {
	return warningStyle.Render("Delete this entry? This cannot be undone.") + "\n\n" +
		dimStyle.Render("y to confirm, n to cancel")
}

func (m Model) renderRow(i int, line string) string {
	if i == m.cursor {
		return selectedRowStyle.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func formatEmotions(emotions []models.Emotion) string {
	if len(emotions) == 0 {
		return "-"
	}
	var parts []string
	for _, e := range emotions {
		parts = append(parts, fmt.Sprintf("%s (%d)", e.Name, e.Intensity))
	}
	return strings.Join(parts, ", ")
}

func formatDistortions(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	var parts []string
	for _, id := range ids {
		if d, ok := models.DistortionByID(id); ok {
			parts = append(parts, d.ShortName)
		} else {
			parts = append(parts, fmt.Sprintf("#%d", id))
		}
	}
	return strings.Join(parts, ", ")
}
