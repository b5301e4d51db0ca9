package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		case StateDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.state = tabOrder[(m.tabIndex()+1)%len(tabOrder)]
		m.cursor = 0
		m.statusMessage = ""
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = tabOrder[(m.tabIndex()+len(tabOrder)-1)%len(tabOrder)]
		m.cursor = 0
		m.statusMessage = ""
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.state != StateStats && m.listLen() > 0 {
			m.previousState = m.state
			m.state = StateDetail
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if m.state == StateStats || m.listLen() == 0 {
			return m, nil
		}
		if id, ok := m.selectedID(); ok {
			m.entryToDeleteID = id
			m.previousState = m.state
			m.state = StateConfirmDelete
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if err := m.session.Load(); err != nil {
			m.statusMessage = fmt.Sprintf("Reload failed: %v", err)
		} else {
			m.statusMessage = "Reloaded."
			m.updateBackupReminder()
		}
		if m.cursor >= m.listLen() {
			m.cursor = 0
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Enter):
		m.state = m.previousState
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.selectedID(); ok {
			m.entryToDeleteID = id
			m.state = StateConfirmDelete
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.deleteSelected(); err != nil {
			m.statusMessage = fmt.Sprintf("Delete failed: %v", err)
		} else {
			m.statusMessage = "Entry deleted."
		}
		m.entryToDeleteID = ""
		m.state = m.previousState
		if m.cursor >= m.listLen() && m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "n", "N", "esc":
		m.entryToDeleteID = ""
		m.state = m.previousState
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// selectedID returns the ID of the entry under the cursor.
func (m Model) selectedID() (string, bool) {
	switch m.currentTab() {
	case StateThoughts:
		records := m.session.ThoughtRecords()
		if m.cursor < len(records) {
			return records[m.cursor].ID, true
		}
	case StateChecklists:
		entries := m.session.DepressionChecklists()
		if m.cursor < len(entries) {
			return entries[m.cursor].ID, true
		}
	case StateGratitude:
		entries := m.session.GratitudeEntries()
		if m.cursor < len(entries) {
			return entries[m.cursor].ID, true
		}
	}
	return "", false
}

func (m *Model) deleteSelected() error {
	switch m.currentTab() {
	case StateThoughts:
		return m.session.DeleteThoughtRecord(m.entryToDeleteID)
	case StateChecklists:
		return m.session.DeleteDepressionChecklist(m.entryToDeleteID)
	case StateGratitude:
		return m.session.DeleteGratitudeEntry(m.entryToDeleteID)
	}
	return nil
}
