package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/untwistapp/untwist/internal/backup"
	"github.com/untwistapp/untwist/internal/session"
)

type SessionState int

const (
	StateThoughts SessionState = iota
	StateChecklists
	StateGratitude
	StateStats
	StateDetail
	StateConfirmDelete
)

// tabs in navigation order; StateDetail and StateConfirmDelete overlay the
// tab they were entered from.
var tabOrder = []SessionState{StateThoughts, StateChecklists, StateGratitude, StateStats}

type Model struct {
	session *session.Session

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	cursor         int
	quitting       bool
	width          int
	height         int
	statusMessage  string
	backupReminder string

	entryToDeleteID string
}

func NewModel(sess *session.Session) Model {
	m := Model{
		session: sess,
		state:   StateThoughts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}

	m.updateBackupReminder()

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// updateBackupReminder refreshes the banner shown when the user is overdue
// for a backup.
func (m *Model) updateBackupReminder() {
	settings := m.session.Settings()
	total := m.session.Stats().Total()
	if backup.ShouldRemind(settings, total, time.Now()) {
		m.backupReminder = "⚠ It has been a while since your last backup - run 'untwist backup create'"
	} else {
		m.backupReminder = ""
	}
}

// listLen returns the number of rows on the current tab.
func (m Model) listLen() int {
	switch m.currentTab() {
	case StateThoughts:
		return len(m.session.ThoughtRecords())
	case StateChecklists:
		return len(m.session.DepressionChecklists())
	case StateGratitude:
		return len(m.session.GratitudeEntries())
	default:
		return 0
	}
}

// currentTab resolves the tab underneath an overlay state.
func (m Model) currentTab() SessionState {
	if m.state == StateDetail || m.state == StateConfirmDelete {
		return m.previousState
	}
	return m.state
}

func (m Model) tabIndex() int {
	current := m.currentTab()
	for i, t := range tabOrder {
		if t == current {
			return i
		}
	}
	return 0
}
