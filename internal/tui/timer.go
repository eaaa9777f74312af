// Package tui implements the live session timer. A one-second tick loop
// refreshes the displayed elapsed time through the tracker; pause and resume
// go through the same transitions the CLI uses, so state stays consistent
// whichever surface the user reaches for.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwinters/stint/internal/constants"
	"github.com/jwinters/stint/internal/models"
	"github.com/jwinters/stint/internal/scoring"
	"github.com/jwinters/stint/internal/tracker"
	"github.com/jwinters/stint/internal/utils"
)

type tickMsg time.Time

type Model struct {
	tracker *tracker.Tracker
	session models.Session
	help    help.Model
	err     error

	quitting bool
}

func NewModel(trk *tracker.Tracker, session models.Session) Model {
	return Model{
		tracker: trk,
		session: session,
		help:    help.New(),
	}
}

// Session returns the session as last seen by the timer, so the caller can
// hand it to a follow-up command after the TUI exits.
func (m Model) Session() models.Session {
	return m.session
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Display refresh only; the final score is derived from wall-clock
		// times when the session ends.
		m.session = m.tracker.Tick(m.session)
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			session, err := m.tracker.Pause(m.session)
			if err != nil && err != tracker.ErrNotActive {
				m.err = err
				return m, nil
			}
			m.session = session
			return m, nil

		case "r":
			session, err := m.tracker.Resume(m.session)
			if err != nil && err != tracker.ErrAlreadyActive {
				m.err = err
				return m, nil
			}
			m.session = session
			return m, tick()

		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := elapsedStyle.Render(utils.FormatElapsed(m.session.DurationMin))
	if !m.session.Active {
		state = pausedStyle.Render("PAUSED " + utils.FormatElapsed(m.session.ElapsedMin))
	}

	projected := projectedPoints(m.session)

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s: %s", m.session.Kind, m.session.Subject)),
		state,
		subtleStyle.Render(fmt.Sprintf("~%d pts if completed now", projected)),
	}
	if m.err != nil {
		lines = append(lines, subtleStyle.Render("error: "+m.err.Error()))
	}

	content := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.JoinVertical(lipgloss.Left, content, m.help.View(keys))
}

// projectedPoints previews the score the session would earn if ended at its
// current duration with middling ratings.
func projectedPoints(s models.Session) int {
	if s.Kind == constants.SessionKindProject {
		return scoring.ProjectSessionPoints(s.DurationMin, true, s.ProgressNotes != "", s.Notes != "")
	}
	return scoring.StudySessionPoints(s.DurationMin, 3, 3, true)
}
