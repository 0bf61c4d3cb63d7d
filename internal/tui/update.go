package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/prism/internal/tui/components"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.id != m.tickID || m.paused || m.quitting || m.IsFinished() {
			return m, nil
		}
		m.step()
		if m.IsFinished() {
			return m, nil
		}
		return m, m.tick()

	case GradientsMsg:
		m.from, m.to = msg.From, msg.To
		m.progress = components.NewProgress(m.frames, msg.From.StartColor(), msg.To.EndColor())
		m.reloads++
		m.lastErr = ""
		return m, nil

	case ErrorMsg:
		if msg.Err != nil {
			m.lastErr = msg.Err.Error()
		}
		return m, nil

	case tea.WindowSizeMsg:
		if msg.Width > 4 {
			m.width = msg.Width - 2
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			return m, m.restart()
		case "r":
			m.forward = !m.forward
			return m, m.restart()
		}
	}

	return m, nil
}

func (m *Model) step() {
	if m.forward {
		m.frame++
	} else {
		m.frame--
	}
}

// restart begins a new tick chain; ticks from older chains are dropped.
func (m *Model) restart() tea.Cmd {
	m.tickID++
	if m.paused || m.IsFinished() {
		return nil
	}
	return m.tick()
}
