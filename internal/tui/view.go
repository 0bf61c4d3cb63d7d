package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	current := m.Current()
	swatch := render.Swatch(current, m.width, render.Options{})

	sections := []string{
		titleStyle.Render(fmt.Sprintf("Prism • %s", m.title)),
		sectionStyle.Render("Preview"),
		lipgloss.JoinVertical(lipgloss.Left, swatch, swatch),
		sectionStyle.Render("Stops"),
		components.NewStopList(current).View(),
		sectionStyle.Render("Progress"),
		m.progress.View(m.frame),
	}

	summary := components.NewSummary(components.SummaryData{
		T:        m.T(),
		Forward:  m.forward,
		Paused:   m.paused,
		Finished: m.IsFinished(),
		Reloads:  m.reloads,
		Err:      m.lastErr,
	}).View()
	sections = append(sections, summaryStyle.Render(summary), helpStyle.Render("space pause • r reverse • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
