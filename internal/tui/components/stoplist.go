package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

// StopEntry is one rendered row of a stop list.
type StopEntry struct {
	Position string
	Color    string
}

// StopList renders the stops of a gradient with a color chip per row.
type StopList struct {
	stops gradient.Stops
}

// NewStopList constructs a stop list for g.
func NewStopList(g gradient.Gradient) StopList {
	return StopList{stops: g.Stops()}
}

// Entries returns the rows in stop order.
func (s StopList) Entries() []StopEntry {
	entries := make([]StopEntry, 0, len(s.stops))
	for _, stop := range s.stops {
		entries = append(entries, StopEntry{
			Position: strconv.FormatFloat(stop.Position, 'f', 3, 64),
			Color:    stop.Color.String(),
		})
	}
	return entries
}

// View renders one line per stop.
func (s StopList) View() string {
	if len(s.stops) == 0 {
		return "  (no stops)"
	}
	lines := make([]string, 0, len(s.stops))
	for i, entry := range s.Entries() {
		chip := lipgloss.NewStyle().Background(lipgloss.Color(s.stops[i].Color.WithAlpha(255).String())).Render("  ")
		lines = append(lines, fmt.Sprintf("  %s %s %s", chip, entry.Position, entry.Color))
	}
	return strings.Join(lines, "\n")
}
