package components

import (
	"fmt"
	"strings"
)

// SummaryData describes the state of an animation.
type SummaryData struct {
	T        float64
	Forward  bool
	Paused   bool
	Finished bool
	Reloads  int
	Err      string
}

// Summary renders a short status block.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	direction := "forward"
	if !s.data.Forward {
		direction = "backward"
	}

	state := "playing"
	switch {
	case s.data.Paused:
		state = "paused"
	case s.data.Finished:
		state = "done"
	}

	lines := []string{fmt.Sprintf("t=%.2f %s (%s)", s.data.T, direction, state)}
	if s.data.Reloads > 0 {
		lines = append(lines, fmt.Sprintf("Theme reloaded %d time(s)", s.data.Reloads))
	}
	if s.data.Err != "" {
		lines = append(lines, "✗ "+s.data.Err)
	}
	return strings.Join(lines, "\n")
}
