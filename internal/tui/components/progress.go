package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

// Progress renders how far an animation has run.
type Progress struct {
	bar    progress.Model
	frames int
}

// NewProgress creates a progress bar for frames steps, tinted from start to
// end. Unset colors fall back to the default tint.
func NewProgress(frames int, start, end rgb.Color) Progress {
	opt := progress.WithDefaultGradient()
	if start.IsValid() && end.IsValid() {
		opt = progress.WithGradient(start.WithAlpha(255).String(), end.WithAlpha(255).String())
	}
	bar := progress.New(opt, progress.WithoutPercentage())
	bar.Width = 30
	return Progress{bar: bar, frames: frames}
}

// View renders the bar for the given frame.
func (p Progress) View(frame int) string {
	ratio := 0.0
	if p.frames > 0 {
		ratio = math.Max(0, math.Min(1.0, float64(frame)/float64(p.frames)))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", frame, p.frames))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
