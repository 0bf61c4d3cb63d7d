// Package tui animates the interpolation between two gradients.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/tui/components"
	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

const (
	DefaultFrames   = 30
	DefaultInterval = 50 * time.Millisecond
)

// Options configures a Model.
type Options struct {
	Title    string
	Frames   int
	Interval time.Duration
	Width    int
}

// GradientsMsg replaces the animated endpoints, e.g. after a theme reload.
type GradientsMsg struct {
	From gradient.Gradient
	To   gradient.Gradient
}

// ErrorMsg reports a failure to show beneath the animation.
type ErrorMsg struct {
	Err error
}

type tickMsg struct {
	id int
}

// Model contains the Bubbletea state for the interpolation preview.
type Model struct {
	title    string
	from     gradient.Gradient
	to       gradient.Gradient
	frames   int
	interval time.Duration
	width    int

	frame    int
	forward  bool
	paused   bool
	quitting bool
	tickID   int
	reloads  int
	lastErr  string

	progress components.Progress
}

// NewModel constructs a model animating from one gradient to another.
func NewModel(from, to gradient.Gradient, opts Options) Model {
	if opts.Frames <= 0 {
		opts.Frames = DefaultFrames
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Width <= 0 {
		opts.Width = render.DefaultWidth
	}
	if opts.Title == "" {
		opts.Title = "Interpolation"
	}

	return Model{
		title:    opts.Title,
		from:     from,
		to:       to,
		frames:   opts.Frames,
		interval: opts.Interval,
		width:    opts.Width,
		forward:  true,
		progress: components.NewProgress(opts.Frames, from.StartColor(), to.EndColor()),
	}
}

// Init starts the animation.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{id: id} })
}

// T is the current interpolation factor in [0,1].
func (m Model) T() float64 {
	return float64(m.frame) / float64(m.frames)
}

// Current is the gradient shown at the current frame.
func (m Model) Current() gradient.Gradient {
	return gradient.Interpolate(m.from, m.to, m.T())
}

// Frame returns the current frame index.
func (m Model) Frame() int { return m.frame }

// IsPaused reports whether the animation is paused.
func (m Model) IsPaused() bool { return m.paused }

// IsForward reports whether frames advance toward the target gradient.
func (m Model) IsForward() bool { return m.forward }

// IsFinished reports whether the animation reached the end it runs toward.
func (m Model) IsFinished() bool {
	if m.forward {
		return m.frame >= m.frames
	}
	return m.frame <= 0
}
