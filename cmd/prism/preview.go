package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/aspect"
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/skin"
	"github.com/alexisbeaulieu97/prism/internal/tui"
	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

type previewOptions struct {
	aspectFlags
	theme      string
	fromStates []string
	toStates   []string
	watch      bool
	frames     int
	interval   time.Duration
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [<from> <to>]",
		Short: "Animate the interpolation between two gradients",
		Long: "Animate the interpolation between two gradients, or between the gradients a theme\n" +
			"assigns to a control in two state sets (--theme, --control, --from-states, --to-states).",
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme file to take the gradients from")
	cmd.Flags().StringVar(&opts.control, "control", "", "Control name (with --theme)")
	cmd.Flags().StringVar(&opts.section, "section", "", "Section (with --theme)")
	cmd.Flags().StringVar(&opts.variation, "variation", "", "Placement variation (with --theme)")
	cmd.Flags().StringSliceVar(&opts.fromStates, "from-states", nil, "States to animate from (with --theme)")
	cmd.Flags().StringSliceVar(&opts.toStates, "to-states", nil, "States to animate to (with --theme)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the theme file when it changes")
	cmd.Flags().IntVar(&opts.frames, "frames", tui.DefaultFrames, "Number of animation frames")
	cmd.Flags().DurationVar(&opts.interval, "interval", tui.DefaultInterval, "Delay between frames")

	return cmd
}

// previewSource supplies the animated endpoints.
type previewSource struct {
	title  string
	aspect aspect.Aspect
	from   aspect.State
	to     aspect.State
	start  gradient.Gradient
	end    gradient.Gradient
}

func buildPreviewSource(cmd *cobra.Command, rootFlags *rootFlags, args []string, opts *previewOptions) (*previewSource, error) {
	if opts.theme == "" {
		if len(args) != 2 {
			return nil, newCommandError("start preview", "reading arguments", errors.New("expected <from> <to> or --theme"), "Pass two gradients, or --theme with --control.")
		}
		if opts.watch {
			return nil, newCommandError("start preview", "reading flags", errors.New("--watch requires --theme"), "Drop --watch or pass a theme file.")
		}
		gradients, err := resolveGradients("start preview", args)
		if err != nil {
			return nil, err
		}
		return &previewSource{title: fmt.Sprintf("%s → %s", args[0], args[1]), start: gradients[0], end: gradients[1]}, nil
	}

	if len(args) != 0 {
		return nil, newCommandError("start preview", "reading arguments", errors.New("gradients and --theme are exclusive"), "Pass either two gradients or --theme.")
	}

	a, err := opts.aspect()
	if err != nil {
		return nil, newCommandError("start preview", "parsing aspect flags", err, "Check --control, --section and --variation.")
	}
	from, err := aspect.ParseStates(opts.fromStates)
	if err != nil {
		return nil, newCommandError("start preview", "parsing --from-states", err, "Use hovered, pressed, focused, disabled, checked, selected or error.")
	}
	to, err := aspect.ParseStates(opts.toStates)
	if err != nil {
		return nil, newCommandError("start preview", "parsing --to-states", err, "Use hovered, pressed, focused, disabled, checked, selected or error.")
	}

	s, err := loadSkin(cmd, rootFlags, "start preview", opts.theme)
	if err != nil {
		return nil, err
	}

	source := &previewSource{
		title:  fmt.Sprintf("%s %s → %s", a, from, to),
		aspect: a,
		from:   from,
		to:     to,
	}
	if err := source.refresh(s); err != nil {
		return nil, newCommandError("start preview", fmt.Sprintf("resolving gradients for %s", a), err, "Run 'prism skin check --list' to see the hints the theme defines.")
	}
	return source, nil
}

// refresh reads the endpoints from s.
func (p *previewSource) refresh(s *skin.Skin) error {
	start, end, err := s.Endpoints(p.aspect, p.from, p.to)
	if err != nil {
		return err
	}
	p.start, p.end = start, end
	return nil
}

func runPreview(cmd *cobra.Command, rootFlags *rootFlags, args []string, opts *previewOptions) error {
	source, err := buildPreviewSource(cmd, rootFlags, args, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	model := tui.NewModel(source.start, source.end, tui.Options{
		Title:    source.title,
		Frames:   opts.frames,
		Interval: opts.interval,
		Width:    render.Width(out, render.DefaultWidth) - 2,
	})

	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(cmd.InOrStdin()))

	if opts.watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		watcher, err := skin.NewWatcher(opts.theme, skin.NewLoader(rootFlags.log), skin.WatchOptions{
			Logger: rootFlags.log,
			OnReload: func(s *skin.Skin) {
				if err := source.refresh(s); err != nil {
					program.Send(tui.ErrorMsg{Err: err})
					return
				}
				program.Send(tui.GradientsMsg{From: source.start, To: source.end})
			},
			OnError: func(err error) {
				program.Send(tui.ErrorMsg{Err: err})
			},
		})
		if err != nil {
			return newCommandError("start preview", fmt.Sprintf("watching %q", opts.theme), err, "Check that the theme directory exists and is readable.")
		}
		watcher.Start(ctx)
		defer watcher.Stop()
	}

	if _, err := program.Run(); err != nil {
		return newCommandError("run preview", "running terminal UI", err, "Run prism from an interactive terminal.")
	}
	return nil
}
