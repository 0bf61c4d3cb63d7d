package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/pkg/gradient"
	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

type interpolateOptions struct {
	t     float64
	steps int
}

func newInterpolateCmd() *cobra.Command {
	opts := &interpolateOptions{}

	cmd := &cobra.Command{
		Use:   "interpolate <from> <to>",
		Short: "Blend two gradients",
		Long:  "Blend two gradients at --t, or print --steps+1 evenly spaced blends from t=0 to t=1.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterpolate(cmd, args, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.t, "t", 0.5, "Interpolation factor")
	cmd.Flags().IntVar(&opts.steps, "steps", 0, "Print this many evenly spaced steps instead of a single blend")

	return cmd
}

func runInterpolate(cmd *cobra.Command, args []string, opts *interpolateOptions) error {
	if opts.steps < 0 {
		return newCommandError("interpolate gradients", "validating --steps", fmt.Errorf("steps must not be negative, got %d", opts.steps), "Pass --steps 0 for a single blend.")
	}
	if math.IsNaN(opts.t) {
		return newCommandError("interpolate gradients", "validating --t", errors.New("t is not a number"), "Pass a value between 0 and 1.")
	}

	gradients, err := resolveGradients("interpolate gradients", args)
	if err != nil {
		return err
	}
	from, to := gradients[0], gradients[1]

	if opts.steps == 0 {
		printGradient(cmd, gradient.Interpolate(from, to, opts.t))
		return nil
	}

	for i := 0; i <= opts.steps; i++ {
		t := float64(i) / float64(opts.steps)
		fmt.Fprintf(cmd.OutOrStdout(), "%.3f  %s\n", t, gradient.Interpolate(from, to, t))
	}
	return nil
}

type extractOptions struct {
	from float64
	to   float64
}

func newExtractCmd() *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <gradient>",
		Short: "Cut the [from, to] range out of a gradient and stretch it to [0, 1]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := resolveGradient("extract range", args[0])
			if err != nil {
				return err
			}
			printGradient(cmd, g.Extracted(opts.from, opts.to))
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.from, "from", 0, "Range start")
	cmd.Flags().Float64Var(&opts.to, "to", 1, "Range end")

	return cmd
}

func newReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <gradient>",
		Short: "Mirror a gradient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := resolveGradient("reverse gradient", args[0])
			if err != nil {
				return err
			}
			printGradient(cmd, g.Reversed())
			return nil
		},
	}
}

type stopsOptions struct {
	discrete    bool
	orientation string
}

func newStopsCmd() *cobra.Command {
	opts := &stopsOptions{}

	cmd := &cobra.Command{
		Use:   "stops <color>...",
		Short: "Build a gradient from a list of colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStops(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.discrete, "discrete", false, "Draw one hard band per color")
	cmd.Flags().StringVar(&opts.orientation, "orientation", "vertical", "Orientation (horizontal, vertical, diagonal)")

	return cmd
}

func runStops(cmd *cobra.Command, args []string, opts *stopsOptions) error {
	orientation, err := gradient.ParseOrientation(opts.orientation)
	if err != nil {
		return newCommandError("build gradient", "parsing --orientation", err, "Use horizontal, vertical or diagonal.")
	}

	colors := make([]rgb.Color, 0, len(args))
	for _, arg := range args {
		c, err := rgb.Parse(arg)
		if err != nil {
			return newCommandError("build gradient", fmt.Sprintf("parsing color %q", arg), err, "Use #rgb, #rrggbb, #rrggbbaa, rgb(), rgba() or a color name.")
		}
		colors = append(colors, c)
	}

	printGradient(cmd, gradient.FromColorArray(orientation, colors, opts.discrete))
	return nil
}
