package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

type inspectOptions struct {
	jsonOutput bool
	width      int
}

func newInspectCmd() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <gradient|@preset>",
		Short: "Show the classification, hash and stops of a gradient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output details as JSON")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Swatch width in cells (defaults to the terminal width)")

	return cmd
}

type inspectJSONPayload struct {
	Gradient    string         `json:"gradient"`
	Orientation string         `json:"orientation"`
	Valid       bool           `json:"valid"`
	Monochrome  bool           `json:"monochrome"`
	Visible     bool           `json:"visible"`
	Hash        string         `json:"hash"`
	Stops       gradient.Stops `json:"stops"`
}

func runInspect(cmd *cobra.Command, ref string, opts *inspectOptions) error {
	g, err := resolveGradient("inspect gradient", ref)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		stops := g.Stops()
		if stops == nil {
			stops = gradient.Stops{}
		}
		payload := inspectJSONPayload{
			Gradient:    g.String(),
			Orientation: g.Orientation().String(),
			Valid:       g.IsValid(),
			Monochrome:  g.IsMonochrome(),
			Visible:     g.IsVisible(),
			Hash:        formatHash(g.Hash(0)),
			Stops:       stops,
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	out := cmd.OutOrStdout()
	width := opts.width
	if width <= 0 {
		width = render.Width(out, render.DefaultWidth)
	}

	fmt.Fprintf(out, "Gradient: %s\n", g.String())
	fmt.Fprintf(out, "Hash:     %s\n\n", formatHash(g.Hash(0)))
	fmt.Fprint(out, render.Describe(g))
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Swatch(g, width, render.Options{Plain: !render.IsTerminal(out)}))
	return nil
}

func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}
