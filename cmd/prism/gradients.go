package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/preset"
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

// openPresets loads the registry at ~/.prism/presets.json.
func openPresets(operation string) (*preset.Registry, error) {
	path, err := preset.DefaultPath()
	if err != nil {
		return nil, newCommandError(operation, "determining preset path", err, "Ensure your HOME directory is set correctly.")
	}

	reg, err := preset.NewRegistry(path)
	if err != nil {
		return nil, newCommandError(operation, "loading presets", err, "Check preset file permissions and try again.")
	}
	return reg, nil
}

// resolveGradient parses gradient text or looks up an "@id" preset.
func resolveGradient(operation, ref string) (gradient.Gradient, error) {
	if strings.HasPrefix(strings.TrimSpace(ref), "@") {
		reg, err := openPresets(operation)
		if err != nil {
			return gradient.Gradient{}, err
		}
		g, err := reg.Resolve(ref)
		if err != nil {
			return gradient.Gradient{}, newCommandError(operation, fmt.Sprintf("looking up preset %q", ref), err, "Run 'prism preset list' to view saved presets, or 'prism preset list --builtin' for built-in gradients.")
		}
		return g, nil
	}

	g, err := gradient.Parse(ref)
	if err != nil {
		return gradient.Gradient{}, newCommandError(operation, fmt.Sprintf("parsing gradient %q", ref), err, `Write gradients as V(#ff0000 0, #0000ff 1) or H(red, blue).`)
	}
	return g, nil
}

func resolveGradients(operation string, refs []string) ([]gradient.Gradient, error) {
	gradients := make([]gradient.Gradient, 0, len(refs))
	for _, ref := range refs {
		g, err := resolveGradient(operation, ref)
		if err != nil {
			return nil, err
		}
		gradients = append(gradients, g)
	}
	return gradients, nil
}

// printGradient writes the text form of g, followed by a swatch when the
// output is a terminal.
func printGradient(cmd *cobra.Command, g gradient.Gradient) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, g.String())
	if render.IsTerminal(out) {
		fmt.Fprintln(out, render.Swatch(g, render.Width(out, render.DefaultWidth), render.Options{}))
	}
}
