package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/aspect"
	"github.com/alexisbeaulieu97/prism/internal/skin"
)

func newSkinCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skin",
		Short: "Validate theme files and resolve skin hints",
	}

	cmd.AddCommand(newSkinCheckCmd(rootFlags))
	cmd.AddCommand(newSkinResolveCmd(rootFlags))

	return cmd
}

type skinCheckOptions struct {
	list bool
}

func newSkinCheckCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &skinCheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <theme-file>",
		Short: "Validate a theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSkin(cmd, rootFlags, "check theme", args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Theme %q is valid: %d hint(s)\n", s.Name(), s.Table().Len())
			if !opts.list {
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ASPECT\tKIND\tVALUE")
			for _, entry := range s.Table().Entries() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Aspect, entry.Hint.Kind(), entry.Hint)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.list, "list", false, "List every hint in the theme")

	return cmd
}

type aspectFlags struct {
	control   string
	section   string
	variation string
	states    []string
}

func (f *aspectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.control, "control", "", "Control name")
	cmd.Flags().StringVar(&f.section, "section", "", "Section (body, header, footer, card, floating)")
	cmd.Flags().StringVar(&f.variation, "variation", "", "Placement variation (horizontal, vertical, top, left, right, bottom)")
	_ = cmd.MarkFlagRequired("control")
}

func (f *aspectFlags) aspect() (aspect.Aspect, error) {
	if strings.TrimSpace(f.control) == "" {
		return aspect.Aspect{}, fmt.Errorf("control cannot be empty")
	}
	section, err := aspect.ParseSection(f.section)
	if err != nil {
		return aspect.Aspect{}, err
	}
	variation, err := aspect.ParseVariation(f.variation)
	if err != nil {
		return aspect.Aspect{}, err
	}
	states, err := aspect.ParseStates(f.states)
	if err != nil {
		return aspect.Aspect{}, err
	}
	return aspect.Aspect{Control: f.control, Section: section, Variation: variation, States: states}, nil
}

type skinResolveOptions struct {
	aspectFlags
	kind string
}

func newSkinResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &skinResolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <theme-file>",
		Short: "Resolve the hint that applies to an aspect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSkinResolve(cmd, rootFlags, args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringSliceVar(&opts.states, "states", nil, "Comma separated states (hovered, pressed, focused, disabled, checked, selected, error)")
	cmd.Flags().StringVar(&opts.kind, "kind", "gradient", "Hint kind (gradient, color, metric, font_role, symbol)")

	return cmd
}

func runSkinResolve(cmd *cobra.Command, rootFlags *rootFlags, path string, opts *skinResolveOptions) error {
	a, err := opts.aspect()
	if err != nil {
		return newCommandError("resolve hint", "parsing aspect flags", err, "Check --control, --section, --variation and --states.")
	}
	kind, err := skin.ParseKind(opts.kind)
	if err != nil {
		return newCommandError("resolve hint", "parsing --kind", err, "Use gradient, color, metric, font_role or symbol.")
	}

	s, err := loadSkin(cmd, rootFlags, "resolve hint", path)
	if err != nil {
		return err
	}

	hint, at, err := s.Resolve(a, kind)
	if err != nil {
		return newCommandError("resolve hint", fmt.Sprintf("resolving %s for %s", kind, a), err, "Run 'prism skin check --list' to see the hints the theme defines.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), hint.String())
	fmt.Fprintf(cmd.OutOrStdout(), "resolved from %s\n", at)
	return nil
}

func loadSkin(cmd *cobra.Command, rootFlags *rootFlags, operation, path string) (*skin.Skin, error) {
	s, err := skin.NewLoader(rootFlags.log).Load(cmd.Context(), path)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("loading theme %q", path), err, "Fix the reported problem in the theme file and try again.")
	}
	return s, nil
}
