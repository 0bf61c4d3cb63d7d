package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/preset"
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

func newPresetCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved gradients",
	}

	cmd.AddCommand(newPresetAddCmd(rootFlags))
	cmd.AddCommand(newPresetListCmd(rootFlags))
	cmd.AddCommand(newPresetShowCmd(rootFlags))
	cmd.AddCommand(newPresetRemoveCmd(rootFlags))

	return cmd
}

type presetAddOptions struct {
	id          string
	description string
	force       bool
}

func newPresetAddCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &presetAddOptions{}

	cmd := &cobra.Command{
		Use:   "add <name> <gradient|@preset>",
		Short: "Save a gradient under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresetAdd(cmd, rootFlags, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "Preset ID (derived from the name when omitted)")
	cmd.Flags().StringVar(&opts.description, "description", "", "Free-form description")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Replace an existing preset with the same ID")

	return cmd
}

func runPresetAdd(cmd *cobra.Command, rootFlags *rootFlags, name, ref string, opts *presetAddOptions) error {
	if strings.TrimSpace(name) == "" {
		return newCommandError("add preset", "validating name", errors.New("name cannot be empty"), "Give the preset a display name.")
	}

	g, err := resolveGradient("add preset", ref)
	if err != nil {
		return err
	}

	id := opts.id
	if id == "" {
		id = preset.GeneratePresetID(name, g)
	}
	if err := preset.ValidatePresetID(id); err != nil {
		return newCommandError("add preset", "validating preset ID", err, "Use lowercase letters, digits and hyphens.")
	}

	reg, err := openPresets("add preset")
	if err != nil {
		return err
	}

	p := preset.Preset{
		ID:          id,
		Name:        name,
		Gradient:    g,
		Description: opts.description,
		CreatedAt:   time.Now().UTC(),
	}

	err = reg.Add(p)
	if errors.Is(err, preset.ErrExists) && opts.force {
		err = reg.Update(p)
	}
	if err != nil {
		suggestion := "Only valid gradients can be saved."
		if errors.Is(err, preset.ErrExists) {
			suggestion = "Pass --force to replace it, or choose another --id."
		}
		return newCommandError("add preset", fmt.Sprintf("saving preset %q", id), err, suggestion)
	}

	if err := reg.Save(); err != nil {
		return newCommandError("add preset", "writing presets", err, "Check preset file permissions and try again.")
	}

	rootFlags.log.WithFields(map[string]any{"id": id, "path": reg.Path()}).Info("preset saved")
	fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q (%s)\n", id, g)
	return nil
}

type presetListOptions struct {
	jsonOutput bool
	builtin    bool
}

func newPresetListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &presetListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved gradients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.builtin {
				return listBuiltinPresets(cmd, opts.jsonOutput)
			}

			reg, err := openPresets("list presets")
			if err != nil {
				return err
			}

			presets := reg.List()
			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(presets)
			}

			if len(presets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No presets saved yet.")
				fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'prism preset add <name> <gradient>' to save your first gradient.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tGRADIENT")
			for _, p := range presets {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.Gradient)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.builtin, "builtin", false, "List the built-in gradients instead of saved presets")

	return cmd
}

type builtinPreset struct {
	Name     string            `json:"name"`
	Gradient gradient.Gradient `json:"gradient"`
}

func listBuiltinPresets(cmd *cobra.Command, jsonOutput bool) error {
	names := gradient.PresetNames()
	builtins := make([]builtinPreset, 0, len(names))
	for _, name := range names {
		g, _ := gradient.FromPreset(gradient.Vertical, name)
		builtins = append(builtins, builtinPreset{Name: name, Gradient: g})
	}

	if jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(builtins)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGRADIENT")
	for _, b := range builtins {
		fmt.Fprintf(w, "@%s\t%s\n", b.Name, b.Gradient)
	}
	return w.Flush()
}

type presetShowOptions struct {
	jsonOutput bool
}

func newPresetShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &presetShowOptions{}

	cmd := &cobra.Command{
		Use:   "show <preset-id>",
		Short: "Show a saved gradient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := openPresets("show preset")
			if err != nil {
				return err
			}

			p, err := reg.Get(strings.TrimPrefix(args[0], "@"))
			if err != nil {
				return newCommandError("show preset", fmt.Sprintf("looking up preset %q", args[0]), err, "Run 'prism preset list' to view saved presets.")
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(p)
			}

			fmt.Fprintf(out, "Preset:   %s\n", p.ID)
			fmt.Fprintf(out, "Name:     %s\n", p.Name)
			fmt.Fprintf(out, "Gradient: %s\n", p.Gradient)
			fmt.Fprintf(out, "Created:  %s\n", p.CreatedAt.Format(time.RFC3339))
			if p.Description != "" {
				fmt.Fprintf(out, "\nDescription:\n  %s\n", p.Description)
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, render.Describe(p.Gradient))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output preset as JSON")

	return cmd
}

func newPresetRemoveCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <preset-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved gradient",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := openPresets("remove preset")
			if err != nil {
				return err
			}

			id := strings.TrimPrefix(args[0], "@")
			if err := reg.Remove(id); err != nil {
				return newCommandError("remove preset", fmt.Sprintf("removing preset %q", id), err, "Run 'prism preset list' to view saved presets.")
			}
			if err := reg.Save(); err != nil {
				return newCommandError("remove preset", "writing presets", err, "Check preset file permissions and try again.")
			}

			rootFlags.log.With("id", id).Info("preset removed")
			fmt.Fprintf(cmd.OutOrStdout(), "Removed preset %q\n", id)
			return nil
		},
	}
}
