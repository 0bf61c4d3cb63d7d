package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/pkg/diff"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare the stops of two gradients",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gradients, err := resolveGradients("compare gradients", args)
			if err != nil {
				return err
			}

			out := diff.Gradients(gradients[0], gradients[1], args[0], args[1])
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Gradients are equal.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
