package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

type rootFlags struct {
	logLevel string
	logJSON  bool

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "prism",
		Short:         "Prism inspects, combines and previews color gradients",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setupLogging(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON instead of console text")

	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newInterpolateCmd())
	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newReverseCmd())
	cmd.AddCommand(newStopsCmd())
	cmd.AddCommand(newDiffCmd())
	cmd.AddCommand(newPresetCmd(flags))
	cmd.AddCommand(newSkinCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) setupLogging(cmd *cobra.Command) error {
	log, err := logger.New(logger.Options{
		Level:         f.logLevel,
		HumanReadable: !f.logJSON,
		Writer:        cmd.ErrOrStderr(),
		Component:     "prism",
	})
	if err != nil {
		return newCommandError("start", "configuring logging", err, "Use one of: debug, info, warn, error.")
	}

	f.log = log
	gradient.SetLogger(log.With("package", "gradient").Zerolog())
	return nil
}
