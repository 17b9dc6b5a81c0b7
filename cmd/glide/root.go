package main

import (
	"github.com/spf13/cobra"

	"github.com/glidetui/glide/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "glide",
		Short:         "Glide renders paged carousels in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand launches the gallery directly.
			return runGallery(flags, log)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a gallery YAML file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGalleryCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
