package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the leflux command tree.
func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "leflux",
		Short:         "Vocabulary review and reading API for language learners",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "",
		"path to a YAML config file (default ./config.yaml when present)")

	root.AddCommand(
		newServeCmd(&configFile),
		newMigrateCmd(&configFile),
	)
	return root
}
