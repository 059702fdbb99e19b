package commands

import (
	schemaprune "github.com/Crit-Fumble/schemaprune"
	"github.com/simonhull/firebird-suite/fledge/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the schemaprune CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "schemaprune",
		Short: "Derive a reduced schema from a full schema definition",
		Long: `Schemaprune derives the website-only schema from the full schema
definition: excluded model blocks are removed in their entirety and
relation lines referencing them are scrubbed from the one retained
model that carried them.

It runs as a build-time preprocessing step. Configuration lives in
schemaprune.yml (see 'schemaprune init'); without one, the built-in
extraction is applied.`,
		Version: schemaprune.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
