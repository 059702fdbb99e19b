package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/Crit-Fumble/schemaprune/internal/config"
	"github.com/Crit-Fumble/schemaprune/internal/prune"
	"github.com/Crit-Fumble/schemaprune/internal/schema"
	"github.com/simonhull/firebird-suite/fledge/generator"
	"github.com/simonhull/firebird-suite/fledge/output"
	"github.com/spf13/cobra"
)

// ExtractCmd creates and returns the 'extract' command
func ExtractCmd() *cobra.Command {
	var dryRun bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "extract [input] [output]",
		Short: "Extract the reduced schema from the full schema",
		Long: `Extract reads the full schema, removes every excluded model block,
scrubs relation lines from the target model, and writes the reduced
schema to the output path (replaced atomically on every run).

Paths default to the configured input/output; positional arguments
override them.

Examples:
  schemaprune extract
  schemaprune extract prisma/schema-full-original.txt prisma/schema.prisma
  schemaprune extract --dry-run`,
		Args: cobra.MaximumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			cfg, err := config.Load(configPath)
			if err != nil {
				output.Error(fmt.Sprintf("Invalid configuration: %v", err))
				os.Exit(1)
			}
			if len(args) > 0 {
				cfg.Input = args[0]
			}
			if len(args) > 1 {
				cfg.Output = args[1]
			}

			pruner, err := prune.New(cfg)
			if err != nil {
				output.Error(fmt.Sprintf("Invalid configuration: %v", err))
				os.Exit(1)
			}

			output.Verbose(fmt.Sprintf("Reading full schema: %s", cfg.Input))
			doc, err := schema.Read(cfg.Input)
			if err != nil {
				output.Error(fmt.Sprintf("Failed to read schema: %v", err))
				os.Exit(1)
			}

			res, err := pruner.Run(doc)
			if err != nil {
				output.Error(fmt.Sprintf("Extraction failed: %v", err))
				os.Exit(1)
			}
			output.Verbose(fmt.Sprintf("Removed %d blocks, scrubbed %d relation lines", len(res.ExcludedBlocks), res.ScrubbedLines))

			op := prune.NewWriteOp(cfg.Output, res.Doc.Bytes())
			if err := generator.Execute(ctx, []generator.Operation{op}, generator.ExecuteOptions{DryRun: dryRun}); err != nil {
				output.Error(fmt.Sprintf("Failed to write schema: %v", err))
				os.Exit(1)
			}

			if dryRun {
				output.Info("Dry run complete - no files written")
			} else {
				output.Success("Schema extracted successfully")
			}
			output.Info(fmt.Sprintf("Total lines: %d", res.Doc.Len()))
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and report without writing the output file")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: schemaprune.yml in current directory)")

	return cmd
}
