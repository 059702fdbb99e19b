package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/Crit-Fumble/schemaprune/internal/config"
	"github.com/simonhull/firebird-suite/fledge/generator"
	"github.com/simonhull/firebird-suite/fledge/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// InitCmd creates and returns the 'init' command
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter schemaprune.yml with the built-in defaults",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			data, err := yaml.Marshal(config.Default())
			if err != nil {
				output.Error(fmt.Sprintf("Failed to marshal config: %v", err))
				os.Exit(1)
			}

			op := &generator.WriteFileOp{
				Path:    "schemaprune.yml",
				Content: data,
				Mode:    0644,
			}

			if err := generator.Execute(ctx, []generator.Operation{op}, generator.ExecuteOptions{Force: force}); err != nil {
				output.Error(fmt.Sprintf("Failed to write config: %v", err))
				os.Exit(1)
			}

			output.Success("Created schemaprune.yml")
			output.Info("Next steps:")
			output.Step("edit schemaprune.yml to adjust paths and exclusions")
			output.Step("schemaprune extract")
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing schemaprune.yml")

	return cmd
}
