package commands

import (
	"fmt"
	"os"

	"github.com/Crit-Fumble/schemaprune/internal/config"
	"github.com/Crit-Fumble/schemaprune/internal/schema"
	"github.com/simonhull/firebird-suite/fledge/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// blockInfo is one row of the inspect listing
type blockInfo struct {
	Name        string `yaml:"name"`
	Start       int    `yaml:"start"`
	End         int    `yaml:"end"`
	Disposition string `yaml:"disposition"`
}

// InspectCmd creates and returns the 'inspect' command
func InspectCmd() *cobra.Command {
	var asYAML bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "inspect [input]",
		Short: "List blocks in a schema and what extract would do with them",
		Long: `Inspect scans the input schema and lists every top-level block with
its line span and disposition: keep, exclude, or target (kept but
scrubbed).

Examples:
  schemaprune inspect
  schemaprune inspect prisma/schema-full-original.txt --yaml`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err != nil {
				output.Error(fmt.Sprintf("Invalid configuration: %v", err))
				os.Exit(1)
			}
			if len(args) > 0 {
				cfg.Input = args[0]
			}

			scanner, err := schema.NewScanner(cfg.Keyword)
			if err != nil {
				output.Error(fmt.Sprintf("Invalid configuration: %v", err))
				os.Exit(1)
			}

			doc, err := schema.Read(cfg.Input)
			if err != nil {
				output.Error(fmt.Sprintf("Failed to read schema: %v", err))
				os.Exit(1)
			}

			blocks, err := scanner.Blocks(doc)
			if err != nil {
				output.Error(fmt.Sprintf("Malformed schema: %v", err))
				os.Exit(1)
			}

			infos := classify(cfg, blocks)

			if asYAML {
				data, err := yaml.Marshal(infos)
				if err != nil {
					output.Error(fmt.Sprintf("Failed to marshal listing: %v", err))
					os.Exit(1)
				}
				fmt.Print(string(data))
				return
			}

			output.Info(fmt.Sprintf("%d blocks in %s", len(infos), cfg.Input))
			for _, info := range infos {
				output.Step(fmt.Sprintf("%-28s lines %4d-%-4d %s", info.Name, info.Start, info.End, info.Disposition))
			}
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Emit the listing as YAML")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: schemaprune.yml in current directory)")

	return cmd
}

func classify(cfg *config.Config, blocks []schema.Block) []blockInfo {
	excluded := make(map[string]struct{}, len(cfg.Exclude))
	for _, name := range cfg.Exclude {
		excluded[name] = struct{}{}
	}

	infos := make([]blockInfo, 0, len(blocks))
	for _, b := range blocks {
		disposition := "keep"
		if _, ok := excluded[b.Name]; ok {
			disposition = "exclude"
		} else if b.Name == cfg.Target.Name {
			disposition = "target"
		}
		infos = append(infos, blockInfo{
			Name:        b.Name,
			Start:       b.Start,
			End:         b.End,
			Disposition: disposition,
		})
	}
	return infos
}
