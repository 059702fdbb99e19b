package main

import (
	"os"

	"github.com/Crit-Fumble/schemaprune/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.ExtractCmd())
	rootCmd.AddCommand(commands.InspectCmd())
	rootCmd.AddCommand(commands.InitCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
