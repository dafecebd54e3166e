// Package main provides the variantgen CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/variantgen/variantgen/internal/cli"
	"github.com/variantgen/variantgen/internal/generator"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "variantgen",
		Short:         "Branch-name accessor generator for sealed sum types",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cli.NewGenerateCommand())
	rootCmd.AddCommand(cli.NewExpandCommand())

	if err := rootCmd.Execute(); err != nil {
		generator.NewReporter(os.Stderr).Report(err)
		os.Exit(1)
	}
}
