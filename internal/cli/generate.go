// Package cli implements the variantgen command surface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/variantgen/variantgen/internal/generator"
)

// NewGenerateCommand builds the annotation-form command: scan packages for
// the //variantgen:sumtype directive and write one generated file per
// package.
func NewGenerateCommand() *cobra.Command {
	var config Config

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate VariantName accessors for annotated sum types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Generate(&config, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&config.Source, "source", defaultSource, "Directory or package pattern to scan for directives")
	cmd.Flags().StringVar(&config.Output, "output", defaultOutput, "Name of the generated file per package, or '-' for stdout")
	cmd.Flags().StringVar(&config.Header, "header", "", "Extra comment line for generated files")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .variantgen.yml config file")

	return cmd
}

// Generate runs the annotation form. Extraction completes for every
// annotated declaration before any file is written, so a single invalid
// target aborts the run with nothing emitted.
func Generate(config *Config, stdout io.Writer) error {
	if err := loadConfigFile(config); err != nil {
		return err
	}
	if err := validateConfig(config); err != nil {
		return err
	}

	extractor := generator.NewExtractor()
	if info, err := os.Stat(config.Source); err == nil && info.IsDir() {
		if err := extractor.ParseDirectory(config.Source); err != nil {
			return err
		}
	} else if err := extractor.LoadPackages(config.Source); err != nil {
		return err
	}

	sums, err := extractor.SumTypes()
	if err != nil {
		return err
	}
	if len(sums) == 0 {
		return nil
	}

	emitter := generator.NewEmitter()
	if config.Header != "" {
		emitter.SetHeader(config.Header)
	}

	// Group per directory, preserving extraction order for determinism.
	var dirs []string
	byDir := make(map[string][]*generator.SumType)
	for _, sum := range sums {
		if _, seen := byDir[sum.Dir]; !seen {
			dirs = append(dirs, sum.Dir)
		}
		byDir[sum.Dir] = append(byDir[sum.Dir], sum)
	}

	for _, dir := range dirs {
		group := byDir[dir]
		out, err := emitter.EmitFile(group[0].Package, group, generator.ModeAnnotation)
		if err != nil {
			return err
		}
		if config.Output == "-" {
			if _, err := stdout.Write(out); err != nil {
				return err
			}
			continue
		}
		path := filepath.Join(dir, config.Output)
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
