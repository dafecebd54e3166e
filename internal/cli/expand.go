package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/variantgen/variantgen/internal/generator"
)

// NewExpandCommand builds the attachment-form command: read one sum type
// declaration from a file or stdin and write a self-contained file holding
// the declaration followed by its generated code.
func NewExpandCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "expand [file]",
		Short: "Expand one sum type declaration into a self-contained file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(filepath.Clean(args[0]))
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			return Expand(in, cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file, or '-' for stdout")

	return cmd
}

// Expand runs the attachment form on one declaration.
func Expand(in io.Reader, stdout io.Writer, output string) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	sum, err := generator.ParseDeclaration(src)
	if err != nil {
		return err
	}

	out, err := generator.NewEmitter().EmitFile(sum.Package, []*generator.SumType{sum}, generator.ModeAttachment)
	if err != nil {
		return err
	}

	if output == "-" {
		_, err := stdout.Write(out)
		return err
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}
