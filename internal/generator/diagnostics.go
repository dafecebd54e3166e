package generator

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// invalidTargetMessage is the single diagnostic this engine produces.
const invalidTargetMessage = "directive applicable only to sum types"

// InvalidTargetError reports a directive applied to a declaration that is
// not a sum type block. It aborts the whole invocation: no code is emitted
// alongside it.
type InvalidTargetError struct {
	// Pos locates the name of the offending type.
	Pos token.Position
	// TypeName is the offending type's identifier, when one exists.
	TypeName string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("%s: variantgen: %s", e.Pos, invalidTargetMessage)
}

// Reporter renders errors for the command line. Locations are highlighted
// when the output is a terminal.
type Reporter struct {
	out   io.Writer
	color bool
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	r := &Reporter{out: out}
	if f, ok := out.(*os.File); ok {
		r.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return r
}

// Report writes one line for err. Diagnostics keep the gofmt-style
// path:line:col prefix; everything else gets the plain tool prefix.
func (r *Reporter) Report(err error) {
	var invalid *InvalidTargetError
	if errors.As(err, &invalid) {
		loc := invalid.Pos.String()
		if r.color {
			loc = "\x1b[1;31m" + loc + "\x1b[0m"
		}
		fmt.Fprintf(r.out, "%s: variantgen: %s\n", loc, invalidTargetMessage)
		return
	}
	fmt.Fprintf(r.out, "variantgen: %v\n", err)
}
