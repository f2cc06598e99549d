package builtins

import (
	"fmt"
	"io"

	"github.com/amoghbhardwaj/logoscript/internal/environment"
	"github.com/amoghbhardwaj/logoscript/internal/value"
)

// Printer is the §6 output collaborator contract: print_line and
// print_no_newline. The core's own `type` primitive (registered by
// package eval) is defined in terms of these same two operations.
type Printer struct {
	Out io.Writer
}

// NewPrinter wraps a writer as the output collaborator.
func NewPrinter(out io.Writer) Printer {
	return Printer{Out: out}
}

// PrintLine writes text followed by a newline.
func (p Printer) PrintLine(text string) {
	fmt.Fprintln(p.Out, text)
}

// PrintNoNewline writes text with no trailing newline.
func (p Printer) PrintNoNewline(text string) {
	fmt.Fprint(p.Out, text)
}

// registerPrinting installs print and show (§4.5), writing to out via
// the §6 output collaborator contract (print_line/print_no_newline).
// print shows a list's elements without the outer brackets; show keeps
// them, the classic Logo print/show distinction.
func registerPrinting(register Registrar, out io.Writer) {
	register([]string{"print"}, 1, printLine(out), false)
	register([]string{"show"}, 1, showLine(out), false)
}

func printLine(out io.Writer) environment.NativeFunc {
	return func(args []value.Value, _ *environment.Environment) (environment.Result, error) {
		fmt.Fprintln(out, value.Display(args[0]))
		return environment.NoValue(), nil
	}
}

func showLine(out io.Writer) environment.NativeFunc {
	return func(args []value.Value, _ *environment.Environment) (environment.Result, error) {
		v := args[0]
		if v.Kind == value.ListKind {
			fmt.Fprintln(out, "["+value.Display(v)+"]")
		} else {
			fmt.Fprintln(out, value.Display(v))
		}
		return environment.NoValue(), nil
	}
}
