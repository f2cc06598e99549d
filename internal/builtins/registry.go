// Package builtins is the primitive-library collaborator §6 describes:
// a registration entry point plus the concrete set of required
// primitives (§4.5) — arithmetic, comparisons, word/list surgery,
// predicates, and printing. Core-only primitives (type, make, if,
// ifelse, output, stop, run) are registered separately by package eval,
// since they need direct access to the evaluator itself.
//
// Grounded on eloquence/object.Builtins' name->handler table shape,
// generalized from a flat []struct{Name string; Builtin *Builtin} slice
// (which only ever binds one name per function) to a registrar that
// accepts alias lists, per §4.5's "one descriptor under many names".
package builtins

import (
	"fmt"
	"io"

	"github.com/amoghbhardwaj/logoscript/internal/environment"
	"github.com/amoghbhardwaj/logoscript/internal/langerr"
	"github.com/amoghbhardwaj/logoscript/internal/value"
)

// Registrar is the single entry point the primitive library exposes to
// register a native function under one or more names (§6 "register
// entry point accepting a callback register(names, arity, fn,
// needs_env=false)").
type Registrar func(names []string, arity int, fn environment.NativeFunc, needsEnv bool)

// Register installs every required primitive from §4.5 into env via
// register, writing Print/Show output to out.
func Register(env *environment.Environment, out io.Writer) {
	register := func(names []string, arity int, fn environment.NativeFunc, needsEnv bool) {
		for _, name := range names {
			env.DefineProcedure(&environment.Procedure{
				Name:        name,
				ArgCount:    arity,
				IsPrimitive: true,
				NeedsEnv:    needsEnv,
				Native:      fn,
			})
		}
	}

	registerArithmetic(register)
	registerComparisons(register)
	registerWordsAndLists(register)
	registerPredicates(register)
	registerPrinting(register, out)
}

// numArg extracts the numeric operand at position i, raising the domain
// error §7 requires when a primitive receives the wrong shape.
func numArg(args []value.Value, i int, who string) (float64, error) {
	if args[i].Kind != value.NumberKind {
		return 0, langerr.New(fmt.Sprintf("%s expected a number, got %s", who, value.Display(args[i])))
	}
	return args[i].Num, nil
}
