package builtins

import (
	"github.com/amoghbhardwaj/logoscript/internal/environment"
	"github.com/amoghbhardwaj/logoscript/internal/value"
)

// registerComparisons installs equalp/equal?, lessp/less?,
// greaterp/greater? (§4.5) — each registered under both its UCBLogo-style
// and question-mark alias, per §3's note that aliasing is how the
// registry achieves case/spelling insensitivity.
func registerComparisons(register Registrar) {
	register([]string{"equalp", "equal?"}, 2, equalp, false)
	register([]string{"lessp", "less?"}, 2, orderOp("lessp", func(a, b float64) bool { return a < b }), false)
	register([]string{"greaterp", "greater?"}, 2, orderOp("greaterp", func(a, b float64) bool { return a > b }), false)
}

func equalp(args []value.Value, _ *environment.Environment) (environment.Result, error) {
	return environment.Val(value.Bool(value.Equal(args[0], args[1]))), nil
}

func orderOp(name string, cmp func(a, b float64) bool) environment.NativeFunc {
	return func(args []value.Value, _ *environment.Environment) (environment.Result, error) {
		a, err := numArg(args, 0, name)
		if err != nil {
			return environment.Result{}, err
		}
		b, err := numArg(args, 1, name)
		if err != nil {
			return environment.Result{}, err
		}
		return environment.Val(value.Bool(cmp(a, b))), nil
	}
}
