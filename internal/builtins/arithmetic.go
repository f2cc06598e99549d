package builtins

import (
	"github.com/amoghbhardwaj/logoscript/internal/environment"
	"github.com/amoghbhardwaj/logoscript/internal/langerr"
	"github.com/amoghbhardwaj/logoscript/internal/value"
)

// registerArithmetic installs sum, difference, product, div (§4.5).
func registerArithmetic(register Registrar) {
	register([]string{"sum"}, 2, arithOp("sum", func(a, b float64) float64 { return a + b }), false)
	register([]string{"difference"}, 2, arithOp("difference", func(a, b float64) float64 { return a - b }), false)
	register([]string{"product"}, 2, arithOp("product", func(a, b float64) float64 { return a * b }), false)
	register([]string{"div"}, 2, divide, false)
}

func arithOp(name string, op func(a, b float64) float64) environment.NativeFunc {
	return func(args []value.Value, _ *environment.Environment) (environment.Result, error) {
		a, err := numArg(args, 0, name)
		if err != nil {
			return environment.Result{}, err
		}
		b, err := numArg(args, 1, name)
		if err != nil {
			return environment.Result{}, err
		}
		return environment.Val(value.Number(op(a, b))), nil
	}
}

func divide(args []value.Value, _ *environment.Environment) (environment.Result, error) {
	a, err := numArg(args, 0, "div")
	if err != nil {
		return environment.Result{}, err
	}
	b, err := numArg(args, 1, "div")
	if err != nil {
		return environment.Result{}, err
	}
	if b == 0 {
		return environment.Result{}, langerr.New("division by zero")
	}
	return environment.Val(value.Number(a / b)), nil
}
