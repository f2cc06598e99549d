package eval

import (
	"fmt"

	"github.com/amoghbhardwaj/logoscript/internal/cursor"
	"github.com/amoghbhardwaj/logoscript/internal/environment"
	"github.com/amoghbhardwaj/logoscript/internal/langerr"
	"github.com/amoghbhardwaj/logoscript/internal/token"
	"github.com/amoghbhardwaj/logoscript/internal/value"
)

// registerCore installs the primitives §4.5 says core registers itself
// rather than delegating to the external primitive library: type, make,
// if, ifelse, output, stop, run. Each closes over the Evaluator so it
// can recurse into EvalLine or write through Out.
func (e *Evaluator) registerCore() {
	define := func(name string, arity int, needsEnv bool, fn environment.NativeFunc) {
		e.Env.DefineProcedure(&environment.Procedure{
			Name:        name,
			ArgCount:    arity,
			IsPrimitive: true,
			NeedsEnv:    needsEnv,
			Native:      fn,
		})
	}

	define("type", 1, false, e.typePrimitive)
	define("make", 2, true, e.makePrimitive)
	define("if", 2, true, e.ifPrimitive)
	define("ifelse", 3, true, e.ifelsePrimitive)
	define("run", 1, true, e.runPrimitive)
	define("output", 1, false, outputPrimitive)
	define("stop", 0, false, stopPrimitive)
}

// typePrimitive is print_no_newline for a single value (§6 "the core's
// own type primitive is defined in terms of these [print_line /
// print_no_newline]").
func (e *Evaluator) typePrimitive(args []value.Value, _ *environment.Environment) (environment.Result, error) {
	fmt.Fprint(e.Out, value.Display(args[0]))
	return environment.NoValue(), nil
}

// makePrimitive binds name to v per I3 (§4.6 "make(name, value, env)").
func (e *Evaluator) makePrimitive(args []value.Value, env *environment.Environment) (environment.Result, error) {
	name := args[0]
	if name.Kind != value.WordKind {
		return environment.Result{}, langerr.New(fmt.Sprintf("make expected a word name, got %s", value.Display(name)))
	}
	env.SetVariableValue(name.Word, args[1])
	return environment.NoValue(), nil
}

// requireBoolean enforces the if/ifelse type guard (§4.6).
func requireBoolean(who string, v value.Value) error {
	if !v.IsBoolean() {
		return langerr.New(fmt.Sprintf("First argument to %q is not True or False: %s", who, value.Display(v)))
	}
	return nil
}

// ifPrimitive evaluates bodyList as a line when cond is True, otherwise
// returns no-value (§4.6 "if(cond, body_list, env)").
func (e *Evaluator) ifPrimitive(args []value.Value, env *environment.Environment) (environment.Result, error) {
	cond, body := args[0], args[1]
	if err := requireBoolean("if", cond); err != nil {
		return environment.Result{}, err
	}
	if cond.IsFalse() {
		return environment.NoValue(), nil
	}
	return e.evalValueAsLine(body)
}

// ifelsePrimitive evaluates whichever of thenVal/elseVal the guard
// selects, as a line; non-list branch values are wrapped into a
// single-element line first (§4.6 "ifelse(cond, then_list, else_list,
// env)").
func (e *Evaluator) ifelsePrimitive(args []value.Value, env *environment.Environment) (environment.Result, error) {
	cond, thenVal, elseVal := args[0], args[1], args[2]
	if err := requireBoolean("ifelse", cond); err != nil {
		return environment.Result{}, err
	}
	if cond.IsTrue() {
		return e.evalValueAsLine(thenVal)
	}
	return e.evalValueAsLine(elseVal)
}

// runPrimitive evaluates exp as a line, wrapping a non-list value into a
// single-element line first (§4.6 "run(exp, env)").
func (e *Evaluator) runPrimitive(args []value.Value, env *environment.Environment) (environment.Result, error) {
	return e.evalValueAsLine(args[0])
}

// outputPrimitive returns the (OUTPUT, x) trap (§4.6 "output(x)").
func outputPrimitive(args []value.Value, _ *environment.Environment) (environment.Result, error) {
	return environment.Trap(environment.Val(args[0])), nil
}

// stopPrimitive returns the (OUTPUT, no-value) trap (§4.6 "stop()").
func stopPrimitive(_ []value.Value, _ *environment.Environment) (environment.Result, error) {
	return environment.Trap(environment.NoValue()), nil
}

// evalValueAsLine treats v as a runnable line: a list value's elements
// become the line's tokens (via valuesToTokens, the inverse of
// tokensToListValue); a non-list value is wrapped into a single-element
// line, per the run/ifelse "non-list value" clause.
func (e *Evaluator) evalValueAsLine(v value.Value) (environment.Result, error) {
	var tokens []token.Token
	if v.Kind == value.ListKind {
		tokens = valuesToTokens(v.List)
	} else {
		tokens = []token.Token{valueToToken(v)}
	}
	c := cursor.New(tokens)
	return e.EvalLine(c)
}
