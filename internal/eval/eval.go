// Package eval implements the tree-walking evaluator (§4.6): argument
// collection, primitive and user-defined procedure application, output
// traps, and eval_line. It also owns the core-only primitives (type,
// make, if, ifelse, output, stop, run) and the `to … end` definition
// reader, since both need direct access to the evaluator rather than
// just the environment.
//
// Grounded on eloquence/evaluator.Eval's switch-on-node-kind dispatch,
// generalized from an AST-walking switch to a token-cursor-walking
// switch per §4.2/§4.6 — there is no AST here, only a flat token stream
// and recursive descent driven by procedure arity.
package eval

import (
	"fmt"
	"io"

	"github.com/amoghbhardwaj/logoscript/internal/cursor"
	"github.com/amoghbhardwaj/logoscript/internal/environment"
	"github.com/amoghbhardwaj/logoscript/internal/infix"
	"github.com/amoghbhardwaj/logoscript/internal/langerr"
	"github.com/amoghbhardwaj/logoscript/internal/token"
	"github.com/amoghbhardwaj/logoscript/internal/value"
)

// ContinuationSource is the §6 "continuation collaborator" the
// definition reader pulls further lines from while collecting a `to …
// end` body. The REPL and file-mode CLI both implement it.
type ContinuationSource interface {
	NextContinuationLine() (string, bool)
}

// Evaluator bundles the environment, the source of continuation lines
// for `to` definitions, and the output sink core's own `type` primitive
// writes through (§6 output collaborator).
type Evaluator struct {
	Env          *environment.Environment
	Continuation ContinuationSource
	Out          io.Writer
}

// New builds an Evaluator and registers the core-only primitives (§4.5:
// type, make, if, ifelse, output, stop, run) into env. The caller is
// expected to have already registered the external primitive library
// (package builtins) into the same environment.
func New(env *environment.Environment, cont ContinuationSource, out io.Writer) *Evaluator {
	e := &Evaluator{Env: env, Continuation: cont, Out: out}
	e.registerCore()
	return e
}

// EvalExpression consumes exactly the tokens forming one complete
// expression starting at the cursor's current position and returns its
// value (§4.6).
func (e *Evaluator) EvalExpression(c *cursor.Cursor) (environment.Result, error) {
	t, ok := c.Pop()
	if !ok {
		return environment.Result{}, langerr.New(fmt.Sprintf("Found only 0 of 1 args at %s", c.String()))
	}

	switch t.Kind {
	case token.Number:
		return environment.Val(value.Number(t.Num)), nil

	case token.Word:
		if t.IsBooleanWord() {
			return environment.Val(value.Bool(t.Text == "True")), nil
		}
		if t.Text == "to" {
			if err := e.readDefinitionFrom(c); err != nil {
				return environment.Result{}, err
			}
			return environment.NoValue(), nil
		}
		return e.applyByName(t.Text, c)

	case token.QuotedWord:
		return environment.Val(value.Word(t.Text)), nil

	case token.VarRef:
		v, err := e.Env.LookupVariable(t.Text)
		if err != nil {
			return environment.Result{}, err
		}
		return environment.Val(v), nil

	case token.List:
		return environment.Val(tokensToListValue(t.Items)), nil

	case token.OpenParen:
		inner, err := e.EvalExpression(c)
		if err != nil {
			return environment.Result{}, err
		}
		closeTok, ok := c.Pop()
		if !ok || closeTok.Kind != token.CloseParen {
			return environment.Result{}, langerr.New(fmt.Sprintf("Expected ) at %s", c.String()))
		}
		return inner, nil

	case token.CloseParen:
		return environment.Result{}, langerr.New(fmt.Sprintf("Unexpected ) at %s", c.String()))

	default:
		return environment.Result{}, langerr.New(fmt.Sprintf("Unexpected token at %s", c.String()))
	}
}

// applyByName looks up name in the procedure table and applies it,
// collecting its arguments from c (§4.6 step 8, "Argument collection",
// "Primitive application", "User-defined application").
func (e *Evaluator) applyByName(name string, c *cursor.Cursor) (environment.Result, error) {
	proc, err := e.Env.LookupProcedure(name)
	if err != nil {
		return environment.Result{}, err
	}
	return e.Apply(proc, c)
}

// Apply collects proc's arguments from c and applies it, whether
// primitive or user-defined.
func (e *Evaluator) Apply(proc *environment.Procedure, c *cursor.Cursor) (environment.Result, error) {
	args, err := e.collectArgs(proc.ArgCount, proc.Name, c)
	if err != nil {
		return environment.Result{}, err
	}
	if proc.IsPrimitive {
		return e.applyPrimitive(proc, args)
	}
	return e.applyUserProcedure(proc, args)
}

// collectArgs recursively calls EvalExpression n times on the same
// cursor. A sub-call that fails to produce a value — because the cursor
// ran dry, or because it evaluated to a statement with no result — is
// rephrased as "Found only k of n args at …" (§4.6 "Argument
// collection").
func (e *Evaluator) collectArgs(n int, who string, c *cursor.Cursor) ([]value.Value, error) {
	args := make([]value.Value, 0, n)
	for i := 0; i < n; i++ {
		if c.IsEmpty() {
			return nil, langerr.New(fmt.Sprintf("Found only %d of %d args to %s at %s", len(args), n, who, c.String()))
		}
		result, err := e.EvalExpression(c)
		if err != nil {
			return nil, err
		}
		if !result.HasValue {
			return nil, langerr.New(fmt.Sprintf("Found only %d of %d args to %s at %s", len(args), n, who, c.String()))
		}
		args = append(args, result.Value)
	}
	return args, nil
}

// applyPrimitive invokes proc's native handler with the collected
// arguments, appending the environment when NeedsEnv is set (§4.6
// "Primitive application").
func (e *Evaluator) applyPrimitive(proc *environment.Procedure, args []value.Value) (environment.Result, error) {
	var env *environment.Environment
	if proc.NeedsEnv {
		env = e.Env
	}
	result, err := proc.Native(args, env)
	if err != nil {
		return environment.Result{}, langerr.New(err.Error())
	}
	return result, nil
}

// applyUserProcedure builds a fresh frame binding formal parameters to
// argument values, evaluates the body line by line, and unwinds the
// frame on either an output trap or the body running dry (§4.6
// "User-defined application" steps a-f). Frame-stack balance (I5) holds
// even when a body line raises an error: the frame is popped before the
// error is returned.
func (e *Evaluator) applyUserProcedure(proc *environment.Procedure, args []value.Value) (environment.Result, error) {
	bindings := make(environment.Frame, len(proc.FormalParams))
	for i, name := range proc.FormalParams {
		bindings[name] = args[i]
	}
	e.Env.PushFrame(bindings)

	for _, line := range proc.Body {
		lineCursor := cursor.New(line)
		result, err := e.EvalLine(lineCursor)
		if err != nil {
			e.Env.PopFrame()
			return environment.Result{}, err
		}
		if result.IsTrap {
			e.Env.PopFrame()
			return environment.Result{Value: result.Value, HasValue: result.HasValue}, nil
		}
		if result.HasValue {
			e.Env.PopFrame()
			return environment.Result{}, langerr.New(fmt.Sprintf("You do not say what to do with the result %s in %s", value.Display(result.Value), proc.Name))
		}
	}

	e.Env.PopFrame()
	return environment.NoValue(), nil
}

// EvalLine repeatedly calls EvalExpression on c until either the cursor
// is empty (no-value) or an expression yields a non-no-value result,
// which is returned immediately with the remaining tokens left
// un-evaluated (§4.6 "eval_line").
func (e *Evaluator) EvalLine(c *cursor.Cursor) (environment.Result, error) {
	for !c.IsEmpty() {
		result, err := e.EvalExpression(c)
		if err != nil {
			return environment.Result{}, err
		}
		if result.IsTrap || result.HasValue {
			return result, nil
		}
	}
	return environment.NoValue(), nil
}

// RunLine rewrites infix operators to prefix form (§4.8) and then
// evaluates the resulting tokens as one line (§4.6 "eval_line"). It is
// the entry point the REPL and file-mode CLI both drive.
func (e *Evaluator) RunLine(tokens []token.Token) (environment.Result, error) {
	rewritten, err := infix.Rewrite(tokens)
	if err != nil {
		return environment.Result{}, err
	}
	c := cursor.New(rewritten)
	return e.EvalLine(c)
}
