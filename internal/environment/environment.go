// Package environment implements the frame stack and procedure table
// logoscript's evaluator reads and mutates (§3 Environment, §4.4).
//
// Grounded on eloquence/object.Environment's Get/Set/outer-chain shape,
// but generalized from a linked chain of enclosing scopes to the
// explicit frame *stack* §3/§4.4 require: frame 0 is the permanent
// global frame, lookup walks innermost-to-outermost, and the procedure
// table is a separate, always-global map that never participates in
// frame scoping.
package environment

import (
	"fmt"

	"github.com/amoghbhardwaj/logoscript/internal/langerr"
	"github.com/amoghbhardwaj/logoscript/internal/token"
	"github.com/amoghbhardwaj/logoscript/internal/value"
)

// Value is the runtime value type bindings and procedures traffic in.
type Value = value.Value

// Frame is one scope of local variable bindings.
type Frame map[string]Value

// Procedure is a named callable: either a primitive (native Go function)
// or a user-defined procedure whose body is a sequence of source lines,
// each itself a token sequence (§3 Procedure).
type Procedure struct {
	Name         string
	ArgCount     int
	IsPrimitive  bool
	NeedsEnv     bool
	FormalParams []string         // parameter names in order
	Native       NativeFunc       // set when IsPrimitive
	Body         [][]token.Token  // set when !IsPrimitive: ordered body lines
}

// NativeFunc is the shape every primitive handler implements. args holds
// already-evaluated Values in positional order; when NeedsEnv is set the
// Environment is threaded in as env, otherwise env is nil.
type NativeFunc func(args []Value, env *Environment) (Result, error)

// Result is what applying a procedure (primitive or user-defined)
// produces: an ordinary value, the no-value sentinel, or an output trap
// requesting a non-local return (§4.6, §9 "Output trap"). HasValue
// reports whether Value carries a payload; IsTrap marks an output trap,
// whose payload may be present (output) or absent (stop). Both false
// means no-value.
type Result struct {
	Value   Value
	HasValue bool
	IsTrap  bool // true for output/stop's (OUTPUT, payload) marker
}

// NoValue is the distinguished "no result" Result.
func NoValue() Result { return Result{} }

// Val wraps an ordinary produced value.
func Val(v Value) Result { return Result{Value: v, HasValue: true} }

// Trap wraps an output-trap payload (itself a Result so a trap can carry
// either a value or the no-value sentinel, matching stop()'s contract).
func Trap(payload Result) Result {
	return Result{Value: payload.Value, HasValue: payload.HasValue, IsTrap: true}
}

// Environment owns the frame stack (I1: never empty) and the global
// procedure table.
type Environment struct {
	frames     []Frame
	procedures map[string]*Procedure
}

// New creates an environment with only the global frame (frame 0) and an
// empty procedure table.
func New() *Environment {
	return &Environment{
		frames:     []Frame{make(Frame)},
		procedures: make(map[string]*Procedure),
	}
}

// PushFrame appends a new innermost frame with the given initial
// bindings (may be nil/empty).
func (e *Environment) PushFrame(bindings Frame) {
	if bindings == nil {
		bindings = make(Frame)
	}
	e.frames = append(e.frames, bindings)
}

// PopFrame removes the innermost frame. It panics on an attempt to pop
// frame 0 — that would violate I1, and every caller in this codebase is
// required to pair PushFrame with exactly one PopFrame (I5).
func (e *Environment) PopFrame() {
	if len(e.frames) <= 1 {
		panic("environment: cannot pop the global frame")
	}
	e.frames = e.frames[:len(e.frames)-1]
}

// ResetFrames truncates the frame stack back to just the global frame.
// The REPL calls this after every top-level line that fails so a bug in some
// unusual error path can never leave a stray frame pushed across lines,
// on top of the frame-balance invariant every Apply already upholds on
// its own error path.
func (e *Environment) ResetFrames() {
	e.frames = e.frames[:1]
}

// Depth reports how many frames are currently on the stack, including
// the global frame. Tests use this to assert frame-stack balance (§8).
func (e *Environment) Depth() int {
	return len(e.frames)
}

// LookupVariable implements I2: search from the innermost frame toward
// frame 0, returning the first hit.
func (e *Environment) LookupVariable(name string) (Value, error) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v, nil
		}
	}
	return Value{}, langerr.New(fmt.Sprintf("%s has no value", name))
}

// SetVariableValue implements I3: update the innermost frame that
// already defines name, or create the binding in the global frame if no
// frame does.
func (e *Environment) SetVariableValue(name string, v Value) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if _, ok := e.frames[i][name]; ok {
			e.frames[i][name] = v
			return
		}
	}
	e.frames[0][name] = v
}

// DefineProcedure registers proc in the global procedure table,
// overwriting any prior entry of the same name.
func (e *Environment) DefineProcedure(proc *Procedure) {
	e.procedures[proc.Name] = proc
}

// LookupProcedure returns the named procedure, or an error if none is
// registered — procedure names are case-sensitive except where the
// primitive registry itself registers case-variant aliases.
func (e *Environment) LookupProcedure(name string) (*Procedure, error) {
	p, ok := e.procedures[name]
	if !ok {
		return nil, langerr.New(fmt.Sprintf("I do not know how to %s.", name))
	}
	return p, nil
}
