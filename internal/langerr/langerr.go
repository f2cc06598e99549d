// Package langerr defines the single domain error kind logoscript uses
// for every user-visible failure (§7): lookup errors, argument errors,
// syntax errors, type-guard errors, and statement-vs-expression errors
// are all the same Go type, distinguished only by message text.
package langerr

// Error is the domain error kind. Errors returned by primitives are
// rethrown as Error carrying their original message (§7); a panic
// inside a primitive is not recovered. Everything else that can fail
// during evaluation constructs one directly.
type Error struct {
	Message string
}

func New(msg string) *Error {
	return &Error{Message: msg}
}

func (e *Error) Error() string {
	return e.Message
}
