// Package repl is the interactive session surface §6's "CLI surface
// (collaborator)" describes: it owns prompting, comment stripping, and
// presenting end-of-input, while all lexing/evaluation is delegated to
// packages lexer/infix/eval.
//
// Grounded on eloquence/repl.Start's bufio.Scanner read loop and
// per-command switch, generalized from a fixed single-line REPL to one
// that also serves as the §4.7 definition reader's continuation-line
// source, and that rewinds the environment's frame stack after every
// top-level line that fails, per §7.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/amoghbhardwaj/logoscript/internal/builtins"
	"github.com/amoghbhardwaj/logoscript/internal/environment"
	"github.com/amoghbhardwaj/logoscript/internal/eval"
	"github.com/amoghbhardwaj/logoscript/internal/lexer"
	"github.com/amoghbhardwaj/logoscript/internal/value"
)

const (
	prompt       = "? "
	continuation = "> "
	farewell     = "Bye bye."
)

// exitWords are the case-insensitive session-ending commands §6 names.
var exitWords = map[string]bool{"quit": true, "exit": true, "bye": true}

// Session drives one REPL or file-mode run: it owns the scanner
// (stdin or a file handle split into lines) and the evaluator.
type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
	env     *environment.Environment
	eval    *eval.Evaluator
	prompts bool // interactive: print prompts and the farewell
}

// New builds a Session reading lines from in and writing output to out.
// When prompts is true (interactive stdin), the session prints "? "/"> "
// prompts and a farewell on exit; file mode runs silently except for
// the program's own print/show/type output.
func New(in io.Reader, out io.Writer, prompts bool) *Session {
	env := environment.New()
	builtins.Register(env, out)
	s := &Session{
		scanner: bufio.NewScanner(in),
		out:     out,
		env:     env,
		prompts: prompts,
	}
	s.eval = eval.New(env, s, out)
	return s
}

// NextContinuationLine implements eval.ContinuationSource for the §4.7
// definition reader: it prints the continuation prompt (interactive
// only) and returns the next comment-stripped source line.
func (s *Session) NextContinuationLine() (string, bool) {
	if s.prompts {
		fmt.Fprint(s.out, continuation)
	}
	if !s.scanner.Scan() {
		return "", false
	}
	return stripComment(s.scanner.Text()), true
}

// Run drives the read-eval-print loop until end of input or an explicit
// quit/exit/bye. It returns the process exit code: 0 on clean EOF or an
// explicit quit, 1 if the final line evaluated produced a fatal error
// that was never recovered (file mode only — the interactive loop
// always recovers and keeps going).
func (s *Session) Run() int {
	for {
		if s.prompts {
			fmt.Fprint(s.out, prompt)
		}
		if !s.scanner.Scan() {
			if s.prompts {
				fmt.Fprintln(s.out, farewell)
			}
			return 0
		}

		line := stripComment(s.scanner.Text())
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if exitWords[strings.ToLower(trimmed)] {
			if s.prompts {
				fmt.Fprintln(s.out, farewell)
			}
			return 0
		}

		if err := s.runLine(line); err != nil {
			fmt.Fprintln(s.out, err.Error())
			s.env.ResetFrames()
			if !s.prompts {
				return 1
			}
		}
	}
}

// runLine lexes and evaluates one top-level line. A bare expression
// value surviving to the top level is the "You do not say what to do
// with …" statement-vs-expression error (§4.6 eval_line, §7).
func (s *Session) runLine(line string) error {
	tokens, err := lexer.Tokenize(line)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	result, err := s.eval.RunLine(tokens)
	if err != nil {
		return err
	}
	if result.HasValue {
		return fmt.Errorf("You do not say what to do with %s", value.Display(result.Value))
	}
	return nil
}

// stripComment implements §6's "comment stripping (everything from ; to
// end-of-line is removed)".
func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}
