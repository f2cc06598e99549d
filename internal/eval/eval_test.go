package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/amoghbhardwaj/logoscript/internal/builtins"
	"github.com/amoghbhardwaj/logoscript/internal/environment"
	"github.com/amoghbhardwaj/logoscript/internal/lexer"
)

// lineFeed is a fixed list of continuation lines, standing in for the
// §6 continuation collaborator a real REPL/file session implements.
type lineFeed struct {
	lines []string
	pos   int
}

func (f *lineFeed) NextContinuationLine() (string, bool) {
	if f.pos >= len(f.lines) {
		return "", false
	}
	line := f.lines[f.pos]
	f.pos++
	return line, true
}

// newTestEvaluator builds an Evaluator with the required primitives and
// core primitives registered, writing print/show/type output to out.
// cont supplies any lines a `to` definition in the run needs beyond the
// line it starts on.
func newTestEvaluator(out *bytes.Buffer, cont []string) *Evaluator {
	env := environment.New()
	builtins.Register(env, out)
	return New(env, &lineFeed{lines: cont}, out)
}

func run(t *testing.T, e *Evaluator, src string) environment.Result {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("lex error on %q: %v", src, err)
	}
	result, err := e.RunLine(toks)
	if err != nil {
		t.Fatalf("eval error on %q: %v", src, err)
	}
	return result
}

func TestScenarioPrintSumProduct(t *testing.T) {
	var out bytes.Buffer
	e := newTestEvaluator(&out, nil)
	run(t, e, `print sum product 3 4 8`)
	if got := out.String(); got != "20\n" {
		t.Errorf("got %q, want %q", got, "20\n")
	}
}

func TestScenarioMakeThenRead(t *testing.T) {
	var out bytes.Buffer
	e := newTestEvaluator(&out, nil)
	run(t, e, `make "x 12  print sum 5 :x`)
	if got := out.String(); got != "17\n" {
		t.Errorf("got %q, want %q", got, "17\n")
	}
}

func TestScenarioFactorialRecursion(t *testing.T) {
	var out bytes.Buffer
	e := newTestEvaluator(&out, []string{
		`output ifelse equal? :n 1 [1] [product :n factorial difference :n 1]`,
		`end`,
	})
	run(t, e, `to factorial :n`)
	if e.Env.Depth() != 1 {
		t.Fatalf("defining a procedure must not leave stray frames, depth = %d", e.Env.Depth())
	}

	out.Reset()
	run(t, e, `print factorial 5`)
	if got := out.String(); got != "120\n" {
		t.Errorf("got %q, want %q", got, "120\n")
	}
	if e.Env.Depth() != 1 {
		t.Fatalf("frame stack must be balanced after a top-level call, depth = %d", e.Env.Depth())
	}
}

func TestScenarioIfTypeGuardError(t *testing.T) {
	var out bytes.Buffer
	e := newTestEvaluator(&out, nil)
	toks, err := lexer.Tokenize(`if 1 [print 3]`)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	_, err = e.RunLine(toks)
	if err == nil {
		t.Fatalf("expected a type guard error")
	}
	want := `First argument to "if" is not True or False: 1`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestScenarioInfixArithmetic(t *testing.T) {
	var out bytes.Buffer
	e := newTestEvaluator(&out, nil)
	run(t, e, `print 3 + 4 * 5 + 6`)
	if got := out.String(); got != "29\n" {
		t.Errorf("got %q, want %q", got, "29\n")
	}
}

func TestScenarioNestedScopeFallsThroughToCallerFrame(t *testing.T) {
	var out bytes.Buffer
	e := newTestEvaluator(&out, []string{
		`helper 5`, `end`,
		`print :x  print :y`, `end`,
	})
	run(t, e, `make "x 3`)
	run(t, e, `to scope :x`)
	run(t, e, `to helper :y`)

	out.Reset()
	run(t, e, `scope 4`)
	// helper's own frame binds only :y; its lookup of :x is not found
	// there, so it falls through to scope's frame (x=4), not the global
	// frame (x=3) — the Scoping invariant (§8).
	if got := out.String(); got != "4\n5\n" {
		t.Errorf("got %q, want %q", got, "4\n5\n")
	}
	if e.Env.Depth() != 1 {
		t.Fatalf("frame balance must hold after the nested call, depth = %d", e.Env.Depth())
	}
}

func TestScenarioStopFromTopOfProcedure(t *testing.T) {
	var out bytes.Buffer
	e := newTestEvaluator(&out, []string{`stop`, `end`})
	run(t, e, `to noop`)
	result := run(t, e, `noop`)
	if result.HasValue {
		t.Errorf("stop must unwind to the no-value sentinel, got %v", result.Value)
	}
	if e.Env.Depth() != 1 {
		t.Fatalf("expected frame balance after stop, depth = %d", e.Env.Depth())
	}
}

func TestFrameBalanceAcrossAnError(t *testing.T) {
	var out bytes.Buffer
	e := newTestEvaluator(&out, []string{`sum 1 :missing`, `end`})
	run(t, e, `to broken`)

	toks, _ := lexer.Tokenize(`broken`)
	if _, err := e.RunLine(toks); err == nil {
		t.Fatalf("expected broken to raise an unbound-variable error")
	}
	if e.Env.Depth() != 1 {
		t.Fatalf("frame must be popped even when the body errors, depth = %d", e.Env.Depth())
	}
}

func TestUnknownProcedureIsADomainError(t *testing.T) {
	var out bytes.Buffer
	e := newTestEvaluator(&out, nil)
	toks, _ := lexer.Tokenize(`frobnicate 1 2`)
	_, err := e.RunLine(toks)
	if err == nil || !strings.Contains(err.Error(), "I do not know how to frobnicate") {
		t.Fatalf("got %v, want an 'I do not know how to frobnicate.' error", err)
	}
}
