package repl

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunEvaluatesLinesAndExitsOnEOF(t *testing.T) {
	in := strings.NewReader("print sum 1 2\n")
	var out bytes.Buffer
	session := New(in, &out, false)

	code := session.Run()
	if code != 0 {
		t.Fatalf("expected exit code 0 on clean EOF, got %d", code)
	}
	if got := out.String(); got != "3\n" {
		t.Errorf("got %q, want %q", got, "3\n")
	}
}

func TestQuitWordsEndTheSessionCaseInsensitively(t *testing.T) {
	for _, word := range []string{"quit", "Exit", "BYE"} {
		in := strings.NewReader(word + "\nprint sum 1 2\n")
		var out bytes.Buffer
		session := New(in, &out, false)
		if code := session.Run(); code != 0 {
			t.Fatalf("%q: expected exit code 0, got %d", word, code)
		}
		if out.Len() != 0 {
			t.Fatalf("%q: expected nothing printed after quitting, got %q", word, out.String())
		}
	}
}

func TestCommentsAreStrippedFromEndOfLine(t *testing.T) {
	in := strings.NewReader("print 5 ; this is a comment\n")
	var out bytes.Buffer
	session := New(in, &out, false)
	session.Run()
	if got := out.String(); got != "5\n" {
		t.Errorf("got %q, want %q", got, "5\n")
	}
}

func TestErrorsArePrintedAndFrameIsRewound(t *testing.T) {
	in := strings.NewReader(":nope\nprint 9\n")
	var out bytes.Buffer
	session := New(in, &out, false)
	code := session.Run()
	if code != 1 {
		t.Fatalf("file mode must stop at the first unrecovered error, got code %d", code)
	}
	if !strings.Contains(out.String(), "nope has no value") {
		t.Errorf("expected the error message to be printed, got %q", out.String())
	}
	if session.env.Depth() != 1 {
		t.Errorf("expected the frame stack rewound to the global frame, depth = %d", session.env.Depth())
	}
}

func TestDefinitionSpansMultipleLines(t *testing.T) {
	in := strings.NewReader("to double :n\noutput product :n 2\nend\nprint double 21\n")
	var out bytes.Buffer
	session := New(in, &out, false)
	if code := session.Run(); code != 0 {
		t.Fatalf("expected exit code 0, got %d; output: %q", code, out.String())
	}
	if got := out.String(); got != "42\n" {
		t.Errorf("got %q, want %q", got, "42\n")
	}
}
