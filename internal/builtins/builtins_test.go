package builtins

import (
	"bytes"
	"testing"

	"github.com/amoghbhardwaj/logoscript/internal/environment"
	"github.com/amoghbhardwaj/logoscript/internal/value"
)

func call(t *testing.T, env *environment.Environment, name string, args ...value.Value) environment.Result {
	t.Helper()
	proc, err := env.LookupProcedure(name)
	if err != nil {
		t.Fatalf("%s not registered: %v", name, err)
	}
	result, err := proc.Native(args, env)
	if err != nil {
		t.Fatalf("%s(%v) returned an error: %v", name, args, err)
	}
	return result
}

func TestArithmetic(t *testing.T) {
	env := environment.New()
	var buf bytes.Buffer
	Register(env, &buf)

	cases := []struct {
		name string
		a, b float64
		want float64
	}{
		{"sum", 3, 4, 7},
		{"difference", 10, 4, 6},
		{"product", 3, 4, 12},
		{"div", 10, 4, 2.5},
	}
	for _, c := range cases {
		got := call(t, env, c.name, value.Number(c.a), value.Number(c.b))
		if got.Value.Num != c.want {
			t.Errorf("%s(%v,%v) = %v, want %v", c.name, c.a, c.b, got.Value.Num, c.want)
		}
	}
}

func TestDivByZeroIsADomainError(t *testing.T) {
	env := environment.New()
	var buf bytes.Buffer
	Register(env, &buf)

	proc, _ := env.LookupProcedure("div")
	if _, err := proc.Native([]value.Value{value.Number(1), value.Number(0)}, env); err == nil {
		t.Fatalf("expected an error dividing by zero")
	}
}

func TestComparisons(t *testing.T) {
	env := environment.New()
	var buf bytes.Buffer
	Register(env, &buf)

	if got := call(t, env, "lessp", value.Number(1), value.Number(2)); !got.Value.IsTrue() {
		t.Errorf("expected lessp(1,2) to be True")
	}
	if got := call(t, env, "greaterp", value.Number(1), value.Number(2)); !got.Value.IsFalse() {
		t.Errorf("expected greaterp(1,2) to be False")
	}
	if got := call(t, env, "equalp", value.Word("a"), value.Word("a")); !got.Value.IsTrue() {
		t.Errorf("expected equalp('a,'a) to be True")
	}
}

func TestWordAndListSurgery(t *testing.T) {
	env := environment.New()
	var buf bytes.Buffer
	Register(env, &buf)

	if got := call(t, env, "word", value.Word("foo"), value.Word("bar")); got.Value.Word != "foobar" {
		t.Errorf("word(foo,bar) = %q, want foobar", got.Value.Word)
	}

	list := value.List([]value.Value{value.Number(1), value.Number(2)})
	if got := call(t, env, "first", list); got.Value.Num != 1 {
		t.Errorf("first([1 2]) = %v, want 1", got.Value)
	}
	if got := call(t, env, "last", list); got.Value.Num != 2 {
		t.Errorf("last([1 2]) = %v, want 2", got.Value)
	}
	if got := call(t, env, "butfirst", list); len(got.Value.List) != 1 || got.Value.List[0].Num != 2 {
		t.Errorf("butfirst([1 2]) = %v, want [2]", got.Value)
	}
	if got := call(t, env, "fput", value.Number(0), list); len(got.Value.List) != 3 || got.Value.List[0].Num != 0 {
		t.Errorf("fput(0,[1 2]) = %v, want [0 1 2]", got.Value)
	}
	if got := call(t, env, "sentence", list, value.Number(3)); len(got.Value.List) != 3 {
		t.Errorf("sentence([1 2],3) = %v, want 3 elements", got.Value)
	}
}

func TestEmptyAccessorsError(t *testing.T) {
	env := environment.New()
	var buf bytes.Buffer
	Register(env, &buf)

	proc, _ := env.LookupProcedure("first")
	if _, err := proc.Native([]value.Value{value.List(nil)}, env); err == nil {
		t.Fatalf("expected first([]) to be an error")
	}
}

func TestPredicates(t *testing.T) {
	env := environment.New()
	var buf bytes.Buffer
	Register(env, &buf)

	if got := call(t, env, "emptyp", value.List(nil)); !got.Value.IsTrue() {
		t.Errorf("expected emptyp([]) to be True")
	}
	if got := call(t, env, "word?", value.Word("x")); !got.Value.IsTrue() {
		t.Errorf("expected word?('x) to be True")
	}
	if got := call(t, env, "word?", value.Number(1)); !got.Value.IsFalse() {
		t.Errorf("expected word?(1) to be False")
	}
}

func TestPrintWritesDisplayForm(t *testing.T) {
	env := environment.New()
	var buf bytes.Buffer
	Register(env, &buf)

	call(t, env, "print", value.Number(20))
	if got := buf.String(); got != "20\n" {
		t.Errorf("print(20) wrote %q, want %q", got, "20\n")
	}
}

func TestShowBracketsListsUnlikePrint(t *testing.T) {
	env := environment.New()
	var buf bytes.Buffer
	Register(env, &buf)

	list := value.List([]value.Value{value.Number(1), value.Number(2)})
	call(t, env, "show", list)
	if got := buf.String(); got != "[1 2]\n" {
		t.Errorf("show([1 2]) wrote %q, want %q", got, "[1 2]\n")
	}
}
