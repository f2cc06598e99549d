package builtins

import (
	"fmt"

	"github.com/amoghbhardwaj/logoscript/internal/environment"
	"github.com/amoghbhardwaj/logoscript/internal/langerr"
	"github.com/amoghbhardwaj/logoscript/internal/value"
)

// registerWordsAndLists installs word, sentence, list, fput, first,
// last, butfirst/bf (§4.5).
func registerWordsAndLists(register Registrar) {
	register([]string{"word"}, 2, wordConcat, false)
	register([]string{"sentence", "se"}, 2, sentence, false)
	register([]string{"list"}, 2, listOf, false)
	register([]string{"fput"}, 2, fput, false)
	register([]string{"first"}, 1, first, false)
	register([]string{"last"}, 1, last, false)
	register([]string{"butfirst", "bf"}, 1, butfirst, false)
}

func textOf(v value.Value) string {
	if v.Kind == value.NumberKind {
		return value.Display(v)
	}
	return v.Word
}

func wordConcat(args []value.Value, _ *environment.Environment) (environment.Result, error) {
	for _, a := range args {
		if a.Kind == value.ListKind {
			return environment.Result{}, langerr.New(fmt.Sprintf("word expected a word, got %s", value.Display(a)))
		}
	}
	return environment.Val(value.Word(textOf(args[0]) + textOf(args[1]))), nil
}

// sentence flattens list arguments one level and treats non-list
// arguments as single elements, the classic Logo "se" behavior.
func sentence(args []value.Value, _ *environment.Environment) (environment.Result, error) {
	var out []value.Value
	for _, a := range args {
		if a.Kind == value.ListKind {
			out = append(out, a.List...)
		} else {
			out = append(out, a)
		}
	}
	return environment.Val(value.List(out)), nil
}

func listOf(args []value.Value, _ *environment.Environment) (environment.Result, error) {
	return environment.Val(value.List([]value.Value{args[0], args[1]})), nil
}

func fput(args []value.Value, _ *environment.Environment) (environment.Result, error) {
	item, list := args[0], args[1]
	if list.Kind != value.ListKind {
		return environment.Result{}, langerr.New(fmt.Sprintf("fput expected a list, got %s", value.Display(list)))
	}
	out := make([]value.Value, 0, len(list.List)+1)
	out = append(out, item)
	out = append(out, list.List...)
	return environment.Val(value.List(out)), nil
}

func first(args []value.Value, _ *environment.Environment) (environment.Result, error) {
	v := args[0]
	switch v.Kind {
	case value.ListKind:
		if len(v.List) == 0 {
			return environment.Result{}, langerr.New("first called on an empty list")
		}
		return environment.Val(v.List[0]), nil
	case value.WordKind:
		if len(v.Word) == 0 {
			return environment.Result{}, langerr.New("first called on an empty word")
		}
		return environment.Val(value.Word(string([]rune(v.Word)[0]))), nil
	default:
		return environment.Result{}, langerr.New(fmt.Sprintf("first expected a word or list, got %s", value.Display(v)))
	}
}

func last(args []value.Value, _ *environment.Environment) (environment.Result, error) {
	v := args[0]
	switch v.Kind {
	case value.ListKind:
		if len(v.List) == 0 {
			return environment.Result{}, langerr.New("last called on an empty list")
		}
		return environment.Val(v.List[len(v.List)-1]), nil
	case value.WordKind:
		runes := []rune(v.Word)
		if len(runes) == 0 {
			return environment.Result{}, langerr.New("last called on an empty word")
		}
		return environment.Val(value.Word(string(runes[len(runes)-1]))), nil
	default:
		return environment.Result{}, langerr.New(fmt.Sprintf("last expected a word or list, got %s", value.Display(v)))
	}
}

func butfirst(args []value.Value, _ *environment.Environment) (environment.Result, error) {
	v := args[0]
	switch v.Kind {
	case value.ListKind:
		if len(v.List) == 0 {
			return environment.Result{}, langerr.New("butfirst called on an empty list")
		}
		rest := make([]value.Value, len(v.List)-1)
		copy(rest, v.List[1:])
		return environment.Val(value.List(rest)), nil
	case value.WordKind:
		runes := []rune(v.Word)
		if len(runes) == 0 {
			return environment.Result{}, langerr.New("butfirst called on an empty word")
		}
		return environment.Val(value.Word(string(runes[1:]))), nil
	default:
		return environment.Result{}, langerr.New(fmt.Sprintf("butfirst expected a word or list, got %s", value.Display(v)))
	}
}
