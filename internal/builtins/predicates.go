package builtins

import (
	"github.com/amoghbhardwaj/logoscript/internal/environment"
	"github.com/amoghbhardwaj/logoscript/internal/value"
)

// registerPredicates installs empty?/emptyp and word? (§4.5).
func registerPredicates(register Registrar) {
	register([]string{"emptyp", "empty?"}, 1, isEmpty, false)
	register([]string{"word?"}, 1, isWord, false)
}

func isEmpty(args []value.Value, _ *environment.Environment) (environment.Result, error) {
	v := args[0]
	switch v.Kind {
	case value.ListKind:
		return environment.Val(value.Bool(len(v.List) == 0)), nil
	case value.WordKind:
		return environment.Val(value.Bool(len(v.Word) == 0)), nil
	default:
		return environment.Val(value.False), nil
	}
}

func isWord(args []value.Value, _ *environment.Environment) (environment.Result, error) {
	return environment.Val(value.Bool(args[0].Kind == value.WordKind)), nil
}
