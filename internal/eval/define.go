package eval

import (
	"fmt"

	"github.com/amoghbhardwaj/logoscript/internal/cursor"
	"github.com/amoghbhardwaj/logoscript/internal/environment"
	"github.com/amoghbhardwaj/logoscript/internal/infix"
	"github.com/amoghbhardwaj/logoscript/internal/langerr"
	"github.com/amoghbhardwaj/logoscript/internal/lexer"
	"github.com/amoghbhardwaj/logoscript/internal/token"
)

// readDefinitionFrom implements the §4.7 definition reader, triggered
// when EvalExpression pops a `to` token. c is the same cursor `to` was
// popped from; the procedure name and formal :params follow on that
// same line, then further lines are pulled from the continuation
// collaborator until a lone `end`.
func (e *Evaluator) readDefinitionFrom(c *cursor.Cursor) error {
	nameTok, ok := c.Pop()
	if !ok || nameTok.Kind != token.Word {
		return langerr.New(fmt.Sprintf("Expected a procedure name after to at %s", c.String()))
	}

	var params []string
	for {
		t, ok := c.Peek()
		if !ok || t.Kind != token.VarRef {
			break
		}
		c.Pop()
		params = append(params, t.Text)
	}

	var body [][]token.Token
	for {
		line, ok := e.Continuation.NextContinuationLine()
		if !ok {
			return langerr.New(fmt.Sprintf("Unexpected end of input inside definition of %s", nameTok.Text))
		}
		lineTokens, err := lexer.Tokenize(line)
		if err != nil {
			return err
		}
		if len(lineTokens) == 1 && lineTokens[0].Kind == token.Word && lineTokens[0].Text == "end" {
			break
		}
		rewritten, err := infix.Rewrite(lineTokens)
		if err != nil {
			return err
		}
		if len(rewritten) > 0 {
			body = append(body, rewritten)
		}
	}

	e.Env.DefineProcedure(&environment.Procedure{
		Name:         nameTok.Text,
		ArgCount:     len(params),
		IsPrimitive:  false,
		NeedsEnv:     true,
		FormalParams: params,
		Body:         body,
	})
	return nil
}
