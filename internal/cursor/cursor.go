// Package cursor implements the read-only, forward-consuming view over a
// token stream that the evaluator threads through every recursive call
// (§4.2). It owns no lexing logic — it only walks tokens already produced
// by the lexer.
package cursor

import (
	"strings"

	"github.com/amoghbhardwaj/logoscript/internal/token"
)

// Cursor is a forward-only view over a fixed token slice.
type Cursor struct {
	tokens []token.Token
	pos    int
}

// New wraps a token slice for consumption from the front.
func New(tokens []token.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// IsEmpty reports whether every token has already been popped.
func (c *Cursor) IsEmpty() bool {
	return c.pos >= len(c.tokens)
}

// Peek returns the next token without consuming it, and false if the
// cursor is exhausted.
func (c *Cursor) Peek() (token.Token, bool) {
	if c.IsEmpty() {
		return token.Token{}, false
	}
	return c.tokens[c.pos], true
}

// Pop consumes and returns the next token, and false if the cursor is
// exhausted.
func (c *Cursor) Pop() (token.Token, bool) {
	tok, ok := c.Peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// String renders the cursor's position for use in error messages: the
// tokens already consumed, a caret marking the current position, and the
// tokens still to come. The exact format is unspecified by §4.2 beyond
// "human-readable"; this mirrors the caret-pointer style the teacher's
// compiler error formatter uses for source positions.
func (c *Cursor) String() string {
	var sb strings.Builder
	for i, t := range c.tokens {
		if i == c.pos {
			sb.WriteString(" ▸ ")
		} else if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(t.String())
	}
	if c.pos >= len(c.tokens) {
		sb.WriteString(" ▸ ")
	}
	return strings.TrimSpace(sb.String())
}
