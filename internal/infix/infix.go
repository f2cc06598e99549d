// Package infix implements the precedence-climbing rewriter that turns
// infix operator occurrences in a token stream into prefix procedure
// calls before the evaluator ever sees them (§4.8).
//
// The algorithm is the classic precedence-climbing parser (operand,
// then a loop that folds in operators whose precedence is at or above a
// floor, recursing to a higher floor for a tighter-binding operator that
// follows), adapted to operate directly on token.Token values instead of
// building an AST: a rewritten sub-expression is itself a flat,
// self-delimiting token sequence (a single token, a nested List, a
// parenthesized group, or a previously-built prefix call), so folding
// two operands under an operator is just token concatenation —
// [opWord, lhsTokens..., rhsTokens...] — and the result can be spliced
// straight back into the surrounding stream.
package infix

import (
	"fmt"

	"github.com/amoghbhardwaj/logoscript/internal/langerr"
	"github.com/amoghbhardwaj/logoscript/internal/token"
)

// opName maps an infix symbol to the prefix procedure name that
// implements it (§4.8).
var opName = map[string]string{
	"+": "sum",
	"-": "difference",
	"*": "product",
	"/": "div",
	"=": "equalp",
	"<": "lessp",
	">": "greaterp",
}

// precedence: lowest first per §4.8 — {< > =} then {+ -} then {* /}.
// All levels are left-associative.
var precedence = map[string]int{
	"<": 1, ">": 1, "=": 1,
	"+": 2, "-": 2,
	"*": 3, "/": 3,
}

// Rewrite transforms a flat token line, recursing into parenthesized
// groups and bracketed lists, turning infix chains into prefix calls.
func Rewrite(tokens []token.Token) ([]token.Token, error) {
	var out []token.Token
	i := 0
	for i < len(tokens) {
		operand, width, err := parsePrimary(tokens, i)
		if err != nil {
			return nil, err
		}
		next := i + width
		if next < len(tokens) && tokens[next].Kind == token.InfixOp {
			expr, consumed, err := parseExpr(tokens, i, 0)
			if err != nil {
				return nil, err
			}
			out = append(out, expr...)
			i = consumed
			continue
		}
		out = append(out, operand...)
		i = next
	}
	return out, nil
}

// parseExpr implements precedence climbing starting at position pos,
// only folding operators whose precedence is >= minPrec. It returns the
// rewritten (prefix) token sequence for the whole chain and the index
// just past the last token it consumed.
func parseExpr(tokens []token.Token, pos int, minPrec int) ([]token.Token, int, error) {
	lhs, width, err := parsePrimary(tokens, pos)
	if err != nil {
		return nil, 0, err
	}
	return climb(tokens, pos+width, lhs, minPrec)
}

// climb runs the fold loop of precedence climbing given an
// already-parsed left-hand side sitting at position pos.
func climb(tokens []token.Token, pos int, lhs []token.Token, minPrec int) ([]token.Token, int, error) {
	for pos < len(tokens) && tokens[pos].Kind == token.InfixOp && precedence[tokens[pos].Text] >= minPrec {
		op := tokens[pos].Text
		opPrec := precedence[op]
		pos++

		rhs, width, err := parsePrimary(tokens, pos)
		if err != nil {
			return nil, 0, err
		}
		pos += width

		for pos < len(tokens) && tokens[pos].Kind == token.InfixOp && precedence[tokens[pos].Text] > opPrec {
			rhs, pos, err = climb(tokens, pos, rhs, opPrec+1)
			if err != nil {
				return nil, 0, err
			}
		}

		lhs = combine(op, lhs, rhs)
	}
	return lhs, pos, nil
}

func combine(op string, lhs, rhs []token.Token) []token.Token {
	name := opName[op]
	out := make([]token.Token, 0, 1+len(lhs)+len(rhs))
	out = append(out, token.Token{Kind: token.Word, Text: name})
	out = append(out, lhs...)
	out = append(out, rhs...)
	return out
}

// parsePrimary reads one operand at position i: a parenthesized group
// (recursively rewritten, parens preserved so the evaluator's OpenParen
// handling still applies), a List (recursively rewritten within itself,
// treated as atomic outside per §4.8), or a single atomic token. It
// returns the operand's rewritten token sequence and how many original
// tokens it consumed.
func parsePrimary(tokens []token.Token, i int) ([]token.Token, int, error) {
	if i >= len(tokens) {
		return nil, 0, langerr.New("unexpected end of line, expected an expression")
	}
	t := tokens[i]
	switch t.Kind {
	case token.InfixOp:
		return nil, 0, langerr.New(fmt.Sprintf("unary %q is not supported at position %d", t.Text, i))
	case token.CloseParen:
		return nil, 0, langerr.New(fmt.Sprintf("unexpected ) at position %d", i))
	case token.OpenParen:
		closeIdx, err := matchingClose(tokens, i)
		if err != nil {
			return nil, 0, err
		}
		inner, err := Rewrite(tokens[i+1 : closeIdx])
		if err != nil {
			return nil, 0, err
		}
		out := make([]token.Token, 0, len(inner)+2)
		out = append(out, token.Token{Kind: token.OpenParen, Text: "("})
		out = append(out, inner...)
		out = append(out, token.Token{Kind: token.CloseParen, Text: ")"})
		return out, closeIdx - i + 1, nil
	case token.List:
		items, err := Rewrite(t.Items)
		if err != nil {
			return nil, 0, err
		}
		return []token.Token{{Kind: token.List, Items: items}}, 1, nil
	default:
		return []token.Token{t}, 1, nil
	}
}

// matchingClose finds the index of the ")" matching the "(" at openIdx,
// accounting for nested parens at this flat level. List tokens are
// opaque (their own parens, if any, live one nesting level down inside
// Items and never participate in this count).
func matchingClose(tokens []token.Token, openIdx int) (int, error) {
	depth := 0
	for j := openIdx; j < len(tokens); j++ {
		switch tokens[j].Kind {
		case token.OpenParen:
			depth++
		case token.CloseParen:
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, langerr.New(fmt.Sprintf("unbalanced parentheses starting at position %d", openIdx))
}
