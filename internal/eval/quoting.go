package eval

import "github.com/amoghbhardwaj/logoscript/internal/token"
import "github.com/amoghbhardwaj/logoscript/internal/value"

// A bracketed list token's elements are, per §4.6 step 4, "not
// re-evaluated at this point; they become data" — but that data must
// still be re-runnable later (run/if/ifelse operate on list
// arguments as lines of code). tokensToListValue and valuesToTokens are
// inverses that let a list value double as quoted source: a VarRef
// token becomes the word ":name" and a QuotedWord the word "\"name"
// (marker folded into the text), parens become the words "(" and ")",
// and the reverse split recovers the marker from a leading ':' or '"'
// and the paren tokens from those two words. This is what makes "Idempotence of
// quoting" hold while still letting `run` execute a list literal.

func tokensToListValue(items []token.Token) value.Value {
	return value.List(tokensToValues(items))
}

func tokensToValues(items []token.Token) []value.Value {
	out := make([]value.Value, len(items))
	for i, t := range items {
		out[i] = tokenToValue(t)
	}
	return out
}

func tokenToValue(t token.Token) value.Value {
	switch t.Kind {
	case token.Number:
		return value.Number(t.Num)
	case token.QuotedWord:
		return value.Word("\"" + t.Text)
	case token.VarRef:
		return value.Word(":" + t.Text)
	case token.List:
		return tokensToListValue(t.Items)
	default:
		return value.Word(t.String())
	}
}

func valuesToTokens(values []value.Value) []token.Token {
	out := make([]token.Token, len(values))
	for i, v := range values {
		out[i] = valueToToken(v)
	}
	return out
}

func valueToToken(v value.Value) token.Token {
	switch v.Kind {
	case value.NumberKind:
		return token.Token{Kind: token.Number, Num: v.Num}
	case value.ListKind:
		return token.Token{Kind: token.List, Items: valuesToTokens(v.List)}
	default: // WordKind
		if len(v.Word) > 1 && v.Word[0] == ':' {
			return token.Token{Kind: token.VarRef, Text: v.Word[1:]}
		}
		if len(v.Word) > 1 && v.Word[0] == '"' {
			return token.Token{Kind: token.QuotedWord, Text: v.Word[1:]}
		}
		switch v.Word {
		case "(":
			return token.Token{Kind: token.OpenParen, Text: "("}
		case ")":
			return token.Token{Kind: token.CloseParen, Text: ")"}
		}
		return token.Token{Kind: token.Word, Text: v.Word}
	}
}
