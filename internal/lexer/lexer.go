// Package lexer splits one physical source line into a flat sequence of
// tokens, recursing into bracketed regions so that a `[...]` becomes a
// single nested token rather than a run of flat ones.
//
// Grounded on eloquence/lexer.Lexer's rune-at-a-time scanning style
// (readChar/peekChar over a position/readPosition pair), generalized from
// a keyword-driven general-purpose lexer to logoscript's line-oriented,
// bracket-recursive one.
package lexer

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/amoghbhardwaj/logoscript/internal/langerr"
	"github.com/amoghbhardwaj/logoscript/internal/token"
)

// Lexer scans a single physical line (after comment stripping) into
// tokens. It carries no state across lines — §4.1 calls this out
// explicitly.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
}

// New creates a Lexer over one physical line of source.
func New(line string) *Lexer {
	l := &Lexer{input: line}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	l.ch = rune(l.input[l.readPosition])
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return rune(l.input[l.readPosition])
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// Tokenize lexes the whole line into a flat token sequence, with nested
// `[...]` regions collapsed into single List tokens.
func Tokenize(line string) ([]token.Token, error) {
	l := New(line)
	toks, err := l.tokenizeUntil(false)
	if err != nil {
		return nil, err
	}
	return toks, nil
}

// tokenizeUntil reads tokens until EOF (top level) or a closing `]`
// (nested call, insideList == true), consuming but not emitting that `]`.
func (l *Lexer) tokenizeUntil(insideList bool) ([]token.Token, error) {
	var toks []token.Token
	for {
		l.skipWhitespace()
		if l.ch == 0 {
			if insideList {
				return nil, langerr.New("unbalanced brackets: missing ]")
			}
			return toks, nil
		}
		if l.ch == ']' {
			if !insideList {
				return nil, langerr.New(fmt.Sprintf("unexpected ] at position %d", l.position))
			}
			l.readChar()
			return toks, nil
		}
		if l.ch == '[' {
			l.readChar()
			items, err := l.tokenizeUntil(true)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token.Token{Kind: token.List, Items: items})
			continue
		}
		if l.ch == '(' {
			toks = append(toks, token.Token{Kind: token.OpenParen, Text: "("})
			l.readChar()
			continue
		}
		if l.ch == ')' {
			toks = append(toks, token.Token{Kind: token.CloseParen, Text: ")"})
			l.readChar()
			continue
		}
		if isInfixSymbol(l.ch) && l.standsAloneInfix() {
			toks = append(toks, token.Token{Kind: token.InfixOp, Text: string(l.ch)})
			l.readChar()
			continue
		}
		tok, err := l.readAtom()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// standsAloneInfix decides whether the current infix-symbol character is
// a lone operator token or the leading character of a signed number
// (e.g. the "-" in "-5"). A "-"/"+" is treated as part of a number
// whenever it is immediately followed by a digit, whatever precedes it:
// "-3" and the second token of "5 -3" both lex as the Number -3, while
// "5 - 3" yields an InfixOp. Per §4.8 unary minus is unsupported, so
// only a free-standing sign is ever an operator; "x-3" without spaces is
// not a construct the lexer needs to disambiguate since tokens are
// whitespace-delimited.
func (l *Lexer) standsAloneInfix() bool {
	if (l.ch == '-' || l.ch == '+') && unicode.IsDigit(l.peekChar()) {
		return false
	}
	return true
}

func isInfixSymbol(ch rune) bool {
	switch ch {
	case '+', '-', '*', '/', '=', '>', '<':
		return true
	default:
		return false
	}
}

// readAtom reads one non-bracket, non-paren, non-bare-infix token:
// a quoted word, a variable reference, a number, or a plain word.
func (l *Lexer) readAtom() (token.Token, error) {
	switch l.ch {
	case '"':
		l.readChar()
		name := l.readBareword()
		return token.Token{Kind: token.QuotedWord, Text: name}, nil
	case ':':
		l.readChar()
		name := l.readBareword()
		return token.Token{Kind: token.VarRef, Text: name}, nil
	default:
		if isNumberStart(l.ch, l.peekChar()) {
			return l.readNumber()
		}
		name := l.readBareword()
		if name == "" {
			return token.Token{}, langerr.New(fmt.Sprintf("unexpected character %q at position %d", l.ch, l.position))
		}
		return token.Token{Kind: token.Word, Text: name}, nil
	}
}

func isNumberStart(ch, next rune) bool {
	if unicode.IsDigit(ch) {
		return true
	}
	if (ch == '-' || ch == '+') && unicode.IsDigit(next) {
		return true
	}
	return false
}

func (l *Lexer) readNumber() (token.Token, error) {
	start := l.position
	if l.ch == '-' || l.ch == '+' {
		l.readChar()
	}
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && unicode.IsDigit(l.peekChar()) {
		l.readChar()
		for unicode.IsDigit(l.ch) {
			l.readChar()
		}
	}
	text := l.input[start:l.position]
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token.Token{}, langerr.New(fmt.Sprintf("invalid number %q at position %d", text, start))
	}
	return token.Token{Kind: token.Number, Num: n}, nil
}

// readBareword reads a run of characters that are neither whitespace,
// brackets, parens, nor a bare infix symbol. This is deliberately
// permissive: logoscript's bareword alphabet includes punctuation such
// as "?" (empty?) and "!" that a keyword-oriented lexer would reject.
func (l *Lexer) readBareword() string {
	start := l.position
	for !isDelimiter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isDelimiter(ch rune) bool {
	if ch == 0 {
		return true
	}
	if ch == ' ' || ch == '\t' || ch == '\r' {
		return true
	}
	switch ch {
	case '[', ']', '(', ')':
		return true
	}
	return false
}
