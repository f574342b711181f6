package spec

import (
	verr "github.com/rokkenjima/bnfcheck/error"
)

type tokenKind string

const (
	tokenKindTerminal    = tokenKind("terminal")
	tokenKindNonTerminal = tokenKind("non-terminal")
	tokenKindOr          = tokenKind("|")
	tokenKindEOL         = tokenKind("eol")
)

type token struct {
	kind tokenKind
	term rune
	name string
}

func newTerminalToken(term rune) *token {
	return &token{
		kind: tokenKindTerminal,
		term: term,
	}
}

func newNonTerminalToken(name string) *token {
	return &token{
		kind: tokenKindNonTerminal,
		name: name,
	}
}

func newSymbolToken(kind tokenKind) *token {
	return &token{
		kind: kind,
	}
}

// lexer scans the right-hand side of one production line. Escape
// sequences \<, \>, \| and \\ yield the marker characters as plain
// terminals; any other character is a terminal as-is. Inside a
// non-terminal reference no escapes apply, and only '<' and '>' are
// off-limits.
type lexer struct {
	src []rune
	pos int
	row int
}

func newLexer(src string, row int) *lexer {
	return &lexer{
		src: []rune(src),
		row: row,
	}
}

func (l *lexer) next() (*token, error) {
	if l.pos >= len(l.src) {
		return newSymbolToken(tokenKindEOL), nil
	}
	r := l.src[l.pos]
	l.pos++
	switch r {
	case '|':
		return newSymbolToken(tokenKindOr), nil
	case '\\':
		if l.pos >= len(l.src) {
			return nil, l.raise(synErrIncompletedEscSeq)
		}
		e := l.src[l.pos]
		l.pos++
		switch e {
		case '<', '>', '|', '\\':
			return newTerminalToken(e), nil
		}
		return nil, l.raise(synErrInvalidEscSeq)
	case '<':
		var name []rune
		for {
			if l.pos >= len(l.src) {
				return nil, l.raise(synErrUnclosedNonTerminal)
			}
			c := l.src[l.pos]
			l.pos++
			switch c {
			case '<':
				return nil, l.raise(synErrNestedNonTerminal)
			case '>':
				return newNonTerminalToken(string(name)), nil
			}
			name = append(name, c)
		}
	case '>':
		return nil, l.raise(synErrUnmatchedClose)
	}
	return newTerminalToken(r), nil
}

func (l *lexer) raise(synErr *SyntaxError) error {
	return &verr.SpecError{
		Cause: synErr,
		Row:   l.row,
	}
}
