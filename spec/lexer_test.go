package spec

import (
	"errors"
	"testing"

	verr "github.com/rokkenjima/bnfcheck/error"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		tokens  []*token
		err     *SyntaxError
	}{
		{
			caption: "terminals, references and alternation",
			src:     "a<X>|b",
			tokens: []*token{
				newTerminalToken('a'),
				newNonTerminalToken("X"),
				newSymbolToken(tokenKindOr),
				newTerminalToken('b'),
				newSymbolToken(tokenKindEOL),
			},
		},
		{
			caption: "escaped marker characters become terminals",
			src:     `\<\>\|\\`,
			tokens: []*token{
				newTerminalToken('<'),
				newTerminalToken('>'),
				newTerminalToken('|'),
				newTerminalToken('\\'),
				newSymbolToken(tokenKindEOL),
			},
		},
		{
			caption: "the empty source is one bare EOL",
			src:     "",
			tokens: []*token{
				newSymbolToken(tokenKindEOL),
			},
		},
		{
			caption: "'|' is legal inside a reference name",
			src:     "<a|b>",
			tokens: []*token{
				newNonTerminalToken("a|b"),
				newSymbolToken(tokenKindEOL),
			},
		},
		{
			caption: "nested '<' in a reference",
			src:     "<a<",
			err:     synErrNestedNonTerminal,
		},
		{
			caption: "unmatched '>'",
			src:     "a>",
			err:     synErrUnmatchedClose,
		},
		{
			caption: "unterminated reference",
			src:     "<ab",
			err:     synErrUnclosedNonTerminal,
		},
		{
			caption: "escape at end of alternative",
			src:     `ab\`,
			err:     synErrIncompletedEscSeq,
		},
		{
			caption: "invalid escaped character",
			src:     `\a`,
			err:     synErrInvalidEscSeq,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			l := newLexer(tt.src, 1)
			if tt.err != nil {
				for {
					tok, err := l.next()
					if err != nil {
						var specErr *verr.SpecError
						if !errors.As(err, &specErr) {
							t.Fatalf("expected a SpecError, got %v", err)
						}
						if specErr.Cause != tt.err {
							t.Fatalf("expected %v, got %v", tt.err, specErr.Cause)
						}
						return
					}
					if tok.kind == tokenKindEOL {
						t.Fatalf("expected an error, lexed to EOL")
					}
				}
			}
			for i, want := range tt.tokens {
				tok, err := l.next()
				if err != nil {
					t.Fatalf("unexpected error at token %v: %v", i, err)
				}
				if tok.kind != want.kind || tok.term != want.term || tok.name != want.name {
					t.Fatalf("token %v: expected %+v, got %+v", i, want, tok)
				}
			}
		})
	}
}
