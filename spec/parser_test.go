package spec

import (
	"errors"
	"strings"
	"testing"

	verr "github.com/rokkenjima/bnfcheck/error"
	"github.com/rokkenjima/bnfcheck/grammar"
)

func TestParse(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		want    *grammar.Grammar
		names   []string
	}{
		{
			caption: "single production, single terminal",
			src:     "<S>::=a",
			want: buildGrammar(0,
				testRule{0, []grammar.Derivation{word("a")}},
			),
			names: []string{"S"},
		},
		{
			caption: "alternatives and an ε-production",
			src:     "<S>::=a<S>|",
			want: buildGrammar(0,
				testRule{0, []grammar.Derivation{
					{grammar.Term('a'), grammar.NonTerm(0)},
					grammar.EmptyWord,
				}},
			),
			names: []string{"S"},
		},
		{
			caption: "identifiers count from 0 in order of first appearance",
			src: strings.Join([]string{
				"<S>::=a<A>b",
				"<A>::=c|",
			}, "\n"),
			want: buildGrammar(0,
				testRule{0, []grammar.Derivation{
					{grammar.Term('a'), grammar.NonTerm(1), grammar.Term('b')},
				}},
				testRule{1, []grammar.Derivation{word("c"), grammar.EmptyWord}},
			),
			names: []string{"S", "A"},
		},
		{
			caption: "a reference may precede its productions",
			src: strings.Join([]string{
				"<E>::=<E>+<T>|<T>",
				"<T>::=a",
			}, "\n"),
			want: buildGrammar(0,
				testRule{0, []grammar.Derivation{
					{grammar.NonTerm(0), grammar.Term('+'), grammar.NonTerm(1)},
					{grammar.NonTerm(1)},
				}},
				testRule{1, []grammar.Derivation{word("a")}},
			),
			names: []string{"E", "T"},
		},
		{
			caption: "escaped markers load as terminals",
			src:     `<S>::=\<a\>|\||\\`,
			want: buildGrammar(0,
				testRule{0, []grammar.Derivation{
					word("<a>"),
					word("|"),
					word(`\`),
				}},
			),
			names: []string{"S"},
		},
		{
			caption: "duplicate alternatives collapse",
			src:     "<S>::=a|a",
			want: buildGrammar(0,
				testRule{0, []grammar.Derivation{word("a")}},
			),
			names: []string{"S"},
		},
		{
			caption: "surrounding blanks on the left side are ignored",
			src:     "  <S>  ::=a",
			want: buildGrammar(0,
				testRule{0, []grammar.Derivation{word("a")}},
			),
			names: []string{"S"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g, symbols, err := Parse(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !g.Equal(tt.want) {
				t.Fatalf("unexpected grammar:\n%v\nwant:\n%v", g, tt.want)
			}
			for id, name := range tt.names {
				got, ok := symbols.ToName(grammar.NonTerminal(id))
				if !ok || got != name {
					t.Fatalf("expected id %v to name %q, got %q (%v)", id, name, got, ok)
				}
				gotID, ok := symbols.ToID(name)
				if !ok || gotID != grammar.NonTerminal(id) {
					t.Fatalf("expected name %q to map to id %v, got %v (%v)", name, id, gotID, ok)
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		err     error
		row     int
	}{
		{
			caption: "missing production sign",
			src:     "<S>=a",
			err:     synErrNoProductionSign,
			row:     1,
		},
		{
			caption: "blank line",
			src:     "<S>::=a\n\n<A>::=b",
			err:     synErrNoProductionSign,
			row:     2,
		},
		{
			caption: "left side is not bracketed",
			src:     "S::=a",
			err:     synErrMalformedLHS,
			row:     1,
		},
		{
			caption: "left side is a lone '<'",
			src:     "<::=a",
			err:     synErrMalformedLHS,
			row:     1,
		},
		{
			caption: "nested '<' in a reference",
			src:     "<S>::=<a<b>",
			err:     synErrNestedNonTerminal,
			row:     1,
		},
		{
			caption: "unmatched '>'",
			src:     "<S>::=a>b",
			err:     synErrUnmatchedClose,
			row:     1,
		},
		{
			caption: "unterminated reference",
			src:     "<S>::=<ab",
			err:     synErrUnclosedNonTerminal,
			row:     1,
		},
		{
			caption: "unterminated escape",
			src:     "<S>::=ab\\",
			err:     synErrIncompletedEscSeq,
			row:     1,
		},
		{
			caption: "invalid escaped character",
			src:     `<S>::=\a`,
			err:     synErrInvalidEscSeq,
			row:     1,
		},
		{
			caption: "the row of the failing line is reported",
			src:     "<S>::=a\n<A>::=<b",
			err:     synErrUnclosedNonTerminal,
			row:     2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, _, err := Parse(strings.NewReader(tt.src))
			if err == nil {
				t.Fatalf("expected an error")
			}
			var specErr *verr.SpecError
			if !errors.As(err, &specErr) {
				t.Fatalf("expected a SpecError, got %v", err)
			}
			if specErr.Cause != tt.err {
				t.Fatalf("expected %v, got %v", tt.err, specErr.Cause)
			}
			if specErr.Row != tt.row {
				t.Fatalf("expected row %v, got %v", tt.row, specErr.Row)
			}
		})
	}
}

func TestParseEmptySource(t *testing.T) {
	g, _, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.NonTerminals()) != 0 || g.Start() != 0 {
		t.Fatalf("expected an empty grammar with start 0, got:\n%v", g)
	}
}

// --- test helpers ---

type testRule struct {
	lhs grammar.NonTerminal
	rhs []grammar.Derivation
}

func buildGrammar(start grammar.NonTerminal, rules ...testRule) *grammar.Grammar {
	g := grammar.NewGrammar(start)
	for _, r := range rules {
		g.AddRule(r.lhs, r.rhs...)
	}
	return g
}

func word(s string) grammar.Derivation {
	d := make(grammar.Derivation, 0, len(s))
	for _, r := range s {
		d = append(d, grammar.Term(r))
	}
	return d
}
