package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestVanishingSet(t *testing.T) {
	tests := []struct {
		caption   string
		g         *Grammar
		vanishing []NonTerminal
	}{
		{
			caption: "direct ε-production",
			g: build(0,
				rule{0, []Derivation{word("a"), EmptyWord}},
			),
			vanishing: []NonTerminal{0},
		},
		{
			caption: "vanishing propagates through all-vanishing derivations",
			g: build(0,
				rule{0, []Derivation{deriv(NonTerm(1), NonTerm(2))}},
				rule{1, []Derivation{EmptyWord}},
				rule{2, []Derivation{EmptyWord, word("c")}},
			),
			vanishing: []NonTerminal{0, 1, 2},
		},
		{
			caption: "a terminal blocks vanishing",
			g: build(0,
				rule{0, []Derivation{deriv(NonTerm(1), Term('x'))}},
				rule{1, []Derivation{EmptyWord}},
			),
			vanishing: []NonTerminal{1},
		},
		{
			caption: "no ε-productions at all",
			g: build(0,
				rule{0, []Derivation{word("a")}},
			),
			vanishing: []NonTerminal{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			got := tt.g.VanishingSet()
			if len(got) != len(tt.vanishing) {
				t.Fatalf("expected %v vanishing symbols, got %v", len(tt.vanishing), len(got))
			}
			for _, n := range tt.vanishing {
				if _, ok := got[n]; !ok {
					t.Fatalf("expected <%v> to vanish", int(n))
				}
			}
		})
	}
}

func TestRebuildVanishing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfcheck.grammar")
	defer teardown()

	tests := []struct {
		caption string
		g       *Grammar
		want    *Grammar
	}{
		{
			caption: "nullable middle symbol",
			g: build(0,
				rule{0, []Derivation{deriv(Term('a'), NonTerm(1), Term('b'))}},
				rule{1, []Derivation{word("c"), EmptyWord}},
			),
			want: build(0,
				rule{0, []Derivation{deriv(Term('a'), NonTerm(1), Term('b')), word("ab")}},
				rule{1, []Derivation{word("c")}},
			),
		},
		{
			caption: "every non-empty subset of occurrences is produced",
			g: build(0,
				rule{0, []Derivation{deriv(NonTerm(1), Term('x'), NonTerm(1))}},
				rule{1, []Derivation{word("a"), EmptyWord}},
			),
			want: build(0,
				rule{0, []Derivation{
					deriv(NonTerm(1), Term('x'), NonTerm(1)),
					deriv(Term('x'), NonTerm(1)),
					deriv(NonTerm(1), Term('x')),
					word("x"),
				}},
				rule{1, []Derivation{word("a")}},
			),
		},
		{
			caption: "balanced parentheses",
			g: build(0,
				rule{0, []Derivation{
					deriv(NonTerm(0), NonTerm(0)),
					deriv(Term('('), NonTerm(0), Term(')')),
					EmptyWord,
				}},
			),
			want: build(0,
				rule{0, []Derivation{
					deriv(NonTerm(0), NonTerm(0)),
					deriv(Term('('), NonTerm(0), Term(')')),
					deriv(NonTerm(0)),
					word("()"),
				}},
			),
		},
		{
			caption: "a symbol deriving only ε disappears",
			g: build(0,
				rule{0, []Derivation{deriv(Term('a'), NonTerm(1))}},
				rule{1, []Derivation{EmptyWord}},
			),
			want: build(0,
				rule{0, []Derivation{deriv(Term('a'), NonTerm(1)), word("a")}},
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			vanishing := tt.g.VanishingSet()
			got := tt.g.RebuildVanishing(vanishing)
			if !got.Equal(tt.want) {
				t.Fatalf("unexpected grammar:\n%v\nwant:\n%v", got, tt.want)
			}
		})
	}
}
