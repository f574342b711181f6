package grammar

// rule pairs one non-terminal with its derivations, for compact test
// grammars.
type rule struct {
	lhs NonTerminal
	rhs []Derivation
}

func build(start NonTerminal, rules ...rule) *Grammar {
	g := NewGrammar(start)
	for _, r := range rules {
		g.AddRule(r.lhs, r.rhs...)
	}
	return g
}

func deriv(syms ...Symbol) Derivation {
	return Derivation(syms)
}

// word returns a derivation of single-character terminals.
func word(s string) Derivation {
	d := make(Derivation, 0, len(s))
	for _, r := range s {
		d = append(d, Term(r))
	}
	return d
}
