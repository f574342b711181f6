package grammar

// CheckWord reports whether word belongs to the language of the
// grammar. The grammar must be prepared (see PrepareForChecking) for
// the descent to be bounded; first may be nil, in which case an index
// is built on the fly.
func (g *Grammar) CheckWord(word string, first *FirstIndex) bool {
	if first == nil {
		first = BuildFirst(g)
	}
	return g.descend([]rune(word), Derivation{NonTerm(g.start)}, first)
}

// descend matches the leading characters of suffix against predicted,
// the sequence of symbols remaining to match. Terminals must match
// literally; a non-terminal is expanded by trying the derivations the
// index predicts for the next character first, then the rest of its
// rule set, backtracking on failure.
func (g *Grammar) descend(suffix []rune, predicted Derivation, first *FirstIndex) bool {
	if len(predicted) == 0 {
		return len(suffix) == 0
	}
	for i, sym := range predicted {
		if sym.IsTerminal() {
			if i >= len(suffix) || suffix[i] != sym.Rune() {
				return false
			}
			continue
		}

		set, ok := g.rules[sym.ID()]
		if !ok {
			return false
		}
		atEnd := i >= len(suffix)
		var next rune
		if !atEnd {
			next = suffix[i]
		}
		entry := first.find(sym.ID(), next, atEnd)
		rest := predicted[i+1:]
		if entry != nil {
			for _, d := range entry.derivs {
				if g.descend(suffix[i:], d.concat(rest), first) {
					return true
				}
			}
		}
		for j, d := range set.derivs {
			if entry != nil && entry.has(set.ids[j]) {
				continue
			}
			if g.descend(suffix[i:], d.concat(rest), first) {
				return true
			}
		}
		return false
	}
	return len(predicted) == len(suffix)
}
