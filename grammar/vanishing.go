package grammar

// VanishingSet computes the non-terminals that derive the empty word
// in zero or more steps. Seeded with every direct ε-production, then
// iterated to fixpoint: a non-terminal vanishes when one of its
// derivations consists solely of vanishing non-terminals.
func (g *Grammar) VanishingSet() map[NonTerminal]struct{} {
	vanishing := map[NonTerminal]struct{}{}
	g.EachRule(func(lhs NonTerminal, rhs Derivation) {
		if rhs.IsEmpty() {
			vanishing[lhs] = struct{}{}
		}
	})

	for changed := true; changed; {
		changed = false
		g.EachRule(func(lhs NonTerminal, rhs Derivation) {
			if _, ok := vanishing[lhs]; ok {
				return
			}
			for _, sym := range rhs {
				if sym.IsTerminal() {
					return
				}
				if _, ok := vanishing[sym.ID()]; !ok {
					return
				}
			}
			vanishing[lhs] = struct{}{}
			changed = true
		})
	}
	return vanishing
}

// RebuildVanishing removes every direct ε-production and compensates by
// adding, for each rule containing vanishing non-terminals, the
// variants with occurrences of those non-terminals deleted. A symbol
// whose pass grew any rule set is requeued, since a fresh rule may
// itself contain vanishing occurrences; one deletion per occurrence per
// pass reaches every non-empty subset at the fixpoint.
//
// The grammar is modified in place and returned. The caller's set is
// left intact.
func (g *Grammar) RebuildVanishing(vanishing map[NonTerminal]struct{}) *Grammar {
	worklist := make([]NonTerminal, 0, len(vanishing))
	queued := map[NonTerminal]struct{}{}
	for _, lhs := range g.NonTerminals() {
		if _, ok := vanishing[lhs]; ok {
			worklist = append(worklist, lhs)
			queued[lhs] = struct{}{}
		}
	}

	for _, n := range worklist {
		// Indirectly vanishing symbols have no direct ε-production.
		if g.HasRule(n, EmptyWord) {
			_ = g.DeleteRule(n, EmptyWord)
		}
	}

	for len(worklist) > 0 {
		v := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		delete(queued, v)

		changed := false
		for _, lhs := range g.NonTerminals() {
			var rebuilt []Derivation
			for _, d := range g.Rules(lhs) {
				for i, sym := range d {
					if !sym.IsNonTerminal() || sym.ID() != v {
						continue
					}
					shorter := d[:i].concat(d[i+1:])
					if !shorter.IsEmpty() {
						rebuilt = append(rebuilt, shorter)
					}
				}
			}
			if g.AddRule(lhs, rebuilt...) {
				changed = true
			}
		}
		if changed {
			if _, ok := queued[v]; !ok {
				worklist = append(worklist, v)
				queued[v] = struct{}{}
			}
		}
	}
	tracer().Debugf("after ε-elimination:\n%v", g)
	return g
}
