package grammar

// RemoveUseless removes dead non-terminals first and unreachable ones
// second. The order matters: dropping a dead symbol's rules can orphan
// otherwise reachable non-terminals, which only the second pass
// catches.
func (g *Grammar) RemoveUseless() *Grammar {
	return g.removeDead().removeUnreachable()
}

// removeDead keeps only non-terminals that derive at least one
// terminal-only string, and only rules whose non-terminals all do.
func (g *Grammar) removeDead() *Grammar {
	terminable := map[NonTerminal]struct{}{}
	g.EachRule(func(lhs NonTerminal, rhs Derivation) {
		for _, sym := range rhs {
			if sym.IsNonTerminal() {
				return
			}
		}
		terminable[lhs] = struct{}{}
	})

	for changed := true; changed; {
		changed = false
		g.EachRule(func(lhs NonTerminal, rhs Derivation) {
			if _, ok := terminable[lhs]; ok {
				return
			}
			if !allNonTermsIn(rhs, terminable) {
				return
			}
			terminable[lhs] = struct{}{}
			changed = true
		})
	}

	out := NewGrammar(g.start)
	g.EachRule(func(lhs NonTerminal, rhs Derivation) {
		if _, ok := terminable[lhs]; !ok {
			return
		}
		if allNonTermsIn(rhs, terminable) {
			out.AddRule(lhs, rhs)
		}
	})
	return out
}

// removeUnreachable keeps only non-terminals reachable from the start
// symbol through rule right-hand sides.
func (g *Grammar) removeUnreachable() *Grammar {
	reachable := map[NonTerminal]struct{}{g.start: {}}
	queue := []NonTerminal{g.start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, d := range g.Rules(n) {
			for _, sym := range d {
				if !sym.IsNonTerminal() {
					continue
				}
				if _, ok := reachable[sym.ID()]; ok {
					continue
				}
				reachable[sym.ID()] = struct{}{}
				queue = append(queue, sym.ID())
			}
		}
	}

	out := NewGrammar(g.start)
	g.EachRule(func(lhs NonTerminal, rhs Derivation) {
		if _, ok := reachable[lhs]; ok {
			out.AddRule(lhs, rhs)
		}
	})
	return out
}

// allNonTermsIn reports whether every non-terminal of d belongs to the
// set. Terminals never disqualify a derivation.
func allNonTermsIn(d Derivation, set map[NonTerminal]struct{}) bool {
	for _, sym := range d {
		if !sym.IsNonTerminal() {
			continue
		}
		if _, ok := set[sym.ID()]; !ok {
			return false
		}
	}
	return true
}
