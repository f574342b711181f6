package grammar

// HasLeftRecursion reports whether a left-recursive cycle exists
// anywhere in the grammar, not only in the part reachable from the
// start symbol. The left-derivation graph has an edge A -> B whenever
// some rule of A exposes B in leftmost position once every preceding
// symbol vanishes.
func (g *Grammar) HasLeftRecursion(vanishing map[NonTerminal]struct{}) bool {
	grey := map[NonTerminal]struct{}{}
	black := map[NonTerminal]struct{}{}
	for _, lhs := range g.NonTerminals() {
		if _, ok := black[lhs]; ok {
			continue
		}
		if g.hasLeftCycle(lhs, vanishing, grey, black) {
			return true
		}
	}
	return false
}

// hasLeftCycle runs a three-color depth-first search: grey nodes are on
// the current expansion stack, black nodes are proven cycle-free.
// Walking a derivation stops at the first terminal and continues past a
// non-terminal only while it vanishes.
func (g *Grammar) hasLeftCycle(v NonTerminal, vanishing, grey, black map[NonTerminal]struct{}) bool {
	grey[v] = struct{}{}
	for _, d := range g.Rules(v) {
		for _, sym := range d {
			if sym.IsTerminal() {
				break
			}
			n := sym.ID()
			if _, ok := grey[n]; ok {
				return true
			}
			if _, ok := black[n]; !ok {
				if g.hasLeftCycle(n, vanishing, grey, black) {
					return true
				}
			}
			if _, ok := vanishing[n]; !ok {
				break
			}
		}
	}
	delete(grey, v)
	black[v] = struct{}{}
	return false
}

// RemoveLeftRecursion eliminates direct and indirect left recursion.
// It expects the ε-free, unit-free, useless-free form the recursive
// pipeline establishes beforehand.
//
// Non-terminals are ranked by discovery from the start symbol; for each
// non-terminal in rank order, rules led by a lower-ranked non-terminal
// are expanded with that non-terminal's rules, then direct recursion is
// removed by introducing a fresh tail non-terminal. Fresh identifiers
// grow from the grammar's maximum so they never collide.
//
// The grammar is modified in place and returned.
func (g *Grammar) RemoveLeftRecursion() *Grammar {
	rank := map[NonTerminal]int{}
	var ordered []NonTerminal
	stack := []NonTerminal{g.start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := rank[n]; ok {
			continue
		}
		if !g.HasRules(n) {
			continue
		}
		rank[n] = len(ordered)
		ordered = append(ordered, n)
		for _, d := range g.Rules(n) {
			for _, sym := range d {
				if !sym.IsNonTerminal() {
					continue
				}
				if _, ok := rank[sym.ID()]; !ok {
					stack = append(stack, sym.ID())
				}
			}
		}
	}

	next := g.MaxNonTerminal() + 1
	for _, a := range ordered {
		ar := rank[a]

		// Indirect expansion: a rule led by a lower-ranked
		// non-terminal is replaced by that non-terminal's rules with
		// the remainder appended.
		var expanded []Derivation
		for _, d := range g.Rules(a) {
			if len(d) > 0 && d[0].IsNonTerminal() {
				first := d[0].ID()
				if fr, ok := rank[first]; ok && fr < ar && g.HasRules(first) {
					for _, jd := range g.Rules(first) {
						expanded = append(expanded, jd.concat(d[1:]))
					}
					continue
				}
			}
			expanded = append(expanded, d)
		}

		// Direct elimination: A -> Aα | β becomes
		// A -> β | βA' and A' -> α | αA'.
		var alphas, betas []Derivation
		for _, d := range expanded {
			if len(d) > 0 && d[0].IsNonTerminal() && d[0].ID() == a {
				alphas = append(alphas, d[1:])
			} else {
				betas = append(betas, d)
			}
		}
		if len(alphas) == 0 {
			g.setRules(a, expanded)
			continue
		}

		prime := next
		next++
		primeTail := Derivation{NonTerm(prime)}
		aDerivs := make([]Derivation, 0, 2*len(betas))
		aDerivs = append(aDerivs, betas...)
		for _, b := range betas {
			aDerivs = append(aDerivs, b.concat(primeTail))
		}
		primeDerivs := make([]Derivation, 0, 2*len(alphas))
		primeDerivs = append(primeDerivs, alphas...)
		for _, al := range alphas {
			primeDerivs = append(primeDerivs, al.concat(primeTail))
		}
		g.setRules(a, aDerivs)
		g.setRules(prime, primeDerivs)
	}
	tracer().Debugf("after left-recursion elimination:\n%v", g)
	return g
}
