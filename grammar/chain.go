package grammar

import "sort"

// RemoveChainProductions removes unit productions (rules of the form
// A -> B with B a single non-terminal). The chain relation is closed
// transitively, every unit rule is deleted, and each non-terminal
// receives the non-unit rules of all its chain targets directly. The
// step can leave previously reachable non-terminals unreachable.
//
// The grammar is modified in place and returned.
func (g *Grammar) RemoveChainProductions() *Grammar {
	chainPairs := map[NonTerminal]map[NonTerminal]struct{}{}
	g.EachRule(func(lhs NonTerminal, rhs Derivation) {
		if !isUnit(rhs) {
			return
		}
		set, ok := chainPairs[lhs]
		if !ok {
			set = map[NonTerminal]struct{}{}
			chainPairs[lhs] = set
		}
		set[rhs[0].ID()] = struct{}{}
	})

	for changed := true; changed; {
		changed = false
		for _, set := range chainPairs {
			targets := make([]NonTerminal, 0, len(set))
			for r := range set {
				targets = append(targets, r)
			}
			for _, r := range targets {
				for rr := range chainPairs[r] {
					if _, ok := set[rr]; !ok {
						set[rr] = struct{}{}
						changed = true
					}
				}
			}
		}
	}

	// Snapshot the non-unit rules before rewriting, so every source
	// receives its targets' original rules regardless of the order the
	// sources are processed in.
	nonUnit := map[NonTerminal][]Derivation{}
	g.EachRule(func(lhs NonTerminal, rhs Derivation) {
		if !isUnit(rhs) {
			nonUnit[lhs] = append(nonUnit[lhs], rhs)
		}
	})

	for _, lhs := range g.NonTerminals() {
		set, ok := chainPairs[lhs]
		if !ok {
			continue
		}
		targets := make([]NonTerminal, 0, len(set))
		for r := range set {
			targets = append(targets, r)
		}
		sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
		for _, r := range targets {
			g.AddRule(lhs, nonUnit[r]...)
		}
		var units []Derivation
		for _, d := range g.Rules(lhs) {
			if isUnit(d) {
				units = append(units, d)
			}
		}
		for _, d := range units {
			_ = g.DeleteRule(lhs, d)
		}
	}
	tracer().Debugf("after unit-production elimination:\n%v", g)
	return g
}

func isUnit(d Derivation) bool {
	return len(d) == 1 && d[0].IsNonTerminal()
}
