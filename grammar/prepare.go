package grammar

// PrepareForChecking normalizes the grammar into the form the
// recursive-descent checker expects and returns it; the receiver is
// left unchanged.
//
// A left-recursive grammar goes through ε-elimination, unit-production
// elimination, useless-symbol elimination and left-recursion removal;
// if the start symbol could vanish, a fresh nullable start is restored
// afterwards. A grammar without left recursion is left-factored
// instead; the two branches stay disjoint, since factoring after
// recursion removal produces spurious expansions. Both branches finish
// with a useless-symbol cleanup.
func (g *Grammar) PrepareForChecking() *Grammar {
	p := g.Copy()
	vanishing := p.VanishingSet()
	if p.HasLeftRecursion(vanishing) {
		tracer().Infof("grammar has left recursion")
		_, startVanishes := vanishing[p.start]
		p = p.RebuildVanishing(vanishing).
			RemoveChainProductions().
			RemoveUseless().
			RemoveLeftRecursion()
		if startVanishes {
			// ε-elimination dropped the empty word from the language;
			// give it back through a fresh start below every existing
			// identifier.
			newStart := p.MinNonTerminal() - 1
			p.AddRule(newStart, Derivation{NonTerm(p.start)}, EmptyWord)
			p.SetStart(newStart)
		}
	} else {
		tracer().Infof("no left recursion, performing left factoring")
		p = p.Factorize()
	}
	return p.RemoveUseless()
}
