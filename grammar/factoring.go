package grammar

// Factorize left-factors the grammar: alternatives of one non-terminal
// sharing a prefix are rewritten as the prefix followed by a fresh
// non-terminal holding the diverging suffixes. Fresh identifiers come
// from a single counter shared across the whole pass, so they stay
// globally unique.
//
// Factorize returns a new grammar; the receiver is left unchanged.
func (g *Grammar) Factorize() *Grammar {
	out := NewGrammar(g.start)
	next := g.MaxNonTerminal() + 1
	for _, lhs := range g.NonTerminals() {
		root := newPrefixNode()
		for _, d := range g.Rules(lhs) {
			root.insert(d)
		}
		separatePrefixes(out, lhs, EmptyWord, root, -1, &next)
	}
	tracer().Debugf("after left factoring:\n%v", out)
	return out
}

// separatePrefixes walks the prefix tree, accumulating symbols into the
// current prefix while the path has a single child, and emitting a rule
// `layer -> prefix fresh` at each fork before descending under the
// fresh non-terminal. Leaves emit the accumulated prefix under the
// current layer. commonDepth counts the single-child run; -1 marks the
// root call.
func separatePrefixes(out *Grammar, layer NonTerminal, prefix Derivation, root *prefixNode, commonDepth int, next *NonTerminal) {
	if root == nil {
		out.AddRule(layer, prefix)
		return
	}

	if commonDepth == -1 {
		commonDepth = 1
	} else if root.children.Size() == 1 {
		commonDepth++
	} else {
		commonDepth = 0
	}

	newLayer := layer
	if commonDepth < 1 {
		newLayer = *next
		*next = *next + 1
		out.AddRule(layer, prefix.concat(Derivation{NonTerm(newLayer)}))
	}

	it := root.children.Iterator()
	for it.Next() {
		k := it.Key().(prefixKey)
		child := it.Value().(*prefixNode)
		var step Derivation
		if !k.empty {
			step = Derivation{k.sym}
		}
		var newPrefix Derivation
		if commonDepth >= 1 {
			newPrefix = prefix.concat(step)
		} else {
			newPrefix = EmptyWord.concat(step)
		}
		separatePrefixes(out, newLayer, newPrefix, child, commonDepth, next)
	}
}
