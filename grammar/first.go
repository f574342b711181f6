package grammar

// firstKey addresses one entry of the index: a non-terminal together
// with the terminal its derivations start with, or with the empty-word
// marker. The marker is out-of-band; no terminal collides with it.
type firstKey struct {
	lhs   NonTerminal
	term  rune
	empty bool
}

type firstEntry struct {
	derivs []Derivation
	ids    map[derivationID]struct{}
}

func newFirstEntry() *firstEntry {
	return &firstEntry{
		ids: map[derivationID]struct{}{},
	}
}

func (e *firstEntry) add(d Derivation) {
	id := genDerivationID(d)
	if _, ok := e.ids[id]; ok {
		return
	}
	e.ids[id] = struct{}{}
	e.derivs = append(e.derivs, d)
}

func (e *firstEntry) has(id derivationID) bool {
	_, ok := e.ids[id]
	return ok
}

// FirstIndex predicts derivations by their literal leading terminal.
// It maps (non-terminal, terminal) pairs, plus (non-terminal, ε) for
// empty derivations, to the derivations starting that way. Rules led
// by a non-terminal are not indexed; the checker falls back to the
// full rule set for those.
//
// The index shares no mutable state with the grammar it was built
// from; mutating the grammar invalidates the index.
type FirstIndex struct {
	entries map[firstKey]*firstEntry
}

// BuildFirst indexes the given grammar. Building twice from an
// unchanged grammar yields equal indices.
func BuildFirst(g *Grammar) *FirstIndex {
	idx := &FirstIndex{
		entries: map[firstKey]*firstEntry{},
	}
	g.EachRule(func(lhs NonTerminal, rhs Derivation) {
		var k firstKey
		if rhs.IsEmpty() {
			k = firstKey{lhs: lhs, empty: true}
		} else {
			if rhs[0].IsNonTerminal() {
				return
			}
			k = firstKey{lhs: lhs, term: rhs[0].Rune()}
		}
		e, ok := idx.entries[k]
		if !ok {
			e = newFirstEntry()
			idx.entries[k] = e
		}
		e.add(rhs)
	})
	return idx
}

// find returns the entry predicting lhs's derivations for the next
// input character, or for the end of input when atEnd is set. A nil
// result predicts nothing.
func (idx *FirstIndex) find(lhs NonTerminal, next rune, atEnd bool) *firstEntry {
	if atEnd {
		return idx.entries[firstKey{lhs: lhs, empty: true}]
	}
	return idx.entries[firstKey{lhs: lhs, term: next}]
}
