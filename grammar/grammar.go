package grammar

import (
	"errors"
	"fmt"
)

// ErrUnknownRule reports an attempt to delete a rule that is not part
// of the grammar. Seeing it after a grammar has loaded successfully
// indicates a bug in the normalization pipeline.
var ErrUnknownRule = errors.New("unknown rule")

// derivationSet holds the right-hand sides of one non-terminal. It
// keeps set semantics on derivation identity while preserving insertion
// order, so repeated traversals of an unchanged grammar agree.
type derivationSet struct {
	derivs []Derivation
	ids    []derivationID
	index  map[derivationID]int
}

func newDerivationSet() *derivationSet {
	return &derivationSet{
		index: map[derivationID]int{},
	}
}

func (s *derivationSet) add(d Derivation) bool {
	id := genDerivationID(d)
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = len(s.derivs)
	s.derivs = append(s.derivs, d)
	s.ids = append(s.ids, id)
	return true
}

func (s *derivationSet) delete(d Derivation) bool {
	id := genDerivationID(d)
	at, ok := s.index[id]
	if !ok {
		return false
	}
	delete(s.index, id)
	s.derivs = append(s.derivs[:at], s.derivs[at+1:]...)
	s.ids = append(s.ids[:at], s.ids[at+1:]...)
	for i := at; i < len(s.ids); i++ {
		s.index[s.ids[i]] = i
	}
	return true
}

func (s *derivationSet) has(d Derivation) bool {
	_, ok := s.index[genDerivationID(d)]
	return ok
}

func (s *derivationSet) size() int {
	return len(s.derivs)
}

func (s *derivationSet) equal(other *derivationSet) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for id := range s.index {
		if _, ok := other.index[id]; !ok {
			return false
		}
	}
	return true
}

func (s *derivationSet) copy() *derivationSet {
	out := newDerivationSet()
	for _, d := range s.derivs {
		out.add(d.concat(nil))
	}
	return out
}

// Grammar aggregates a start non-terminal and the per-non-terminal
// derivation sets. A non-terminal has an entry only while it has at
// least one derivation.
type Grammar struct {
	start    NonTerminal
	rules    map[NonTerminal]*derivationSet
	lhsOrder []NonTerminal
}

// NewGrammar returns an empty grammar with the given start symbol.
func NewGrammar(start NonTerminal) *Grammar {
	return &Grammar{
		start: start,
		rules: map[NonTerminal]*derivationSet{},
	}
}

func (g *Grammar) Start() NonTerminal {
	return g.start
}

func (g *Grammar) SetStart(start NonTerminal) {
	g.start = start
}

// AddRule adds the derivations to lhs, ignoring ones already present.
// It reports whether any derivation was actually added.
func (g *Grammar) AddRule(lhs NonTerminal, rhs ...Derivation) bool {
	added := false
	for _, d := range rhs {
		set, ok := g.rules[lhs]
		if !ok {
			set = newDerivationSet()
			g.rules[lhs] = set
			g.lhsOrder = append(g.lhsOrder, lhs)
		}
		if set.add(d) {
			added = true
		}
	}
	return added
}

// DeleteRule removes one derivation of lhs. Removing the last
// derivation removes the non-terminal's entry entirely. The returned
// error wraps ErrUnknownRule if the rule is not present.
func (g *Grammar) DeleteRule(lhs NonTerminal, rhs Derivation) error {
	set, ok := g.rules[lhs]
	if !ok || !set.delete(rhs) {
		return fmt.Errorf("delete <%v> -> %v: %w", int(lhs), rhs, ErrUnknownRule)
	}
	if set.size() == 0 {
		g.dropLHS(lhs)
	}
	return nil
}

func (g *Grammar) dropLHS(lhs NonTerminal) {
	delete(g.rules, lhs)
	for i, n := range g.lhsOrder {
		if n == lhs {
			g.lhsOrder = append(g.lhsOrder[:i], g.lhsOrder[i+1:]...)
			break
		}
	}
}

// setRules replaces the whole derivation set of lhs, de-duplicating
// but preserving the order of derivs. An empty replacement removes the
// entry.
func (g *Grammar) setRules(lhs NonTerminal, derivs []Derivation) {
	if _, ok := g.rules[lhs]; ok {
		set := newDerivationSet()
		g.rules[lhs] = set
		for _, d := range derivs {
			set.add(d)
		}
		if set.size() == 0 {
			g.dropLHS(lhs)
		}
		return
	}
	g.AddRule(lhs, derivs...)
}

// HasRule reports whether lhs derives rhs directly.
func (g *Grammar) HasRule(lhs NonTerminal, rhs Derivation) bool {
	set, ok := g.rules[lhs]
	return ok && set.has(rhs)
}

// HasRules reports whether lhs has any derivation.
func (g *Grammar) HasRules(lhs NonTerminal) bool {
	_, ok := g.rules[lhs]
	return ok
}

// Rules returns the derivations of lhs in insertion order. The slice
// is shared with the grammar; callers must not modify it.
func (g *Grammar) Rules(lhs NonTerminal) []Derivation {
	set, ok := g.rules[lhs]
	if !ok {
		return nil
	}
	return set.derivs
}

// NonTerminals returns every non-terminal that currently has rules, in
// insertion order.
func (g *Grammar) NonTerminals() []NonTerminal {
	out := make([]NonTerminal, len(g.lhsOrder))
	copy(out, g.lhsOrder)
	return out
}

// EachRule calls fn for every (lhs, rhs) pair. The order is stable
// within one traversal; fn must not mutate the grammar.
func (g *Grammar) EachRule(fn func(lhs NonTerminal, rhs Derivation)) {
	for _, lhs := range g.lhsOrder {
		for _, d := range g.rules[lhs].derivs {
			fn(lhs, d)
		}
	}
}

// MaxNonTerminal returns the largest non-terminal identifier occurring
// anywhere in the grammar, the start symbol included.
func (g *Grammar) MaxNonTerminal() NonTerminal {
	max := g.start
	g.EachRule(func(lhs NonTerminal, rhs Derivation) {
		if lhs > max {
			max = lhs
		}
		for _, sym := range rhs {
			if sym.IsNonTerminal() && sym.ID() > max {
				max = sym.ID()
			}
		}
	})
	return max
}

// MinNonTerminal returns the smallest non-terminal identifier occurring
// anywhere in the grammar, the start symbol included.
func (g *Grammar) MinNonTerminal() NonTerminal {
	min := g.start
	g.EachRule(func(lhs NonTerminal, rhs Derivation) {
		if lhs < min {
			min = lhs
		}
		for _, sym := range rhs {
			if sym.IsNonTerminal() && sym.ID() < min {
				min = sym.ID()
			}
		}
	})
	return min
}

// Equal reports structural equality: the same start symbol and the
// same derivation set for every non-terminal. Insertion order does not
// participate.
func (g *Grammar) Equal(other *Grammar) bool {
	if other == nil || g.start != other.start || len(g.rules) != len(other.rules) {
		return false
	}
	for lhs, set := range g.rules {
		oset, ok := other.rules[lhs]
		if !ok || !set.equal(oset) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the grammar.
func (g *Grammar) Copy() *Grammar {
	out := NewGrammar(g.start)
	for _, lhs := range g.lhsOrder {
		out.rules[lhs] = g.rules[lhs].copy()
		out.lhsOrder = append(out.lhsOrder, lhs)
	}
	return out
}
