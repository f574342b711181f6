package grammar

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

type symbolKind string

const (
	symbolKindTerminal    = symbolKind("terminal")
	symbolKindNonTerminal = symbolKind("non-terminal")
)

func (k symbolKind) String() string {
	return string(k)
}

// NonTerminal identifies a grammar variable. The loader numbers
// variables from 0 in order of first appearance; the pipeline allocates
// fresh ones past the current extrema, so negative identifiers are
// legal (the restored nullable start sits below the smallest existing
// identifier).
type NonTerminal int

// Symbol is one element of a derivation: a terminal character or a
// non-terminal identifier, distinguished by its kind tag.
type Symbol struct {
	kind    symbolKind
	term    rune
	nonTerm NonTerminal
}

// Term returns the terminal symbol for the character r.
func Term(r rune) Symbol {
	return Symbol{
		kind: symbolKindTerminal,
		term: r,
	}
}

// NonTerm returns the symbol referencing the non-terminal n.
func NonTerm(n NonTerminal) Symbol {
	return Symbol{
		kind:    symbolKindNonTerminal,
		nonTerm: n,
	}
}

func (s Symbol) IsTerminal() bool {
	return s.kind == symbolKindTerminal
}

func (s Symbol) IsNonTerminal() bool {
	return s.kind == symbolKindNonTerminal
}

// Rune returns the character of a terminal symbol.
func (s Symbol) Rune() rune {
	return s.term
}

// ID returns the identifier of a non-terminal symbol.
func (s Symbol) ID() NonTerminal {
	return s.nonTerm
}

func (s Symbol) String() string {
	if s.kind == symbolKindNonTerminal {
		return fmt.Sprintf("<%v>", int(s.nonTerm))
	}
	return string(s.term)
}

// Derivation is the right-hand side of one production: an ordered
// sequence of symbols, possibly empty.
type Derivation []Symbol

// EmptyWord is the zero-length derivation, deriving ε.
var EmptyWord = Derivation{}

func (d Derivation) IsEmpty() bool {
	return len(d) == 0
}

// concat returns a fresh derivation holding d followed by tail.
// Neither operand is aliased by the result.
func (d Derivation) concat(tail Derivation) Derivation {
	out := make(Derivation, 0, len(d)+len(tail))
	out = append(out, d...)
	return append(out, tail...)
}

func (d Derivation) String() string {
	if len(d) == 0 {
		return "[n]"
	}
	var b strings.Builder
	for _, sym := range d {
		b.WriteString(sym.String())
	}
	return b.String()
}

// derivationID is the canonical identity of a derivation; rule sets
// de-duplicate on it.
type derivationID [32]byte

func genDerivationID(d Derivation) derivationID {
	seq := make([]byte, 0, len(d)*5)
	for _, sym := range d {
		tag := byte('n')
		code := int32(sym.nonTerm)
		if sym.kind == symbolKindTerminal {
			tag = 't'
			code = int32(sym.term)
		}
		seq = append(seq, tag, byte(code>>24), byte(code>>16), byte(code>>8), byte(code))
	}
	return derivationID(sha256.Sum256(seq))
}
