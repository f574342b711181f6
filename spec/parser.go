package spec

import (
	"bufio"
	"io"
	"strings"

	verr "github.com/rokkenjima/bnfcheck/error"
	"github.com/rokkenjima/bnfcheck/grammar"
)

const productionSign = "::="

// SymbolTable maps non-terminal names to their identifiers and back.
// Identifiers count from 0 in order of first appearance, so the first
// production's left side becomes the start symbol.
type SymbolTable struct {
	name2ID map[string]grammar.NonTerminal
	names   []string
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{
		name2ID: map[string]grammar.NonTerminal{},
	}
}

func (t *SymbolTable) intern(name string) grammar.NonTerminal {
	if id, ok := t.name2ID[name]; ok {
		return id
	}
	id := grammar.NonTerminal(len(t.names))
	t.name2ID[name] = id
	t.names = append(t.names, name)
	return id
}

// ToID returns the identifier of a known non-terminal name.
func (t *SymbolTable) ToID(name string) (grammar.NonTerminal, bool) {
	id, ok := t.name2ID[name]
	return id, ok
}

// ToName returns the source name of an identifier. Identifiers
// allocated by the normalization pipeline have no name.
func (t *SymbolTable) ToName(id grammar.NonTerminal) (string, bool) {
	if id < 0 || int(id) >= len(t.names) {
		return "", false
	}
	return t.names[id], true
}

// Parse loads a grammar: one production per line, of the form
// <name>::=alternative|...|alternative. The start symbol is the first
// production's left side. Errors are fatal and row-tagged.
func Parse(src io.Reader) (*grammar.Grammar, *SymbolTable, error) {
	p := &parser{
		symbols: newSymbolTable(),
		g:       grammar.NewGrammar(0),
	}
	err := p.parse(src)
	if err != nil {
		return nil, nil, err
	}
	return p.g, p.symbols, nil
}

type parser struct {
	symbols *SymbolTable
	g       *grammar.Grammar
}

func (p *parser) parse(src io.Reader) error {
	s := bufio.NewScanner(src)
	row := 0
	for s.Scan() {
		row++
		err := p.parseProduction(s.Text(), row)
		if err != nil {
			return err
		}
	}
	return s.Err()
}

func (p *parser) parseProduction(line string, row int) error {
	pieces := strings.Split(line, productionSign)
	if len(pieces) != 2 {
		return &verr.SpecError{
			Cause: synErrNoProductionSign,
			Row:   row,
		}
	}
	lhs := strings.TrimSpace(pieces[0])
	if len(lhs) < 2 || !strings.HasPrefix(lhs, "<") || !strings.HasSuffix(lhs, ">") {
		return &verr.SpecError{
			Cause:  synErrMalformedLHS,
			Detail: lhs,
			Row:    row,
		}
	}
	lhsID := p.symbols.intern(lhs[1 : len(lhs)-1])

	lex := newLexer(pieces[1], row)
	deriv := grammar.Derivation{}
	for {
		tok, err := lex.next()
		if err != nil {
			return err
		}
		switch tok.kind {
		case tokenKindTerminal:
			deriv = append(deriv, grammar.Term(tok.term))
		case tokenKindNonTerminal:
			deriv = append(deriv, grammar.NonTerm(p.symbols.intern(tok.name)))
		case tokenKindOr:
			p.g.AddRule(lhsID, deriv)
			deriv = grammar.Derivation{}
		case tokenKindEOL:
			p.g.AddRule(lhsID, deriv)
			return nil
		}
	}
}
