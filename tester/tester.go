package tester

import (
	"fmt"

	"github.com/rokkenjima/bnfcheck/grammar"
)

// TestResult is the outcome of checking one candidate word.
type TestResult struct {
	Word     string
	Row      int
	Expected bool
	Actual   bool
}

func (r *TestResult) Passed() bool {
	return r.Expected == r.Actual
}

func (r *TestResult) String() string {
	if r.Passed() {
		return fmt.Sprintf("Passed %q", r.Word)
	}
	return fmt.Sprintf("%v: expected %v but got %v: %q", r.Row, r.Expected, r.Actual, r.Word)
}

// Tester checks candidate words against a prepared grammar.
type Tester struct {
	Grammar *grammar.Grammar
	First   *grammar.FirstIndex
	Cases   []*TestCase
}

// NewTester builds a tester over a prepared grammar, indexing it once
// for all cases.
func NewTester(g *grammar.Grammar, cases []*TestCase) *Tester {
	return &Tester{
		Grammar: g,
		First:   grammar.BuildFirst(g),
		Cases:   cases,
	}
}

// Run checks every case and returns one result per case, in input
// order.
func (t *Tester) Run() []*TestResult {
	first := t.First
	if first == nil {
		first = grammar.BuildFirst(t.Grammar)
	}
	results := make([]*TestResult, 0, len(t.Cases))
	for _, c := range t.Cases {
		actual := t.Grammar.CheckWord(c.Word, first)
		tracer().Debugf("%q: expected %v, got %v", c.Word, c.Expected, actual)
		results = append(results, &TestResult{
			Word:     c.Word,
			Row:      c.Row,
			Expected: c.Expected,
			Actual:   actual,
		})
	}
	return results
}

// AllPassed reports whether no result is a mismatch.
func AllPassed(results []*TestResult) bool {
	for _, r := range results {
		if !r.Passed() {
			return false
		}
	}
	return true
}
