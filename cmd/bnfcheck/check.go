package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/rokkenjima/bnfcheck/grammar"
	"github.com/rokkenjima/bnfcheck/spec"
	"github.com/rokkenjima/bnfcheck/tester"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "check <grammar file path> <test file path>",
		Short:   "Check a verdict-tagged test sequence against a grammar",
		Example: `  bnfcheck check grammar.bnf words.txt`,
		Args:    cobra.ExactArgs(2),
		RunE:    runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, _, err := readGrammar(args[0])
	if err != nil {
		return fmt.Errorf("Cannot read a grammar: %w", err)
	}
	cases, err := readTestCases(args[1])
	if err != nil {
		return fmt.Errorf("Cannot read test cases: %w", err)
	}
	if !runSession(g, cases) {
		return errors.New("Check failed")
	}
	return nil
}

// runSession prints the loaded and the prepared grammar, checks every
// case and reports mismatches. It reports whether all cases passed.
func runSession(g *grammar.Grammar, cases []*tester.TestCase) bool {
	pterm.Info.Println("Initial grammar.")
	fmt.Fprintln(os.Stdout, g)
	pterm.Info.Println("Preparations.")
	p := g.PrepareForChecking()
	fmt.Fprintln(os.Stdout, p)

	t := tester.NewTester(p, cases)
	passed := true
	for _, r := range t.Run() {
		if r.Passed() {
			continue
		}
		passed = false
		pterm.Error.Println(r)
	}
	if passed {
		pterm.Success.Println("All cases passed")
	}
	return passed
}

func readGrammar(path string) (*grammar.Grammar, *spec.SymbolTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return spec.Parse(f)
}

func readTestCases(path string) ([]*tester.TestCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tester.ParseTestCases(f)
}
