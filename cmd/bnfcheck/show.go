package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show <grammar file path>",
		Short:   "Show a grammar and its prepared form",
		Example: `  bnfcheck show grammar.bnf`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	g, _, err := readGrammar(args[0])
	if err != nil {
		return fmt.Errorf("Cannot read a grammar: %w", err)
	}
	pterm.Info.Println("Initial grammar.")
	fmt.Fprintln(os.Stdout, g)
	pterm.Info.Println("Preparations.")
	fmt.Fprintln(os.Stdout, g.PrepareForChecking())
	return nil
}
