package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "repl",
		Short:   "Interactively check test sequences against grammars",
		Example: `  bnfcheck repl`,
		Args:    cobra.NoArgs,
		RunE:    runRepl,
	}
	rootCmd.AddCommand(cmd)
}

// runRepl loops over sessions: a grammar filename (q exits), a test
// filename, then the session output. A failing session does not end
// the loop.
func runRepl(cmd *cobra.Command, args []string) error {
	rl, err := readline.New("grammar> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("Input filename with grammar or q to exit")
	for {
		rl.SetPrompt("grammar> ")
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		gpath := strings.TrimSpace(line)
		if gpath == "" {
			continue
		}
		if gpath == "q" {
			break
		}

		pterm.Info.Println("Input filename with test sequences")
		rl.SetPrompt("tests> ")
		line, err = rl.Readline()
		if err != nil {
			break
		}
		tpath := strings.TrimSpace(line)

		tracer().Infof("session: grammar=%q tests=%q", gpath, tpath)
		g, _, err := readGrammar(gpath)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		cases, err := readTestCases(tpath)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		runSession(g, cases)
		pterm.Info.Println("Input filename with grammar or q to exit")
	}
	pterm.Info.Println("Good bye!")
	return nil
}
