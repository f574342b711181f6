package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace *string
}{}

var rootCmd = &cobra.Command{
	Use:   "bnfcheck",
	Short: "Check words against a BNF context-free grammar",
	Long: `bnfcheck normalizes a context-free grammar for predictive recursive
descent and decides membership of candidate words:
- Loads grammars in the line-oriented BNF form (<S>::=a<A>|b).
- Removes left recursion, or left-factors the grammar when there is none.
- Checks verdict-tagged test sequences against the prepared grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initTracing(*rootFlags.trace)
	},
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
}

// traceKeys lists every trace selector the binary configures.
var traceKeys = []string{"bnfcheck.cli", "bnfcheck.grammar", "bnfcheck.tester"}

func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(tracing.TraceLevelFromString(level))
	}
}

// tracer traces with key 'bnfcheck.cli'.
func tracer() tracing.Trace {
	return tracing.Select("bnfcheck.cli")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
