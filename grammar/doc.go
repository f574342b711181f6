/*
Package grammar implements context-free grammars over single-character
terminals, the normalization pipeline that prepares a grammar for
predictive recursive-descent checking, and the membership checker
itself.

A loaded grammar is normalized with PrepareForChecking, which removes
left recursion (or left-factors the grammar when none exists) and
strips useless symbols. The prepared grammar feeds BuildFirst, and
CheckWord decides membership using the resulting index.
*/
package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bnfcheck.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("bnfcheck.grammar")
}
