/*
Package tester runs verdict-tagged word sequences against a prepared
grammar. A test file toggles the expected verdict with [true] and
[false] directive lines; every other line is a candidate word.
*/
package tester

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bnfcheck.tester'.
func tracer() tracing.Trace {
	return tracing.Select("bnfcheck.tester")
}
