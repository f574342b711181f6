/*
Package spec loads grammars written in the line-oriented BNF form:

	<S>::=(<S>)|<S><S>|
	<A>::=a|\<b\>

One production per line. Alternatives are separated by '|'; <name>
references a non-terminal; \<, \>, \| and \\ denote the marker
characters as literal terminals; an empty alternative derives the
empty word.
*/
package spec
