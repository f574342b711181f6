package grammar

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// String renders the grammar as a table, one non-terminal per row:
//
//	Grammar
//	Initial non-terminal: 0
//	0 -> a<1> | b
//	1 -> c    | [n]
//
// [n] denotes the empty word. Rows wrap after ten alternatives.
func (g *Grammar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grammar\nInitial non-terminal: %v\n", int(g.start))

	lhsWidth := 0
	elWidth := 0
	g.EachRule(func(lhs NonTerminal, rhs Derivation) {
		if w := len(strconv.Itoa(int(lhs))); w > lhsWidth {
			lhsWidth = w
		}
		if w := utf8.RuneCountInString(rhs.String()); w > elWidth {
			elWidth = w
		}
	})

	for _, lhs := range g.lhsOrder {
		fmt.Fprintf(&b, "%-*v -> ", lhsWidth, int(lhs))
		derivs := g.rules[lhs].derivs
		for i, d := range derivs {
			fmt.Fprintf(&b, "%-*v", elWidth+1, d.String())
			if i == len(derivs)-1 {
				break
			}
			if i%10 == 9 {
				b.WriteString("\n")
				b.WriteString(strings.Repeat(" ", lhsWidth+4))
			} else {
				b.WriteString("| ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
