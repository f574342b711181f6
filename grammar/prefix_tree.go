package grammar

import "github.com/emirpasic/gods/maps/linkedhashmap"

// prefixKey labels one edge of the prefix tree: either a symbol or the
// empty-word marker, which is distinct from every symbol.
type prefixKey struct {
	sym   Symbol
	empty bool
}

func symbolKey(sym Symbol) prefixKey {
	return prefixKey{sym: sym}
}

func emptyKey() prefixKey {
	return prefixKey{empty: true}
}

// prefixNode is one layer of the prefix tree built over a
// non-terminal's derivations. A nil child marks a leaf. Children keep
// insertion order so the factoring walk allocates fresh non-terminals
// deterministically.
type prefixNode struct {
	children *linkedhashmap.Map
}

func newPrefixNode() *prefixNode {
	return &prefixNode{
		children: linkedhashmap.New(),
	}
}

func (n *prefixNode) child(k prefixKey) (*prefixNode, bool) {
	v, ok := n.children.Get(k)
	if !ok {
		return nil, false
	}
	return v.(*prefixNode), true
}

// insert threads a derivation through the tree symbol by symbol. A
// derivation ending at an interior node is recorded as an empty-word
// leaf of that node, so shared prefixes and full-word endings coexist.
func (n *prefixNode) insert(d Derivation) {
	if d.IsEmpty() {
		n.children.Put(emptyKey(), (*prefixNode)(nil))
		return
	}
	k := symbolKey(d[0])
	child, ok := n.child(k)
	if len(d) == 1 {
		if !ok {
			n.children.Put(k, (*prefixNode)(nil))
		} else if child != nil {
			child.children.Put(emptyKey(), (*prefixNode)(nil))
		}
		return
	}
	if !ok {
		child = newPrefixNode()
		n.children.Put(k, child)
	} else if child == nil {
		child = newPrefixNode()
		child.children.Put(emptyKey(), (*prefixNode)(nil))
		n.children.Put(k, child)
	}
	child.insert(d[1:])
}
