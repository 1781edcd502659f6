package sitrep

import "weak"

// Weak is a non-owning reference to a Node. It never keeps a subtree
// alive: once no strong reference to the referent remains (neither a
// parent's children entry nor any handle held elsewhere) and it has been
// garbage collected, Upgrade reports absent. Weak is returned by CreateRoot (the
// caller's handle to a tree for later Reporter/Controller use) and used
// internally for every node's parent back-reference, per §3's ownership
// model: parent→child is owning, child→parent is not.
type Weak struct {
	ptr weak.Pointer[Node]
}

// newWeak wraps n as a non-owning reference. A nil n produces a Weak
// whose Upgrade always reports absent, used for a root's own parent.
func newWeak(n *Node) Weak {
	if n == nil {
		return Weak{}
	}
	return Weak{ptr: weak.Make(n)}
}

// Upgrade resolves the weak reference to a strong *Node, or reports
// false if the referent has been garbage collected (or w is the zero Weak).
func (w Weak) Upgrade() (*Node, bool) {
	n := w.ptr.Value()
	return n, n != nil
}
