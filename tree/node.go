package tree

/*
Node is a node of a decision tree. It is implemented by exactly two
types: *Leaf, a terminal node holding a label, and *Internal, a
decision node holding the attribute to ask about and a subtree for
every known value of it.
*/
type Node interface {
	node()
}

/*
Leaf is a terminal node of the tree: every example reaching it is
classified with its Label.
*/
type Leaf struct {
	Label string
}

/*
Internal is a decision node of the tree. Examples reaching it continue
down the branch matching their value for Attribute. Examples with a
value the node has no branch for are classified with Majority, the
most frequent label on the training examples that reached the node.

Branches keep the order in which they were attached.
*/
type Internal struct {
	Attribute string
	Majority  string
	values    []string
	children  map[string]Node
}

func (*Leaf) node()     {}
func (*Internal) node() {}

// NewLeaf returns a leaf with the given label.
func NewLeaf(label string) *Leaf {
	return &Leaf{Label: label}
}

// NewInternal returns an internal node without branches that asks
// about the given attribute and falls back to the given majority
// label.
func NewInternal(attribute, majority string) *Internal {
	return &Internal{
		Attribute: attribute,
		Majority:  majority,
		children:  make(map[string]Node),
	}
}

/*
Attach sets the given node as the subtree for the given value. If the
value already had a subtree, it is replaced keeping its position among
the branches.
*/
func (n *Internal) Attach(value string, child Node) {
	if n.children == nil {
		n.children = make(map[string]Node)
	}
	if _, ok := n.children[value]; !ok {
		n.values = append(n.values, value)
	}
	n.children[value] = child
}

// Child returns the subtree for the given value and whether
// there is one.
func (n *Internal) Child(value string) (Node, bool) {
	c, ok := n.children[value]
	return c, ok
}

// Values returns the values the node has a branch for, in the
// order they were attached.
func (n *Internal) Values() []string {
	return append([]string(nil), n.values...)
}

// Len returns the number of branches of the node.
func (n *Internal) Len() int {
	return len(n.values)
}

/*
Labels returns the labels of the leaves under the given node, visiting
branches in order. For a leaf it returns its own label.
*/
func Labels(n Node) []string {
	var result []string
	Walk(n, true, func(n Node) {
		if l, ok := n.(*Leaf); ok {
			result = append(result, l.Label)
		}
	})
	return result
}

/*
Walk goes through the subtree under the given node calling f for every
node. Parents are visited before their children unless bottomup is
true, in which case children are visited first. Branches are visited in
order.
*/
func Walk(n Node, bottomup bool, f func(Node)) {
	if !bottomup {
		f(n)
	}
	if in, ok := n.(*Internal); ok {
		for _, v := range in.values {
			Walk(in.children[v], bottomup, f)
		}
	}
	if bottomup {
		f(n)
	}
}

/*
Clone returns a deep copy of the subtree under the given node.
*/
func Clone(n Node) Node {
	switch n := n.(type) {
	case *Leaf:
		return &Leaf{Label: n.Label}
	case *Internal:
		c := NewInternal(n.Attribute, n.Majority)
		for _, v := range n.values {
			c.Attach(v, Clone(n.children[v]))
		}
		return c
	default:
		return nil
	}
}
