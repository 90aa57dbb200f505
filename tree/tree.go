package tree

import (
	"fmt"
	"strings"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
)

// Tree represents a decision tree predicting the Class
// attribute of examples. It owns its root node.
type Tree struct {
	Root Node
}

// New takes a root node and returns a tree with it.
func New(root Node) *Tree {
	return &Tree{root}
}

/*
Classify takes a node and an example and returns the label the subtree
under the node assigns to the example. Leaves return their label.
Internal nodes follow the branch for the example's value of their
attribute, or return their majority label when the example has no value
for it or a value they have no branch for.
*/
func Classify(n Node, e dataset.Example) string {
	label, _ := ClassifyFunc(n, func(attribute string) (string, bool, error) {
		v, ok := e.Value(attribute)
		return v, ok, nil
	})
	return label
}

/*
ClassifyFunc works like Classify but obtains the values of the attributes
by calling the given function, only for the attributes asked by the nodes
on the path to a leaf. Any error returned by the function stops the
traversal and is returned.
*/
func ClassifyFunc(n Node, valueFor func(attribute string) (string, bool, error)) (string, error) {
	for {
		switch t := n.(type) {
		case *Leaf:
			return t.Label, nil
		case *Internal:
			v, ok, err := valueFor(t.Attribute)
			if err != nil {
				return "", err
			}
			if !ok {
				return t.Majority, nil
			}
			c, ok := t.children[v]
			if !ok {
				return t.Majority, nil
			}
			n = c
		default:
			return "", nil
		}
	}
}

// Classify takes an example and returns the label the tree assigns
// to it.
func (t *Tree) Classify(e dataset.Example) string {
	if t == nil {
		return ""
	}
	return Classify(t.Root, e)
}

/*
Accuracy takes a set of examples and returns the fraction of them the
tree classifies with their Class value. It returns 0 for an empty set.
*/
func (t *Tree) Accuracy(s dataset.Set) float64 {
	if len(s) == 0 {
		return 0.0
	}
	var hits int
	for _, e := range s {
		c, ok := e.Class()
		if ok && t.Classify(e) == c {
			hits++
		}
	}
	return float64(hits) / float64(len(s))
}

// Size returns the number of nodes of the tree.
func (t *Tree) Size() int {
	var size int
	Walk(t.Root, false, func(Node) { size++ })
	return size
}

// Depth returns the number of internal nodes on the longest path
// from the root to a leaf.
func (t *Tree) Depth() int {
	return depth(t.Root)
}

func depth(n Node) int {
	in, ok := n.(*Internal)
	if !ok {
		return 0
	}
	var d int
	for _, v := range in.values {
		if cd := depth(in.children[v]); cd > d {
			d = cd
		}
	}
	return d + 1
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	return &Tree{Clone(t.Root)}
}

func (t *Tree) String() string {
	return subtreeString(t.Root)
}

func subtreeString(n Node) string {
	switch n := n.(type) {
	case *Leaf:
		return fmt.Sprintf("[%s]\n", n.Label)
	case *Internal:
		result := fmt.Sprintf("{ %s ? (majority %s) }\n|\n", n.Attribute, n.Majority)
		for i, v := range n.values {
			for j, line := range strings.Split(subtreeString(n.children[v]), "\n") {
				if len(line) == 0 {
					continue
				}
				if j == 0 {
					result = fmt.Sprintf("%s|__%s is %s: %s\n", result, n.Attribute, v, line)
				} else if i == len(n.values)-1 {
					result = fmt.Sprintf("%s   %s\n", result, line)
				} else {
					result = fmt.Sprintf("%s|  %s\n", result, line)
				}
			}
		}
		return result
	default:
		return "ERROR: empty tree\n"
	}
}
