package id3

import (
	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/Ex-Nihilo-0-1/HW-1/tree"
)

/*
Prune takes a tree and a set of validation examples and simplifies the
tree in place with reduced-error pruning, returning it.

The tree is gone through bottom-up, children before parents and
branches in order. Every internal node is replaced by a leaf labelled
with the most frequent label among the leaves currently under it, and
the replacement is kept if the accuracy of the whole tree on the
validation examples does not decrease. Otherwise the node is put back.
Passes are repeated until one makes no replacement.

The result is a local optimum and depends on the order nodes are
visited in. An empty validation set leaves the tree untouched.
*/
func Prune(t *tree.Tree, validation dataset.Set) *tree.Tree {
	if t == nil || len(validation) == 0 {
		return t
	}
	p := &pruner{t, validation}
	for p.prune(t.Root, func(n tree.Node) { t.Root = n }) {
	}
	return t
}

type pruner struct {
	t          *tree.Tree
	validation dataset.Set
}

// prune runs a pass on the subtree under n, using replace to swap
// n on its parent (or the tree root). It returns whether any node
// was replaced by a leaf.
func (p *pruner) prune(n tree.Node, replace func(tree.Node)) bool {
	in, ok := n.(*tree.Internal)
	if !ok {
		return false
	}
	var changed bool
	for _, v := range in.Values() {
		c, _ := in.Child(v)
		if p.prune(c, func(r tree.Node) { in.Attach(v, r) }) {
			changed = true
		}
	}
	baseline := p.t.Accuracy(p.validation)
	replace(tree.NewLeaf(Mode(tree.Labels(in))))
	if p.t.Accuracy(p.validation) >= baseline {
		return true
	}
	replace(in)
	return changed
}
