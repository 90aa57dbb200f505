/*
Package id3 grows decision trees from labeled examples with discrete
attributes using the ID3 algorithm, classifies examples with them,
measures their accuracy and prunes them against validation examples.

Trees are grown top-down: every node splits its examples by the
attribute providing the highest information gain on the Class, and
each branch is grown from the examples taking its value, with that
attribute no longer available.
*/
package id3

import (
	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/Ex-Nihilo-0-1/HW-1/feature"
	"github.com/Ex-Nihilo-0-1/HW-1/tree"
)

// TrainingError represents an error preventing a tree from
// being grown
type TrainingError string

/*
ErrEmptyDefault is the error returned by Train when asked to grow a
tree from no examples without a default label to predict.
*/
const ErrEmptyDefault = TrainingError("cannot grow a tree from an empty set without a default label")

func (te TrainingError) Error() string {
	return string(te)
}

// Option configures how Train grows a tree.
type Option func(*builder)

/*
Domains takes a slice of features and makes Train add a branch for
every available value of a feature that is not taken by any example
reaching a node splitting on it. Those branches end on a leaf with the
majority label of the node.
*/
func Domains(features []*feature.Feature) Option {
	return func(b *builder) {
		for _, f := range features {
			b.domains[f.Name()] = f.AvailableValues()
		}
	}
}

/*
MaxDepth limits the number of internal nodes on any path from the root
to a leaf. Nodes at that depth become leaves with the majority label of
their examples. A negative n (the default) grows a full tree.
*/
func MaxDepth(n int) Option {
	return func(b *builder) {
		b.maxDepth = n
	}
}

type builder struct {
	domains  map[string][]string
	maxDepth int
}

/*
Train takes a set of examples and a default label and returns a tree
grown from them to predict their Class.

The default label is the prediction for an empty set. An empty default
label with an empty set yields ErrEmptyDefault. If any example lacks a
Class or has attributes other than those of the first example, a
*dataset.MalformedExampleError is returned. The given examples are not
modified.
*/
func Train(examples dataset.Set, defaultLabel string, options ...Option) (*tree.Tree, error) {
	if len(examples) == 0 && defaultLabel == "" {
		return nil, ErrEmptyDefault
	}
	err := examples.Validate()
	if err != nil {
		return nil, err
	}
	b := &builder{domains: make(map[string][]string), maxDepth: -1}
	for _, o := range options {
		o(b)
	}
	return tree.New(b.build(examples, defaultLabel, 0)), nil
}

func (b *builder) build(s dataset.Set, defaultLabel string, depth int) tree.Node {
	if len(s) == 0 {
		return tree.NewLeaf(defaultLabel)
	}
	classes := s.Classes()
	if len(classes) == 1 {
		return tree.NewLeaf(classes[0])
	}
	majority := Mode(s.Labels())
	attributes := s.Attributes()
	if len(attributes) == 0 || (b.maxDepth >= 0 && depth >= b.maxDepth) {
		return tree.NewLeaf(majority)
	}
	p := BestSplit(s, attributes)
	n := tree.NewInternal(p.Attribute, majority)
	for i, v := range p.Values {
		n.Attach(v, b.build(p.Subsets[i].Without(p.Attribute), majority, depth+1))
	}
	for _, v := range b.domains[p.Attribute] {
		if _, ok := n.Child(v); !ok {
			n.Attach(v, tree.NewLeaf(majority))
		}
	}
	return n
}

/*
Classify takes a tree and an example and returns the label the tree
assigns to the example. It never fails: values the tree has not seen
during training are resolved with the majority label of the node
asking about them.
*/
func Classify(t *tree.Tree, e dataset.Example) string {
	return t.Classify(e)
}

/*
Accuracy takes a tree and a set of examples and returns the fraction
of examples the tree classifies correctly, or 0 for an empty set.
*/
func Accuracy(t *tree.Tree, s dataset.Set) float64 {
	return t.Accuracy(s)
}
