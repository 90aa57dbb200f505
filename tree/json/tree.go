/*
Package json serializes decision trees as JSON documents and parses
them back.
*/
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/Ex-Nihilo-0-1/HW-1/tree"
	"github.com/pkg/errors"
)

type jsonTree struct {
	Class string    `json:"class"`
	Root  *jsonNode `json:"root"`
}

type jsonNode struct {
	Label     *string       `json:"label,omitempty"`
	Attribute string        `json:"attribute,omitempty"`
	Majority  string        `json:"majority,omitempty"`
	Branches  []*jsonBranch `json:"branches,omitempty"`
}

type jsonBranch struct {
	Value string    `json:"value"`
	Node  *jsonNode `json:"node"`
}

/*
WriteJSONTree takes an io.Writer and a pointer to a tree.Tree and
serializes the given tree as JSON onto the io.Writer.
A tree is serialized as a JSON object with the following fields:
* "class": the name of the attribute the tree predicts
* "root": the root node of the tree.
Leaves are objects with a "label" field. Internal nodes are objects with
an "attribute", a "majority" label and "branches", an array of objects
with the "value" of the attribute and the "node" under it, in order.
An error is returned if the tree cannot be serialized or written
onto the io.Writer.
*/
func WriteJSONTree(w io.Writer, t *tree.Tree) error {
	if t == nil || t.Root == nil {
		return fmt.Errorf("cannot serialize empty tree")
	}
	jn, err := encodeNode(t.Root)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(&jsonTree{Class: dataset.ClassName, Root: jn})
}

/*
ReadJSONTree takes an io.Reader and unmarshals its contents as
described on WriteJSONTree into a new tree.Tree.
An error is returned if the JSON cannot be read from the io.Reader or
does not describe a valid tree.
*/
func ReadJSONTree(r io.Reader) (*tree.Tree, error) {
	jt := &jsonTree{}
	err := json.NewDecoder(r).Decode(jt)
	if err != nil {
		return nil, errors.Wrap(err, "decoding tree")
	}
	if jt.Class != "" && jt.Class != dataset.ClassName {
		return nil, fmt.Errorf("tree predicts %q, only %q is supported", jt.Class, dataset.ClassName)
	}
	if jt.Root == nil {
		return nil, fmt.Errorf("no root node available")
	}
	root, err := decodeNode(jt.Root, "root")
	if err != nil {
		return nil, err
	}
	return tree.New(root), nil
}

/*
Marshal returns the JSON encoding of the given tree as written by
WriteJSONTree.
*/
func Marshal(t *tree.Tree) ([]byte, error) {
	var buf bytes.Buffer
	err := WriteJSONTree(&buf, t)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/*
Unmarshal parses the given JSON encoded tree as read by ReadJSONTree.
*/
func Unmarshal(data []byte) (*tree.Tree, error) {
	return ReadJSONTree(bytes.NewReader(data))
}

func encodeNode(n tree.Node) (*jsonNode, error) {
	switch n := n.(type) {
	case *tree.Leaf:
		label := n.Label
		return &jsonNode{Label: &label}, nil
	case *tree.Internal:
		jn := &jsonNode{Attribute: n.Attribute, Majority: n.Majority}
		for _, v := range n.Values() {
			c, _ := n.Child(v)
			jc, err := encodeNode(c)
			if err != nil {
				return nil, err
			}
			jn.Branches = append(jn.Branches, &jsonBranch{Value: v, Node: jc})
		}
		return jn, nil
	default:
		return nil, fmt.Errorf("unknown type of tree.Node %T", n)
	}
}

func decodeNode(jn *jsonNode, path string) (tree.Node, error) {
	if jn.Label != nil {
		if jn.Attribute != "" || len(jn.Branches) > 0 {
			return nil, fmt.Errorf("node at %s is both a leaf and an internal node", path)
		}
		return tree.NewLeaf(*jn.Label), nil
	}
	if jn.Attribute == "" {
		return nil, fmt.Errorf("node at %s has neither label nor attribute", path)
	}
	if len(jn.Branches) == 0 {
		return nil, fmt.Errorf("internal node at %s has no branches", path)
	}
	n := tree.NewInternal(jn.Attribute, jn.Majority)
	for _, jb := range jn.Branches {
		if _, ok := n.Child(jb.Value); ok {
			return nil, fmt.Errorf("internal node at %s has more than one branch for %s", path, jb.Value)
		}
		if jb.Node == nil {
			return nil, fmt.Errorf("branch %s of node at %s has no node", jb.Value, path)
		}
		c, err := decodeNode(jb.Node, fmt.Sprintf("%s/%s=%s", path, jn.Attribute, jb.Value))
		if err != nil {
			return nil, err
		}
		n.Attach(jb.Value, c)
	}
	return n, nil
}
