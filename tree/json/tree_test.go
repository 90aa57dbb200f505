package json_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Ex-Nihilo-0-1/HW-1/tree"
	"github.com/Ex-Nihilo-0-1/HW-1/tree/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *tree.Tree {
	b := tree.NewInternal("b", "1")
	b.Attach("1", tree.NewLeaf("1"))
	b.Attach("0", tree.NewLeaf("0"))
	root := tree.NewInternal("a", "0")
	root.Attach("0", b)
	root.Attach("1", tree.NewLeaf("0"))
	return tree.New(root)
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, json.WriteJSONTree(&buf, sample()))
	decoded, err := json.ReadJSONTree(&buf)
	require.NoError(t, err)
	require.Equal(t, sample(), decoded)

	data, err := json.Marshal(sample())
	require.NoError(t, err)
	decoded, err = json.Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, sample(), decoded)
}

func TestBranchOrderIsKept(t *testing.T) {
	data, err := json.Marshal(sample())
	require.NoError(t, err)
	one := bytes.Index(data, []byte(`"value":"1"`))
	zero := bytes.Index(data, []byte(`"value":"0"`))
	require.True(t, one > 0 && zero > 0)
	assert.Less(t, zero, one, "root branches are written in order: 0 before 1")
}

func TestEmptyLabelLeaf(t *testing.T) {
	decoded, err := json.Unmarshal([]byte(`{"class":"Class","root":{"label":""}}`))
	require.NoError(t, err)
	assert.Equal(t, tree.NewLeaf(""), decoded.Root)
}

func TestWriteEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, json.WriteJSONTree(&buf, nil))
	assert.Error(t, json.WriteJSONTree(&buf, tree.New(nil)))
}

func TestReadInvalid(t *testing.T) {
	invalid := map[string]string{
		"not json":         `{"root":`,
		"no root":          `{"class":"Class"}`,
		"other class":      `{"class":"Outcome","root":{"label":"x"}}`,
		"leaf and node":    `{"root":{"label":"x","attribute":"a","branches":[{"value":"1","node":{"label":"y"}}]}}`,
		"empty node":       `{"root":{}}`,
		"no branches":      `{"root":{"attribute":"a","majority":"x"}}`,
		"branch no node":   `{"root":{"attribute":"a","branches":[{"value":"1"}]}}`,
		"duplicated value": `{"root":{"attribute":"a","branches":[{"value":"1","node":{"label":"x"}},{"value":"1","node":{"label":"y"}}]}}`,
	}
	for name, doc := range invalid {
		_, err := json.ReadJSONTree(strings.NewReader(doc))
		assert.Error(t, err, name)
	}
}
