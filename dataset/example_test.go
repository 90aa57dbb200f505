package dataset_test

import (
	"testing"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExample(t *testing.T) {
	e, err := dataset.NewExample([]string{"a", "Class", "b"}, []string{"1", "yes", "?"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "Class", "b"}, e.Names())
	assert.Equal(t, []string{"a", "b"}, e.Attributes())
	assert.Equal(t, 3, e.Len())
	c, ok := e.Class()
	assert.True(t, ok)
	assert.Equal(t, "yes", c)
	v, ok := e.Value("b")
	assert.True(t, ok)
	assert.Equal(t, dataset.Missing, v)
	_, ok = e.Value("z")
	assert.False(t, ok)

	_, err = dataset.NewExample([]string{"a"}, []string{"1", "2"})
	assert.Error(t, err)
	_, err = dataset.NewExample([]string{"a", "a"}, []string{"1", "2"})
	assert.Error(t, err)
}

func TestParseExample(t *testing.T) {
	e, err := dataset.ParseExample("a=1", "b=x=y", "Class=")
	require.NoError(t, err)
	v, _ := e.Value("b")
	assert.Equal(t, "x=y", v)
	c, ok := e.Class()
	assert.True(t, ok)
	assert.Equal(t, "", c)

	_, err = dataset.ParseExample("a")
	assert.Error(t, err)
	_, err = dataset.ParseExample("=1")
	assert.Error(t, err)
	_, err = dataset.ParseExample("a=1", "a=2")
	assert.Error(t, err)
}

func TestNarrowingLeavesReceiverUntouched(t *testing.T) {
	e, err := dataset.ParseExample("a=1", "b=2", "c=3", "Class=x")
	require.NoError(t, err)

	w := e.Without("b")
	assert.Equal(t, []string{"a", "c", "Class"}, w.Names())
	p := e.Project([]string{"c", "a", "z"})
	assert.Equal(t, []string{"a", "c", "Class"}, p.Names())
	n := e.With("b", "9").With("d", "4")
	assert.Equal(t, []string{"a", "b", "c", "Class", "d"}, n.Names())
	v, _ := n.Value("b")
	assert.Equal(t, "9", v)

	assert.Equal(t, []string{"a", "b", "c", "Class"}, e.Names())
	v, _ = e.Value("b")
	assert.Equal(t, "2", v)
	assert.Equal(t, "{a:1 b:2 c:3 Class:x}", e.String())
}
