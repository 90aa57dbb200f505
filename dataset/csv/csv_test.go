package csv_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/Ex-Nihilo-0-1/HW-1/dataset/csv"
	"github.com/Ex-Nihilo-0-1/HW-1/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const votes = `handicapped, water, budget, party
y, n, ?, democrat
n, y, y, republican
`

func TestReadSetLastColumnIsClass(t *testing.T) {
	s, err := csv.ReadSet(strings.NewReader(votes), nil, "")
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, []string{"handicapped", "water", "budget", dataset.ClassName}, s[0].Names())
	assert.Equal(t, []string{"democrat", "republican"}, s.Labels())
	v, _ := s[0].Value("budget")
	assert.Equal(t, dataset.Missing, v)
}

func TestReadSetNamedClassColumn(t *testing.T) {
	s, err := csv.ReadSet(strings.NewReader(votes), nil, "handicapped")
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "n"}, s.Labels())
	assert.Equal(t, []string{"water", "budget", "party"}, s.Attributes())

	_, err = csv.ReadSet(strings.NewReader(votes), nil, "nothing")
	assert.Error(t, err)
}

func TestReadSetClassHeader(t *testing.T) {
	s, err := csv.ReadSet(strings.NewReader("Class,a\n1,0\n0,1\n"), nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "0"}, s.Labels())
	assert.Equal(t, []string{"a"}, s.Attributes())
}

func TestReadSetValidatesFeatures(t *testing.T) {
	features := []*feature.Feature{feature.New("water", []string{"y", "n"})}
	_, err := csv.ReadSet(strings.NewReader(votes), features, "")
	require.NoError(t, err)

	features = []*feature.Feature{feature.New("water", []string{"y"})}
	_, err = csv.ReadSet(strings.NewReader(votes), features, "")
	assert.Error(t, err)
}

func TestReadSetMalformed(t *testing.T) {
	_, err := csv.ReadSet(strings.NewReader(""), nil, "")
	assert.Error(t, err, "no header")
	_, err = csv.ReadSet(strings.NewReader("a,,Class\n1,2,3\n"), nil, "")
	assert.Error(t, err, "unnamed column")
	_, err = csv.ReadSet(strings.NewReader("a,a\n1,2\n"), nil, "")
	assert.Error(t, err, "repeated column")
	_, err = csv.ReadSet(strings.NewReader("a,b,a,Class\n1,2,3,4\n"), nil, "")
	assert.Error(t, err, "repeated column before the class")
	_, err = csv.ReadSet(strings.NewReader("party,Class\ndemocrat,1\n"), nil, "party")
	assert.Error(t, err, "class column clashing with a Class column")
	_, err = csv.ReadSet(strings.NewReader("a,Class,b\n1,2,3\n"), nil, "b")
	assert.Error(t, err, "class column clashing with a Class column")

	s, err := csv.ReadSet(strings.NewReader("party,a\ndemocrat,1\n"), nil, "party")
	require.NoError(t, err)
	require.Len(t, s, 1)
	c, _ := s[0].Class()
	assert.Equal(t, "democrat", c)
}

func TestReadSetByExampleStops(t *testing.T) {
	var read []int
	err := csv.ReadSetByExample(strings.NewReader(votes), nil, "", func(i int, _ dataset.Example) (bool, error) {
		read = append(read, i)
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, read)
}

func TestWriteSet(t *testing.T) {
	s, err := csv.ReadSet(strings.NewReader(votes), nil, "")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, csv.WriteSet(&buf, s))
	assert.Equal(t, "handicapped,water,budget,Class\ny,n,?,democrat\nn,y,y,republican\n", buf.String())

	again, err := csv.ReadSet(&buf, nil, "")
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestWriterCountsExamples(t *testing.T) {
	var buf bytes.Buffer
	w, err := csv.NewWriter(&buf, []string{"a", dataset.ClassName})
	require.NoError(t, err)
	e, err := dataset.ParseExample("Class=x")
	require.NoError(t, err)
	n, err := w.Write([]dataset.Example{e, e})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, w.Count())
	require.NoError(t, w.Flush())
	assert.Equal(t, "a,Class\n?,x\n?,x\n", buf.String())
}

func TestReadSetFromFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "votes.csv")
	require.NoError(t, os.WriteFile(path, []byte(votes), 0o644))
	s, err := csv.ReadSetFromFilePath(path, nil, "")
	require.NoError(t, err)
	assert.Len(t, s, 2)

	_, err = csv.ReadSetFromFilePath(filepath.Join(t.TempDir(), "missing.csv"), nil, "")
	assert.Error(t, err)
}
