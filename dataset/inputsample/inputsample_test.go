package inputsample_test

import (
	"strings"
	"testing"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/Ex-Nihilo-0-1/HW-1/dataset/inputsample"
	"github.com/Ex-Nihilo-0-1/HW-1/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRequester struct {
	requested []string
	rejected  []string
}

func (rr *recordingRequester) RequestValueFor(attribute string, _ *feature.Feature) error {
	rr.requested = append(rr.requested, attribute)
	return nil
}

func (rr *recordingRequester) RejectValueFor(_ string, value string) error {
	rr.rejected = append(rr.rejected, value)
	return nil
}

func TestValueFor(t *testing.T) {
	features := []*feature.Feature{feature.New("color", []string{"red", "blue"})}
	rr := &recordingRequester{}
	s := inputsample.New(strings.NewReader("green\nblue\n\nbig\n-\n"), features, rr, "-")

	v, ok, err := s.ValueFor("color")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "blue", v)

	v, ok, err = s.ValueFor("color")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "blue", v, "values are read once")

	v, _, err = s.ValueFor("size")
	require.NoError(t, err)
	assert.Equal(t, "big", v)

	v, _, err = s.ValueFor("weight")
	require.NoError(t, err)
	assert.Equal(t, dataset.Missing, v)

	_, _, err = s.ValueFor("height")
	assert.Error(t, err, "EOF")

	assert.Equal(t, []string{"color", "size", "weight", "height"}, rr.requested)
	assert.Equal(t, []string{"green", ""}, rr.rejected)
	assert.Equal(t, map[string]string{"color": "blue", "size": "big", "weight": dataset.Missing}, s.Values())
}

func TestExample(t *testing.T) {
	s := inputsample.New(strings.NewReader("big\n?\n"), nil, &recordingRequester{}, dataset.Missing)
	_, _, err := s.ValueFor("size")
	require.NoError(t, err)
	_, _, err = s.ValueFor("color")
	require.NoError(t, err)

	given, err := dataset.ParseExample("color=red", "shape=round")
	require.NoError(t, err)
	e := s.Example(given)
	assert.Equal(t, []string{"color", "shape", "size"}, e.Names())
	v, _ := e.Value("color")
	assert.Equal(t, dataset.Missing, v)
	v, _ = e.Value("size")
	assert.Equal(t, "big", v)

	v, _ = given.Value("color")
	assert.Equal(t, "red", v, "the given example is left untouched")
}
