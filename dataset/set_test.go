package dataset_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SetSuite struct {
	suite.Suite
	set dataset.Set
}

func TestSetSuite(t *testing.T) {
	suite.Run(t, new(SetSuite))
}

func (s *SetSuite) SetupTest() {
	s.set = nil
	for _, row := range []string{
		"color=red,size=big,Class=yes",
		"color=blue,size=small,Class=no",
		"color=red,size=small,Class=no",
		"color=green,size=big,Class=yes",
	} {
		e, err := dataset.ParseExample(strings.Split(row, ",")...)
		require.NoError(s.T(), err)
		s.set = append(s.set, e)
	}
}

func (s *SetSuite) TestValidate() {
	require.NoError(s.T(), s.set.Validate())
	require.NoError(s.T(), dataset.Set(nil).Validate())

	noClass, err := dataset.ParseExample("color=red", "size=big")
	require.NoError(s.T(), err)
	err = append(s.set, noClass).Validate()
	var mee *dataset.MalformedExampleError
	require.True(s.T(), errors.As(err, &mee))
	require.Equal(s.T(), 4, mee.Index)

	extra, err := dataset.ParseExample("color=red", "size=big", "weight=9", "Class=no")
	require.NoError(s.T(), err)
	err = append(s.set, extra).Validate()
	require.True(s.T(), errors.As(err, &mee))
	require.Equal(s.T(), 4, mee.Index)
}

func (s *SetSuite) TestAttributesAndValues() {
	require.Equal(s.T(), 4, s.set.Len())
	require.Equal(s.T(), []string{"color", "size"}, s.set.Attributes())
	require.Nil(s.T(), dataset.Set(nil).Attributes())
	require.Equal(s.T(), []string{"red", "blue", "green"}, s.set.Values("color"))
	require.Equal(s.T(), []string{"yes", "no"}, s.set.Classes())
	require.Equal(s.T(), []string{"yes", "no", "no", "yes"}, s.set.Labels())
	require.Equal(s.T(), map[string]int{"big": 2, "small": 2}, s.set.CountValues("size"))
}

func (s *SetSuite) TestSubsetWith() {
	red := s.set.SubsetWith("color", "red")
	require.Len(s.T(), red, 2)
	require.Equal(s.T(), []string{"yes", "no"}, red.Labels())
	require.Empty(s.T(), s.set.SubsetWith("color", "black"))
}

func (s *SetSuite) TestWithoutAndProject() {
	w := s.set.Without("color")
	require.Equal(s.T(), []string{"size"}, w.Attributes())
	p := s.set.Project([]string{"color"})
	require.Equal(s.T(), []string{"color"}, p.Attributes())
	require.Equal(s.T(), s.set.Labels(), p.Labels())
	assert.Equal(s.T(), []string{"color", "size"}, s.set.Attributes(), "narrowing copies the examples")
}
