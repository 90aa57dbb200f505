package forest_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/Ex-Nihilo-0-1/HW-1/forest"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

type ForestSuite struct {
	suite.Suite
	ctx context.Context
	set dataset.Set
}

func TestForestSuite(t *testing.T) {
	suite.Run(t, new(ForestSuite))
}

// SetupTest builds a set whose Class is the value of a, with noise
// attributes b and c.
func (s *ForestSuite) SetupTest() {
	s.ctx = context.Background()
	s.set = nil
	for i := 0; i < 40; i++ {
		row := fmt.Sprintf("a=%d,b=%d,c=%d,Class=%d", i%2, (i/2)%3, (i/3)%2, i%2)
		e, err := dataset.ParseExample(strings.Split(row, ",")...)
		require.NoError(s.T(), err)
		s.set = append(s.set, e)
	}
}

func (s *ForestSuite) TestFit() {
	f := forest.New(forest.NumTrees(7), forest.Seed(3), forest.NumWorkers(2), forest.Logger(zaptest.NewLogger(s.T())))
	require.NoError(s.T(), f.Fit(s.ctx, s.set, "0"))
	require.Len(s.T(), f.Trees(), 7)
	require.Equal(s.T(), 1.0, f.Accuracy(s.set))
	require.Equal(s.T(), 0.0, f.Accuracy(nil))
}

func (s *ForestSuite) TestSameSeedSameForest() {
	a := forest.New(forest.Seed(11), forest.MaxFeatures(2))
	b := forest.New(forest.Seed(11), forest.MaxFeatures(2), forest.NumWorkers(1))
	require.NoError(s.T(), a.Fit(s.ctx, s.set, "0"))
	require.NoError(s.T(), b.Fit(s.ctx, s.set, "0"))
	require.Equal(s.T(), a.Trees(), b.Trees())
}

func (s *ForestSuite) TestMaxFeatures() {
	f := forest.New(forest.NumTrees(5), forest.MaxFeatures(1))
	require.NoError(s.T(), f.Fit(s.ctx, s.set, "0"))
	for _, t := range f.Trees() {
		require.LessOrEqual(s.T(), t.Depth(), 1, "trees grown with a single attribute")
	}
}

func (s *ForestSuite) TestUnfitted() {
	f := forest.New()
	require.Equal(s.T(), "", f.Classify(s.set[0]))
}

func (s *ForestSuite) TestErrors() {
	require.Error(s.T(), forest.New(forest.NumTrees(0)).Fit(s.ctx, s.set, "0"))

	noClass, err := dataset.ParseExample("a=1", "b=0", "c=0")
	require.NoError(s.T(), err)
	require.Error(s.T(), forest.New().Fit(s.ctx, append(dataset.Set{noClass}, s.set...), "0"))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	require.ErrorIs(s.T(), forest.New().Fit(ctx, s.set, "0"), context.Canceled)
}
