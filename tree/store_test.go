package tree_test

import (
	"context"
	"testing"

	"github.com/Ex-Nihilo-0-1/HW-1/tree"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MemoryStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store tree.Store
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = tree.NewMemoryStore()
}

func (s *MemoryStoreSuite) TearDownTest() {
	require.NoError(s.T(), s.store.Close(s.ctx))
}

func (s *MemoryStoreSuite) TestSaveAndLoad() {
	t := sample()
	require.NoError(s.T(), s.store.Save(s.ctx, "weather", t))
	loaded, err := s.store.Load(s.ctx, "weather")
	require.NoError(s.T(), err)
	require.Equal(s.T(), t, loaded)
	require.NotSame(s.T(), t, loaded)

	t.Root = tree.NewLeaf("changed")
	loaded, err = s.store.Load(s.ctx, "weather")
	require.NoError(s.T(), err)
	require.Equal(s.T(), sample(), loaded, "saved trees are copies")
}

func (s *MemoryStoreSuite) TestLoadMissing() {
	t, err := s.store.Load(s.ctx, "nothing")
	require.NoError(s.T(), err)
	require.Nil(s.T(), t)
}

func (s *MemoryStoreSuite) TestListAndDelete() {
	require.NoError(s.T(), s.store.Save(s.ctx, "b", sample()))
	require.NoError(s.T(), s.store.Save(s.ctx, "a", sample()))
	names, err := s.store.List(s.ctx)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"a", "b"}, names)

	require.NoError(s.T(), s.store.Delete(s.ctx, "a"))
	names, err = s.store.List(s.ctx)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"b"}, names)
}
