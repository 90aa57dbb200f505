package redisstore_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Ex-Nihilo-0-1/HW-1/tree"
	"github.com/Ex-Nihilo-0-1/HW-1/tree/redisstore"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	redis "gopkg.in/redis.v5"
)

type RedisStoreSuite struct {
	suite.Suite
	ctx   context.Context
	rc    *redis.Client
	store tree.Store
}

// TestRedisStoreSuite runs against the server in ID3_REDIS_URL, on
// keys under a prefix of its own.
func TestRedisStoreSuite(t *testing.T) {
	url := os.Getenv("ID3_REDIS_URL")
	if url == "" {
		t.Skip("ID3_REDIS_URL not set")
	}
	rc, err := redisstore.Dial(url)
	require.NoError(t, err)
	defer rc.Close()
	suite.Run(t, &RedisStoreSuite{rc: rc})
}

func (s *RedisStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = redisstore.New(s.rc, fmt.Sprintf("id3-test-%d", time.Now().UnixNano()), nil)
}

func (s *RedisStoreSuite) TearDownTest() {
	names, err := s.store.List(s.ctx)
	require.NoError(s.T(), err)
	for _, n := range names {
		require.NoError(s.T(), s.store.Delete(s.ctx, n))
	}
	require.NoError(s.T(), s.store.Close(s.ctx))
}

func weather() *tree.Tree {
	humid := tree.NewInternal("humid", "no")
	humid.Attach("high", tree.NewLeaf("no"))
	humid.Attach("normal", tree.NewLeaf("yes"))
	root := tree.NewInternal("outlook", "yes")
	root.Attach("sunny", humid)
	root.Attach("overcast", tree.NewLeaf("yes"))
	return tree.New(root)
}

func (s *RedisStoreSuite) TestSaveLoadListDelete() {
	require.NoError(s.T(), s.store.Save(s.ctx, "weather", weather()))
	require.NoError(s.T(), s.store.Save(s.ctx, "always", tree.New(tree.NewLeaf("yes"))))

	loaded, err := s.store.Load(s.ctx, "weather")
	require.NoError(s.T(), err)
	require.Equal(s.T(), weather(), loaded)

	names, err := s.store.List(s.ctx)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"always", "weather"}, names)

	require.NoError(s.T(), s.store.Delete(s.ctx, "weather"))
	loaded, err = s.store.Load(s.ctx, "weather")
	require.NoError(s.T(), err)
	require.Nil(s.T(), loaded)
}
