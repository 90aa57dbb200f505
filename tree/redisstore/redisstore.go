/*
Package redisstore provides an implementation of tree.Store that
keeps trees on a Redis database.
*/
package redisstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/Ex-Nihilo-0-1/HW-1/tree"
	"github.com/Ex-Nihilo-0-1/HW-1/tree/json"
	"github.com/pkg/errors"
	redis "gopkg.in/redis.v5"
)

/*
EncodeDecoder is an interface for objects that allow encoding trees
into slices of bytes and decoding them back to trees.
*/
type EncodeDecoder interface {
	// Encode receives a *tree.Tree and returns a slice of bytes
	// with the tree encoded or an error if the encoding could not
	// be performed for some reason.
	Encode(*tree.Tree) ([]byte, error)
	// Decode receives a slice of bytes and returns a *tree.Tree
	// decoded from the slice of bytes or an error if the decoding
	// could not be performed for some reason.
	Decode([]byte) (*tree.Tree, error)
}

type jsonEncodeDecoder struct{}

func (jsonEncodeDecoder) Encode(t *tree.Tree) ([]byte, error) {
	return json.Marshal(t)
}

func (jsonEncodeDecoder) Decode(data []byte) (*tree.Tree, error) {
	return json.Unmarshal(data)
}

// JSON returns an EncodeDecoder that stores trees as the
// documents written by the tree/json package.
func JSON() EncodeDecoder {
	return jsonEncodeDecoder{}
}

type redisStore struct {
	rc     *redis.Client
	prefix string
	encdec EncodeDecoder
}

/*
New builds a tree.Store backed by a redis DB. It uses the given prefix
for the keys it works with, which are the following:
  - prefix:trees is the key to a set with the names of the stored trees
  - prefix:tree:name is the key to a string with the encoded tree saved
    under name.

Trees are encoded and decoded with the given EncodeDecoder, or as JSON
if it is nil. The client is owned by the caller: closing the store does
not close it.
*/
func New(rc *redis.Client, prefix string, encdec EncodeDecoder) tree.Store {
	if encdec == nil {
		encdec = JSON()
	}
	return &redisStore{rc, prefix, encdec}
}

/*
Dial takes a redis URL (redis://[:password@]host[:port][/db]) and
returns a client connected to it or an error if the URL cannot be
parsed or the server does not answer.
*/
func Dial(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing redis url %s", url)
	}
	rc := redis.NewClient(opts)
	err = rc.Ping().Err()
	if err != nil {
		rc.Close()
		return nil, errors.Wrapf(err, "connecting to redis at %s", opts.Addr)
	}
	return rc, nil
}

func (rs *redisStore) Save(ctx context.Context, name string, t *tree.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := rs.encdec.Encode(t)
	if err != nil {
		return errors.Wrapf(err, "saving tree %q: encoding tree", name)
	}
	err = rs.rc.Set(rs.keyFor(name), data, 0).Err()
	if err != nil {
		return errors.Wrapf(err, "saving tree %q in redis", name)
	}
	err = rs.rc.SAdd(rs.namesKey(), name).Err()
	if err != nil {
		return errors.Wrapf(err, "adding %q to %q", name, rs.namesKey())
	}
	return nil
}

func (rs *redisStore) Load(ctx context.Context, name string) (*tree.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := rs.rc.Get(rs.keyFor(name)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving tree %q", name)
	}
	t, err := rs.encdec.Decode([]byte(data))
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving tree %q: decoding", name)
	}
	return t, nil
}

func (rs *redisStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := rs.keyFor(name)
	err := rs.rc.Del(key).Err()
	if err != nil {
		return errors.Wrapf(err, "deleting tree %q from redis", key)
	}
	err = rs.rc.SRem(rs.namesKey(), name).Err()
	if err != nil {
		return errors.Wrapf(err, "removing %q from %q", name, rs.namesKey())
	}
	return nil
}

func (rs *redisStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names, err := rs.rc.SMembers(rs.namesKey()).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "listing trees in %q", rs.namesKey())
	}
	sort.Strings(names)
	return names, nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return nil
}

func (rs *redisStore) keyFor(name string) string {
	return fmt.Sprintf("%s:tree:%s", rs.prefix, name)
}

func (rs *redisStore) namesKey() string {
	return fmt.Sprintf("%s:trees", rs.prefix)
}
