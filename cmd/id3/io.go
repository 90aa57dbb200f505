package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/Ex-Nihilo-0-1/HW-1/dataset/csv"
	"github.com/Ex-Nihilo-0-1/HW-1/dataset/mongodataset"
	"github.com/Ex-Nihilo-0-1/HW-1/dataset/sqldataset"
	"github.com/Ex-Nihilo-0-1/HW-1/dataset/sqldataset/pgadapter"
	"github.com/Ex-Nihilo-0-1/HW-1/dataset/sqldataset/sqlite3adapter"
	"github.com/Ex-Nihilo-0-1/HW-1/feature"
	"github.com/Ex-Nihilo-0-1/HW-1/feature/yaml"
	"github.com/Ex-Nihilo-0-1/HW-1/tree"
	"github.com/Ex-Nihilo-0-1/HW-1/tree/json"
	"github.com/Ex-Nihilo-0-1/HW-1/tree/redisstore"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	defaultTable     = "examples"
	storePrefix      = "id3"
	mongoLocation    = "mongo"
	locationFlagHelp = "path to a CSV (.csv) or SQLite3 (.db) file, a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL, or 'mongo' for $" + mongoURLEnv
)

// setFlags locate a set of examples.
type setFlags struct {
	location    string
	collection  string
	classColumn string
}

// treeFlags locate a tree, either on a file or on a Redis store.
type treeFlags struct {
	path  string
	store string
	name  string
}

func (sf *setFlags) register(cmd *cobra.Command, prefix, shorthand, usage string) {
	cmd.Flags().StringVarP(&(sf.location), prefix, shorthand, "", fmt.Sprintf("%s with %s", locationFlagHelp, usage))
	cmd.Flags().StringVar(&(sf.collection), prefix+"-table", defaultTable, fmt.Sprintf("name of the table or collection with %s", usage))
	cmd.Flags().StringVar(&(sf.classColumn), prefix+"-class", "", fmt.Sprintf("name of the column holding the class of %s (defaults to Class or the last column)", usage))
}

func (tf *treeFlags) register(cmd *cobra.Command, usage string) {
	cmd.Flags().StringVarP(&(tf.path), "tree", "t", "", fmt.Sprintf("path to a JSON file with %s", usage))
	cmd.Flags().StringVar(&(tf.store), "store", "", fmt.Sprintf("Redis URL of a tree store with %s (defaults to $%s)", usage, redisURLEnv))
	cmd.Flags().StringVar(&(tf.name), "name", "", fmt.Sprintf("name of %s on the tree store", usage))
}

func readFeatures(rcc *rootCmdConfig, path string) ([]*feature.Feature, error) {
	if path == "" {
		return nil, nil
	}
	rcc.Logger().Debug("reading features", zap.String("metadata", path))
	return yaml.ReadFeaturesFromFile(path)
}

/*
readSet reads the set located by sf, checking its values against the
given features.
*/
func readSet(ctx context.Context, rcc *rootCmdConfig, sf setFlags, features []*feature.Feature) (dataset.Set, error) {
	logger := rcc.Logger().With(zap.String("input", sf.location))
	var (
		s   dataset.Set
		err error
	)
	switch {
	case sf.location == mongoLocation:
		sf.location, err = rcc.mongoURL()
		if err != nil {
			return nil, err
		}
		return readSet(ctx, rcc, sf, features)
	case isPostgreSQLURL(sf.location) || strings.HasSuffix(sf.location, ".db"):
		var a sqldataset.Adapter
		a, err = sqlAdapter(sf.location)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		logger.Debug("reading set from SQL table", zap.String("table", sf.collection))
		s, err = sqldataset.ReadSet(ctx, a, sf.collection, sf.classColumn)
		if err == nil {
			err = feature.ValidateSet(features, s)
		}
	case strings.HasPrefix(sf.location, "mongodb://"):
		session, err := mongodataset.Dial(sf.location)
		if err != nil {
			return nil, err
		}
		defer session.Close()
		logger.Debug("reading set from MongoDB collection", zap.String("collection", sf.collection))
		s, err = mongodataset.ReadSet(ctx, session.DB("").C(sf.collection), sf.classColumn)
		if err == nil {
			err = feature.ValidateSet(features, s)
		}
		if err != nil {
			return nil, err
		}
	default:
		logger.Debug("reading set from CSV")
		s, err = csv.ReadSetFromFilePath(sf.location, features, sf.classColumn)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("set read", zap.Int("examples", len(s)))
	return s, nil
}

// writeSet writes s on the location of sf, or to STDOUT as CSV.
func writeSet(ctx context.Context, rcc *rootCmdConfig, sf setFlags, s dataset.Set) error {
	logger := rcc.Logger().With(zap.String("output", sf.location))
	switch {
	case sf.location == mongoLocation:
		url, err := rcc.mongoURL()
		if err != nil {
			return err
		}
		sf.location = url
		return writeSet(ctx, rcc, sf, s)
	case isPostgreSQLURL(sf.location) || strings.HasSuffix(sf.location, ".db"):
		a, err := sqlAdapter(sf.location)
		if err != nil {
			return err
		}
		defer a.Close()
		n, err := sqldataset.WriteSet(ctx, a, sf.collection, s)
		if err != nil {
			return err
		}
		logger.Debug("set written to SQL table", zap.String("table", sf.collection), zap.Int("examples", n))
		return nil
	case strings.HasPrefix(sf.location, "mongodb://"):
		session, err := mongodataset.Dial(sf.location)
		if err != nil {
			return err
		}
		defer session.Close()
		n, err := mongodataset.WriteSet(ctx, session.DB("").C(sf.collection), s)
		if err != nil {
			return err
		}
		logger.Debug("set written to MongoDB collection", zap.String("collection", sf.collection), zap.Int("examples", n))
		return nil
	case sf.location == "":
		return csv.WriteSet(os.Stdout, s)
	}
	f, err := os.Create(sf.location)
	if err != nil {
		return fmt.Errorf("creating CSV file %s: %v", sf.location, err)
	}
	defer f.Close()
	return csv.WriteSet(f, s)
}

func (rcc *rootCmdConfig) mongoURL() (string, error) {
	url := rcc.Getenv(mongoURLEnv)
	if url == "" {
		return "", fmt.Errorf("%s is not set", mongoURLEnv)
	}
	return url, nil
}

func isPostgreSQLURL(location string) bool {
	return strings.HasPrefix(location, "postgresql://") || strings.HasPrefix(location, "postgres://")
}

func sqlAdapter(location string) (sqldataset.Adapter, error) {
	if isPostgreSQLURL(location) {
		return pgadapter.New(location)
	}
	return sqlite3adapter.New(location)
}

func (rcc *rootCmdConfig) treeStore(tf treeFlags) (tree.Store, error) {
	url := tf.store
	if url == "" {
		url = rcc.Getenv(redisURLEnv)
	}
	if url == "" {
		return nil, fmt.Errorf("no tree store: set the store flag or %s", redisURLEnv)
	}
	rc, err := redisstore.Dial(url)
	if err != nil {
		return nil, err
	}
	return &closingStore{redisstore.New(rc, storePrefix, nil), rc.Close}, nil
}

// closingStore closes the Redis client along with the store.
type closingStore struct {
	tree.Store
	closeClient func() error
}

func (cs *closingStore) Close(ctx context.Context) error {
	err := cs.Store.Close(ctx)
	if cerr := cs.closeClient(); err == nil {
		err = cerr
	}
	return err
}

// loadTree reads the tree located by tf.
func loadTree(ctx context.Context, rcc *rootCmdConfig, tf treeFlags) (*tree.Tree, error) {
	if tf.name != "" {
		store, err := rcc.treeStore(tf)
		if err != nil {
			return nil, err
		}
		defer store.Close(ctx)
		t, err := store.Load(ctx, tf.name)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fmt.Errorf("no tree named %s on the store", tf.name)
		}
		return t, nil
	}
	if tf.path == "" {
		return nil, fmt.Errorf("required tree or name flag was not set")
	}
	f, err := os.Open(tf.path)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %v", tf.path, err)
	}
	defer f.Close()
	t, err := json.ReadJSONTree(f)
	if err != nil {
		return nil, fmt.Errorf("parsing tree in JSON from %s: %v", tf.path, err)
	}
	return t, nil
}

/*
outputTree saves t under the name in tf on the tree store if there
is one, and writes it as JSON to the path in tf. If neither is given
the tree is written to STDOUT.
*/
func outputTree(ctx context.Context, rcc *rootCmdConfig, tf treeFlags, t *tree.Tree) error {
	if tf.name != "" {
		store, err := rcc.treeStore(tf)
		if err != nil {
			return err
		}
		defer store.Close(ctx)
		err = store.Save(ctx, tf.name, t)
		if err != nil {
			return err
		}
		rcc.Logger().Debug("tree saved", zap.String("name", tf.name))
		if tf.path == "" {
			return nil
		}
	}
	var f *os.File
	var err error
	if tf.path == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(tf.path)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return json.WriteJSONTree(f, t)
}
