/*
Package forest grows ensembles of ID3 decision trees, each from a
bootstrap resample of the training examples restricted to a random
subset of their attributes, and classifies examples by majority vote
among them.
*/
package forest

import (
	"context"
	"math/rand"
	goruntime "runtime"
	"sort"

	id3 "github.com/Ex-Nihilo-0-1/HW-1"
	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/Ex-Nihilo-0-1/HW-1/tree"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultNumTrees is the number of trees grown unless
// NumTrees says otherwise.
const DefaultNumTrees = 10

// Forest is an ensemble of decision trees.
type Forest struct {
	trees       []*tree.Tree
	numTrees    int
	maxFeatures int
	numWorkers  int
	seed        int64
	logger      *zap.Logger
}

// Option configures a Forest.
type Option func(*Forest)

// NumTrees sets the number of trees of the forest.
func NumTrees(n int) Option {
	return func(f *Forest) {
		f.numTrees = n
	}
}

/*
MaxFeatures sets the number of attributes each tree is grown with,
drawn at random without replacement. Zero, or a number at least as
large as the number of attributes, uses them all.
*/
func MaxFeatures(n int) Option {
	return func(f *Forest) {
		f.maxFeatures = n
	}
}

// Seed sets the seed the random sources of the trees derive from.
// Forests fit with the same seed on the same examples are equal.
func Seed(s int64) Option {
	return func(f *Forest) {
		f.seed = s
	}
}

// NumWorkers limits the number of trees grown concurrently.
func NumWorkers(n int) Option {
	return func(f *Forest) {
		f.numWorkers = n
	}
}

// Logger sets the logger for the progress of Fit.
func Logger(l *zap.Logger) Option {
	return func(f *Forest) {
		f.logger = l
	}
}

// New returns an empty forest configured with the given options.
func New(options ...Option) *Forest {
	f := &Forest{
		numTrees:   DefaultNumTrees,
		numWorkers: lo.Min([]int{goruntime.GOMAXPROCS(0), goruntime.NumCPU()}),
		logger:     zap.NewNop(),
	}
	for _, o := range options {
		o(f)
	}
	if f.numWorkers < 1 {
		f.numWorkers = 1
	}
	return f
}

/*
Fit takes a context, a set of examples and a default label and replaces
the trees of the forest with new ones grown from the examples. Each tree
is grown by id3.Train on as many examples as the set has, drawn from it
with replacement, projected on a random subset of the attributes.

It returns the first error found growing a tree, or the context's error
if it is cancelled, leaving the forest unchanged.
*/
func (f *Forest) Fit(ctx context.Context, examples dataset.Set, defaultLabel string) error {
	if f.numTrees < 1 {
		return errors.Errorf("cannot grow a forest of %d trees", f.numTrees)
	}
	err := examples.Validate()
	if err != nil {
		return err
	}
	attributes := examples.Attributes()
	trees := make([]*tree.Tree, f.numTrees)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.numWorkers)
	for i := range trees {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := rand.New(rand.NewSource(f.seed + int64(i)))
			sample := bootstrap(r, examples)
			subset := f.attributeSubset(r, attributes)
			t, err := id3.Train(sample.Project(subset), defaultLabel)
			if err != nil {
				return errors.WithMessagef(err, "growing tree %d", i+1)
			}
			f.logger.Debug("tree grown",
				zap.Int("tree", i+1),
				zap.Strings("attributes", subset),
				zap.Int("size", t.Size()),
				zap.Int("depth", t.Depth()))
			trees[i] = t
			return nil
		})
	}
	err = g.Wait()
	if err != nil {
		return err
	}
	f.trees = trees
	f.logger.Info("forest grown", zap.Int("trees", len(trees)), zap.Int("examples", len(examples)))
	return nil
}

// Trees returns the trees of the forest.
func (f *Forest) Trees() []*tree.Tree {
	return append([]*tree.Tree(nil), f.trees...)
}

/*
Classify takes an example and returns the label most of the trees of the
forest assign to it. Ties go to the label predicted first, in tree order.
An unfitted forest returns "".
*/
func (f *Forest) Classify(e dataset.Example) string {
	return id3.Mode(lo.Map(f.trees, func(t *tree.Tree, _ int) string {
		return t.Classify(e)
	}))
}

/*
Accuracy takes a set of examples and returns the fraction of them the
forest classifies with their Class value, or 0 for an empty set.
*/
func (f *Forest) Accuracy(s dataset.Set) float64 {
	if len(s) == 0 {
		return 0.0
	}
	hits := lo.CountBy(s, func(e dataset.Example) bool {
		c, ok := e.Class()
		return ok && f.Classify(e) == c
	})
	return float64(hits) / float64(len(s))
}

func bootstrap(r *rand.Rand, s dataset.Set) dataset.Set {
	result := make(dataset.Set, len(s))
	for i := range result {
		result[i] = s[r.Intn(len(s))]
	}
	return result
}

// attributeSubset keeps the order of the given attributes.
func (f *Forest) attributeSubset(r *rand.Rand, attributes []string) []string {
	if f.maxFeatures <= 0 || f.maxFeatures >= len(attributes) {
		return attributes
	}
	idx := r.Perm(len(attributes))[:f.maxFeatures]
	sort.Ints(idx)
	return lo.Map(idx, func(i int, _ int) string {
		return attributes[i]
	})
}
