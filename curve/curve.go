/*
Package curve measures learning curves of ID3 decision trees: their
accuracy on unseen examples as a function of the number of training
examples, with and without reduced-error pruning.
*/
package curve

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	id3 "github.com/Ex-Nihilo-0-1/HW-1"
	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Point is the mean accuracy on test examples of the trees grown
// from Size examples, before and after pruning them.
type Point struct {
	Size     int
	Unpruned float64
	Pruned   float64
}

// Config holds the parameters of a learning curve run.
type Config struct {
	// Sizes are the training set sizes to measure, each smaller
	// than the number of examples.
	Sizes []int
	// Runs is the number of trees grown for every size.
	Runs int
	// Seed for the random shuffles of the examples.
	Seed int64
	// Logger for the progress of the run. Optional.
	Logger *zap.Logger
}

// DefaultConfig returns a Config measuring sizes from 10 to 290
// every 20 examples, 100 runs each.
func DefaultConfig() Config {
	var sizes []int
	for s := 10; s < 300; s += 20 {
		sizes = append(sizes, s)
	}
	return Config{Sizes: sizes, Runs: 100, Seed: 1}
}

// Validate returns an error if the config cannot be run on n
// examples.
func (c Config) Validate(n int) error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no training sizes")
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs must be positive, got %d", c.Runs)
	}
	for _, s := range c.Sizes {
		if s < 1 || s >= n {
			return fmt.Errorf("training size %d out of range for %d examples", s, n)
		}
	}
	return nil
}

/*
Run takes a context, a set of examples, a default label and a Config and
returns a Point for every size in the config.

For every run of a size the examples are shuffled and the first size of
them are used to grow a tree with id3.Train. The rest are split in two
halves: a validation half to prune a copy of the tree with id3.Prune and
a test half on which both trees are measured. The context is checked
between runs.
*/
func Run(ctx context.Context, examples dataset.Set, defaultLabel string, cfg Config) ([]Point, error) {
	err := cfg.Validate(len(examples))
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	r := rand.New(rand.NewSource(cfg.Seed))
	shuffled := append(dataset.Set(nil), examples...)
	points := make([]Point, 0, len(cfg.Sizes))
	for _, size := range cfg.Sizes {
		unpruned := make([]float64, 0, cfg.Runs)
		pruned := make([]float64, 0, cfg.Runs)
		for i := 0; i < cfg.Runs; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			training := shuffled[:size]
			rest := shuffled[size:]
			validation, test := rest[:len(rest)/2], rest[len(rest)/2:]
			t, err := id3.Train(training, defaultLabel)
			if err != nil {
				return nil, errors.WithMessagef(err, "growing tree from %d examples", size)
			}
			unpruned = append(unpruned, t.Accuracy(test))
			p := id3.Prune(t.Clone(), validation)
			pruned = append(pruned, p.Accuracy(test))
		}
		point := Point{Size: size, Unpruned: mean(unpruned), Pruned: mean(pruned)}
		logger.Debug("learning curve point",
			zap.Int("size", point.Size),
			zap.Float64("unpruned", point.Unpruned),
			zap.Float64("pruned", point.Pruned))
		points = append(points, point)
	}
	return points, nil
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return lo.Sum(xs) / float64(len(xs))
}

// WriteCSV writes the points to w as CSV with a header row.
func WriteCSV(w io.Writer, points []Point) error {
	cw := csv.NewWriter(w)
	err := cw.Write([]string{"size", "unpruned", "pruned"})
	if err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	for _, p := range points {
		err = cw.Write([]string{
			strconv.Itoa(p.Size),
			strconv.FormatFloat(p.Unpruned, 'f', 4, 64),
			strconv.FormatFloat(p.Pruned, 'f', 4, 64),
		})
		if err != nil {
			return errors.Wrapf(err, "writing CSV row for size %d", p.Size)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePNG plots the accuracy with and without pruning against the
// training size and saves it as an image on the given path.
func WritePNG(path string, points []Point) error {
	p := plot.New()
	p.Title.Text = "Learning curve"
	p.X.Label.Text = "Training examples"
	p.Y.Label.Text = "Accuracy on test examples"
	p.Y.Min = 0
	p.Y.Max = 1
	p.Add(plotter.NewGrid())

	withPruning := make(plotter.XYs, len(points))
	withoutPruning := make(plotter.XYs, len(points))
	for i, pt := range points {
		withPruning[i].X = float64(pt.Size)
		withPruning[i].Y = pt.Pruned
		withoutPruning[i].X = float64(pt.Size)
		withoutPruning[i].Y = pt.Unpruned
	}
	err := plotutil.AddLinePoints(p, "With pruning", withPruning, "Without pruning", withoutPruning)
	if err != nil {
		return errors.Wrap(err, "plotting learning curve")
	}
	err = p.Save(10*vg.Inch, 6*vg.Inch, path)
	if err != nil {
		return errors.Wrapf(err, "saving learning curve to %s", path)
	}
	return nil
}
