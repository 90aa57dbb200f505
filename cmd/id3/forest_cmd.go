package main

import (
	"fmt"

	id3 "github.com/Ex-Nihilo-0-1/HW-1"
	"github.com/Ex-Nihilo-0-1/HW-1/forest"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type forestCmdConfig struct {
	*rootCmdConfig
	input         setFlags
	test          setFlags
	metadataInput string
	defaultLabel  string
	numTrees      int
	maxFeatures   int
	numWorkers    int
	seed          int64
}

func forestCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &forestCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "forest",
		Short: "Grow a forest of trees and test it",
		Long:  `Grow a forest of trees from bootstrap samples of a training set and compare its accuracy on a test set with the one of a single tree.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.fail(1, err)
			}
			ctx := config.Context()
			features, err := readFeatures(config.rootCmdConfig, config.metadataInput)
			if err != nil {
				config.fail(2, err)
			}
			trainingSet, err := readSet(ctx, config.rootCmdConfig, config.input, features)
			if err != nil {
				config.fail(3, fmt.Errorf("reading training set: %v", err))
			}
			testingSet, err := readSet(ctx, config.rootCmdConfig, config.test, features)
			if err != nil {
				config.fail(4, fmt.Errorf("reading testing set: %v", err))
			}
			options := []forest.Option{
				forest.NumTrees(config.numTrees),
				forest.MaxFeatures(config.maxFeatures),
				forest.Seed(config.seed),
				forest.Logger(config.Logger()),
			}
			if config.numWorkers > 0 {
				options = append(options, forest.NumWorkers(config.numWorkers))
			}
			f := forest.New(options...)
			err = f.Fit(ctx, trainingSet, config.defaultLabel)
			if err != nil {
				config.fail(5, fmt.Errorf("growing the forest: %v", err))
			}
			t, err := id3.Train(trainingSet, config.defaultLabel)
			if err != nil {
				config.fail(6, fmt.Errorf("growing the tree: %v", err))
			}
			config.Logger().Debug("forest tested", zap.Int("examples", len(testingSet)))
			fmt.Printf("%f single tree accuracy on %d examples\n", t.Accuracy(testingSet), len(testingSet))
			fmt.Printf("%f forest accuracy on %d examples\n", f.Accuracy(testingSet), len(testingSet))
		},
	}
	config.input.register(cmd, "input", "i", "the examples to grow the forest from")
	config.test.register(cmd, "test", "", "the examples to test the forest against")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the values of the attributes, to validate the input")
	cmd.Flags().StringVarP(&(config.defaultLabel), "default", "d", "", "label to predict when there are no examples")
	cmd.Flags().IntVarP(&(config.numTrees), "trees", "n", forest.DefaultNumTrees, "number of trees of the forest")
	cmd.Flags().IntVar(&(config.maxFeatures), "max-features", 0, "number of attributes each tree is grown with (defaults to 0: all)")
	cmd.Flags().IntVar(&(config.numWorkers), "workers", 0, "number of trees grown at a time (defaults to the number of CPUs)")
	cmd.Flags().Int64Var(&(config.seed), "seed", 1, "seed for the random sampling")
	return cmd
}

func (fcc *forestCmdConfig) Validate() error {
	if fcc.input.location == "" {
		return fmt.Errorf("required input flag was not set")
	}
	if fcc.test.location == "" {
		return fmt.Errorf("required test flag was not set")
	}
	if fcc.numTrees < 1 {
		return fmt.Errorf("trees must be positive, got %d", fcc.numTrees)
	}
	return nil
}
