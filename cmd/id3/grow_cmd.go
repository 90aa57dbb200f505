package main

import (
	"fmt"

	id3 "github.com/Ex-Nihilo-0-1/HW-1"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type growCmdConfig struct {
	*rootCmdConfig
	input         setFlags
	validation    setFlags
	output        treeFlags
	metadataInput string
	defaultLabel  string
	maxDepth      int
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a decision tree from a set of examples to predict their class, optionally pruning it against a validation set.`,
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
			options := []id3.Option{id3.MaxDepth(config.maxDepth)}
			if len(features) > 0 {
				options = append(options, id3.Domains(features))
			}
			config.Logger().Info("growing tree",
				zap.Int("examples", len(trainingSet)),
				zap.Int("attributes", len(trainingSet.Attributes())))
			t, err := id3.Train(trainingSet, config.defaultLabel, options...)
			if err != nil {
				config.fail(4, fmt.Errorf("growing the tree: %v", err))
			}
			config.Logger().Info("tree grown", zap.Int("size", t.Size()), zap.Int("depth", t.Depth()))
			if config.validation.location != "" {
				validationSet, err := readSet(ctx, config.rootCmdConfig, config.validation, features)
				if err != nil {
					config.fail(5, fmt.Errorf("reading validation set: %v", err))
				}
				before := t.Accuracy(validationSet)
				id3.Prune(t, validationSet)
				config.Logger().Info("tree pruned",
					zap.Int("size", t.Size()),
					zap.Float64("accuracyBefore", before),
					zap.Float64("accuracyAfter", t.Accuracy(validationSet)))
			}
			config.Logger().Debug(t.String())
			err = outputTree(ctx, config.rootCmdConfig, config.output, t)
			if err != nil {
				config.fail(6, err)
			}
		},
	}
	config.input.register(cmd, "input", "i", "the examples to grow the tree from (defaults to STDIN, interpreted as CSV)")
	config.validation.register(cmd, "validation", "", "the examples to prune the tree against (no pruning by default)")
	cmd.Flags().StringVarP(&(config.output.path), "output", "o", "", "path to a file to which the generated tree will be written in JSON format (defaults to STDOUT unless name is set)")
	cmd.Flags().StringVar(&(config.output.store), "store", "", fmt.Sprintf("Redis URL of the tree store to save the tree on (defaults to $%s)", redisURLEnv))
	cmd.Flags().StringVar(&(config.output.name), "name", "", "name to save the tree with on the tree store")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the values of the attributes, to validate the input and branch on every value")
	cmd.Flags().StringVarP(&(config.defaultLabel), "default", "d", "", "label to predict when there are no examples")
	cmd.Flags().IntVar(&(config.maxDepth), "max-depth", -1, "maximum number of questions on any path of the tree (defaults to no limit)")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.input.location != "" && gcc.input.location == gcc.validation.location && gcc.input.collection == gcc.validation.collection {
		return fmt.Errorf("input and validation sets must be different")
	}
	return nil
}
