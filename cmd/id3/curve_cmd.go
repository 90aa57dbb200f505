package main

import (
	"fmt"
	"os"

	"github.com/Ex-Nihilo-0-1/HW-1/curve"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type curveCmdConfig struct {
	*rootCmdConfig
	input         setFlags
	metadataInput string
	defaultLabel  string
	output        string
	image         string
	sizes         []int
	runs          int
	seed          int64
}

func curveCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &curveCmdConfig{rootCmdConfig: rootConfig}
	defaults := curve.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Compute the learning curve of a set",
		Long:  `Compute the mean accuracy on unseen examples of trees grown from increasing numbers of examples, with and without pruning.`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := config.Context()
			features, err := readFeatures(config.rootCmdConfig, config.metadataInput)
			if err != nil {
				config.fail(2, err)
			}
			s, err := readSet(ctx, config.rootCmdConfig, config.input, features)
			if err != nil {
				config.fail(3, fmt.Errorf("reading set: %v", err))
			}
			cfg := curve.Config{Sizes: config.sizes, Runs: config.runs, Seed: config.seed, Logger: config.Logger()}
			err = cfg.Validate(len(s))
			if err != nil {
				config.fail(1, err)
			}
			config.Logger().Info("computing learning curve", zap.Int("examples", len(s)), zap.Ints("sizes", cfg.Sizes), zap.Int("runs", cfg.Runs))
			points, err := curve.Run(ctx, s, config.defaultLabel, cfg)
			if err != nil {
				config.fail(4, err)
			}
			err = config.writePoints(points)
			if err != nil {
				config.fail(5, err)
			}
			if config.image != "" {
				err = curve.WritePNG(config.image, points)
				if err != nil {
					config.fail(6, err)
				}
				config.Logger().Info("learning curve plotted", zap.String("image", config.image))
			}
		},
	}
	config.input.register(cmd, "input", "i", "the examples to compute the curve on (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the values of the attributes, to validate the input")
	cmd.Flags().StringVarP(&(config.defaultLabel), "default", "d", "", "label to predict when there are no examples")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a CSV file to write the curve to (defaults to STDOUT)")
	cmd.Flags().StringVar(&(config.image), "png", "", "path to a PNG file to plot the curve on")
	cmd.Flags().IntSliceVar(&(config.sizes), "sizes", defaults.Sizes, "training set sizes")
	cmd.Flags().IntVar(&(config.runs), "runs", defaults.Runs, "number of trees grown for every size")
	cmd.Flags().Int64Var(&(config.seed), "seed", defaults.Seed, "seed for the random shuffles")
	return cmd
}

func (ccc *curveCmdConfig) writePoints(points []curve.Point) error {
	if ccc.output == "" {
		return curve.WriteCSV(os.Stdout, points)
	}
	f, err := os.Create(ccc.output)
	if err != nil {
		return err
	}
	defer f.Close()
	return curve.WriteCSV(f, points)
}
