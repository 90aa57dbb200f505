package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type testCmdConfig struct {
	*rootCmdConfig
	tree          treeFlags
	input         setFlags
	metadataInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a test data set`,
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
			t, err := loadTree(ctx, config.rootCmdConfig, config.tree)
			if err != nil {
				config.fail(3, err)
			}
			testingSet, err := readSet(ctx, config.rootCmdConfig, config.input, features)
			if err != nil {
				config.fail(4, fmt.Errorf("reading testing set: %v", err))
			}
			config.Logger().Debug("testing tree", zap.Int("examples", len(testingSet)))
			fmt.Printf("%f accuracy on %d examples\n", t.Accuracy(testingSet), len(testingSet))
		},
	}
	config.tree.register(cmd, "the tree to test")
	config.input.register(cmd, "input", "i", "the examples to test the tree against (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the values of the attributes, to validate the input")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.tree.path == "" && tcc.tree.name == "" {
		return fmt.Errorf("required tree or name flag was not set")
	}
	return nil
}
