package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/Ex-Nihilo-0-1/HW-1/dataset/inputsample"
	"github.com/Ex-Nihilo-0-1/HW-1/feature"
	"github.com/Ex-Nihilo-0-1/HW-1/tree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type predictCmdConfig struct {
	*rootCmdConfig
	tree           treeFlags
	metadataInput  string
	undefinedValue string
}

type stdoutValueRequester string

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict [attribute=value]...",
		Short: "Predict the class of an example answering questions",
		Long:  `Use a tree to predict the class of an example. Attribute values can be given as arguments, the rest of the values the tree asks about are read from STDIN.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.fail(1, err)
			}
			features, err := readFeatures(config.rootCmdConfig, config.metadataInput)
			if err != nil {
				config.fail(2, err)
			}
			given, err := dataset.ParseExample(args...)
			if err != nil {
				config.fail(3, err)
			}
			t, err := loadTree(config.Context(), config.rootCmdConfig, config.tree)
			if err != nil {
				config.fail(4, err)
			}
			label, example, err := predict(t, given, features, config.undefinedValue)
			if err != nil {
				config.fail(5, err)
			}
			config.Logger().Debug("example classified", zap.Stringer("example", example), zap.String("label", label))
			fmt.Printf("Predicted class is %s\n", label)
		},
	}
	config.tree.register(cmd, "the tree to predict with")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the values of the attributes, to validate the answers")
	cmd.Flags().StringVarP(&(config.undefinedValue), "undefined-value", "u", dataset.Missing, "value to input to define an example's value for an attribute as unknown")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.tree.path == "" && pcc.tree.name == "" {
		return fmt.Errorf("required tree or name flag was not set")
	}
	return nil
}

// predict classifies given, completed with the values read from
// STDIN, and returns the label and the completed example.
func predict(t *tree.Tree, given dataset.Example, features []*feature.Feature, undefinedValue string) (string, dataset.Example, error) {
	sample := inputsample.New(os.Stdin, features, stdoutValueRequester(undefinedValue), undefinedValue)
	label, err := tree.ClassifyFunc(t.Root, func(attribute string) (string, bool, error) {
		if v, ok := given.Value(attribute); ok {
			return v, true, nil
		}
		return sample.ValueFor(attribute)
	})
	if err != nil {
		return "", dataset.Example{}, err
	}
	return label, sample.Example(given), nil
}

func (svr stdoutValueRequester) RequestValueFor(attribute string, f *feature.Feature) error {
	if f == nil {
		fmt.Printf("Please provide the example's %s:\n(%s if unknown)\n", attribute, string(svr))
		return nil
	}
	fmt.Printf("Please provide the example's %s:\n(valid values are %s or %s if unknown)\n", attribute, strings.Join(f.AvailableValues(), ", "), string(svr))
	return nil
}

func (svr stdoutValueRequester) RejectValueFor(attribute string, value string) error {
	fmt.Printf("%q is not a valid value for the example's %s. Please provide another one or %s if unknown.\n", value, attribute, string(svr))
	return nil
}
