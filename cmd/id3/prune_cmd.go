package main

import (
	"fmt"

	id3 "github.com/Ex-Nihilo-0-1/HW-1"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type pruneCmdConfig struct {
	*rootCmdConfig
	tree          treeFlags
	validation    setFlags
	output        treeFlags
	metadataInput string
}

func pruneCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &pruneCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Prune a tree against a validation set",
		Long:  `Simplify a tree with reduced-error pruning: subtrees are replaced by leaves as long as the accuracy on the validation set does not decrease.`,
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
			validationSet, err := readSet(ctx, config.rootCmdConfig, config.validation, features)
			if err != nil {
				config.fail(4, fmt.Errorf("reading validation set: %v", err))
			}
			size, before := t.Size(), t.Accuracy(validationSet)
			id3.Prune(t, validationSet)
			config.Logger().Info("tree pruned",
				zap.Int("sizeBefore", size),
				zap.Int("sizeAfter", t.Size()),
				zap.Float64("accuracyBefore", before),
				zap.Float64("accuracyAfter", t.Accuracy(validationSet)))
			err = outputTree(ctx, config.rootCmdConfig, config.destination(), t)
			if err != nil {
				config.fail(5, err)
			}
		},
	}
	config.tree.register(cmd, "the tree to prune")
	config.validation.register(cmd, "input", "i", "the validation examples (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.output.path), "output", "o", "", "path to a file to which the pruned tree will be written in JSON format (defaults to replacing the pruned tree where it was read from)")
	cmd.Flags().StringVar(&(config.output.name), "output-name", "", "name to save the pruned tree with on the tree store")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the values of the attributes, to validate the input")
	return cmd
}

/*
destination returns where the pruned tree goes: the output flags if
any is set, or else the store entry or file the tree was read from.
*/
func (pcc *pruneCmdConfig) destination() treeFlags {
	out := pcc.output
	if out.name == "" && out.path == "" {
		out.name = pcc.tree.name
		if out.name == "" {
			out.path = pcc.tree.path
		}
	}
	if out.store == "" {
		out.store = pcc.tree.store
	}
	return out
}

func (pcc *pruneCmdConfig) Validate() error {
	if pcc.tree.path == "" && pcc.tree.name == "" {
		return fmt.Errorf("required tree or name flag was not set")
	}
	return nil
}
