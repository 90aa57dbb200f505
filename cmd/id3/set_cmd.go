package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type setCmdConfig struct {
	*rootCmdConfig
	input         setFlags
	output        setFlags
	metadataInput string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Copy sets of examples",
		Long:  `Copy a set of examples between CSV files, SQLite3 and PostgreSQL tables and MongoDB collections`,
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
			s, err := readSet(ctx, config.rootCmdConfig, config.input, features)
			if err != nil {
				config.fail(3, fmt.Errorf("reading input set: %v", err))
			}
			err = writeSet(ctx, config.rootCmdConfig, config.output, s)
			if err != nil {
				config.fail(4, fmt.Errorf("writing output set: %v", err))
			}
			config.Logger().Info("set copied", zap.Int("examples", len(s)))
		},
	}
	config.input.register(cmd, "input", "i", "the examples to copy (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.output.location), "output", "o", "", locationFlagHelp+" to copy the examples to (defaults to STDOUT in CSV)")
	cmd.Flags().StringVar(&(config.output.collection), "output-table", defaultTable, "name of the table or collection to copy the examples to")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the values of the attributes, to validate the input")
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	if scc.input.location != "" && scc.input.location == scc.output.location && scc.input.collection == scc.output.collection {
		return fmt.Errorf("input and output sets must be different")
	}
	return nil
}
