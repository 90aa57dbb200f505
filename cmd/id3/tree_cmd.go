package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type treeCmdConfig struct {
	*rootCmdConfig
	tree treeFlags
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show and manage decision trees",
		Long:  `Print a decision tree as text, or list and delete the trees on a tree store`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.fail(1, err)
			}
			t, err := loadTree(config.Context(), config.rootCmdConfig, config.tree)
			if err != nil {
				config.fail(2, err)
			}
			fmt.Print(t)
		},
	}
	config.tree.register(cmd, "the tree to show")
	cmd.AddCommand(treeListCmd(config), treeDeleteCmd(config))
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	if tcc.tree.path == "" && tcc.tree.name == "" {
		return fmt.Errorf("required tree or name flag was not set")
	}
	return nil
}

func treeListCmd(treeConfig *treeCmdConfig) *cobra.Command {
	var tf treeFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the trees on a tree store",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := treeConfig.Context()
			store, err := treeConfig.treeStore(tf)
			if err != nil {
				treeConfig.fail(1, err)
			}
			defer store.Close(ctx)
			names, err := store.List(ctx)
			if err != nil {
				treeConfig.fail(2, err)
			}
			for _, n := range names {
				fmt.Println(n)
			}
		},
	}
	cmd.Flags().StringVar(&(tf.store), "store", "", fmt.Sprintf("Redis URL of the tree store (defaults to $%s)", redisURLEnv))
	return cmd
}

func treeDeleteCmd(treeConfig *treeCmdConfig) *cobra.Command {
	var tf treeFlags
	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a tree from a tree store",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := treeConfig.Context()
			store, err := treeConfig.treeStore(tf)
			if err != nil {
				treeConfig.fail(1, err)
			}
			defer store.Close(ctx)
			err = store.Delete(ctx, args[0])
			if err != nil {
				treeConfig.fail(2, err)
			}
		},
	}
	cmd.Flags().StringVar(&(tf.store), "store", "", fmt.Sprintf("Redis URL of the tree store (defaults to $%s)", redisURLEnv))
	return cmd
}
