package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	verbose    bool
	env        map[string]string
	logger     *zap.Logger
	ctx        context.Context
	cancelFunc context.CancelFunc
}

func main() {
	config := &rootCmdConfig{}
	err := cliParser(config).Execute()
	config.Close()
	if err != nil {
		os.Exit(1)
	}
}

func cliParser(config *rootCmdConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "id3",
		Short: "id3 is a tool to grow decision trees",
		Long:  `A tool to grow ID3 decision trees from your data, prune them, test them, and use them to make predictions`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Setup()
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log debug messages")
	rootCmd.AddCommand(
		versionCmd(),
		growCmd(config),
		testCmd(config),
		pruneCmd(config),
		predictCmd(config),
		treeCmd(config),
		forestCmd(config),
		curveCmd(config),
		setCmd(config),
	)
	return rootCmd
}

// Setup loads the environment files and builds the logger.
func (rcc *rootCmdConfig) Setup() error {
	env, err := loadEnv()
	if err != nil {
		return fmt.Errorf("loading environment files: %v", err)
	}
	rcc.env = env
	rcc.logger, err = newLogger(rcc.verbose, rcc.Getenv(logFileEnv))
	if err != nil {
		return fmt.Errorf("building logger: %v", err)
	}
	return nil
}

// Logger returns the logger built by Setup, or a no-op logger
// before that.
func (rcc *rootCmdConfig) Logger() *zap.Logger {
	if rcc.logger == nil {
		return zap.NewNop()
	}
	return rcc.logger
}

// Context returns a context that is cancelled on interrupt.
func (rcc *rootCmdConfig) Context() context.Context {
	if rcc.ctx == nil {
		rcc.ctx, rcc.cancelFunc = signal.NotifyContext(context.Background(), os.Interrupt)
	}
	return rcc.ctx
}

// Close releases the context and flushes the logger.
func (rcc *rootCmdConfig) Close() {
	if rcc.cancelFunc != nil {
		rcc.cancelFunc()
	}
	if rcc.logger != nil {
		rcc.logger.Sync()
	}
}

// fail prints err to stderr and exits with the given code.
func (rcc *rootCmdConfig) fail(code int, err error) {
	rcc.Logger().Debug("command failed", zap.Int("code", code), zap.Error(err))
	fmt.Fprintln(os.Stderr, err)
	rcc.Close()
	os.Exit(code)
}
