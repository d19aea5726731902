package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mindvault/infrastructure/config"
	"mindvault/infrastructure/di"
)

var configPath string

// rootCmd is the mindvault CLI entrypoint
var rootCmd = &cobra.Command{
	Use:   "mindvault",
	Short: "Personal knowledge management client",
	Long: `mindvault tracks knowledge nodes, learning sessions, skills and
achievements against a local embedded store.

All state flows through the application state coordinator; every command
boots it, runs the bootstrap loads and then executes one operation.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (YAML)")
	rootCmd.AddCommand(nodeCmd, searchCmd, recordCmd, loginCmd, importCmd, exportCmd, statsCmd, reportCmd)
}

// withContainer boots the container, runs the bootstrap and hands the
// coordinator to fn. A partially failed bootstrap is reported but does not
// abort: the command still runs against whatever data loaded.
func withContainer(fn func(ctx context.Context, c *di.Container) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	container, err := di.InitializeContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	ctx := context.Background()
	container.Store.Initialize(ctx)
	if err := container.Store.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		container.Store.ClearError()
	}
	return fn(ctx, container)
}
