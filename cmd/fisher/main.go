// Package main provides the command-line interface for the Fisher application.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fisher-hooks/fisher/pkg/config"
	"github.com/fisher-hooks/fisher/pkg/dependencies"
	"github.com/fisher-hooks/fisher/pkg/errs"
	"github.com/fisher-hooks/fisher/pkg/logger"
)

var (
	verbose    bool
	configPath string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fisher",
		Short: "Fisher - webhook-triggered automation",
		Long: `Fisher runs executable hooks in isolated working directories when a ` +
			`request accepted by one of their providers comes in.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(createInitCmd(), createListCmd(), createCheckCmd(), createRunCmd())
	return rootCmd
}

// loadDependencies builds the dependency container from the configuration
// file, or from the defaults when the file does not exist.
func loadDependencies(cmd *cobra.Command) (*dependencies.Dependencies, config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath
	}

	deps := dependencies.New()
	deps.WithLogger(logger.NewDefaultLogger(cmd.ErrOrStderr(), verbose)).
		WithConfig(config.NewManager(deps.FS, path))

	cfg, err := deps.Config.GetConfigWithFallback()
	if err != nil {
		return nil, config.Config{}, err
	}
	deps.Apply(cfg)

	if err := deps.Validate(); err != nil {
		return nil, config.Config{}, err
	}
	return deps, cfg, nil
}

// loadHooks is loadDependencies followed by the collection of the hooks directory.
func loadHooks(cmd *cobra.Command) (*dependencies.Dependencies, config.Config, error) {
	deps, cfg, err := loadDependencies(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}

	if err := deps.Blueprint.CollectPath(cfg.HooksPath, cfg.Recursive); err != nil {
		return nil, config.Config{}, err
	}
	return deps, cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		errs.Report(os.Stderr, err)
		os.Exit(1)
	}
}
