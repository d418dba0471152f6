package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fisher-hooks/fisher/pkg/errs"
)

var (
	force     bool
	hooksPath string
)

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [--force] [--hooks-path <path>]",
		Short: "Initialize Fisher configuration",
		Long: `Write the default configuration file and create the hooks directory.

Flags:
  --force        Overwrite an existing configuration file
  --hooks-path   Directory scanned for hooks`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, _, err := loadDependencies(cmd)
			if err != nil {
				return err
			}

			path, err := deps.FS.ExpandPath(deps.Config.GetConfigPath())
			if err != nil {
				return err
			}
			exists, err := deps.FS.Exists(path)
			if err != nil {
				return errs.IO(err)
			}
			if exists && !force {
				return fmt.Errorf("%w: %s", ErrAlreadyInitialized, path)
			}

			cfg := deps.Config.DefaultConfig()
			if hooksPath != "" {
				cfg.HooksPath = hooksPath
			}
			if err := deps.Config.SaveConfig(cfg); err != nil {
				return err
			}

			dir, err := deps.FS.ExpandPath(cfg.HooksPath)
			if err != nil {
				return err
			}
			if err := deps.FS.MkdirAll(dir, 0755); err != nil {
				return errs.WithFile(errs.IO(err), dir)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Hooks directory: %s\n", dir)
			return nil
		},
	}

	// Add flags
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	initCmd.Flags().StringVar(&hooksPath, "hooks-path", "", "Directory scanned for hooks")

	return initCmd
}
