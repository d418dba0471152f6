package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that every hook loads",
		Long: `Load every hook of the configured hooks directory and report the first error.

Examples:
  fisher check
  fisher check -c ./fisher.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, cfg, err := loadHooks(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d hooks loaded from %s\n", deps.Blueprint.Hooks().Len(), cfg.HooksPath)
			return nil
		},
	}
}
