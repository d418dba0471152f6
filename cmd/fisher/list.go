package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all hooks",
		Long: `List the hooks found in the configured hooks directory, with their providers.

Examples:
  fisher list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, _, err := loadHooks(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			registry := deps.Blueprint.Hooks()
			if registry.Len() == 0 {
				fmt.Fprintln(out, "No hooks found.")
				return nil
			}

			for hook := range registry.All() {
				names := make([]string, 0, len(hook.Providers()))
				for _, provider := range hook.Providers() {
					names = append(names, provider.Name())
				}
				if len(names) == 0 {
					fmt.Fprintln(out, hook.Name())
					continue
				}
				fmt.Fprintf(out, "%s [%s]\n", hook.Name(), strings.Join(names, ", "))
			}
			return nil
		},
	}

	return listCmd
}
