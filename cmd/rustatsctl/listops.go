package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OutSquareCapital/rustats/config"
)

func newListOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-ops",
		Short: "List the operation names accepted by a run config",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.Operations {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
