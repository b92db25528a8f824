package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/OutSquareCapital/rustats/config"
)

func newRunCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a YAML config, run its operation, and write the result CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			glog.V(1).Infof("rustatsctl run: operation=%s input=%s output=%s parallel=%v",
				cfg.Operation, cfg.Input, cfg.Output, cfg.Parallel)

			in, err := readMatrix(cfg.Input)
			if err != nil {
				return err
			}
			out, err := dispatch(cfg, in)
			if err != nil {
				return err
			}
			if err := writeMatrix(cfg.Output, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d x %d matrix to %s\n", out.Rows(), out.Cols(), cfg.Output)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the YAML run configuration")
	cmd.MarkFlagRequired("config")
	return cmd
}
