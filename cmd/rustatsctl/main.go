// Command rustatsctl runs a single named rustats operation over a CSV
// matrix, configured by a YAML file.
package main

import (
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func main() {
	defer glog.Flush()
	if err := newRootCmd().Execute(); err != nil {
		glog.Errorf("rustatsctl: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rustatsctl",
		Short:         "Run moving-window and aggregate statistics over a CSV matrix",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newListOpsCmd())
	return root
}
