package cli

import (
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// NewRootCmd creates the root cobra command for the rrsim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "rrsim",
		Short:        "Round-robin CPU scheduling simulator",
		Long:         "rrsim runs a fixed set of tasks to completion under round-robin scheduling and reports waiting and turnaround times.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rrsim version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("rrsim %s\n", Version)
		},
	}
}
