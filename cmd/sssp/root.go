package main

import (
	"sync"

	"github.com/safing/portbase/info"
	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"
)

var startLogOnce sync.Once

// newRootCmd wires the sub-commands and the global --verbose flag.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "sssp",
		Short:         "Single-source shortest paths with Dijkstra's algorithm",
		Version:       info.Version(),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return startLogging(verbose)
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "log debug messages")

	root.AddCommand(
		newDemoCmd(),
		newRunCmd(),
		newDotCmd(),
	)

	return root
}

// startLogging starts the logger once per process and sets the level:
// warnings by default, everything down to debug with --verbose.
func startLogging(verbose bool) error {
	var err error
	startLogOnce.Do(func() {
		err = log.Start()
	})
	if err != nil {
		return err
	}

	if verbose {
		log.SetLogLevel(log.DebugLevel)
	} else {
		log.SetLogLevel(log.WarningLevel)
	}

	return nil
}
