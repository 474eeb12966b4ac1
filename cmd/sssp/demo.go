package main

import (
	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/dijkstra"
)

// demoSource is the source vertex of the built-in demonstration.
const demoSource = 0

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the ten-vertex example graph from vertex 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := builder.ExampleGraph()
			if err != nil {
				return err
			}
			log.Debugf("sssp: example graph with %d vertices and %d edges", g.Size(), g.EdgeCount())

			res, err := dijkstra.Compute(g, demoSource)
			if err != nil {
				log.Errorf("sssp: demo computation failed: %s", err)
				return err
			}

			return printResult(cmd.OutOrStdout(), res)
		},
	}
}
