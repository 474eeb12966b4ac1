package main

import (
	"fmt"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/katalvlaran/sssp/render"
)

func newDotCmd() *cobra.Command {
	var source int

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Print the example graph as Graphviz DOT with the shortest-path tree highlighted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := builder.ExampleGraph()
			if err != nil {
				return err
			}
			res, err := dijkstra.Compute(g, source)
			if err != nil {
				return err
			}
			out, err := render.DOT(g, res)
			if err != nil {
				log.Errorf("sssp: rendering failed: %s", err)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
	cmd.Flags().IntVar(&source, "source", demoSource, "source vertex")

	return cmd
}
