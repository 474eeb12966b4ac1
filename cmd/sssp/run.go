package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// errBadEdgeSpec is returned for an --edge value that is not "u,v,w".
var errBadEdgeSpec = errors.New("edge must be given as u,v,w")

// runFlags holds the flag values of the run command.
type runFlags struct {
	size         int
	edges        []string
	undirected   bool
	source       int
	queue        string
	maxDistance  int64
	infThreshold int64
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute shortest paths over a graph given on the command line",
		Example: "  sssp run --size 4 --edge 0,1,2 --edge 1,2,3 --edge 0,2,9\n" +
			"  sssp run --size 3 --edge 0,1,1 --undirected --source 1 --queue indexed",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := f.graph()
			if err != nil {
				return err
			}
			opts, err := f.options()
			if err != nil {
				return err
			}
			log.Debugf("sssp: computing from %d over %d vertices, %d edges", f.source, g.Size(), g.EdgeCount())

			res, err := dijkstra.Compute(g, f.source, opts...)
			if err != nil {
				log.Errorf("sssp: computation failed: %s", err)
				return err
			}
			log.Infof("sssp: reached %d of %d vertices", len(res.Reached()), res.Size())

			return printResult(cmd.OutOrStdout(), res)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.size, "size", 0, "number of vertices")
	fl.StringArrayVar(&f.edges, "edge", nil, "directed edge u,v,w (repeatable)")
	fl.BoolVar(&f.undirected, "undirected", false, "insert every edge in both directions")
	fl.IntVar(&f.source, "source", 0, "source vertex")
	fl.StringVar(&f.queue, "queue", dijkstra.QueueLazy.String(), "priority queue: lazy or indexed")
	fl.Int64Var(&f.maxDistance, "max-distance", math.MaxInt64, "stop exploring beyond this distance")
	fl.Int64Var(&f.infThreshold, "inf-threshold", math.MaxInt64, "treat edges of at least this weight as absent")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

// graph builds the core.Graph described by the flags.
func (f *runFlags) graph() (*core.Graph, error) {
	g, err := core.NewGraph(f.size, core.WithEdgeCapacity(len(f.edges)))
	if err != nil {
		return nil, err
	}
	for _, spec := range f.edges {
		e, err := parseEdge(spec)
		if err != nil {
			return nil, err
		}
		if f.undirected {
			err = g.AddUndirectedEdge(e.From, e.To, e.Weight)
		} else {
			err = g.AddEdge(e.From, e.To, e.Weight)
		}
		if err != nil {
			return nil, fmt.Errorf("edge %q: %w", spec, err)
		}
	}

	return g, nil
}

// options validates the flag values before they reach the panicking
// option constructors.
func (f *runFlags) options() ([]dijkstra.Option, error) {
	queue, err := dijkstra.ParseQueuePolicy(f.queue)
	if err != nil {
		return nil, err
	}
	if f.maxDistance < 0 {
		return nil, fmt.Errorf("%w: %d", dijkstra.ErrBadMaxDistance, f.maxDistance)
	}
	if f.infThreshold <= 0 {
		return nil, fmt.Errorf("%w: %d", dijkstra.ErrBadInfThreshold, f.infThreshold)
	}

	return []dijkstra.Option{
		dijkstra.WithQueue(queue),
		dijkstra.WithMaxDistance(f.maxDistance),
		dijkstra.WithInfEdgeThreshold(f.infThreshold),
	}, nil
}

// parseEdge reads "u,v,w" into an Edge. Range and sign checks are left to core.
func parseEdge(spec string) (core.Edge, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return core.Edge{}, fmt.Errorf("%w: %q", errBadEdgeSpec, spec)
	}

	from, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: %q: %w", errBadEdgeSpec, spec, err)
	}
	to, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: %q: %w", errBadEdgeSpec, spec, err)
	}
	weight, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: %q: %w", errBadEdgeSpec, spec, err)
	}

	return core.Edge{From: from, To: to, Weight: weight}, nil
}
