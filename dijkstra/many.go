package dijkstra

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sssp/core"
)

// ComputeMany runs one independent Compute per source over the same graph,
// using up to GOMAXPROCS goroutines. results[i] belongs to sources[i];
// repeated sources are computed once per occurrence.
//
// Each computation only reads g and allocates private state, so no
// synchronization beyond the graph's own read lock is involved.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - The first Compute error (wrapped with its source index); the others are discarded.
//   - ctx.Err() if ctx is cancelled before every source was scheduled.
//
// Complexity: O(S · (V + E) log V) total work for S sources.
func ComputeMany(ctx context.Context, g *core.Graph, sources []int, opts ...Option) ([]*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	results := make([]*Result, len(sources))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	scheduled := 0
	for i, src := range sources {
		// Stop scheduling once a run failed or the caller gave up.
		if gctx.Err() != nil {
			break
		}
		i, src := i, src
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Compute(g, src, opts...)
			if err != nil {
				return fmt.Errorf("source #%d: %w", i, err)
			}
			results[i] = res

			return nil
		})
		scheduled++
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// The caller cancelled before every source was scheduled, and no run failed.
	if scheduled < len(sources) {
		return nil, ctx.Err()
	}

	return results, nil
}
