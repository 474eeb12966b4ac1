package dijkstra

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/sssp/core"
)

// Cache memoises one Result per source over a frozen graph.
//
// NewCache freezes the graph, so a cached Result can never describe an outdated
// topology. Concurrent first requests for the same source are coalesced into a
// single computation. Failed computations are not cached.
type Cache struct {
	g    *core.Graph
	opts []Option

	// A singleflight.Group prevents duplicate in-flight computations for the same source.
	group singleflight.Group

	mu      sync.RWMutex
	results map[int]*Result
}

// NewCache freezes g and returns an empty cache computing with opts.
// Returns ErrNilGraph when g is nil.
func NewCache(g *core.Graph, opts ...Option) (*Cache, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	g.Freeze()

	return &Cache{
		g:       g,
		opts:    opts,
		results: make(map[int]*Result),
	}, nil
}

// Get returns the Result for source, computing it on first use.
// Repeated calls return the same *Result.
func (c *Cache) Get(source int) (*Result, error) {
	if res, ok := c.lookup(source); ok {
		return res, nil
	}

	v, err, _ := c.group.Do(strconv.Itoa(source), func() (interface{}, error) {
		// Another flight may have finished between lookup and Do.
		if res, ok := c.lookup(source); ok {
			return res, nil
		}
		res, err := Compute(c.g, source, c.opts...)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.results[source] = res
		c.mu.Unlock()

		return res, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Result), nil
}

// Len returns the number of cached sources.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.results)
}

func (c *Cache) lookup(source int) (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res, ok := c.results[source]

	return res, ok
}
