// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on index-addressed graphs.
//
// Options:
//
//	– Queue:            priority-queue policy (QueueLazy by default, or QueueIndexed).
//	– MaxDistance:      optional cap on distances to explore; vertices beyond stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph           if the provided graph pointer is nil.
//	– ErrVertexOutOfRange   if a source or queried vertex is outside [0, size).
//	– ErrBadMaxDistance     if MaxDistance < 0.
//	– ErrBadInfThreshold    if InfEdgeThreshold <= 0.
//	– ErrBadQueuePolicy     if the queue policy is unknown.
//	– ErrDistanceOverflow   if a path length does not fit in int64.
//	– ErrInvariantViolation if the predecessor tree is corrupt (a bug, never user input).
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sssp/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Compute.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexOutOfRange indicates a source or query vertex outside [0, size).
	// It wraps core.ErrVertexOutOfRange, so errors.Is matches either sentinel.
	ErrVertexOutOfRange = fmt.Errorf("dijkstra: %w", core.ErrVertexOutOfRange)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadQueuePolicy indicates an unknown QueuePolicy value.
	ErrBadQueuePolicy = errors.New("dijkstra: unknown queue policy")

	// ErrDistanceOverflow indicates that a vertex is reachable only over paths
	// longer than math.MaxInt64.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflows int64")

	// ErrInvariantViolation indicates a corrupt predecessor tree (cycle or broken
	// chain) found during path reconstruction. It signals a bug, not bad input.
	ErrInvariantViolation = errors.New("dijkstra: internal invariant violation")
)

// QueuePolicy selects the priority queue driving the relaxation loop.
//
// Both policies run in O((V + E) log V); they differ in memory profile only.
type QueuePolicy int

const (
	// QueueLazy is a binary heap with lazy deletion: an improved vertex is pushed
	// again and the outdated entry is discarded when popped. Heap size ≤ E+1.
	QueueLazy QueuePolicy = iota

	// QueueIndexed is an indexed binary heap with decrease-key: each vertex is
	// stored at most once. Heap size ≤ V.
	QueueIndexed
)

// String returns the flag spelling of the policy ("lazy", "indexed").
func (p QueuePolicy) String() string {
	switch p {
	case QueueLazy:
		return "lazy"
	case QueueIndexed:
		return "indexed"
	default:
		return fmt.Sprintf("QueuePolicy(%d)", int(p))
	}
}

// ParseQueuePolicy maps "lazy" or "indexed" to a QueuePolicy.
func ParseQueuePolicy(s string) (QueuePolicy, error) {
	switch s {
	case "lazy":
		return QueueLazy, nil
	case "indexed":
		return QueueIndexed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadQueuePolicy, s)
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Queue            – priority-queue policy. Default QueueLazy.
// MaxDistance      – optional cap on distances to explore (vertices beyond are unreached).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64, which disables the threshold:
//	every edge, including one of weight math.MaxInt64, stays traversable.
type Options struct {
	Queue            QueuePolicy // Priority-queue implementation
	MaxDistance      int64       // Maximum distance to explore
	InfEdgeThreshold int64       // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithQueue selects the priority-queue policy.
// Panics on an unknown policy to surface programmer error early.
func WithQueue(p QueuePolicy) Option {
	if p != QueueLazy && p != QueueIndexed {
		panic(ErrBadQueuePolicy.Error())
	}
	return func(o *Options) {
		o.Queue = p
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are left unreached.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		// Option constructors validate and panic; algorithms never do.
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Must pass a positive value.
// math.MaxInt64 restores the default (no threshold).
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Queue:            QueueLazy.
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		Queue:            QueueLazy,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// validate re-checks values that bypassed the option constructors
// (a hand-written Option can set any field).
func (o Options) validate() error {
	if o.MaxDistance < 0 {
		return ErrBadMaxDistance
	}
	if o.InfEdgeThreshold <= 0 {
		return ErrBadInfThreshold
	}
	if o.Queue != QueueLazy && o.Queue != QueueIndexed {
		return fmt.Errorf("%w: %d", ErrBadQueuePolicy, int(o.Queue))
	}

	return nil
}

// capped reports whether MaxDistance restricts exploration.
func (o Options) capped() bool {
	return o.MaxDistance != math.MaxInt64
}

// walled reports whether InfEdgeThreshold makes any edge impassable.
func (o Options) walled() bool {
	return o.InfEdgeThreshold != math.MaxInt64
}
