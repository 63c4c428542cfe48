package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlds/core"
)

// Sentinel errors for Dijkstra.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates a source handle that is not a vertex of the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a non-positive InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable is returned by PathTo for vertices without a distance.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable")
)

// Options configures Dijkstra.
type Options struct {
	// ReturnPath records predecessors so Result.PathTo works.
	ReturnPath bool
	// MaxDistance stops relaxing beyond this distance. Default math.MaxInt64.
	MaxDistance int64
	// InfEdgeThreshold treats edges with weight >= threshold as impassable.
	// Default math.MaxInt64.
	InfEdgeThreshold int64

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns no path tracking and no distance or edge caps.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64, InfEdgeThreshold: math.MaxInt64}
}

// WithReturnPath enables predecessor tracking.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps explored distances; negative values are rejected.
func WithMaxDistance(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, limit)
			return
		}
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold makes edges weighing at least threshold impassable.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// Result holds shortest distances from the source and, with WithReturnPath,
// predecessor links.
type Result struct {
	Source core.VertexHandle
	Dist   map[core.VertexHandle]int64
	Prev   map[core.VertexHandle]core.VertexHandle
}

// PathTo rebuilds the source→dest path. Requires WithReturnPath.
func (r *Result) PathTo(dest core.VertexHandle) ([]core.VertexHandle, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: vertex %d", ErrUnreachable, dest.Index())
	}
	path := []core.VertexHandle{dest}
	for cur := dest; cur != r.Source; {
		prev, ok := r.Prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for vertex %d (path tracking disabled?)", ErrUnreachable, cur.Index())
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
