package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
	"github.com/katalvlaran/lvlds/heap"
)

// Dijkstra computes shortest distances from source over out-edges whose
// payload is a non-negative int64 weight. On bidirectional graphs every edge
// is walkable both ways.
//
// Implementation:
//   - Stage 1: validate graph, options and source.
//   - Stage 2: lazy decrease-key: a vertex may be queued several times, stale
//     entries are skipped when popped.
//   - Stage 3: relax each out-edge of the popped vertex.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrBadMaxDistance, ErrBadInfThreshold,
// ErrNegativeWeight.
// Complexity: O((V + E) log E) time, O(V + E) memory.
func Dijkstra[V any](g *core.Graph[V, int64], source core.VertexHandle, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %w", ErrVertexNotFound, core.ErrInvalidHandle)
	}

	r := &runner[V]{
		graph: g,
		opts:  o,
		done:  make([]bool, g.VertexCount()),
		pq:    heap.New[nodeItem](heap.MinKeyed[nodeItem, int64]{}),
		res: &Result{
			Source: source,
			Dist:   map[core.VertexHandle]int64{source: 0},
			Prev:   map[core.VertexHandle]core.VertexHandle{},
		},
	}
	r.pq.Insert(nodeItem{v: source})

	return r.res, r.process()
}

type runner[V any] struct {
	graph *core.Graph[V, int64]
	opts  Options
	done  []bool
	pq    *heap.Heap[nodeItem]
	res   *Result
}

func (r *runner[V]) process() error {
	for r.pq.Size() > 0 {
		item, _ := r.pq.ExtractTop()
		u := item.v
		if r.done[u.Index()] || item.dist > r.res.Dist[u] {
			continue
		}
		r.done[u.Index()] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner[V]) relax(u core.VertexHandle) error {
	du := r.res.Dist[u]
	var bad error
	err := r.graph.EachOutEdge(u, func(e core.EdgeView[V, int64]) bool {
		w := e.Payload
		if w < 0 {
			bad = fmt.Errorf("%w: %d on edge %d", ErrNegativeWeight, w, e.Handle.Index())
			return false
		}
		if w >= r.opts.InfEdgeThreshold || r.done[e.Sink.Index()] {
			return true
		}
		nd := du + w
		if nd < du || nd > r.opts.MaxDistance {
			return true // overflow or beyond cap
		}
		if old, seen := r.res.Dist[e.Sink]; seen && old <= nd {
			return true
		}
		r.res.Dist[e.Sink] = nd
		if r.opts.ReturnPath {
			r.res.Prev[e.Sink] = u
		}
		r.pq.Insert(nodeItem{v: e.Sink, dist: nd})
		return true
	})
	if err != nil {
		return err
	}

	return bad
}

// nodeItem is a queued (vertex, tentative distance) pair.
type nodeItem struct {
	v    core.VertexHandle
	dist int64
}

// Key orders queue entries by distance.
func (n nodeItem) Key() int64 { return n.dist }
