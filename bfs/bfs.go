// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlds/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     core.VertexHandle
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V, E any] struct {
	graph   *core.Graph[V, E]
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.VertexHandle]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from start, following adjacency lists
// in insertion order, applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
func BFS[V, E any](g *core.Graph[V, E], start core.VertexHandle, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, core.ErrInvalidHandle)
	}

	n := g.VertexCount()
	w := &walker[V, E]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.VertexHandle]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.VertexHandle, 0, n),
			Depth:  make(map[core.VertexHandle]int, n),
			Parent: make(map[core.VertexHandle]core.VertexHandle, n),
		},
	}

	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent and queues it.
func (w *walker[V, E]) enqueue(v core.VertexHandle, d int, parent *core.VertexHandle) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if parent != nil {
		w.res.Parent[v] = *parent
	}
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V, E]) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.v, item.depth)

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at vertex %d: %w", item.v.Index(), err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// adjacency entry of item.
func (w *walker[V, E]) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	err := w.graph.EachAdjacent(item.v, func(nbr core.VertexHandle) bool {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			return true
		}
		w.enqueue(nbr, next, &item.v)
		return true
	})
	if err != nil {
		return fmt.Errorf("%w: vertex %d: %v", ErrNeighbors, item.v.Index(), err)
	}

	return nil
}
