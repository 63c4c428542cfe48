package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[V, E any] struct {
	graph *core.Graph[V, E]
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from start, following adjacency lists
// in insertion order. With WithFullTraversal it covers every component and
// start is ignored.
// Returns DFSResult, or an error if aborted by context or hook.
func DFS[V, E any](g *core.Graph[V, E], start core.VertexHandle, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, core.ErrInvalidHandle)
	}

	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]core.VertexHandle, 0, n),
		Depth:   make(map[core.VertexHandle]int, n),
		Parent:  make(map[core.VertexHandle]core.VertexHandle, n),
		Visited: make(map[core.VertexHandle]bool, n),
	}
	w := &dfsWalker[V, E]{graph: g, opts: dopts, res: res}

	if !dopts.FullTraversal {
		return res, w.traverse(start, 0)
	}
	for _, v := range g.Vertices() {
		if !res.Visited[v] {
			if err := w.traverse(v, 0); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// traverse visits v at depth, recursing into unvisited neighbors.
func (w *dfsWalker[V, E]) traverse(v core.VertexHandle, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for vertex %d: %w", v.Index(), err)
		}
	}

	nbs, err := w.graph.Adjacent(v)
	if err != nil {
		return fmt.Errorf("dfs: Adjacent(%d): %w", v.Index(), err)
	}
	for _, nb := range nbs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nb] {
			continue
		}
		w.res.Parent[nb] = v
		if err = w.traverse(nb, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for vertex %d: %w", v.Index(), err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}
