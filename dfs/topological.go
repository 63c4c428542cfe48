package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlds/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. A nil context is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[V, E any] struct {
	graph *core.Graph[V, E]
	ctx   context.Context
	state []int // indexed by vertex index: White, Gray, Black
	order []core.VertexHandle
}

// TopologicalSort orders the vertices of a directed graph so that every edge
// u→v has u before v. Roots are tried in insertion order, so the result is
// deterministic.
//
// Errors: ErrGraphNil, ErrNotDirected, ErrCycleDetected (wrapped with the
// vertex closing the cycle), or ctx.Err().
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort[V, E any](g *core.Graph[V, E], options ...TopoOption) ([]core.VertexHandle, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	t := &topoSorter[V, E]{
		graph: g,
		ctx:   opts.ctx,
		state: make([]int, len(verts)),
		order: make([]core.VertexHandle, 0, len(verts)),
	}
	for _, v := range verts {
		if t.state[v.Index()] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

func (t *topoSorter[V, E]) visit(v core.VertexHandle) error {
	if err := t.ctx.Err(); err != nil {
		return err
	}
	switch t.state[v.Index()] {
	case Gray:
		return fmt.Errorf("%w: at vertex %d", ErrCycleDetected, v.Index())
	case Black:
		return nil
	}
	t.state[v.Index()] = Gray

	var err error
	walkErr := t.graph.EachOutEdge(v, func(e core.EdgeView[V, E]) bool {
		err = t.visit(e.Sink)
		return err == nil
	})
	if walkErr != nil {
		return walkErr
	}
	if err != nil {
		return err
	}

	t.state[v.Index()] = Black
	t.order = append(t.order, v)

	return nil
}
