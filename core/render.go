// File: render.go
// Role: textual rendering of a Graph in one of four modes.
//
// Line formats:
//
//	RenderNodes:     "<payload> <adjacent payload> ..."   one line per vertex
//	edge modes:      "Out: <src payload> <sink payload> <edge payload>"
//	                 "In: <src payload> <sink payload> <edge payload>"
package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RenderMode selects what Render prints.
type RenderMode int

const (
	// RenderNodes prints every vertex followed by its adjacency list.
	RenderNodes RenderMode = iota
	// RenderAllEdges prints out-edges, then in-edges on directed graphs, per vertex.
	RenderAllEdges
	// RenderOutEdges prints out-edges only.
	RenderOutEdges
	// RenderInEdges prints in-edges only. Directed graphs only.
	RenderInEdges
)

var renderModeNames = [...]string{"nodes", "all-edges", "out-edges", "in-edges"}

// String returns the name accepted by ParseRenderMode.
func (m RenderMode) String() string {
	if m < 0 || int(m) >= len(renderModeNames) {
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}

	return renderModeNames[m]
}

// ParseRenderMode maps a mode name (case-insensitive) to a RenderMode.
func ParseRenderMode(name string) (RenderMode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range renderModeNames {
		if n == s {
			return RenderMode(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownRenderMode, name)
}

// Render writes g to w in the given mode.
//
// Bidirectional graphs keep no in-lists: RenderAllEdges and RenderOutEdges print
// the same lines (each undirected edge once per endpoint), RenderInEdges fails
// with ErrInEdgesUnsupported before anything is written.
//
// Errors: ErrUnknownRenderMode, ErrInEdgesUnsupported, or the first write error.
// Complexity: O(V+E).
func Render[V, E any](w io.Writer, g *Graph[V, E], mode RenderMode) error {
	if mode < RenderNodes || mode > RenderInEdges {
		return fmt.Errorf("%w: %d", ErrUnknownRenderMode, int(mode))
	}
	if mode == RenderInEdges && !g.directed {
		return ErrInEdgesUnsupported
	}

	bw := bufio.NewWriter(w)
	for i := range g.vertices {
		v := &g.vertices[i]
		switch mode {
		case RenderNodes:
			fmt.Fprint(bw, v.payload)
			v.adjacent.Each(func(j int) bool {
				fmt.Fprint(bw, " ", g.vertices[j].payload)
				return true
			})
			bw.WriteByte('\n')
		case RenderAllEdges:
			g.renderEdges(bw, "Out:", v.out)
			if g.directed {
				g.renderEdges(bw, "In:", v.in)
			}
		case RenderOutEdges:
			g.renderEdges(bw, "Out:", v.out)
		case RenderInEdges:
			g.renderEdges(bw, "In:", v.in)
		}
	}

	return bw.Flush()
}

// RenderString is Render into a string.
func RenderString[V, E any](g *Graph[V, E], mode RenderMode) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, g, mode); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (g *Graph[V, E]) renderEdges(w io.Writer, label string, l indexList) {
	l.Each(func(i int) bool {
		rec := g.edges[i]
		fmt.Fprintln(w, label, g.vertices[rec.source].payload, g.vertices[rec.sink].payload, g.payloads[rec.slot])
		return true
	})
}
