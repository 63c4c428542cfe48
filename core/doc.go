// Package core provides the generic in-memory Graph container: a vertex arena
// and an edge arena addressed through stable handles, with directed or
// bidirectional semantics and a pluggable storage discipline for adjacency lists.
//
// The Graph G = (V, E) is parameterized by payload types:
//
//   - Graph[V, E] owns one copy of every vertex payload V and edge payload E.
//     Callers who want sharing store pointer types as payloads.
//   - VertexHandle / EdgeHandle are small value types (owner id + arena index).
//     They stay valid for the lifetime of the Graph: vertices and edges are
//     never removed and arena indices never move.
//   - Handles issued by another Graph, zero handles and out-of-range handles are
//     rejected with ErrInvalidHandle.
//
// Directedness (GraphOption):
//
//	– WithDirected()
//	    AddEdge(A, B, p) creates one edge record, attached to A's out-list and
//	    B's in-list; B is appended to A's adjacency list.
//
//	– WithBidirectional() (default)
//	    AddEdge(A, B, p) creates two edge records sharing one payload slot:
//	    A→B on A's out-list and B→A on B's out-list. Each vertex's adjacency list
//	    gains the other. No in-lists are kept.
//
// Storage discipline (GraphOption):
//
//	– WithStorage(StorageDense)  per-vertex lists backed by slices (default)
//	– WithStorage(StorageList)   per-vertex lists backed by doubly linked lists
//
// Both disciplines expose the same insertion-ordered traversal; the choice only
// affects memory layout and append behavior.
//
// Core Methods:
//
//	AddVertex(payload V) VertexHandle                          // O(1) amortized
//	AddEdge(src, dst VertexHandle, payload E) (EdgeHandle, error) // O(1) amortized
//	Vertices() []VertexHandle                                  // O(V), insertion order
//	OutEdges(v) / InEdges(v) ([]EdgeHandle, error)             // O(deg), insertion order
//	Adjacent(v) ([]VertexHandle, error)                        // O(deg), insertion order
//	Vertex(v) (V, error), Edge(e) (EdgeView[V, E], error)      // O(1)
//	Render(w, g, mode) error                                   // O(V+E)
//
// Rendering ("decompile") is a free function that takes the RenderMode as a
// parameter: RenderNodes, RenderAllEdges, RenderOutEdges, RenderInEdges.
//
// Errors:
//
//	ErrInvalidHandle       – zero, stale or foreign vertex/edge handle
//	ErrInEdgesUnsupported  – in-edge access on a bidirectional graph
//	ErrUnknownRenderMode   – unparsable or out-of-range RenderMode
//	ErrUnknownStorage      – unparsable storage discipline name
//
// Concurrency: a Graph is not safe for concurrent mutation; callers guard shared
// instances with their own mutex.
package core
