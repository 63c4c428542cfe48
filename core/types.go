// File: types.go
// Role: Graph container types, handles, sentinel errors and construction options.
package core

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

// Sentinel errors for graph operations.
var (
	// ErrInvalidHandle indicates a zero, stale or foreign vertex or edge handle.
	ErrInvalidHandle = errors.New("core: invalid handle")

	// ErrInEdgesUnsupported indicates in-edge access on a bidirectional graph,
	// which keeps no in-lists.
	ErrInEdgesUnsupported = errors.New("core: in-edges are not tracked by bidirectional graphs")

	// ErrUnknownRenderMode indicates an unparsable or out-of-range RenderMode.
	ErrUnknownRenderMode = errors.New("core: unknown render mode")

	// ErrUnknownStorage indicates an unparsable storage discipline name.
	ErrUnknownStorage = errors.New("core: unknown storage discipline")
)

// lastGraphID issues a distinct owner id to every Graph. Zero is never issued,
// so zero-value handles are always rejected.
var lastGraphID uint64

func nextGraphID() uint64 { return atomic.AddUint64(&lastGraphID, 1) }

// Storage selects the container backing per-vertex edge and adjacency lists.
type Storage int

const (
	// StorageDense keeps lists in growable slices.
	StorageDense Storage = iota
	// StorageList keeps lists in doubly linked lists.
	StorageList
)

// String returns the canonical name used by ParseStorage.
func (s Storage) String() string {
	switch s {
	case StorageDense:
		return "dense"
	case StorageList:
		return "list"
	default:
		return fmt.Sprintf("Storage(%d)", int(s))
	}
}

// ParseStorage maps "dense" or "list" (case-insensitive) to a Storage.
func ParseStorage(name string) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dense", "":
		return StorageDense, nil
	case "list", "linked":
		return StorageList, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStorage, name)
}

// VertexHandle is a stable reference to a vertex of one Graph.
// The zero value is never valid.
type VertexHandle struct {
	owner uint64
	index int
}

// Index returns the vertex position in insertion order (0-based).
func (h VertexHandle) Index() int { return h.index }

// EdgeHandle is a stable reference to one edge record of one Graph.
type EdgeHandle struct {
	owner uint64
	index int
}

// Index returns the edge record position in creation order (0-based).
func (h EdgeHandle) Index() int { return h.index }

// EdgeView is a read-only snapshot of an edge record.
type EdgeView[V, E any] struct {
	Handle  EdgeHandle
	Source  VertexHandle
	Sink    VertexHandle
	Payload E
}

// vertex is the arena record behind a VertexHandle.
type vertex[V any] struct {
	payload  V
	out      indexList // edge indices
	in       indexList // edge indices; nil on bidirectional graphs
	adjacent indexList // vertex indices
}

// edge is the arena record behind an EdgeHandle.
type edge struct {
	source, sink int
	slot         int  // index into Graph.payloads; shared by twins
	twin         int  // twin record index or -1
	mirror       bool // true for the sink-side twin of a bidirectional pair
}

// Graph is a generic container of vertices carrying V and edges carrying E.
// It is not safe for concurrent mutation.
type Graph[V, E any] struct {
	id       uint64
	directed bool
	storage  Storage

	vertices []vertex[V]
	edges    []edge
	payloads []E
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed bool
	storage  Storage
	vertices int
	edges    int
}

// WithDirected makes AddEdge create one record per call and track in-lists.
func WithDirected() GraphOption {
	return func(c *graphConfig) { c.directed = true }
}

// WithBidirectional makes AddEdge create twin records sharing one payload.
// This is the default.
func WithBidirectional() GraphOption {
	return func(c *graphConfig) { c.directed = false }
}

// WithStorage selects the per-vertex list container.
func WithStorage(s Storage) GraphOption {
	return func(c *graphConfig) { c.storage = s }
}

// WithVertexCapacity pre-allocates room for n vertices. Non-positive n is ignored.
func WithVertexCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.vertices = n
		}
	}
}

// WithEdgeCapacity pre-allocates room for n logical edges. Non-positive n is ignored.
func WithEdgeCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.edges = n
		}
	}
}

// NewGraph creates an empty Graph. Without options it is bidirectional with
// dense storage. Unknown Storage values fall back to StorageDense.
func NewGraph[V, E any](opts ...GraphOption) *Graph[V, E] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.storage != StorageList {
		cfg.storage = StorageDense
	}
	records := cfg.edges
	if !cfg.directed {
		records *= 2
	}

	return &Graph[V, E]{
		id:       nextGraphID(),
		directed: cfg.directed,
		storage:  cfg.storage,
		vertices: make([]vertex[V], 0, cfg.vertices),
		edges:    make([]edge, 0, records),
		payloads: make([]E, 0, cfg.edges),
	}
}
