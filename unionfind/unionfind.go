package unionfind

import (
	"fmt"
	"sort"
)

// UnionFind is a disjoint-set forest of payloads of type T.
// It is not safe for concurrent use.
type UnionFind[T any] struct {
	id    uint64
	nodes []node[T]
	sets  int
}

// New returns an empty UnionFind.
func New[T any](opts ...Option) *UnionFind[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &UnionFind[T]{
		id:    nextID(),
		nodes: make([]node[T], 0, o.capacity),
	}
}

// AddNode creates a singleton set holding payload: the node is its own leader,
// has rank 0 and no followers.
// Complexity: O(1) amortized.
func (uf *UnionFind[T]) AddNode(payload T) NodeHandle {
	idx := len(uf.nodes)
	uf.nodes = append(uf.nodes, node[T]{payload: payload, leader: idx})
	uf.sets++

	return NodeHandle{owner: uf.id, index: idx}
}

// Find returns the representative of x's set.
//
// Steps:
//  1. Walk leader links from x, recording every node that is not its own leader.
//  2. Point each recorded node directly at the representative found.
//
// Follower sets are left untouched.
// Complexity: amortized O(α(n)).
func (uf *UnionFind[T]) Find(x NodeHandle) (NodeHandle, error) {
	if err := uf.check(x); err != nil {
		return NodeHandle{}, err
	}

	return uf.handle(uf.find(x.index)), nil
}

// Union merges the sets represented by a and b and returns the winning
// representative.
//
// Rules:
//   - rank(a) > rank(b): a wins.
//   - rank(a) < rank(b): b wins.
//   - tie: a wins and rank(a) is incremented.
//
// The loser and all of its followers join the winner's followers, and the
// loser's leader becomes the winner. Union(a, a) is a no-op returning a.
//
// Errors:
//   - ErrInvalidHandle: a or b is not a live handle of this UnionFind.
//   - ErrNotRepresentative: a or b is not currently a representative.
func (uf *UnionFind[T]) Union(a, b NodeHandle) (NodeHandle, error) {
	for _, h := range [...]NodeHandle{a, b} {
		if err := uf.check(h); err != nil {
			return NodeHandle{}, err
		}
		if uf.nodes[h.index].leader != h.index {
			return NodeHandle{}, fmt.Errorf("%w: node %d", ErrNotRepresentative, h.index)
		}
	}
	if a.index == b.index {
		return a, nil
	}

	winner, loser := a.index, b.index
	switch ra, rb := uf.nodes[winner].rank, uf.nodes[loser].rank; {
	case ra < rb:
		winner, loser = loser, winner
	case ra == rb:
		uf.nodes[winner].rank++
	}

	w := &uf.nodes[winner]
	if w.followers == nil {
		w.followers = make(map[int]struct{}, len(uf.nodes[loser].followers)+1)
	}
	for f := range uf.nodes[loser].followers {
		w.followers[f] = struct{}{}
	}
	w.followers[loser] = struct{}{}
	uf.nodes[loser].leader = winner
	uf.sets--

	return uf.handle(winner), nil
}

// Connected reports whether a and b are in the same set.
func (uf *UnionFind[T]) Connected(a, b NodeHandle) (bool, error) {
	ra, err := uf.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := uf.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// IsRepresentative reports whether x is the representative of its set.
func (uf *UnionFind[T]) IsRepresentative(x NodeHandle) (bool, error) {
	if err := uf.check(x); err != nil {
		return false, err
	}

	return uf.nodes[x.index].leader == x.index, nil
}

// Payload returns the value stored at x.
func (uf *UnionFind[T]) Payload(x NodeHandle) (T, error) {
	if err := uf.check(x); err != nil {
		var zero T
		return zero, err
	}

	return uf.nodes[x.index].payload, nil
}

// Rank returns x's current rank.
func (uf *UnionFind[T]) Rank(x NodeHandle) (uint, error) {
	if err := uf.check(x); err != nil {
		return 0, err
	}

	return uf.nodes[x.index].rank, nil
}

// Followers returns the handles recorded beneath x at union time, ordered by
// index. The set is a superset of x's current descendants.
func (uf *UnionFind[T]) Followers(x NodeHandle) ([]NodeHandle, error) {
	if err := uf.check(x); err != nil {
		return nil, err
	}
	fs := uf.nodes[x.index].followers
	idx := make([]int, 0, len(fs))
	for f := range fs {
		idx = append(idx, f)
	}
	sort.Ints(idx)

	out := make([]NodeHandle, len(idx))
	for i, f := range idx {
		out[i] = uf.handle(f)
	}

	return out, nil
}

// Groups returns every set as a slice of member handles. Members are ordered by
// index and groups by their smallest member. Runs Find on every node.
// Complexity: O(n·α(n)).
func (uf *UnionFind[T]) Groups() [][]NodeHandle {
	pos := make(map[int]int, uf.sets) // representative index -> group position
	groups := make([][]NodeHandle, 0, uf.sets)
	for i := range uf.nodes {
		root := uf.find(i)
		g, ok := pos[root]
		if !ok {
			g = len(groups)
			pos[root] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], uf.handle(i))
	}

	return groups
}

// Len returns the number of nodes.
func (uf *UnionFind[T]) Len() int { return len(uf.nodes) }

// SetCount returns the number of disjoint sets.
func (uf *UnionFind[T]) SetCount() int { return uf.sets }

// find is Find over arena indices, with path compression.
func (uf *UnionFind[T]) find(i int) int {
	var path []int
	for uf.nodes[i].leader != i {
		path = append(path, i)
		i = uf.nodes[i].leader
	}
	for _, p := range path {
		uf.nodes[p].leader = i
	}

	return i
}

func (uf *UnionFind[T]) check(h NodeHandle) error {
	if h.owner != uf.id || h.index < 0 || h.index >= len(uf.nodes) {
		return fmt.Errorf("%w: %+v", ErrInvalidHandle, h)
	}

	return nil
}

func (uf *UnionFind[T]) handle(i int) NodeHandle {
	return NodeHandle{owner: uf.id, index: i}
}
