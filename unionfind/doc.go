// Package unionfind provides a disjoint-set forest over opaque node handles,
// with union-by-rank merging and path-compressed Find.
//
// What
//
//   - AddNode wraps a payload in a fresh singleton set and returns a NodeHandle.
//   - Find walks leader links up to the set's representative (the one node whose
//     leader is itself) and then redirects every node it passed directly to that
//     representative (path compression).
//   - Union merges two sets given their current representatives. The higher rank
//     wins; on a tie the first argument wins and its rank grows by one.
//   - Every node keeps a follower set: the nodes that were merged beneath it,
//     transitively, at union time. Follower sets only ever grow; path compression
//     does not prune them. They are a merge-time transfer list, not a membership
//     index, so Find/Union semantics never depend on them.
//
// Preconditions
//
//	Union requires representatives (results of Find), not arbitrary members.
//	Passing a non-representative returns ErrNotRepresentative instead of
//	silently corrupting the forest.
//
// Complexity
//
//	AddNode O(1) amortized; Find/Union amortized O(α(n)) (inverse Ackermann),
//	plus O(|followers of loser|) for the follower transfer in Union.
//
// Errors
//
//	ErrInvalidHandle     - handle is zero-valued, stale or issued by another UnionFind.
//	ErrNotRepresentative - Union argument is not the representative of its set.
package unionfind
