// Package graphio reads whitespace-separated integer edge lists, builds
// core.Graph values from them and writes graphs back out as text.
//
// Input format (ReadEdgeList):
//
//	N
//	u1 v1 w1
//	u2 v2 w2
//	...
//
// N is the vertex count; each (u v w) triple is an edge between 1-based vertex
// ids u and v with integer weight w. Line breaks carry no meaning: tokens are
// read until EOF.
//
// Output format (WriteGraph): the vertex count on its own line, then the
// core.Render output for the requested mode. ParseRendered reads the
// all-edges form back into an EdgeList.
package graphio
