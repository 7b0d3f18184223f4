// Package graph provides the two in-memory weighted graph backings consumed by
// the floydwarshall engine.
//
// Both types are generic over a totally ordered node identifier N and an
// arbitrary weight type W, and both store at most one weight per ordered pair:
//
//   - Graph[N, W]  – hash-map adjacency (adjacency[from][to] = weight), grows
//     as nodes and edges are added. Best for sparse or incrementally built graphs.
//   - Matrix[N, W] – dense n×n adjacency matrix over a node set fixed at
//     construction. Best for dense graphs or when the node set is known up front.
//
// Configuration Options (Option):
//
//	– WithDirected(directed bool)
//	    Directed graphs store only from→to. Undirected graphs (the default)
//	    mirror every edge so that both ordered pairs carry the same weight.
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge/Set with from==to returns
//	    ErrLoopNotAllowed.
//
// Determinism:
//
//	Nodes() returns nodes in ascending order and Edges() returns edges sorted
//	by (From, To), so logs, goldens and downstream algorithms are stable.
//
// Concurrency:
//
//	Graph guards its maps with a sync.RWMutex; all methods are safe for
//	concurrent use. Matrix is not synchronized: build it, then share it
//	read-only.
//
// Errors:
//
//	ErrEmptyNodeSet        - NewMatrix called with no nodes.
//	ErrDuplicateNode       - NewMatrix called with a repeated node.
//	ErrNodeNotFound        - an operation referenced an unknown node.
//	ErrEdgeNotFound        - RemoveEdge/Unset on a missing ordered pair.
//	ErrLoopNotAllowed      - self-loop without WithLoops().
//	ErrMultiEdgeNotAllowed - AddEdge on an ordered pair that already has a weight.
package graph
