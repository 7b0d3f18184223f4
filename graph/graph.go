// File: graph.go
// Role: hash-map backed Graph[N, W]: node/edge lifecycle and read-only queries.
// Determinism:
//   - Nodes() ascending; Edges() sorted by (From, To).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package graph

import (
	"cmp"
	"slices"
	"sync"

	"golang.org/x/exp/maps"
)

// Graph is a weighted graph stored as nested maps: adjacency[from][to] = weight.
//
// Undirected graphs mirror every edge, so Edges() reports both ordered pairs
// and Weight(u, v) == Weight(v, u).
type Graph[N cmp.Ordered, W any] struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool

	nodes     map[N]struct{}
	adjacency map[N]map[N]W
}

// New creates an empty Graph. By default it is undirected and rejects self-loops.
// Complexity: O(1).
func New[N cmp.Ordered, W any](opts ...Option) *Graph[N, W] {
	c := newConfig(opts)

	return &Graph[N, W]{
		directed:   c.directed,
		allowLoops: c.allowLoops,
		nodes:      make(map[N]struct{}),
		adjacency:  make(map[N]map[N]W),
	}
}

// Directed reports whether edges are stored one-way.
func (g *Graph[N, W]) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph[N, W]) Looped() bool { return g.allowLoops }

// AddNode inserts n if it is not already present. Idempotent.
func (g *Graph[N, W]) AddNode(n N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes[n] = struct{}{}
}

// HasNode reports whether n is present.
func (g *Graph[N, W]) HasNode(n N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[n]
	return ok
}

// RemoveNode deletes n and every edge incident to it.
// Returns ErrNodeNotFound if n is absent.
// Complexity: O(V) to drop incoming edges.
func (g *Graph[N, W]) RemoveNode(n N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[n]; !ok {
		return ErrNodeNotFound
	}
	delete(g.nodes, n)
	delete(g.adjacency, n)
	for from, out := range g.adjacency {
		delete(out, n)
		if len(out) == 0 {
			delete(g.adjacency, from)
		}
	}

	return nil
}

// AddEdge stores weight w for from→to (and to→from when undirected),
// creating missing endpoints.
//
// Errors:
//   - ErrLoopNotAllowed if from == to and the graph was built without WithLoops().
//   - ErrMultiEdgeNotAllowed if the ordered pair already carries a weight.
func (g *Graph[N, W]) AddEdge(from, to N, w W) error {
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[from][to]; ok {
		return ErrMultiEdgeNotAllowed
	}
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}
	g.link(from, to, w)
	if !g.directed && from != to {
		g.link(to, from, w)
	}

	return nil
}

// RemoveEdge deletes from→to (and its mirror when undirected).
// Returns ErrEdgeNotFound if the pair carries no weight.
func (g *Graph[N, W]) RemoveEdge(from, to N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		return ErrEdgeNotFound
	}
	g.unlink(from, to)
	if !g.directed {
		g.unlink(to, from)
	}

	return nil
}

// HasEdge reports whether from→to carries a weight.
func (g *Graph[N, W]) HasEdge(from, to N) bool {
	_, ok := g.Weight(from, to)
	return ok
}

// Weight returns the weight stored for from→to, or false if there is none.
// Complexity: O(1).
func (g *Graph[N, W]) Weight(from, to N) (W, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]
	return w, ok
}

// Nodes returns all nodes in ascending order.
// Complexity: O(V log V).
func (g *Graph[N, W]) Nodes() []N {
	g.mu.RLock()
	nodes := maps.Keys(g.nodes)
	g.mu.RUnlock()

	slices.Sort(nodes)
	return nodes
}

// NodeCount returns the number of nodes.
func (g *Graph[N, W]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Edges returns every stored ordered pair sorted by (From, To).
// An undirected edge u–v appears twice: u→v and v→u.
// Complexity: O(E log E).
func (g *Graph[N, W]) Edges() []Edge[N, W] {
	g.mu.RLock()
	edges := make([]Edge[N, W], 0, len(g.adjacency))
	for from, out := range g.adjacency {
		for to, w := range out {
			edges = append(edges, Edge[N, W]{From: from, To: to, Weight: w})
		}
	}
	g.mu.RUnlock()

	sortEdges(edges)
	return edges
}

// EdgeCount returns the number of stored ordered pairs (len(Edges())).
func (g *Graph[N, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var n int
	for _, out := range g.adjacency {
		n += len(out)
	}

	return n
}

// Clone returns a deep copy of the node set and adjacency with the same flags.
// Weights are copied by value.
func (g *Graph[N, W]) Clone() *Graph[N, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph[N, W]{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		nodes:      maps.Clone(g.nodes),
		adjacency:  make(map[N]map[N]W, len(g.adjacency)),
	}
	for from, out := range g.adjacency {
		c.adjacency[from] = maps.Clone(out)
	}

	return c
}

// link stores from→to; caller holds mu.
func (g *Graph[N, W]) link(from, to N, w W) {
	out, ok := g.adjacency[from]
	if !ok {
		out = make(map[N]W)
		g.adjacency[from] = out
	}
	out[to] = w
}

// unlink drops from→to and an emptied bucket; caller holds mu.
func (g *Graph[N, W]) unlink(from, to N) {
	out := g.adjacency[from]
	delete(out, to)
	if len(out) == 0 {
		delete(g.adjacency, from)
	}
}
