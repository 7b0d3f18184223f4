// Package dijkstra implements single-source shortest paths with Dijkstra's
// algorithm over the same graph capability the floydwarshall engine consumes.
// It serves as an independent oracle for all-pairs results on graphs with
// non-negative weights.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy-decrease-key binary heap.
//   - Space: O(V + E).
package dijkstra

import (
	"cmp"
	"container/heap"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/apsp/graph"
)

// Sentinel errors returned by Distances.
var (
	// ErrVertexNotFound indicates that the source is not in the node set.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Graph is the read-only view Distances needs.
type Graph[N cmp.Ordered, W any] interface {
	Nodes() []N
	Edges() []graph.Edge[N, W]
}

// Distances returns the minimum path weight from source to every reachable
// node. Unreachable nodes are absent from the map.
//
// Preconditions (in order):
//  1. source must be a node of g (ErrVertexNotFound).
//  2. no edge may have a negative weight (ErrNegativeWeight), checked by an O(E) pre-scan.
func Distances[N cmp.Ordered, W constraints.Integer | constraints.Float](g Graph[N, W], source N) (map[N]W, error) {
	known := false
	for _, v := range g.Nodes() {
		if v == source {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	adjacency := make(map[N][]graph.Edge[N, W])
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		adjacency[e.From] = append(adjacency[e.From], e)
	}

	r := &runner[N, W]{
		adjacency: adjacency,
		dist:      map[N]W{source: 0},
		visited:   make(map[N]bool),
	}
	heap.Push(&r.pq, &nodeItem[N, W]{id: source, dist: 0})
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single Distances execution.
type runner[N cmp.Ordered, W constraints.Integer | constraints.Float] struct {
	adjacency map[N][]graph.Edge[N, W]
	dist      map[N]W
	visited   map[N]bool
	pq        nodePQ[N, W]
}

// process pops the closest unvisited node and relaxes its outgoing edges
// until the heap drains.
func (r *runner[N, W]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[N, W])
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true

		for _, e := range r.adjacency[item.id] {
			nd := item.dist + e.Weight
			if cur, ok := r.dist[e.To]; ok && nd >= cur {
				continue
			}
			r.dist[e.To] = nd
			heap.Push(&r.pq, &nodeItem[N, W]{id: e.To, dist: nd})
		}
	}
}

// nodeItem is a heap entry: a node and its tentative distance.
type nodeItem[N cmp.Ordered, W constraints.Integer | constraints.Float] struct {
	id   N
	dist W
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ[N cmp.Ordered, W constraints.Integer | constraints.Float] []*nodeItem[N, W]

func (pq nodePQ[N, W]) Len() int           { return len(pq) }
func (pq nodePQ[N, W]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[N, W]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[N, W]) Push(x any) { *pq = append(*pq, x.(*nodeItem[N, W])) }

func (pq *nodePQ[N, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
