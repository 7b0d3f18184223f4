// Package floydwarshall computes all-pairs best paths with the Floyd–Warshall
// algorithm, generic over the node type, the weight type and the arithmetic
// used to combine and compare path weights.
//
// Overview:
//
//   - For every intermediate node k (in ascending node order) and every ordered
//     pair (i, j), the candidate Combine(d(i,k), d(k,j)) replaces d(i,j) when
//     d(i,j) is "no path" or Better(candidate, d(i,j)) holds.
//   - With the default operators (Add, Less, identity 0) this is the classic
//     shortest-path closure. Other operator sets solve other path algebras:
//     Widest (Min, Greater) gives bottleneck paths, MostReliable (Mul, Greater)
//     gives maximum-probability paths.
//   - Unreachable pairs are reported as "no path" (Distance returns ok=false),
//     never as a large number.
//
// When to use:
//
//   - Dense or small graphs where every pair is needed at once.
//   - Graphs with negative edge weights (Dijkstra does not apply), provided
//     there is no negative cycle, or when you need to detect one.
//
// Key features:
//
//   - Any graph implementing Nodes/Edges/Weight: graph.Graph (hash map) and
//     graph.Matrix (dense) are provided.
//   - WithReturnPath(): tracks successors so Result.Path can rebuild routes.
//   - WithWorkers(n): parallelizes the rows of each round; rounds stay ordered.
//   - WithLogger(l): V(1) diagnostics through logr.
//
// Performance and complexity:
//
//   - Time:  O(V³) Combine/Better calls.
//   - Space: O(V²) weights and presence bits, plus O(V²) ints with WithReturnPath().
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilOperator: nil inputs.
//   - ErrInvalidGraph (ErrEmptyGraph, ErrDuplicateNode, ErrUnknownNode,
//     ErrDuplicateEdge): structural problems, reported before any work.
//   - ErrIncomparableWeight: an edge weight failed Operators.Valid (e.g. NaN).
//   - ErrNegativeCycle: returned as *NegativeCycleError together with a
//     non-nil Result; check it with errors.Is and inspect the Result if needed.
//
// API reference:
//
//	func Compute[N cmp.Ordered, W any](
//	    g Graph[N, W],
//	    ops Operators[W],
//	    opts ...Option,
//	) (*Result[N, W], error)
//
//	func ShortestPaths[N cmp.Ordered, W Number](g Graph[N, W], opts ...Option) (*Result[N, W], error)
//
// Example usage:
//
//	g := graph.New[string, int](graph.WithDirected(true))
//	_ = g.AddEdge("A", "B", 3)
//	_ = g.AddEdge("B", "C", 4)
//	_ = g.AddEdge("A", "C", 10)
//
//	res, err := floydwarshall.ShortestPaths[string, int](g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := res.Distance("A", "C") // 7, via B
//
// Thread safety:
//
//   - Compute does not mutate g, but g must not be mutated concurrently.
//   - A Result is immutable; concurrent queries are safe.
package floydwarshall
