package floydwarshall_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/floydwarshall"
	"github.com/katalvlaran/apsp/graph"
	"github.com/katalvlaran/apsp/internal/dijkstra"
)

// randomGraph builds a directed graph on n nodes where each ordered pair u→v
// (u≠v) carries an edge with probability p. Weights are uniform in [lo, hi].
// With dag=true only u<v edges are generated, so no cycle of any sign exists.
func randomGraph(n int, p float64, lo, hi int, dag bool, seed int64) *graph.Graph[int, int] {
	r := rand.New(rand.NewSource(seed))
	g := graph.New[int, int](graph.WithDirected(true))
	for u := 0; u < n; u++ {
		g.AddNode(u)
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || (dag && u > v) {
				continue
			}
			if r.Float64() < p {
				_ = g.AddEdge(u, v, lo+r.Intn(hi-lo+1))
			}
		}
	}

	return g
}

// reachable returns the transitive closure of g by BFS from every node.
func reachable(g *graph.Graph[int, int]) map[int]map[int]bool {
	out := make(map[int][]int)
	for _, e := range g.Edges() {
		out[e.From] = append(out[e.From], e.To)
	}
	closure := make(map[int]map[int]bool)
	for _, s := range g.Nodes() {
		seen := map[int]bool{s: true}
		queue := []int{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range out[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		closure[s] = seen
	}

	return closure
}

var propertyGraphs = []struct {
	name string
	g    *graph.Graph[int, int]
}{
	{"sparse", randomGraph(24, 0.1, 1, 20, false, 1)},
	{"dense", randomGraph(24, 0.6, 1, 50, false, 2)},
	{"negative-dag", randomGraph(24, 0.3, -10, 10, true, 3)},
	{"zero-weights-dag", randomGraph(16, 0.3, 0, 2, true, 4)},
}

// TestClosureInvariant: no entry can be improved by routing through any node.
func TestClosureInvariant(t *testing.T) {
	t.Parallel()

	for _, tc := range propertyGraphs {
		res, err := floydwarshall.ShortestPaths[int, int](tc.g)
		require.NoError(t, err, tc.name)

		nodes := res.Nodes()
		for _, u := range nodes {
			for _, v := range nodes {
				for _, w := range nodes {
					uw, ok1 := res.Distance(u, w)
					wv, ok2 := res.Distance(w, v)
					if !ok1 || !ok2 {
						continue
					}
					uv, ok := res.Distance(u, v)
					require.True(t, ok, "%s: %d→%d reachable via %d", tc.name, u, v, w)
					require.LessOrEqual(t, uv, uw+wv, "%s: %d→%d via %d", tc.name, u, v, w)
				}
			}
		}
	}
}

// TestIdentitySeeding: without negative cycles every diagonal entry is the identity.
func TestIdentitySeeding(t *testing.T) {
	t.Parallel()

	for _, tc := range propertyGraphs {
		res, err := floydwarshall.ShortestPaths[int, int](tc.g)
		require.NoError(t, err, tc.name)
		for _, v := range res.Nodes() {
			d, ok := res.Distance(v, v)
			require.True(t, ok)
			require.Zero(t, d, "%s: d(%d,%d)", tc.name, v, v)
		}
	}
}

// TestUnreachabilityPreserved: "no path" matches the BFS closure exactly.
func TestUnreachabilityPreserved(t *testing.T) {
	t.Parallel()

	for _, tc := range propertyGraphs {
		res, err := floydwarshall.ShortestPaths[int, int](tc.g)
		require.NoError(t, err, tc.name)

		closure := reachable(tc.g)
		for _, u := range res.Nodes() {
			for _, v := range res.Nodes() {
				require.Equal(t, closure[u][v], res.Reachable(u, v), "%s: %d→%d", tc.name, u, v)
			}
		}
	}
}

// TestIdempotent: repeated runs agree, and re-running on the output matrix is a fixed point.
func TestIdempotent(t *testing.T) {
	t.Parallel()

	for _, tc := range propertyGraphs {
		first, err := floydwarshall.ShortestPaths[int, int](tc.g)
		require.NoError(t, err)
		second, err := floydwarshall.ShortestPaths[int, int](tc.g)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(first.Map(), second.Map()), tc.name)

		m, err := graph.NewMatrix[int, int](first.Nodes(), graph.WithDirected(true), graph.WithLoops())
		require.NoError(t, err)
		for from, row := range first.Map() {
			for to, w := range row {
				require.NoError(t, m.Set(from, to, w))
			}
		}
		again, err := floydwarshall.ShortestPaths[int, int](m)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(first.Map(), again.Map()), tc.name)
	}
}

// TestMatchesDijkstra: on non-negative graphs every row equals a single-source run.
func TestMatchesDijkstra(t *testing.T) {
	t.Parallel()

	for _, tc := range propertyGraphs {
		if tc.name == "negative-dag" {
			continue
		}
		res, err := floydwarshall.ShortestPaths[int, int](tc.g)
		require.NoError(t, err, tc.name)

		for _, u := range res.Nodes() {
			want, err := dijkstra.Distances[int, int](tc.g, u)
			require.NoError(t, err)

			got := make(map[int]int)
			for _, v := range res.Nodes() {
				if d, ok := res.Distance(u, v); ok {
					got[v] = d
				}
			}
			require.Empty(t, cmp.Diff(want, got), "%s: source %d", tc.name, u)
		}
	}
}

// TestParallelMatchesSerial: worker count never changes the result.
func TestParallelMatchesSerial(t *testing.T) {
	t.Parallel()

	g := randomGraph(40, 0.2, -3, 30, false, 5)
	serial, serialErr := floydwarshall.ShortestPaths[int, int](g, floydwarshall.WithReturnPath())

	for _, workers := range []int{2, 3, 8, 64} {
		par, err := floydwarshall.ShortestPaths[int, int](g, floydwarshall.WithReturnPath(), floydwarshall.WithWorkers(workers))
		require.Equal(t, serialErr, err, "workers=%d", workers)
		require.Empty(t, cmp.Diff(serial.Map(), par.Map()), "workers=%d", workers)
		require.Equal(t, serial.NegativeCycleNodes(), par.NegativeCycleNodes())

		for _, u := range serial.Nodes() {
			for _, v := range serial.Nodes() {
				p1, err1 := serial.Path(u, v)
				p2, err2 := par.Path(u, v)
				require.Equal(t, err1, err2)
				require.Equal(t, p1, p2, "workers=%d %d→%d", workers, u, v)
			}
		}
	}
}

// TestPathWeightsMatchDistances: every rebuilt path is made of real edges and sums to the distance.
func TestPathWeightsMatchDistances(t *testing.T) {
	t.Parallel()

	for _, tc := range propertyGraphs {
		res, err := floydwarshall.ShortestPaths[int, int](tc.g, floydwarshall.WithReturnPath())
		require.NoError(t, err)

		for _, u := range res.Nodes() {
			for _, v := range res.Nodes() {
				d, ok := res.Distance(u, v)
				path, err := res.Path(u, v)
				if !ok {
					require.ErrorIs(t, err, floydwarshall.ErrNoPath)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, u, path[0])
				require.Equal(t, v, path[len(path)-1])

				var sum int
				for i := 1; i < len(path); i++ {
					w, ok := tc.g.Weight(path[i-1], path[i])
					require.True(t, ok, "%s: path %v uses missing edge", tc.name, path)
					sum += w
				}
				require.Equal(t, d, sum, "%s: %d→%d path %v", tc.name, u, v, path)
			}
		}
	}
}

// TestCLRS matches the textbook 5-node example with negative edges and no negative cycle.
func TestCLRS(t *testing.T) {
	t.Parallel()

	g := graph.New[int, int](graph.WithDirected(true))
	for _, e := range [][3]int{
		{0, 1, 3}, {0, 2, 8}, {0, 4, -4},
		{1, 3, 1}, {1, 4, 7},
		{2, 1, 4},
		{3, 0, 2}, {3, 2, -5},
		{4, 3, 6},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], e[2]))
	}

	res, err := floydwarshall.ShortestPaths[int, int](g, floydwarshall.WithReturnPath())
	require.NoError(t, err)

	want := [][]int{
		{0, 1, -3, 2, -4},
		{3, 0, -4, 1, -1},
		{7, 4, 0, 5, 3},
		{2, -1, -5, 0, -2},
		{8, 5, 1, 6, 0},
	}
	for i := range want {
		for j := range want[i] {
			d, ok := res.Distance(i, j)
			require.True(t, ok)
			require.Equal(t, want[i][j], d, "dist[%d,%d]", i, j)
		}
	}

	path, err := res.Path(0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 4, 3, 2}, path)
}
