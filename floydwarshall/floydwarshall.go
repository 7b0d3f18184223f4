// Engine notes:
//
//   - Nodes are sorted once; every loop and every reported list follows that order.
//   - "No path" is a presence bit next to each cell, never an infinity sentinel,
//     so Combine is only ever applied to real weights and cannot overflow on it.
//   - Row k and column k are snapshotted before iteration k. Cells of one
//     iteration then depend only on the snapshot and their own value, which
//     makes rows independent (parallel-safe) and keeps serial and parallel
//     runs bit-for-bit identical.
//   - Strict improvement only: ties keep the earlier path.

package floydwarshall

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/apsp/graph"
)

// ShortestPaths runs Compute with the default Shortest operators
// (sum of weights, smaller is better, identity 0).
func ShortestPaths[N cmp.Ordered, W Number](g Graph[N, W], opts ...Option) (*Result[N, W], error) {
	return Compute(g, Shortest[W](), opts...)
}

// Compute returns the best path weight between every ordered pair of nodes in g
// under ops.
//
// Preconditions and validation (in order, before any relaxation):
//  1. g must be non-nil (ErrNilGraph).
//  2. ops.Combine and ops.Better must be set (ErrNilOperator).
//  3. g.Nodes() must be non-empty (ErrEmptyGraph) and duplicate-free (ErrDuplicateNode).
//  4. every edge endpoint must be in g.Nodes() (ErrUnknownNode).
//  5. no ordered pair may appear twice in g.Edges() (ErrDuplicateEdge).
//  6. every edge weight must satisfy ops.Valid when it is set (ErrIncomparableWeight).
//
// Seeding:
//   - d(v,v) = ops.Identity, replaced by the self-loop weight Weight(v,v) only
//     when that weight is Better than the identity.
//   - d(u,v) = edge weight for u≠v, "no path" otherwise.
//
// Negative cycles:
//
//	If any d(v,v) ends Better than ops.Identity, Compute returns the Result
//	together with a *NegativeCycleError listing those nodes. The Result stays
//	usable for inspection (HasNegativeCycle, Affected) but distances of affected
//	pairs are meaningless.
//
// Complexity:
//   - Time:  O(V³) Combine/Better calls.
//   - Space: O(V²), plus O(V²) ints with WithReturnPath().
func Compute[N cmp.Ordered, W any](g Graph[N, W], ops Operators[W], opts ...Option) (*Result[N, W], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if err := ops.validate(); err != nil {
		return nil, err
	}

	r, err := newRunner(g, ops, cfg)
	if err != nil {
		return nil, err
	}
	cfg.Logger.V(1).Info("computing all-pairs paths",
		"nodes", r.n, "edges", r.edges, "workers", cfg.Workers, "returnPath", cfg.ReturnPath)

	r.run()

	res := r.result()
	if len(res.negative) > 0 {
		cfg.Logger.V(1).Info("negative cycle detected", "nodes", res.negative)
		return res, &NegativeCycleError[N]{Nodes: slices.Clone(res.negative)}
	}

	return res, nil
}

// runner holds the mutable state of a single Compute call.
type runner[N cmp.Ordered, W any] struct {
	ops   Operators[W]
	cfg   Options
	nodes []N       // ascending
	index map[N]int // node → row/column
	n     int
	edges int

	dist []W    // row-major n×n
	has  []bool // has[c] reports whether dist[c] holds a path
	next []int  // successor of the row node on the best path; nil unless ReturnPath

	// snapshots of row k and column k for the current iteration
	row, col       []W
	rowHas, colHas []bool
	colNext        []int
}

// newRunner validates g and seeds the distance matrix.
func newRunner[N cmp.Ordered, W any](g Graph[N, W], ops Operators[W], cfg Options) (*runner[N, W], error) {
	nodes := slices.Clone(g.Nodes())
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}
	slices.Sort(nodes)
	index := make(map[N]int, len(nodes))
	for i, v := range nodes {
		if _, dup := index[v]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateNode, v)
		}
		index[v] = i
	}

	n := len(nodes)
	r := &runner[N, W]{
		ops:    ops,
		cfg:    cfg,
		nodes:  nodes,
		index:  index,
		n:      n,
		dist:   make([]W, n*n),
		has:    make([]bool, n*n),
		row:    make([]W, n),
		col:    make([]W, n),
		rowHas: make([]bool, n),
		colHas: make([]bool, n),
	}
	if cfg.ReturnPath {
		r.next = make([]int, n*n)
		r.colNext = make([]int, n)
		for c := range r.next {
			r.next[c] = -1
		}
	}

	if err := r.seedEdges(g.Edges()); err != nil {
		return nil, err
	}
	if err := r.seedDiagonal(g); err != nil {
		return nil, err
	}

	return r, nil
}

// seedEdges validates every edge and copies off-diagonal weights into the matrix.
// Self-loops are validated here but seeded by seedDiagonal.
func (r *runner[N, W]) seedEdges(edges []graph.Edge[N, W]) error {
	seen := make([]bool, r.n*r.n)
	for _, e := range edges {
		i, ok := r.index[e.From]
		if !ok {
			return fmt.Errorf("%w: %v (edge %v→%v)", ErrUnknownNode, e.From, e.From, e.To)
		}
		j, ok := r.index[e.To]
		if !ok {
			return fmt.Errorf("%w: %v (edge %v→%v)", ErrUnknownNode, e.To, e.From, e.To)
		}
		c := i*r.n + j
		if seen[c] {
			return fmt.Errorf("%w: %v→%v", ErrDuplicateEdge, e.From, e.To)
		}
		seen[c] = true
		if r.ops.Valid != nil && !r.ops.Valid(e.Weight) {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrIncomparableWeight, e.From, e.To, e.Weight)
		}
		if i == j {
			continue
		}
		r.dist[c], r.has[c] = e.Weight, true
		if r.next != nil {
			r.next[c] = j
		}
	}
	r.edges = len(edges)

	return nil
}

// seedDiagonal sets d(v,v) to the identity, or to the self-loop weight when it
// is better than the identity.
func (r *runner[N, W]) seedDiagonal(g Graph[N, W]) error {
	for i, v := range r.nodes {
		c := i*r.n + i
		r.dist[c], r.has[c] = r.ops.Identity, true
		if r.next != nil {
			r.next[c] = i
		}

		w, ok := g.Weight(v, v)
		if !ok {
			continue
		}
		if r.ops.Valid != nil && !r.ops.Valid(w) {
			return fmt.Errorf("%w: self-loop %v weight=%v", ErrIncomparableWeight, v, w)
		}
		if r.ops.Better(w, r.ops.Identity) {
			r.dist[c] = w
		}
	}

	return nil
}

// run performs the n relaxation rounds. Rounds are strictly sequential; rows
// inside one round may be spread across cfg.Workers goroutines.
func (r *runner[N, W]) run() {
	workers := max(min(r.cfg.Workers, r.n), 1)
	chunk := (r.n + workers - 1) / workers

	for k := 0; k < r.n; k++ {
		r.snapshot(k)
		if workers <= 1 {
			r.relaxRows(0, r.n)
			continue
		}

		var eg errgroup.Group
		eg.SetLimit(workers)
		for lo := 0; lo < r.n; lo += chunk {
			lo, hi := lo, min(lo+chunk, r.n)
			eg.Go(func() error {
				r.relaxRows(lo, hi)
				return nil
			})
		}
		_ = eg.Wait() // barrier: round k+1 reads the fully updated matrix
	}
}

// snapshot copies row k and column k of the matrix.
func (r *runner[N, W]) snapshot(k int) {
	n := r.n
	copy(r.row, r.dist[k*n:(k+1)*n])
	copy(r.rowHas, r.has[k*n:(k+1)*n])
	for i := 0; i < n; i++ {
		c := i*n + k
		r.col[i], r.colHas[i] = r.dist[c], r.has[c]
		if r.next != nil {
			r.colNext[i] = r.next[c]
		}
	}
}

// relaxRows routes rows [lo, hi) through the snapshotted intermediate node.
func (r *runner[N, W]) relaxRows(lo, hi int) {
	n := r.n
	var (
		i, j, base, c int
		ik, cand      W
	)
	for i = lo; i < hi; i++ {
		if !r.colHas[i] { // i cannot reach k
			continue
		}
		ik = r.col[i]
		base = i * n
		for j = 0; j < n; j++ {
			if !r.rowHas[j] { // k cannot reach j
				continue
			}
			cand = r.ops.Combine(ik, r.row[j])
			c = base + j
			if r.has[c] && !r.ops.Better(cand, r.dist[c]) {
				continue
			}
			r.dist[c], r.has[c] = cand, true
			if r.next != nil {
				r.next[c] = r.colNext[i]
			}
		}
	}
}

// result hands the matrices over to a Result and collects negative-cycle nodes.
func (r *runner[N, W]) result() *Result[N, W] {
	res := &Result[N, W]{
		nodes: r.nodes,
		index: r.index,
		n:     r.n,
		dist:  r.dist,
		has:   r.has,
		next:  r.next,
	}
	for i, v := range r.nodes {
		if r.ops.Better(r.dist[i*r.n+i], r.ops.Identity) {
			res.negative = append(res.negative, v)
			res.negIdx = append(res.negIdx, i)
		}
	}

	return res
}
