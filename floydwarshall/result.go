package floydwarshall

import (
	"cmp"
	"fmt"
	"slices"
)

// Result is the distance matrix produced by Compute. It is immutable and safe
// for concurrent reads.
type Result[N cmp.Ordered, W any] struct {
	nodes []N       // ascending
	index map[N]int // node → row/column
	n     int

	dist []W    // row-major n×n
	has  []bool // has[c] reports whether dist[c] holds a path
	next []int  // successor matrix; nil unless WithReturnPath()

	negative []N   // nodes with d(v,v) better than the identity
	negIdx   []int // their indices
}

// Nodes returns a copy of the node set in the matrix order (ascending).
func (r *Result[N, W]) Nodes() []N { return slices.Clone(r.nodes) }

// Len returns the number of nodes.
func (r *Result[N, W]) Len() int { return r.n }

// Distance returns the best path weight from→to. The boolean is false when no
// path exists or either node is unknown; the weight is then the zero value.
func (r *Result[N, W]) Distance(from, to N) (W, bool) {
	var zero W
	c, ok := r.cell(from, to)
	if !ok || !r.has[c] {
		return zero, false
	}

	return r.dist[c], true
}

// Reachable reports whether some path leads from→to.
func (r *Result[N, W]) Reachable(from, to N) bool {
	c, ok := r.cell(from, to)
	return ok && r.has[c]
}

// HasNegativeCycle reports whether any node reaches itself by a path better
// than the identity element.
func (r *Result[N, W]) HasNegativeCycle() bool { return len(r.negative) > 0 }

// NegativeCycleNodes returns the nodes whose diagonal ended better than the
// identity, in ascending order. Nil when there is no negative cycle.
func (r *Result[N, W]) NegativeCycleNodes() []N { return slices.Clone(r.negative) }

// Affected reports whether the from→to entry routes through a negative-cycle
// node, i.e. whether its value is unbounded in truth and meaningless here.
// Complexity: O(number of negative-cycle nodes).
func (r *Result[N, W]) Affected(from, to N) bool {
	i, ok := r.index[from]
	if !ok {
		return false
	}
	j, ok := r.index[to]
	if !ok {
		return false
	}

	return r.affected(i, j)
}

func (r *Result[N, W]) affected(i, j int) bool {
	for _, k := range r.negIdx {
		if r.has[i*r.n+k] && r.has[k*r.n+j] {
			return true
		}
	}

	return false
}

// Path rebuilds one best path from→to, both endpoints included. A node's path
// to itself is the single-element slice [from].
//
// Errors:
//   - ErrPathsNotTracked if Compute ran without WithReturnPath().
//   - ErrNodeNotFound if either node is unknown.
//   - ErrNoPath if to is unreachable from from.
//   - ErrNegativeCycle if the pair routes through a negative cycle.
//
// Complexity: O(path length).
func (r *Result[N, W]) Path(from, to N) ([]N, error) {
	if r.next == nil {
		return nil, ErrPathsNotTracked
	}
	i, ok := r.index[from]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, from)
	}
	j, ok := r.index[to]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, to)
	}
	if !r.has[i*r.n+j] {
		return nil, fmt.Errorf("%w: %v→%v", ErrNoPath, from, to)
	}
	if r.affected(i, j) {
		return nil, fmt.Errorf("%w: %v→%v", ErrNegativeCycle, from, to)
	}

	path := []N{r.nodes[i]}
	for cur := i; cur != j; {
		cur = r.next[cur*r.n+j]
		if cur < 0 || len(path) > r.n {
			// unreachable without a negative cycle, which affected() rules out
			return nil, fmt.Errorf("%w: %v→%v", ErrNegativeCycle, from, to)
		}
		path = append(path, r.nodes[cur])
	}

	return path, nil
}

// Map returns a snapshot of every reachable entry: m[from][to] = weight.
// Rows with no reachable targets are still present (they hold at least the
// diagonal).
func (r *Result[N, W]) Map() map[N]map[N]W {
	m := make(map[N]map[N]W, r.n)
	for i, from := range r.nodes {
		row := make(map[N]W)
		for j, to := range r.nodes {
			if c := i*r.n + j; r.has[c] {
				row[to] = r.dist[c]
			}
		}
		m[from] = row
	}

	return m
}

func (r *Result[N, W]) cell(from, to N) (int, bool) {
	i, ok := r.index[from]
	if !ok {
		return 0, false
	}
	j, ok := r.index[to]
	if !ok {
		return 0, false
	}

	return i*r.n + j, true
}
