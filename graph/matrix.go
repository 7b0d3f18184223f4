package graph

import (
	"cmp"
	"fmt"
	"slices"
)

// Matrix is a dense adjacency matrix over a node set fixed at construction.
//
// Description:
//
//	Cell (i, j) of the row-major buffer holds the weight of the edge from the
//	i-th to the j-th node (in ascending node order); a parallel presence mask
//	distinguishes "no edge" from a zero weight.
//
// Time complexity:
//   - Set/Unset/Weight: O(1) after one map lookup per endpoint.
//   - Edges: O(V²).
//
// Memory:
//   - O(V²).
type Matrix[N cmp.Ordered, W any] struct {
	directed   bool
	allowLoops bool

	nodes []N       // ascending
	index map[N]int // node → row/column
	data  []W       // row-major n×n
	set   []bool    // set[i*n+j] reports whether data[i*n+j] is an edge
}

// NewMatrix allocates an empty n×n matrix for the given nodes.
// The caller's slice is copied and sorted; it is not retained.
//
// Errors:
//   - ErrEmptyNodeSet if nodes is empty.
//   - ErrDuplicateNode if a node appears twice.
func NewMatrix[N cmp.Ordered, W any](nodes []N, opts ...Option) (*Matrix[N, W], error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyNodeSet
	}
	c := newConfig(opts)

	sorted := slices.Clone(nodes)
	slices.Sort(sorted)
	index := make(map[N]int, len(sorted))
	for i, n := range sorted {
		if _, dup := index[n]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateNode, n)
		}
		index[n] = i
	}

	n := len(sorted)
	return &Matrix[N, W]{
		directed:   c.directed,
		allowLoops: c.allowLoops,
		nodes:      sorted,
		index:      index,
		data:       make([]W, n*n),
		set:        make([]bool, n*n),
	}, nil
}

// Directed reports whether Set writes only the from→to cell.
func (m *Matrix[N, W]) Directed() bool { return m.directed }

// Len returns the matrix order (number of nodes).
func (m *Matrix[N, W]) Len() int { return len(m.nodes) }

// Set stores weight w for from→to (and to→from when undirected), replacing
// any previous weight.
//
// Errors: ErrNodeNotFound for unknown endpoints, ErrLoopNotAllowed for from == to
// without WithLoops().
func (m *Matrix[N, W]) Set(from, to N, w W) error {
	i, j, err := m.cell(from, to)
	if err != nil {
		return err
	}
	if i == j && !m.allowLoops {
		return ErrLoopNotAllowed
	}
	n := len(m.nodes)
	m.data[i*n+j], m.set[i*n+j] = w, true
	if !m.directed {
		m.data[j*n+i], m.set[j*n+i] = w, true
	}

	return nil
}

// Unset clears from→to (and its mirror when undirected).
// Returns ErrEdgeNotFound if the cell is empty.
func (m *Matrix[N, W]) Unset(from, to N) error {
	i, j, err := m.cell(from, to)
	if err != nil {
		return err
	}
	n := len(m.nodes)
	if !m.set[i*n+j] {
		return ErrEdgeNotFound
	}
	var zero W
	m.data[i*n+j], m.set[i*n+j] = zero, false
	if !m.directed {
		m.data[j*n+i], m.set[j*n+i] = zero, false
	}

	return nil
}

// Weight returns the weight stored for from→to, or false if the cell is empty
// or either endpoint is unknown.
func (m *Matrix[N, W]) Weight(from, to N) (W, bool) {
	var zero W
	i, j, err := m.cell(from, to)
	if err != nil {
		return zero, false
	}
	k := i*len(m.nodes) + j
	if !m.set[k] {
		return zero, false
	}

	return m.data[k], true
}

// Nodes returns a copy of the node set in ascending order.
func (m *Matrix[N, W]) Nodes() []N { return slices.Clone(m.nodes) }

// Edges returns all non-empty cells in row-major order, which is (From, To) order.
func (m *Matrix[N, W]) Edges() []Edge[N, W] {
	n := len(m.nodes)
	var edges []Edge[N, W]
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m.set[i*n+j] {
				edges = append(edges, Edge[N, W]{From: m.nodes[i], To: m.nodes[j], Weight: m.data[i*n+j]})
			}
		}
	}

	return edges
}

func (m *Matrix[N, W]) cell(from, to N) (int, int, error) {
	i, ok := m.index[from]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrNodeNotFound, from)
	}
	j, ok := m.index[to]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrNodeNotFound, to)
	}

	return i, j, nil
}
