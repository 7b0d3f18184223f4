// Package graph declares Edge, Option, the sentinel errors and the shared
// configuration used by the Graph and Matrix backings.
package graph

import (
	"cmp"
	"errors"
	"slices"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyNodeSet indicates that a fixed node set was empty.
	ErrEmptyNodeSet = errors.New("graph: node set is empty")

	// ErrDuplicateNode indicates that a fixed node set listed the same node twice.
	ErrDuplicateNode = errors.New("graph: duplicate node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second weight for an ordered pair that already has one.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")
)

// Edge is one weighted ordered pair From→To.
type Edge[N cmp.Ordered, W any] struct {
	From   N
	To     N
	Weight W
}

// config holds the construction-time flags shared by Graph and Matrix.
type config struct {
	directed   bool // store only from→to
	allowLoops bool // accept from == to
}

// Option configures a Graph or Matrix before creation.
type Option func(*config)

// WithDirected sets the orientation of all edges
// (true = directed, false = undirected; undirected is the default).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() Option {
	return func(c *config) { c.allowLoops = true }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// sortEdges orders edges by (From, To).
func sortEdges[N cmp.Ordered, W any](edges []Edge[N, W]) {
	slices.SortFunc(edges, func(a, b Edge[N, W]) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})
}
