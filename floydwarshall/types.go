// Package floydwarshall defines the graph capability, operator set, sentinel
// errors and configuration options for the all-pairs best-path engine.
//
// Options:
//
//	– ReturnPath: if true, track successors so Result.Path can rebuild routes.
//	– Workers:    number of goroutines relaxing rows of one k-iteration (default 1).
//	– Logger:     logr.Logger receiving V(1) diagnostics (default logr.Discard()).
//
// Errors (sentinel):
//
//	– ErrNilGraph            if the graph is nil.
//	– ErrInvalidGraph        parent of ErrEmptyGraph, ErrDuplicateNode, ErrUnknownNode, ErrDuplicateEdge.
//	– ErrNilOperator         if Combine or Better is nil.
//	– ErrIncomparableWeight  if an edge weight fails Operators.Valid.
//	– ErrNegativeCycle       distinguished outcome, returned together with the Result.
//	– ErrNodeNotFound, ErrNoPath, ErrPathsNotTracked from Result.Path.
package floydwarshall

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/apsp/graph"
)

// Sentinel errors returned by Compute and Result queries.
var (
	// ErrNilGraph indicates that a nil graph was passed to Compute.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrInvalidGraph indicates a structural precondition violation detected
	// before any relaxation work. The more specific sentinels below wrap it.
	ErrInvalidGraph = errors.New("floydwarshall: invalid graph")

	// ErrEmptyGraph indicates that the node set is empty.
	ErrEmptyGraph = fmt.Errorf("%w: node set is empty", ErrInvalidGraph)

	// ErrDuplicateNode indicates that Nodes() reported the same node twice.
	ErrDuplicateNode = fmt.Errorf("%w: duplicate node", ErrInvalidGraph)

	// ErrUnknownNode indicates that an edge references a node outside the node set.
	ErrUnknownNode = fmt.Errorf("%w: edge references unknown node", ErrInvalidGraph)

	// ErrDuplicateEdge indicates that Edges() reported the same ordered pair twice.
	ErrDuplicateEdge = fmt.Errorf("%w: duplicate ordered pair", ErrInvalidGraph)

	// ErrNilOperator indicates that Operators.Combine or Operators.Better is nil.
	ErrNilOperator = errors.New("floydwarshall: combine and better operators are required")

	// ErrIncomparableWeight indicates an edge weight the comparison operator cannot
	// order (e.g. NaN), as reported by Operators.Valid.
	ErrIncomparableWeight = errors.New("floydwarshall: incomparable edge weight")

	// ErrNegativeCycle indicates that at least one node reaches itself by a path
	// better than the identity element. The distance matrix is unsound for every
	// pair routed through such a node.
	ErrNegativeCycle = errors.New("floydwarshall: negative cycle detected")

	// ErrNodeNotFound indicates a Result query for a node outside the computed set.
	ErrNodeNotFound = errors.New("floydwarshall: node not found")

	// ErrNoPath indicates that the queried pair is unreachable.
	ErrNoPath = errors.New("floydwarshall: no path")

	// ErrPathsNotTracked indicates Result.Path was called without WithReturnPath().
	ErrPathsNotTracked = errors.New("floydwarshall: paths not tracked; use WithReturnPath()")

	// ErrBadWorkers indicates that WithWorkers received a non-positive count.
	ErrBadWorkers = errors.New("floydwarshall: workers must be positive")
)

// NegativeCycleError reports the nodes whose diagonal entry ended up better than
// the identity element. It matches ErrNegativeCycle under errors.Is.
type NegativeCycleError[N cmp.Ordered] struct {
	// Nodes lists the affected nodes in ascending order.
	Nodes []N
}

// Error implements error.
func (e *NegativeCycleError[N]) Error() string {
	return fmt.Sprintf("%v: %d node(s) on or reaching a negative cycle: %v", ErrNegativeCycle, len(e.Nodes), e.Nodes)
}

// Unwrap exposes ErrNegativeCycle to errors.Is.
func (e *NegativeCycleError[N]) Unwrap() error { return ErrNegativeCycle }

// Graph is the read-only capability the engine needs from a graph.
// graph.Graph and graph.Matrix both implement it; undirected graphs must
// report both ordered pairs of every edge.
type Graph[N cmp.Ordered, W any] interface {
	// Nodes returns the fixed node set.
	Nodes() []N
	// Edges returns every ordered pair that carries a weight.
	Edges() []graph.Edge[N, W]
	// Weight looks up a single ordered pair.
	Weight(from, to N) (W, bool)
}

// Operators is the pluggable arithmetic of the relaxation step.
type Operators[W any] struct {
	// Combine joins two consecutive path segments (default Add).
	Combine func(a, b W) W
	// Better reports whether candidate should replace current (default Less).
	// It must be a strict order: Better(x, x) is false.
	Better func(candidate, current W) bool
	// Identity is the neutral element of Combine and the length of the empty path.
	Identity W
	// Valid optionally rejects weights Better cannot order. Nil accepts all.
	Valid func(w W) bool
}

func (o Operators[W]) validate() error {
	if o.Combine == nil || o.Better == nil {
		return ErrNilOperator
	}

	return nil
}

// Options configures a single Compute call.
type Options struct {
	ReturnPath bool        // track successors for Result.Path
	Workers    int         // goroutines per k-iteration; 1 means serial
	Logger     logr.Logger // V(1) diagnostics sink
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithReturnPath enables successor tracking so Result.Path can rebuild routes.
// Costs an extra n² ints.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithWorkers splits the rows of every k-iteration across at most n goroutines.
// Successive k-iterations stay strictly ordered.
// Panics with ErrBadWorkers if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithLogger routes diagnostics to l at verbosity 1.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the configuration used when no Option is given:
// no path tracking, serial execution, discarded logs.
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		Workers:    1,
		Logger:     logr.Discard(),
	}
}
