package floydwarshall

import "golang.org/x/exp/constraints"

// Number is the set of built-in numeric weight types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns a + b.
func Add[W Number](a, b W) W { return a + b }

// Mul returns a * b.
func Mul[W Number](a, b W) W { return a * b }

// Min returns the smaller of a and b.
func Min[W Number](a, b W) W { return min(a, b) }

// Max returns the larger of a and b.
func Max[W Number](a, b W) W { return max(a, b) }

// Less reports candidate < current. NaN compares false both ways.
func Less[W Number](candidate, current W) bool { return candidate < current }

// Greater reports candidate > current. NaN compares false both ways.
func Greater[W Number](candidate, current W) bool { return candidate > current }

// NotNaN reports whether w is ordered by < and > (always true for integers).
func NotNaN[W Number](w W) bool { return w == w }

// Shortest is the default operator set: sum of weights, smaller is better,
// identity 0.
func Shortest[W Number]() Operators[W] {
	return Operators[W]{
		Combine:  Add[W],
		Better:   Less[W],
		Identity: 0,
		Valid:    NotNaN[W],
	}
}

// Widest computes bottleneck (maximin) paths: a path is as wide as its
// narrowest edge and wider is better. unbounded must be the top element of the
// capacity domain (math.Inf(1), math.MaxInt64, ...) since it is the width of
// the empty path.
func Widest[W Number](unbounded W) Operators[W] {
	return Operators[W]{
		Combine:  Min[W],
		Better:   Greater[W],
		Identity: unbounded,
		Valid:    NotNaN[W],
	}
}

// MostReliable multiplies per-edge success probabilities and prefers the
// larger product. Weights are expected in [0, 1].
func MostReliable[W constraints.Float]() Operators[W] {
	return Operators[W]{
		Combine:  Mul[W],
		Better:   Greater[W],
		Identity: 1,
		Valid:    NotNaN[W],
	}
}
