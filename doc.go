// Package apsp is an in-memory toolkit for all-pairs best-path computation:
// the Floyd–Warshall algorithm with pluggable path arithmetic, plus the graph
// backings it runs on.
//
// What is inside?
//
//	A small, deterministic library organized under two subpackages:
//
//	graph/         — generic weighted graphs: hash-map Graph[N, W] and dense Matrix[N, W]
//	floydwarshall/ — the all-pairs engine, operator presets (Shortest, Widest,
//	                 MostReliable), negative-cycle reporting and path reconstruction
//
// Why the operator set?
//
//	The same triple loop solves several path algebras. Supply Combine, Better
//	and the identity element and the engine computes shortest paths, bottleneck
//	(widest) paths, most reliable paths or any other closed semiring you define,
//	over any node type that is cmp.Ordered and any weight type at all.
//
// Quick ASCII example:
//
//	    A ──3──▶ B
//	     ╲       │
//	     10      4
//	       ╲     ▼
//	        ───▶ C
//
//	d(A,C) = 7 via B; d(C,A) = no path.
//
//	go get github.com/katalvlaran/apsp
package apsp
