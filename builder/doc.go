// Package builder implements the GraphBuilder stage: it turns accumulated
// pair counts into a frozen core.Graph.
//
// Build(counts, threshold, opts...) applies, in order:
//
//  1. Orientation: directed graphs keep (earlier, later) pairs as they are;
//     undirected graphs first fold (a,b) and (b,a) into one pair and sum
//     their counts.
//  2. Self-loop removal: pairs with A == B (one actor twice inside a window).
//  3. Threshold: pairs whose count is strictly below threshold are dropped.
//  4. Materialization: one edge per surviving pair, weight = count, vertices
//     = the distinct endpoints of surviving edges.
//
// The edge sequence is deterministic (EdgeOrder), so two builds from the same
// counts and threshold produce identical graphs. The input map is never
// modified.
//
// Options follow the functional-options pattern: option constructors panic on
// meaningless values, Build itself only returns errors.
//
// Errors:
//
//	ErrNegativeThreshold - threshold < 0.
//	ErrNilCounts         - counts map is nil.
package builder
