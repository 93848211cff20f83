// Package pairs holds the PairCount data model: a mapping from an ordered
// actor pair to the number of times the two actors co-occurred.
//
// Pair order is temporal by default: (earlier actor, later actor) as seen
// inside one sliding window. Because (A,B) and (B,A) are then distinct keys,
// callers choose a Mode explicitly:
//
//   - Directed  keeps the temporal order (A,B) != (B,A).
//   - Canonical stores every pair as (min, max) so both orders fold together.
//
// Counts is a plain map with overflow-checked arithmetic. Summation is the
// only merge operation, so any partitioning of work can be merged in any
// order with an identical result.
//
// Errors:
//
//	ErrCountOverflow - an int64 count would overflow (treated as fatal).
//	ErrUnknownMode   - ParseMode received an unrecognized name.
package pairs
