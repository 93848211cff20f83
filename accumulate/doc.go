// Package accumulate implements the EdgeAccumulator stage: merging per-key or
// per-worker pair counts into one global pairs.Counts.
//
// The merge is plain summation of identical ordered pairs. No normalization,
// decay or per-key weighting is applied, so every key contributes equally.
// Summation is commutative and associative: any partitioning of keys and any
// merge order yields the same global counts.
//
// Two entry points:
//
//   - Accumulate(parts...) sums already-finished maps into a fresh map.
//   - Arena gives each worker a private slot to fill without locks and
//     reduces all slots once, after every worker is done. There is no shared
//     lock on the per-pair hot path.
package accumulate
