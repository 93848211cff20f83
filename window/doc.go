// Package window implements the WindowGrouper stage: a two-pointer sliding
// window over one key's time-sorted entries that emits co-occurring actor
// pairs.
//
// Algorithm (entries sorted by (timestamp, actor)):
//
//	start := 0
//	for end := range entries:
//	    while ts[end] - ts[start] > w: start++
//	    for i in [start, end): emit (actor[i], actor[end])
//
// start never moves backwards, so the window [start, end] always holds the
// entries whose timestamp is within w seconds of ts[end]. The emitted pair is
// ordered (earlier actor, later actor); with pairs.Canonical the order is
// folded to (min, max) on insert.
//
// Self-pairs i == end are impossible; pairs where the same actor appears twice
// inside one window ARE emitted and are filtered later by the graph builder.
//
// Complexity: O(n + n·w̄) per key where w̄ is the average window occupancy.
// A key whose n entries all fall inside one window costs n·(n-1)/2 emissions,
// so dense bursts are quadratic. The bench tests cover that case.
//
// Errors:
//
//	ErrNegativeWindow - window seconds < 0.
//	ErrUnsortedGroup  - entries are not in (timestamp, actor) order.
package window
