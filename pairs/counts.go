// SPDX-License-Identifier: MIT
//
// File: counts.go
// Role: Counts map with overflow-checked accumulation and deterministic views.
// Determinism:
//   - Sorted() returns entries ordered by Pair asc (A, then B).
// Concurrency:
//   - Counts is a plain map; callers own synchronization. The engine gives
//     each worker its own Counts and merges them once.

package pairs

import (
	"fmt"
	"math"
	"sort"
)

// Counts maps an ordered actor pair to its occurrence count.
type Counts map[Pair]int64

// Entry is one (pair, count) row of a Counts snapshot.
type Entry struct {
	Pair  Pair
	Count int64
}

// New returns an empty Counts with room for hint pairs.
func New(hint int) Counts {
	if hint < 0 {
		hint = 0
	}
	return make(Counts, hint)
}

// Add increases the count of p by n (n >= 0).
// Returns ErrCountOverflow instead of wrapping around.
// Complexity: O(1) amortized.
func (c Counts) Add(p Pair, n int64) error {
	cur := c[p]
	if n > 0 && cur > math.MaxInt64-n {
		return fmt.Errorf("%s: %d+%d: %w", p, cur, n, ErrCountOverflow)
	}
	c[p] = cur + n

	return nil
}

// Inc is Add(p, 1).
func (c Counts) Inc(p Pair) error { return c.Add(p, 1) }

// Merge sums every count of src into c. src is not modified.
// Merge is commutative and associative over the resulting values.
// Complexity: O(len(src)).
func (c Counts) Merge(src Counts) error {
	for p, n := range src {
		if err := c.Add(p, n); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns an independent copy.
func (c Counts) Clone() Counts {
	out := make(Counts, len(c))
	for p, n := range c {
		out[p] = n
	}

	return out
}

// Canonical returns a new Counts where (a,b) and (b,a) are folded into
// (min, max). The receiver is left untouched.
func (c Counts) Canonical() (Counts, error) {
	out := make(Counts, len(c))
	for p, n := range c {
		if err := out.Add(Canonical.Of(p.A, p.B), n); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Total returns the sum of all counts, i.e. the number of pair emissions.
func (c Counts) Total() (int64, error) {
	var sum int64
	for p, n := range c {
		if n > 0 && sum > math.MaxInt64-n {
			return 0, fmt.Errorf("total at %s: %w", p, ErrCountOverflow)
		}
		sum += n
	}

	return sum, nil
}

// Equal reports whether both maps hold exactly the same pairs and counts.
func (c Counts) Equal(other Counts) bool {
	if len(c) != len(other) {
		return false
	}
	for p, n := range c {
		if m, ok := other[p]; !ok || m != n {
			return false
		}
	}

	return true
}

// Sorted returns all entries ordered by pair (A asc, then B asc).
// Complexity: O(P log P).
func (c Counts) Sorted() []Entry {
	out := make([]Entry, 0, len(c))
	for p, n := range c {
		out = append(out, Entry{Pair: p, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i].Pair, out[j].Pair) })

	return out
}
