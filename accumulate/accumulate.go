// SPDX-License-Identifier: MIT
//
// File: accumulate.go
// Role: Pure reduction of pair-count partitions and the per-worker Arena.

package accumulate

import (
	"fmt"

	"github.com/katalvlaran/coactgraph/pairs"
)

// Accumulate returns the sum of all parts as a new map. Parts are not modified;
// nil parts are skipped.
// Complexity: O(Σ|part|).
func Accumulate(parts ...pairs.Counts) (pairs.Counts, error) {
	hint := 0
	for _, p := range parts {
		if len(p) > hint {
			hint = len(p)
		}
	}
	out := pairs.New(hint)
	for i, p := range parts {
		if err := out.Merge(p); err != nil {
			return nil, fmt.Errorf("accumulate: part #%d: %w", i, err)
		}
	}

	return out, nil
}

// Arena holds one private Counts per worker.
//
// Slot(i) must only be touched by worker i until Reduce is called; Reduce
// must only be called after all workers have returned.
type Arena struct {
	slots []pairs.Counts
}

// NewArena allocates n empty slots. Panics if n < 1: the arena size comes
// from validated options, never from data.
func NewArena(n int) *Arena {
	if n < 1 {
		panic("accumulate: NewArena(n < 1)")
	}
	a := &Arena{slots: make([]pairs.Counts, n)}
	for i := range a.slots {
		a.slots[i] = pairs.New(0)
	}

	return a
}

// Len returns the number of slots.
func (a *Arena) Len() int { return len(a.slots) }

// Slot returns the private map of worker i.
func (a *Arena) Slot(i int) pairs.Counts { return a.slots[i] }

// Reduce merges every slot into the largest one and returns it.
// The arena is consumed: slots are released and must not be reused.
// Complexity: O(Σ|slot| - max|slot|).
func (a *Arena) Reduce() (pairs.Counts, error) {
	base := 0
	for i, s := range a.slots {
		if len(s) > len(a.slots[base]) {
			base = i
		}
	}
	out := a.slots[base]
	for i, s := range a.slots {
		if i == base {
			continue
		}
		if err := out.Merge(s); err != nil {
			return nil, fmt.Errorf("accumulate: slot #%d: %w", i, err)
		}
		a.slots[i] = nil
	}
	a.slots = nil

	return out, nil
}
