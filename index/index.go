// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Index construction from slices or streamed sources; ordered group access.
// Determinism:
//   - Groups()/Scan()/Keys() iterate keys in ascending order.
// Concurrency:
//   - Index is built by one goroutine. After Sort it is read-only and may be
//     shared; the engine hands distinct groups to distinct workers.

package index

import (
	"context"
	"fmt"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/coactgraph/event"
)

// ctxCheckEvery bounds how many streamed events are consumed between
// context cancellation checks.
const ctxCheckEvery = 4096

// Index maps each key to its Group.
type Index struct {
	groups  btree.Map[string, *Group]
	entries int
	events  int
}

// New returns an empty Index.
func New() *Index {
	return &Index{}
}

// Build indexes an in-memory slice of events.
// Returns the first validation error; no partial index is returned.
// Complexity: O(N·k·log G).
func Build(events []event.Event) (*Index, error) {
	return FromSource(context.Background(), event.NewSliceSource(events))
}

// FromSource drains src into a new Index. The caller keeps ownership of src
// and is responsible for closing it.
//
// Errors:
//   - event.ErrNilSource when src is nil.
//   - event.ErrEmptyKey (wrapped) for a malformed event.
//   - src.Error() or ctx.Err() verbatim (wrapped).
func FromSource(ctx context.Context, src event.Source) (*Index, error) {
	if src == nil {
		return nil, event.ErrNilSource
	}
	idx := New()
	for n := 0; src.Next(); n++ {
		if n%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("index: after %d events: %w", n, err)
			}
		}
		if err := idx.Add(src.Event()); err != nil {
			return nil, fmt.Errorf("index: event #%d: %w", n, err)
		}
	}
	if err := src.Error(); err != nil {
		return nil, fmt.Errorf("index: source: %w", err)
	}

	return idx, nil
}

// Add appends one entry per key of ev. An event with no keys is counted but
// joins no group. The index is left untouched when ev is invalid.
func (idx *Index) Add(ev event.Event) error {
	if err := ev.Validate(); err != nil {
		return err
	}
	idx.events++
	for _, k := range ev.Keys {
		g, ok := idx.groups.Get(k)
		if !ok {
			g = &Group{Key: k}
			idx.groups.Set(k, g)
		}
		g.Entries = append(g.Entries, Entry{Timestamp: ev.Timestamp, Actor: ev.ActorID})
		idx.entries++
	}

	return nil
}

// Len returns the number of distinct keys.
func (idx *Index) Len() int { return idx.groups.Len() }

// Entries returns the total number of (event, key) entries across all groups.
func (idx *Index) Entries() int { return idx.entries }

// Events returns the number of events consumed, including keyless ones.
func (idx *Index) Events() int { return idx.events }

// Group returns the group for key, if any.
func (idx *Index) Group(key string) (*Group, bool) {
	return idx.groups.Get(key)
}

// Scan calls fn for every group in ascending key order until fn returns false.
func (idx *Index) Scan(fn func(g *Group) bool) {
	idx.groups.Scan(func(_ string, g *Group) bool { return fn(g) })
}

// Groups returns all groups in ascending key order.
func (idx *Index) Groups() []*Group {
	out := make([]*Group, 0, idx.groups.Len())
	idx.Scan(func(g *Group) bool {
		out = append(out, g)
		return true
	})

	return out
}

// Keys returns all keys in ascending order.
func (idx *Index) Keys() []string {
	return idx.groups.Keys()
}

// Sort orders the entries of every group by (timestamp, actor).
// Complexity: Σ O(n_k log n_k).
func (idx *Index) Sort() {
	idx.Scan(func(g *Group) bool {
		g.Sort()
		return true
	})
}
