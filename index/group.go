// SPDX-License-Identifier: MIT
//
// File: group.go
// Role: Entry and Group (KeyGroup) with the canonical (timestamp, actor) order.

package index

import "sort"

// Entry is one event occurrence inside a key group.
type Entry struct {
	Timestamp int64
	Actor     int64
}

// Before reports whether e sorts strictly before o: timestamp asc, then actor asc.
func (e Entry) Before(o Entry) bool {
	if e.Timestamp != o.Timestamp {
		return e.Timestamp < o.Timestamp
	}
	return e.Actor < o.Actor
}

// Group is the sequence of entries sharing one key.
type Group struct {
	Key     string
	Entries []Entry
}

// Len returns the number of entries.
func (g *Group) Len() int { return len(g.Entries) }

// Sort orders entries by (timestamp, actor) ascending.
// Equal entries are indistinguishable, so stability is irrelevant.
// Complexity: O(n log n).
func (g *Group) Sort() {
	sort.Slice(g.Entries, func(i, j int) bool { return g.Entries[i].Before(g.Entries[j]) })
}

// IsSorted reports whether entries are already in (timestamp, actor) order.
// Complexity: O(n).
func (g *Group) IsSorted() bool {
	return sort.SliceIsSorted(g.Entries, func(i, j int) bool { return g.Entries[i].Before(g.Entries[j]) })
}
