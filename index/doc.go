// Package index implements the EventIndex stage: it groups events by shared
// key into per-key ordered collections.
//
// Every (event, key) occurrence becomes one Entry{Timestamp, Actor} in the
// Group of that key:
//
//	events                      groups
//	(A, t=100, [u1, u2])   ─►   u1: (100,A) (101,C)
//	(B, t=105, [u2])            u2: (100,A) (105,B)
//	(C, t=101, [u1])
//
// No deduplication happens: identical (timestamp, actor) entries from distinct
// events are kept and later drive pairings independently. Events with no keys
// contribute nothing.
//
// Groups are stored in an ordered btree keyed by the group key, so Groups()
// and Scan() iterate keys in ascending order regardless of input order.
// Group.Sort puts entries in the (timestamp asc, actor asc) order required by
// the window scan; the tie-break on actor makes the result independent of the
// order same-key events arrive in.
//
// Complexity:
//
//	Add:   O(k·log G) for an event with k keys and G distinct groups.
//	Sort:  O(n log n) per group.
package index
