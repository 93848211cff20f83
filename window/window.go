// SPDX-License-Identifier: MIT
//
// File: window.go
// Role: Grouper construction and the sliding-window pair scan.
// Policy:
//   - No I/O, no logging, no shared state. A Grouper is immutable and may be
//     used from many goroutines, each with its own output Counts.
//   - Unsorted input fails fast; it is never re-sorted or coerced here.

package window

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coactgraph/index"
	"github.com/katalvlaran/coactgraph/pairs"
)

var (
	// ErrNegativeWindow indicates window seconds < 0.
	ErrNegativeWindow = errors.New("window: negative window")

	// ErrUnsortedGroup indicates that entries are not sorted by (timestamp, actor).
	ErrUnsortedGroup = errors.New("window: group not sorted")
)

// Grouper runs the sliding-window scan with a fixed window and pair mode.
type Grouper struct {
	window int64
	mode   pairs.Mode
}

// New returns a Grouper for the given window (seconds) and pair mode.
// Returns ErrNegativeWindow when windowSeconds < 0.
func New(windowSeconds int64, mode pairs.Mode) (*Grouper, error) {
	if windowSeconds < 0 {
		return nil, fmt.Errorf("window %d: %w", windowSeconds, ErrNegativeWindow)
	}

	return &Grouper{window: windowSeconds, mode: mode}, nil
}

// Window returns the configured window in seconds.
func (gr *Grouper) Window() int64 { return gr.window }

// Mode returns the configured pair mode.
func (gr *Grouper) Mode() pairs.Mode { return gr.mode }

// PairCounts scans one key's sorted entries and returns its key-local counts.
// Empty and single-entry groups return an empty map.
func (gr *Grouper) PairCounts(entries []index.Entry) (pairs.Counts, error) {
	out := pairs.New(0)
	if _, err := gr.ScanInto(entries, out); err != nil {
		return nil, err
	}

	return out, nil
}

// ScanInto runs the window scan and adds every emission to out.
// It returns the number of emitted pairs. Workers reuse one out map across
// all their keys instead of allocating a map per key.
//
// Errors:
//   - ErrUnsortedGroup when entries[end] sorts before entries[end-1];
//     out may already hold emissions from earlier positions, so callers must
//     discard it (detection is all-or-nothing).
//   - pairs.ErrCountOverflow from out.
//
// Complexity: O(n + emissions).
func (gr *Grouper) ScanInto(entries []index.Entry, out pairs.Counts) (int64, error) {
	if len(entries) < 2 {
		return 0, nil
	}
	var (
		emitted int64
		start   int
	)
	for end := 1; end < len(entries); end++ {
		cur := entries[end]
		if cur.Before(entries[end-1]) {
			return emitted, fmt.Errorf("position %d (ts=%d actor=%d): %w", end, cur.Timestamp, cur.Actor, ErrUnsortedGroup)
		}
		for outside(entries[start].Timestamp, cur.Timestamp, gr.window) {
			start++
		}
		for i := start; i < end; i++ {
			if err := out.Inc(gr.mode.Of(entries[i].Actor, cur.Actor)); err != nil {
				return emitted, err
			}
		}
		emitted += int64(end - start)
	}

	return emitted, nil
}

// outside reports whether later-earlier exceeds w. A negative difference can
// only come from int64 wraparound on extreme timestamps, which also means the
// gap is larger than any window.
func outside(earlier, later, w int64) bool {
	d := later - earlier
	return d > w || d < 0
}
