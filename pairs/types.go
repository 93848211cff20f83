// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Pair, Mode and sentinel errors.

package pairs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCountOverflow indicates that adding to a count would exceed int64.
	// Realistic datasets stay far below this bound, so hitting it is a logic error.
	ErrCountOverflow = errors.New("pairs: count overflow")

	// ErrUnknownMode indicates an unrecognized pair mode name.
	ErrUnknownMode = errors.New("pairs: unknown mode")
)

// Pair is an ordered pair of actor ids.
// In Directed mode A is the actor of the earlier event and B of the later one.
type Pair struct {
	A int64
	B int64
}

// IsLoop reports whether both endpoints are the same actor.
func (p Pair) IsLoop() bool { return p.A == p.B }

// Reverse returns (B, A).
func (p Pair) Reverse() Pair { return Pair{A: p.B, B: p.A} }

// String renders the pair as "A->B".
func (p Pair) String() string { return fmt.Sprintf("%d->%d", p.A, p.B) }

// Less orders pairs by A, then B.
func Less(p, q Pair) bool {
	if p.A != q.A {
		return p.A < q.A
	}
	return p.B < q.B
}

// Mode selects how pair identity is derived from two actors.
type Mode uint8

const (
	// Directed keeps (earlier, later) temporal order.
	Directed Mode = iota
	// Canonical folds (a,b) and (b,a) into (min(a,b), max(a,b)).
	Canonical
)

// Mode names used by ParseMode and String.
const (
	nameDirected  = "directed"
	nameCanonical = "canonical"
)

// Of builds the pair identity for an (earlier, later) actor emission.
// Complexity: O(1).
func (m Mode) Of(earlier, later int64) Pair {
	if m == Canonical && earlier > later {
		return Pair{A: later, B: earlier}
	}
	return Pair{A: earlier, B: later}
}

// Valid reports whether m is Directed or Canonical.
func (m Mode) Valid() bool { return m == Directed || m == Canonical }

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case Directed:
		return nameDirected
	case Canonical:
		return nameCanonical
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode converts "directed" or "canonical" (case-insensitive) into a Mode.
// The empty string resolves to Directed.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", nameDirected:
		return Directed, nil
	case nameCanonical:
		return Canonical, nil
	default:
		return Directed, fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}
