// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Event record, sentinel errors and structural validation.

package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for event validation.
var (
	// ErrEmptyKey indicates that an event lists "" among its keys.
	// Zero keys is legal (the event joins no group); an empty key is not.
	ErrEmptyKey = errors.New("event: empty key")

	// ErrNilSource indicates that a nil Source was passed to a consumer.
	ErrNilSource = errors.New("event: nil source")
)

// Event is a single timestamped action emitted by an actor.
//
// Timestamp is in seconds and only needs to be monotonically comparable;
// the engine never interprets it as wall-clock time.
type Event struct {
	// ActorID identifies the account that emitted the event.
	ActorID int64

	// Timestamp is the event time in seconds.
	Timestamp int64

	// Keys are the shared attributes (e.g. referenced resources) this event
	// is grouped on. Duplicated keys yield one group entry per occurrence.
	Keys []string
}

// Validate reports a structural problem that would make grouping unsafe.
// Complexity: O(len(Keys)).
func (e Event) Validate() error {
	for i, k := range e.Keys {
		if k == "" {
			return fmt.Errorf("actor %d at %d: key #%d: %w", e.ActorID, e.Timestamp, i, ErrEmptyKey)
		}
	}

	return nil
}
