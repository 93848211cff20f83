// SPDX-License-Identifier: MIT
//
// File: source.go
// Role: Pull iterator over events plus the in-memory adapter.

package event

// Source is implemented by objects that yield events one at a time.
type Source interface {
	// Next advances the iterator. If no more events are available or an
	// error occurs, calls to Next return false.
	Next() bool

	// Event returns the event at the current position.
	Event() Event

	// Error returns the last error encountered by the iterator.
	Error() error

	// Close releases any resources associated with the iterator.
	Close() error
}

// SliceSource iterates over an in-memory slice without copying it.
type SliceSource struct {
	events []Event
	pos    int
}

// NewSliceSource wraps events in a Source. The slice is borrowed, not copied.
func NewSliceSource(events []Event) *SliceSource {
	return &SliceSource{events: events, pos: -1}
}

// Next implements Source.
func (s *SliceSource) Next() bool {
	if s.pos+1 >= len(s.events) {
		s.pos = len(s.events)
		return false
	}
	s.pos++

	return true
}

// Event implements Source.
func (s *SliceSource) Event() Event {
	return s.events[s.pos]
}

// Error implements Source. A slice never fails.
func (s *SliceSource) Error() error { return nil }

// Close implements Source.
func (s *SliceSource) Close() error { return nil }
