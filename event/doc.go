// Package event defines the immutable input record of the coaction engine
// and the iterator used to stream such records lazily.
//
// An Event is one timestamped action of one actor that references zero or
// more shared keys (for example the URLs a post links to):
//
//	Event{ActorID: 42, Timestamp: 1700000000, Keys: []string{"https://x.y/a"}}
//
// Events are owned by the caller and borrowed read-only by the engine.
// Validation and normalization of raw exports happen upstream; this package
// only rejects records that would corrupt the window invariants
// (see ErrEmptyKey).
//
// Streaming:
//
//	Source is a pull iterator in the Next/Event/Error/Close shape:
//
//	  for src.Next() {
//	      ev := src.Event()
//	  }
//	  if err := src.Error(); err != nil { ... }
//
//	SliceSource adapts an in-memory []Event.
//
// Errors:
//
//	ErrEmptyKey  - an event lists the empty string as a key.
//	ErrNilSource - a nil Source was supplied.
package event
