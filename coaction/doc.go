// Package coaction is the entry point of the engine. It wires the stages
//
//	events → index → (per key) window → accumulate → builder → graph
//
// behind two pure operations:
//
//	DetectCoactions(ctx, events, windowSeconds, opts...) (*Coactions, error)
//	BuildGraph(coactions, minRepeat, opts...)            (*core.Graph, error)
//
// Coactions carries the pair counts and the pair mode they were keyed with,
// so a canonical detection always builds an undirected graph.
//
// and one convenience that runs both for a named Mode:
//
//	Run(ctx, events, BotMode, opts...) (*Report, error)
//
// Modes:
//
//	BotMode       window 1s,   threshold 5   near-simultaneous coordinated activity
//	IdeologyMode  window 600s, threshold 25  repeated engagement over longer spans
//
// Concurrency: key groups are independent, so the window scan is spread over
// WithWorkers(n) goroutines (errgroup). Worker i owns arena slot i and
// writes nothing else; the slots are summed once after all workers return.
// Results are identical for every worker count.
//
// Failure is all-or-nothing: any error (malformed event, unsorted group,
// count overflow, cancelled context) returns nil counts / nil graph.
package coaction
