// Package coactgraph builds coaction graphs: directed, weighted graphs whose
// edges record how often one actor acted on the same key shortly after another.
//
// What is a coaction?
//
//	Two actors A and B "coact" on a key K when both produced an event carrying
//	K and B's event happened no more than w seconds after A's. Summed over all
//	keys, the number of coactions per ordered pair becomes the weight of the
//	edge A→B; pairs below a repeat threshold are dropped.
//
// Pipeline:
//
//	event/        Event type and the streaming Source contract
//	index/        key → time-ordered (timestamp, actor) groups
//	window/       sliding-window pair emission over one sorted group
//	pairs/        Pair identity (directed / canonical) and overflow-checked Counts
//	accumulate/   per-worker arenas reduced into one Counts map
//	builder/      threshold filter, self-loop removal, deterministic edge order
//	core/         frozen, thread-safe weighted Graph
//	coaction/     orchestration: DetectCoactions, BuildGraph, Run, presets
//	config/       YAML modes and engine options
//	metrics/      Prometheus collectors
//	converters/   export to gonum graphs
//	cmd/coaction  JSONL in, TSV edge lists out
//
// Quick example:
//
//	events := []event.Event{
//		{ActorID: 1, Timestamp: 100, Keys: []string{"u"}},
//		{ActorID: 2, Timestamp: 100, Keys: []string{"u"}},
//	}
//	counts, _ := coaction.DetectCoactions(ctx, events, 1)
//	g, _ := coaction.BuildGraph(counts, 1)
//
// Presets coaction.BotMode (1s window, 5 repeats) and coaction.IdeologyMode
// (600s window, 25 repeats) cover the two standard analyses.
package coactgraph
