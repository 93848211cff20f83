// Package metrics exposes Prometheus collectors for coaction runs.
//
// Collectors are registered on a caller-supplied Registerer instead of the
// global default, so several engines (and tests) can coexist. Every method is
// safe on a nil *Collector, which is the "metrics disabled" value.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coactgraph"

// Stage labels for StageDuration.
const (
	StageIndex  = "index"
	StageWindow = "window"
	StageMerge  = "merge"
	StageBuild  = "build"
)

// Collector groups all coaction metrics.
type Collector struct {
	// Events consumed by the index stage (including keyless events).
	Events prometheus.Counter

	// Keys is the number of key groups scanned.
	Keys prometheus.Counter

	// PairEmissions counts every (earlier, later) emission of the window scan.
	PairEmissions prometheus.Counter

	// Detections counts detection runs, labeled by outcome ("ok" / "error").
	Detections *prometheus.CounterVec

	// GraphEdges is the edge count of the last graph built per mode.
	GraphEdges *prometheus.GaugeVec

	// DroppedPairs counts pairs removed by the builder, labeled by reason
	// ("loop" / "threshold").
	DroppedPairs *prometheus.CounterVec

	// StageDuration measures each pipeline stage.
	StageDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
// Registering twice on the same registry panics, as with promauto.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		Events: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Total number of events indexed",
		}),
		Keys: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "key_groups_total",
			Help:      "Total number of key groups scanned by the sliding window",
		}),
		PairEmissions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pair_emissions_total",
			Help:      "Total number of co-occurring pair emissions",
		}),
		Detections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detections_total",
			Help:      "Detection runs by outcome",
		}, []string{"outcome"}),
		GraphEdges: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Edge count of the most recent graph per mode",
		}, []string{"mode"}),
		DroppedPairs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_pairs_total",
			Help:      "Pairs removed while building graphs, by reason",
		}, []string{"reason"}),
		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of pipeline stages in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120},
		}, []string{"stage"}),
	}
}

// ObserveStage records the duration of one stage.
func (c *Collector) ObserveStage(stage string, d time.Duration) {
	if c == nil {
		return
	}
	c.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// ObserveDetection records the outcome and volume of one detection run.
func (c *Collector) ObserveDetection(events, keys int, emissions int64, err error) {
	if c == nil {
		return
	}
	if err != nil {
		c.Detections.WithLabelValues("error").Inc()
		return
	}
	c.Detections.WithLabelValues("ok").Inc()
	c.Events.Add(float64(events))
	c.Keys.Add(float64(keys))
	c.PairEmissions.Add(float64(emissions))
}

// ObserveBuild records the result of one graph build.
func (c *Collector) ObserveBuild(mode string, edges, droppedLoops, droppedBelow int) {
	if c == nil {
		return
	}
	c.GraphEdges.WithLabelValues(mode).Set(float64(edges))
	c.DroppedPairs.WithLabelValues("loop").Add(float64(droppedLoops))
	c.DroppedPairs.WithLabelValues("threshold").Add(float64(droppedBelow))
}
