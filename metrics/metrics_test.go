package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coactgraph/metrics"
)

func TestCollector_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)

	c.ObserveDetection(10, 3, 7, nil)
	c.ObserveDetection(0, 0, 0, errors.New("boom"))
	c.ObserveBuild("bot", 4, 2, 5)
	c.ObserveStage(metrics.StageWindow, 20*time.Millisecond)

	assert.Equal(t, 10.0, testutil.ToFloat64(c.Events))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.Keys))
	assert.Equal(t, 7.0, testutil.ToFloat64(c.PairEmissions))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Detections.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Detections.WithLabelValues("error")))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.GraphEdges.WithLabelValues("bot")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.DroppedPairs.WithLabelValues("loop")))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.DroppedPairs.WithLabelValues("threshold")))

	n, err := testutil.GatherAndCount(reg, "coactgraph_stage_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *metrics.Collector
	require.NotPanics(t, func() {
		c.ObserveDetection(1, 1, 1, nil)
		c.ObserveBuild("x", 1, 1, 1)
		c.ObserveStage(metrics.StageBuild, time.Second)
	})
}

func TestNew_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	require.Panics(t, func() { metrics.New(reg) })
}
