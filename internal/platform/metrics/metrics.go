// Package metrics exposes Prometheus collectors for pipeline runs and upstream calls.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mlb_stats"

// Recorder is the metrics surface used by the pipeline and the MLB client.
// A nil *Recorder is a no-op.
type Recorder struct {
	registry *prometheus.Registry

	pipelineRuns     *prometheus.CounterVec
	pipelineDuration *prometheus.HistogramVec
	recordsStored    *prometheus.GaugeVec
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	r := &Recorder{
		registry: registry,
		pipelineRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Pipeline runs by category and outcome.",
		}, []string{"category", "outcome"}),
		pipelineDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a pipeline run.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"category"}),
		recordsStored: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "records_stored",
			Help:      "Records written for the reporting date by the last run.",
		}, []string{"category"}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "MLB Stats API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "MLB Stats API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}

	registry.MustRegister(
		r.pipelineRuns,
		r.pipelineDuration,
		r.recordsStored,
		r.upstreamRequests,
		r.upstreamDuration,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) ObservePipelineRun(category string, stored int, took time.Duration, err error) {
	if r == nil {
		return
	}
	r.pipelineRuns.WithLabelValues(category, outcome(err)).Inc()
	r.pipelineDuration.WithLabelValues(category).Observe(took.Seconds())
	if err == nil {
		r.recordsStored.WithLabelValues(category).Set(float64(stored))
	}
}

func (r *Recorder) ObserveUpstream(endpoint string, took time.Duration, err error) {
	if r == nil {
		return
	}
	r.upstreamRequests.WithLabelValues(endpoint, outcome(err)).Inc()
	r.upstreamDuration.WithLabelValues(endpoint).Observe(took.Seconds())
}

func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
