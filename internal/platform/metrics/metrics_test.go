package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_ObservePipelineRun(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.ObservePipelineRun("leaderboard", 10, 2*time.Second, nil)
	r.ObservePipelineRun("leaderboard", 0, time.Second, errors.New("db down"))

	if got := testutil.ToFloat64(r.pipelineRuns.WithLabelValues("leaderboard", "success")); got != 1 {
		t.Fatalf("expected one successful run, got %v", got)
	}
	if got := testutil.ToFloat64(r.pipelineRuns.WithLabelValues("leaderboard", "error")); got != 1 {
		t.Fatalf("expected one failed run, got %v", got)
	}
	if got := testutil.ToFloat64(r.recordsStored.WithLabelValues("leaderboard")); got != 10 {
		t.Fatalf("failed run must not overwrite stored gauge, got %v", got)
	}
}

func TestRecorder_HandlerExposesMetrics(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.ObserveUpstream("schedule", 150*time.Millisecond, nil)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `mlb_stats_upstream_requests_total{endpoint="schedule",outcome="success"} 1`) {
		t.Fatalf("missing upstream counter in exposition:\n%s", rec.Body.String())
	}
}

func TestRecorder_NilIsNoop(t *testing.T) {
	t.Parallel()

	var r *Recorder
	r.ObservePipelineRun("pitchers", 1, time.Second, nil)
	r.ObserveUpstream("feed", time.Second, nil)
}
