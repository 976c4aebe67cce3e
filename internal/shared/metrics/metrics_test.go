package metrics

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHistogramBucketsAreCumulativeOnce(t *testing.T) {
	h := newHistogram([]float64{10, 20, 30})
	h.Observe(5)
	h.Observe(15)
	h.Observe(50)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
	want := []uint64{1, 1, 0}
	for i, c := range snap.counts {
		if c != want[i] {
			t.Fatalf("bucket %d: expected %d, got %d", i, want[i], c)
		}
	}

	var buf bytes.Buffer
	writeHistogram(&buf, "x", "test", snap)
	out := buf.String()
	for _, want := range []string{
		`x_bucket{le="10"} 1`,
		`x_bucket{le="20"} 2`,
		`x_bucket{le="30"} 2`,
		`x_bucket{le="+Inf"} 3`,
		"x_sum 70",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderIncludesDomainSeries(t *testing.T) {
	IncAnalysisStarted()
	IncAnalysisCompleted()
	IncDocumentRead("placeholder")
	ObserveATSScore(36)
	ObserveAnalysisDurationMs(12.5)

	out := Render()
	for _, want := range []string{
		"analysis_started_total",
		"analysis_completed_total",
		`documents_read_total{source="placeholder"}`,
		"# TYPE analysis_ats_score histogram",
		`analysis_ats_score_bucket{le="+Inf"}`,
		"analysis_duration_ms_count",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestHandlerServesTextFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type %q", ct)
	}
}
