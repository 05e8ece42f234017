package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCountsMatchesAndUpstreamCalls(t *testing.T) {
	rec := NewRecorder()

	rec.ObserveMatch("player", "team_contains_forward")
	rec.ObserveMatch("player", "team_contains_forward")
	rec.ObserveMatch("player", "unmatched")
	rec.ObserveUpstream("euroleague", 10*time.Millisecond, nil)
	rec.ObserveUpstream("dunkest", 10*time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(rec.matchOutcomes.WithLabelValues("player", "team_contains_forward")); got != 2 {
		t.Fatalf("expected 2 forward matches, got %v", got)
	}
	if got := testutil.ToFloat64(rec.matchOutcomes.WithLabelValues("player", "unmatched")); got != 1 {
		t.Fatalf("expected 1 unmatched record, got %v", got)
	}
	if got := testutil.ToFloat64(rec.upstreamCalls.WithLabelValues("dunkest", OutcomeError)); got != 1 {
		t.Fatalf("expected 1 dunkest error, got %v", got)
	}
}

func TestRecorderHandlerExposesMetrics(t *testing.T) {
	rec := NewRecorder()
	rec.ObserveHTTPRequest(http.MethodGet, "/v1/seasons", http.StatusOK, 5*time.Millisecond)

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(body), `euroleague_dashboard_http_requests_total{method="GET",route="/v1/seasons",status="200"} 1`) {
		t.Fatalf("expected http counter in scrape output:\n%s", body)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.ObserveMatch("team", "exact")
	rec.ObserveUpstream("euroleague", time.Millisecond, nil)
	rec.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)

	rr := httptest.NewRecorder()
	rec.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from nil recorder handler, got %d", rr.Code)
	}
}
