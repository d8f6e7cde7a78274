package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRun(t *testing.T) {
	m := New()
	m.ObserveRun("line", 3, 1)
	m.ObserveRun("line", 2, 0)
	m.ObserveRun("sentence", 4, 0)

	if got := testutil.ToFloat64(m.UnitsScored.WithLabelValues("line")); got != 5 {
		t.Fatalf("line units = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.UnitsScored.WithLabelValues("sentence")); got != 4 {
		t.Fatalf("sentence units = %v, want 4", got)
	}
	if got := testutil.ToFloat64(m.UnitFailures); got != 1 {
		t.Fatalf("failures = %v, want 1", got)
	}
}

func TestObserveExport(t *testing.T) {
	m := New()
	m.ObserveExport("xlsx", nil)
	m.ObserveExport("xlsx", errors.New("boom"))
	m.ObserveExport("txt", nil)

	if got := testutil.ToFloat64(m.Exports.WithLabelValues("xlsx", OutcomeOK)); got != 1 {
		t.Fatalf("xlsx ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Exports.WithLabelValues("xlsx", OutcomeError)); got != 1 {
		t.Fatalf("xlsx error = %v, want 1", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveRun("line", 1, 0)
	m.ObserveExport("txt", nil)
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := m.Middleware(mux)

	for range 2 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing/abc", nil))

	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/healthz", "200")); got != 2 {
		t.Fatalf("healthz count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Fatalf("unmatched count = %v, want 1", got)
	}

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "aq_http_requests_total") {
		t.Fatalf("scrape output missing request counter:\n%s", body)
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.ObserveRun("line", 1, 0)
	if got := testutil.ToFloat64(b.UnitsScored.WithLabelValues("line")); got != 0 {
		t.Fatalf("second instance saw %v units", got)
	}
}
