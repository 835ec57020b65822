package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddleware_NormalizesPathLabels(t *testing.T) {
	httpRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Distinct identifiers must collapse into one label value.
	for _, id := range []string{
		"65f1a2b3c4d5e6f7a8b9c0d1",
		"65f1a2b3c4d5e6f7a8b9c0d2",
		"65f1a2b3c4d5e6f7a8b9c0d3",
	} {
		req := httptest.NewRequest(http.MethodGet, "/articles/"+id, nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/articles/:id", "200"))
	if got != 3 {
		t.Errorf("http_requests_total{path=/articles/:id} = %v, want 3", got)
	}
	if series := testutil.CollectAndCount(httpRequestsTotal); series != 1 {
		t.Errorf("distinct series = %d, want 1 after normalization", series)
	}
}

func TestMetricsMiddleware_RecordsStatusCodes(t *testing.T) {
	httpRequestsTotal.Reset()

	statuses := []int{
		http.StatusOK,
		http.StatusCreated,
		http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusBadGateway,
	}
	for _, status := range statuses {
		status := status
		handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		req := httptest.NewRequest(http.MethodGet, "/articles", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != status {
			t.Errorf("status = %d, want %d", rec.Code, status)
		}
	}

	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/articles", "404")); got != 1 {
		t.Errorf("http_requests_total{status=404} = %v, want 1", got)
	}
	if series := testutil.CollectAndCount(httpRequestsTotal); series != len(statuses) {
		t.Errorf("distinct series = %d, want %d", series, len(statuses))
	}
}

func TestMetricsMiddleware_InFlightGauge(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if in := testutil.ToFloat64(httpRequestsInFlight); in != 1 {
			t.Errorf("in-flight during request = %v, want 1", in)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if in := testutil.ToFloat64(httpRequestsInFlight); in != 0 {
		t.Errorf("in-flight after request = %v, want 0", in)
	}
}

func TestMetricsHandler(t *testing.T) {
	handler := MetricsHandler()
	if handler == nil {
		t.Fatal("MetricsHandler() returned nil")
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("metrics endpoint returned an empty body")
	}
}
