package health

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReadyzTransitions(t *testing.T) {
	t.Parallel()

	h := New()

	rr := httptest.NewRecorder()
	h.Readyz(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("before ready: status = %d", rr.Code)
	}

	h.SetReady()
	rr = httptest.NewRecorder()
	h.Readyz(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("after ready: status = %d", rr.Code)
	}

	h.SetNotReady()
	rr = httptest.NewRecorder()
	h.Readyz(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("after not ready: status = %d", rr.Code)
	}
}

func TestHealthzAlwaysOK(t *testing.T) {
	t.Parallel()

	h := New()
	rr := httptest.NewRecorder()
	h.Healthz(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}
