package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kumaraguru-geo/geo-portal-api/internal/health"
)

func TestStatus(t *testing.T) {
	handler := health.Handler{Env: "test"}
	rr := httptest.NewRecorder()
	handler.Status(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "OK" {
		t.Fatalf("unexpected status %#v", body)
	}
	if body["env"] != "test" {
		t.Fatalf("unexpected env %#v", body)
	}
}

func TestStatusWithoutEnv(t *testing.T) {
	handler := health.Handler{}
	rr := httptest.NewRecorder()
	handler.Status(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := body["env"]; ok {
		t.Fatalf("env should be omitted when unset, got %#v", body)
	}
}
