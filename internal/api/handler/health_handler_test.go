package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("Liveness: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" || body["service"] != "fleetledger" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestReadiness_AllChecksHealthy(t *testing.T) {
	h := &HealthDependenciesHandler{
		timeout: time.Second,
		checks: []dependencyCheck{
			{name: "mongodb", ping: func(ctx context.Context) error { return nil }},
			{name: "redis", ping: func(ctx context.Context) error { return nil }},
		},
	}
	c, rec := newTestContext(t, http.MethodGet, "/health/ready", "")

	if err := h.Readiness(c); err != nil {
		t.Fatalf("Readiness: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" {
		t.Fatalf("status = %q, want ok", body.Status)
	}
	for _, name := range []string{"mongodb", "redis"} {
		if body.Checks[name].Status != "ok" {
			t.Fatalf("check %s = %+v, want ok", name, body.Checks[name])
		}
	}
}

func TestReadiness_FailingCheckDegradesButReportsAll(t *testing.T) {
	h := &HealthDependenciesHandler{
		timeout: time.Second,
		checks: []dependencyCheck{
			{name: "mongodb", ping: func(ctx context.Context) error { return errors.New("no reachable servers") }},
			{name: "redis", ping: func(ctx context.Context) error { return nil }},
		},
	}
	c, rec := newTestContext(t, http.MethodGet, "/health/ready", "")

	if err := h.Readiness(c); err != nil {
		t.Fatalf("Readiness: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var body readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "degraded" {
		t.Fatalf("status = %q, want degraded", body.Status)
	}
	if body.Checks["mongodb"].Status != "unhealthy" || body.Checks["mongodb"].Error != "no reachable servers" {
		t.Fatalf("mongodb check = %+v", body.Checks["mongodb"])
	}
	if body.Checks["redis"].Status != "ok" {
		t.Fatalf("redis check = %+v, want ok despite mongodb failure", body.Checks["redis"])
	}
}
