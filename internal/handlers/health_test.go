package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealth_AllHealthy(t *testing.T) {
	handler := NewHealthHandler(&mockHealthChecker{}, &mockHealthChecker{})

	rr := httptest.NewRecorder()
	handler.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Status != "healthy" {
		t.Errorf("expected healthy status, got %s", response.Status)
	}
	if response.Checks["postgres"] != "healthy" || response.Checks["redis"] != "healthy" {
		t.Errorf("unexpected checks %v", response.Checks)
	}
}

func TestHealth_PostgresDown(t *testing.T) {
	db := &mockHealthChecker{
		HealthFunc: func(ctx context.Context) error { return errors.New("connection refused") },
	}
	handler := NewHealthHandler(db, &mockHealthChecker{})

	rr := httptest.NewRecorder()
	handler.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Status != "unhealthy" {
		t.Errorf("expected unhealthy status, got %s", response.Status)
	}
	if response.Checks["redis"] != "healthy" {
		t.Errorf("redis should still report healthy, got %v", response.Checks)
	}
}

func TestReady(t *testing.T) {
	handler := NewHealthHandler(&mockHealthChecker{}, &mockHealthChecker{})

	rr := httptest.NewRecorder()
	handler.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestReady_RedisDown(t *testing.T) {
	redis := &mockHealthChecker{
		HealthFunc: func(ctx context.Context) error { return errors.New("connection refused") },
	}
	handler := NewHealthHandler(&mockHealthChecker{}, redis)

	rr := httptest.NewRecorder()
	handler.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestLive(t *testing.T) {
	handler := NewHealthHandler(&mockHealthChecker{}, &mockHealthChecker{})

	rr := httptest.NewRecorder()
	handler.Live(rr, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
