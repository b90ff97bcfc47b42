package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/krishisahayak/app-backend/internal/types"
)

func TestPumpStart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/iot/pump/start" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %q", r.Method)
		}
		_ = json.NewEncoder(w).Encode(types.PumpStatus{Status: "success", Message: "pump running"})
	}))
	defer srv.Close()

	c := NewPumpClient(srv.URL)
	status, err := c.Start(context.Background())
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if status.Message != "pump running" {
		t.Errorf("unexpected message %q", status.Message)
	}
}

func TestPumpRejectedCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.PumpStatus{Status: "error", Message: "valve stuck"})
	}))
	defer srv.Close()

	c := NewPumpClient(srv.URL)
	_, err := c.Stop(context.Background())

	var pumpErr *PumpError
	if !errors.As(err, &pumpErr) {
		t.Fatalf("expected PumpError, got %v", err)
	}
	if pumpErr.Message != "valve stuck" {
		t.Errorf("controller message lost: %q", pumpErr.Message)
	}
}

func TestPumpServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewPumpClient(srv.URL)
	if _, err := c.Start(context.Background()); err == nil {
		t.Fatal("expected error on 503")
	}
}
