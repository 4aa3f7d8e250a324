package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/scoutlens/scoutlens/internal/platform/resilience"
	"github.com/scoutlens/scoutlens/internal/usecase"
)

func TestWriteSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, map[string]any{"success": true, "status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected Content-Type: %q", got)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if success, _ := body["success"].(bool); !success {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
}

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: search query is required", usecase.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("%w: player=Ghost", usecase.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "dependency unavailable", err: fmt.Errorf("%w: dataset", usecase.ErrDependencyUnavailable), wantStatus: http.StatusServiceUnavailable},
		{name: "open circuit", err: fmt.Errorf("players table: %w", resilience.ErrCircuitOpen), wantStatus: http.StatusServiceUnavailable},
		{name: "unexpected", err: fmt.Errorf("csv parse blew up"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body errorEnvelope
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			if body.Success {
				t.Fatal("expected success=false")
			}
			if body.Error == "" {
				t.Fatal("expected error message")
			}
		})
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("open /secret/path: permission denied"))

	var body errorEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body.Error)
	}
}
