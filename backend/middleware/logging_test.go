// ABOUTME: Tests for request logging middleware
// ABOUTME: Verifies request IDs and path sanitization against log injection

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline injection", "/api/v1/design/calculate\nAdmin access granted", "/api/v1/design/calculateAdmin access granted"},
		{"CRLF", "/api/test\r\ninjected line", "/api/testinjected line"},
		{"tab", "/api/test\tvalue", "/api/testvalue"},
		{"null byte", "/api/test\x00value", "/api/testvalue"},
		{"escape sequence", "/api/test\x1b[31mred\x1b[0m", "/api/test[31mred[0m"},
		{"DEL character", "/api/test\x7fvalue", "/api/testvalue"},
		{"normal path", "/api/v1/design/compare", "/api/v1/design/compare"},
		{"query chars", "/api/v1/design/calculate?display=whole", "/api/v1/design/calculate?display=whole"},
		{"encoded chars", "/api/v1/design%2Ftest", "/api/v1/design%2Ftest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizePath(tt.input); got != tt.want {
				t.Errorf("sanitizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogRequest_SetsRequestIDHeader(t *testing.T) {
	var seen string
	handler := LogRequest(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	requestID := rec.Header().Get("X-Request-ID")
	if _, err := uuid.Parse(requestID); err != nil {
		t.Errorf("X-Request-ID %q should be a UUID: %v", requestID, err)
	}
	if seen != requestID {
		t.Errorf("Context request ID = %q, want %q", seen, requestID)
	}
}

func TestLogRequest_ReusesIncomingID(t *testing.T) {
	handler := LogRequest(okHandler)
	incoming := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", incoming)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != incoming {
		t.Errorf("X-Request-ID = %q, want incoming %q", got, incoming)
	}
}

func TestLogRequest_ReplacesInvalidIncomingID(t *testing.T) {
	handler := LogRequest(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "bogus\nid")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got == "bogus\nid" {
		t.Error("Invalid incoming request ID should be replaced")
	}
}

func TestLogRequest_CapturesStatusCode(t *testing.T) {
	handler := LogRequest(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/api/test", nil))

	if rec.Code != http.StatusCreated {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusCreated)
	}
}

func TestRequestID_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestID(req.Context()); got != "" {
		t.Errorf("Expected empty request ID, got %q", got)
	}
}
