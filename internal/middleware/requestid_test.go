package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("honors client header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if seen != "abc-123" {
			t.Fatalf("context request id = %q, want %q", seen, "abc-123")
		}
		if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
			t.Fatalf("response header = %q, want %q", got, "abc-123")
		}
	})

	t.Run("mints uuid when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if _, err := uuid.Parse(seen); err != nil {
			t.Fatalf("context request id %q is not a uuid: %v", seen, err)
		}
		if got := rec.Header().Get("X-Request-ID"); got != seen {
			t.Fatalf("response header %q does not match context id %q", got, seen)
		}
	})
}

func TestRequestIDFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Fatalf("expected empty id without middleware, got %q", got)
	}
}
