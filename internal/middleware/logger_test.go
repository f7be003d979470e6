package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/dashboard-layout/pkg/logger"
)

func TestLoggerMiddleware_ContextLoggerAndSummary(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	var inner *slog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})
	h := chimiddleware.RequestID(NewLoggerMiddleware(log).LoggerMiddleware(next))

	req := httptest.NewRequest(http.MethodGet, "/layouts", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if inner == nil || inner == slog.Default() {
		t.Fatal("expected a request-scoped logger in the context")
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "request completed" || entry["path"] != "/layouts" || entry["method"] != "GET" {
		t.Fatalf("unexpected log entry %v", entry)
	}
	if entry["status"] != float64(http.StatusTeapot) {
		t.Fatalf("expected status 418, got %v", entry["status"])
	}
	if id, _ := entry["request_id"].(string); id == "" {
		t.Fatal("expected a request id")
	}
}
