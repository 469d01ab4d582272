package httpadapter

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAccessLogCarriesOwnerAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	base := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := requestIDMiddleware(accessLogMiddleware(logger, base))

	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	req.Header.Set(ownerHeader, "alice")
	req.Header.Set(requestIDHeader, "req-42")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	line := buf.String()
	if !strings.Contains(line, `"owner":"alice"`) {
		t.Fatalf("access log missing owner: %s", line)
	}
	if !strings.Contains(line, `"request_id":"req-42"`) {
		t.Fatalf("access log missing request id: %s", line)
	}
}

func TestAccessLogAnonymousOwnerPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	base := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := accessLogMiddleware(logger, base)

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if !strings.Contains(buf.String(), `"owner":"-"`) {
		t.Fatalf("access log missing owner placeholder: %s", buf.String())
	}
}

func TestAccessLogLevelFollowsStatusClass(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	base := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	handler := accessLogMiddleware(logger, base)

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/v1/analyze", nil))

	line := buf.String()
	if !strings.Contains(line, `"level":"ERROR"`) {
		t.Fatalf("5xx did not log at error level: %s", line)
	}
	if !strings.Contains(line, `"status":502`) {
		t.Fatalf("access log missing status: %s", line)
	}
}
