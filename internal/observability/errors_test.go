package observability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecordErrorWritesStandardizedErrorResponse(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-1")
	span := trace.SpanFromContext(ctx)
	core, logs := observer.New(zap.DebugLevel)

	counter, err := otel.Meter("test").Int64Counter("test.errors.total")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}

	w := httptest.NewRecorder()

	RecordError(ctx, span, zap.New(core), counter, w, Failure{
		Op:      "calculator.tip",
		Message: "Number of people must be at least 1",
		Field:   "people",
		Status:  http.StatusUnprocessableEntity,
		Err:     errors.New("people: must be at least 1"),
	})

	resp := w.Result()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}

	if got := body["error"]; got != "Number of people must be at least 1" {
		t.Fatalf("expected error message, got %q", got)
	}
	if got := body["field"]; got != "people" {
		t.Fatalf("expected field %q, got %q", "people", got)
	}
	if _, ok := body["request_id"]; ok {
		t.Fatal("did not expect request_id field in JSON body")
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("expected warn level for client error, got %s", entries[0].Level)
	}
	if entries[0].ContextMap()["request_id"] != "req-1" {
		t.Fatalf("expected request_id in log, got %#v", entries[0].ContextMap()["request_id"])
	}
}

func TestRecordErrorLogsServerErrorsAtErrorLevel(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	counter, _ := otel.Meter("test").Int64Counter("test.errors.total")

	w := httptest.NewRecorder()
	RecordError(context.Background(), trace.SpanFromContext(context.Background()), zap.New(core), counter, w, Failure{
		Op:      "calculator.share",
		Message: "could not render summary",
		Status:  http.StatusInternalServerError,
		Err:     errors.New("pdf: boom"),
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if lvl := logs.All()[0].Level; lvl != zapcore.ErrorLevel {
		t.Fatalf("expected error level, got %s", lvl)
	}
}
